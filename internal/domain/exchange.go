package domain

const (
	OpSwapFrontWithTop = "swap front with top"
	OpSwapTriple       = "swap triple"

	tripleSize = 3
)

// SwapFrontWithTop exchanges the queue front with the stack top in place.
// Both structures must be non-empty; on failure nothing moves.
func SwapFrontWithTop(q *PieceQueue, s *ReserveStack) error {
	if q.IsEmpty() {
		return &PreconditionError{Op: OpSwapFrontWithTop, Structure: StructureQueue, Want: 1, Got: q.Len(), Err: ErrQueueEmpty}
	}
	if s.IsEmpty() {
		return &PreconditionError{Op: OpSwapFrontWithTop, Structure: StructureStack, Want: 1, Got: s.Len(), Err: ErrStackEmpty}
	}

	top := s.top - 1
	q.slots[q.front], s.slots[top] = s.slots[top], q.slots[q.front]
	return nil
}

// SwapTriple exchanges the first three queued pieces with the three stack
// slots counted from the bottom: queue front+i pairs with stack slot i.
// The stack must be exactly full and the queue must hold at least three.
func SwapTriple(q *PieceQueue, s *ReserveStack) error {
	if q.Len() < tripleSize {
		return &PreconditionError{Op: OpSwapTriple, Structure: StructureQueue, Want: tripleSize, Got: q.Len(), Err: ErrQueueTooShort}
	}
	if s.Len() != StackCapacity {
		return &PreconditionError{Op: OpSwapTriple, Structure: StructureStack, Want: StackCapacity, Exact: true, Got: s.Len(), Err: ErrStackNotFull}
	}

	for i := 0; i < tripleSize; i++ {
		idx := q.slot(i)
		q.slots[idx], s.slots[i] = s.slots[i], q.slots[idx]
	}

	return nil
}
