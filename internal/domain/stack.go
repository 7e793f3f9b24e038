package domain

const StackCapacity = 3

// ReserveStack is a fixed-capacity LIFO of reserved pieces.
// top is the number of pieces held; the top piece sits at slots[top-1].
// The zero value is an empty stack ready for use.
type ReserveStack struct {
	slots [StackCapacity]Piece
	top   int
}

func NewReserveStack() *ReserveStack {
	return &ReserveStack{}
}

func (s *ReserveStack) Len() int {
	return s.top
}

func (s *ReserveStack) Cap() int {
	return StackCapacity
}

func (s *ReserveStack) IsFull() bool {
	return s.top == StackCapacity
}

func (s *ReserveStack) IsEmpty() bool {
	return s.top == 0
}

// Push places p on top. It does nothing when the stack is full.
func (s *ReserveStack) Push(p Piece) {
	if s.IsFull() {
		return
	}

	s.slots[s.top] = p
	s.top++
}

func (s *ReserveStack) Pop() (Piece, bool) {
	if s.IsEmpty() {
		return Piece{}, false
	}

	s.top--
	p := s.slots[s.top]
	s.slots[s.top] = Piece{}

	return p, true
}

func (s *ReserveStack) Top() (Piece, bool) {
	if s.IsEmpty() {
		return Piece{}, false
	}

	return s.slots[s.top-1], true
}

// Pieces returns a top-to-bottom copy of the reserved pieces.
func (s *ReserveStack) Pieces() []Piece {
	pieces := make([]Piece, 0, s.top)
	for i := s.top - 1; i >= 0; i-- {
		pieces = append(pieces, s.slots[i])
	}

	return pieces
}
