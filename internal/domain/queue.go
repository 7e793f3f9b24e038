package domain

const QueueCapacity = 5

// PieceQueue is a fixed-capacity circular FIFO of upcoming pieces.
// The zero value is an empty queue ready for use.
type PieceQueue struct {
	slots [QueueCapacity]Piece
	front int
	back  int
	count int
}

func NewPieceQueue() *PieceQueue {
	return &PieceQueue{}
}

func (q *PieceQueue) Len() int {
	return q.count
}

func (q *PieceQueue) Cap() int {
	return QueueCapacity
}

func (q *PieceQueue) IsFull() bool {
	return q.count == QueueCapacity
}

func (q *PieceQueue) IsEmpty() bool {
	return q.count == 0
}

// Enqueue appends p at the back. It does nothing when the queue is full;
// callers that need to know check IsFull first.
func (q *PieceQueue) Enqueue(p Piece) {
	if q.IsFull() {
		return
	}

	q.slots[q.back] = p
	q.back = (q.back + 1) % QueueCapacity
	q.count++
}

// Dequeue removes and returns the front piece. The boolean is false when the
// queue is empty.
func (q *PieceQueue) Dequeue() (Piece, bool) {
	if q.IsEmpty() {
		return Piece{}, false
	}

	p := q.slots[q.front]
	q.slots[q.front] = Piece{}
	q.front = (q.front + 1) % QueueCapacity
	q.count--

	return p, true
}

func (q *PieceQueue) Front() (Piece, bool) {
	if q.IsEmpty() {
		return Piece{}, false
	}

	return q.slots[q.front], true
}

// Pieces returns a front-to-back copy of the queued pieces.
func (q *PieceQueue) Pieces() []Piece {
	pieces := make([]Piece, 0, q.count)
	for i := 0; i < q.count; i++ {
		pieces = append(pieces, q.slots[q.slot(i)])
	}

	return pieces
}

// slot maps a logical offset from the front to a physical index.
func (q *PieceQueue) slot(offset int) int {
	return (q.front + offset) % QueueCapacity
}
