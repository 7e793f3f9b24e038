package application

import "github.com/bnema/tstack/internal/domain"

type Snapshot struct {
	SessionID     string         `json:"session_id"`
	Queue         []domain.Piece `json:"queue"`
	Stack         []domain.Piece `json:"stack"`
	QueueCapacity int            `json:"queue_capacity"`
	StackCapacity int            `json:"stack_capacity"`
	Issued        int            `json:"issued"`
}

// Swap records one exchanged pair: Queue left the queue, Stack left the stack.
type Swap struct {
	Queue domain.Piece `json:"queue"`
	Stack domain.Piece `json:"stack"`
}

// Result is the outcome of one executed command. Err is nil on success;
// otherwise no structure changed.
type Result struct {
	Command   Command
	Moved     *domain.Piece
	Generated *domain.Piece
	Swapped   []Swap
	Err       error
}

func (r Result) OK() bool {
	return r.Err == nil
}
