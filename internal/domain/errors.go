package domain

import (
	"errors"
	"fmt"
)

var (
	ErrQueueEmpty    = errors.New("queue is empty")
	ErrQueueTooShort = errors.New("queue holds too few pieces")
	ErrStackEmpty    = errors.New("stack is empty")
	ErrStackFull     = errors.New("stack is full")
	ErrStackNotFull  = errors.New("stack is not full")
)

type Structure string

const (
	StructureQueue Structure = "queue"
	StructureStack Structure = "stack"
)

// PreconditionError reports which structure blocked an exchange and by how much.
type PreconditionError struct {
	Op        string
	Structure Structure
	Want      int
	// Exact is set when Got must equal Want rather than reach it.
	Exact bool
	Got   int
	Err   error
}

func (e *PreconditionError) Error() string {
	qualifier := "at least"
	if e.Exact {
		qualifier = "exactly"
	}

	return fmt.Sprintf("%s: %s must hold %s %d %s (has %d)", e.Op, e.Structure, qualifier, e.Want, pluralPieces(e.Want), e.Got)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func pluralPieces(n int) string {
	if n == 1 {
		return "piece"
	}
	return "pieces"
}
