package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledStack(ids ...int) *ReserveStack {
	s := NewReserveStack()
	for _, p := range pieces(ids...) {
		s.Push(p)
	}
	return s
}

func TestReserveStackZeroValueIsEmpty(t *testing.T) {
	t.Parallel()

	var s ReserveStack

	assert.True(t, s.IsEmpty())
	assert.False(t, s.IsFull())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, StackCapacity, s.Cap())
}

func TestReserveStackLIFOOrder(t *testing.T) {
	t.Parallel()

	s := filledStack(1, 2, 3)

	assert.Equal(t, pieces(3, 2, 1), s.Pieces())

	for _, want := range []int{3, 2, 1} {
		p, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, p.ID)
	}
	assert.True(t, s.IsEmpty())
}

func TestReserveStackPushIgnoredWhenFull(t *testing.T) {
	t.Parallel()

	s := filledStack(1, 2, 3)
	require.True(t, s.IsFull())

	s.Push(Piece{Type: PieceZ, ID: 4})

	assert.Equal(t, StackCapacity, s.Len())
	top, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, 3, top.ID)
}

func TestReserveStackPopEmptyReportsAbsence(t *testing.T) {
	t.Parallel()

	s := NewReserveStack()

	p, ok := s.Pop()

	assert.False(t, ok)
	assert.Equal(t, Piece{}, p)
	assert.Equal(t, 0, s.Len())

	_, ok = s.Top()
	assert.False(t, ok)
}

func TestReserveStackQueriesDoNotMutate(t *testing.T) {
	t.Parallel()

	s := filledStack(4, 5)
	before := *s

	_ = s.IsFull()
	_ = s.IsEmpty()
	_ = s.Pieces()
	_, _ = s.Top()

	assert.Equal(t, before, *s)
}
