package application

import (
	"testing"

	"github.com/bnema/tstack/internal/adapters/random"
	"github.com/bnema/tstack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceFactoryAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	factory := NewPieceFactory(zeroSource())

	for want := 1; want <= 20; want++ {
		p := factory.Generate()
		require.Equal(t, want, p.ID)
	}
	assert.Equal(t, 20, factory.Issued())
}

func TestPieceFactoryPicksTypeFromSource(t *testing.T) {
	t.Parallel()

	factory := NewPieceFactory(&scriptedSource{values: []int{0, 1, 2, 3, 4, 5, 6}})

	got := make([]domain.PieceType, 0, len(domain.PieceTypes))
	for range domain.PieceTypes {
		got = append(got, factory.Generate().Type)
	}

	assert.Equal(t, domain.PieceTypes[:], got)
}

func TestPieceFactorySeededSequencesRepeat(t *testing.T) {
	t.Parallel()

	first := NewPieceFactory(random.New(99))
	second := NewPieceFactory(random.New(99))

	for i := 0; i < 30; i++ {
		a, b := first.Generate(), second.Generate()
		require.Equal(t, a, b)
		require.True(t, a.Type.Valid())
	}
}
