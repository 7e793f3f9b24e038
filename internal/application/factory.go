package application

import (
	"github.com/bnema/tstack/internal/domain"
	"github.com/bnema/tstack/internal/ports"
)

// PieceFactory creates pieces with a random type and the next sequential id.
type PieceFactory struct {
	rng    ports.RandomSource
	issued int
}

func NewPieceFactory(rng ports.RandomSource) *PieceFactory {
	return &PieceFactory{rng: rng}
}

func (f *PieceFactory) Generate() domain.Piece {
	f.issued++

	return domain.Piece{
		Type: domain.PieceTypes[f.rng.Intn(len(domain.PieceTypes))],
		ID:   f.issued,
	}
}

// Issued reports how many pieces the factory has created.
func (f *PieceFactory) Issued() int {
	return f.issued
}
