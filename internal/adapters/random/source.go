// Package random provides seedable randomness for piece generation.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/bnema/tstack/internal/ports"
)

// Source is a deterministic pseudo-random source; equal seeds yield equal
// sequences.
type Source struct {
	seed int64
	rng  *rand.Rand
}

var _ ports.RandomSource = (*Source)(nil)

func New(seed int64) *Source {
	return &Source{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

func (s *Source) Seed() int64 {
	return s.seed
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
