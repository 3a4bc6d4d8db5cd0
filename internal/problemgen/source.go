package problemgen

import (
	"math/rand/v2"
	"sync"
	"time"
)

// OperandSource draws operands from a bound.
type OperandSource interface {
	// Next returns a value drawn uniformly from [b.Min, b.Max].
	Next(b Bound) int
}

// RandSource is an OperandSource backed by math/rand/v2.
// It is safe for concurrent use.
type RandSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ OperandSource = (*RandSource)(nil)

// NewRandSource returns a RandSource seeded with seed. The same seed
// always yields the same sequence of operands.
func NewRandSource(seed uint64) *RandSource {
	return NewRandSourceFrom(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewRandSourceFrom wraps an existing *rand.Rand.
func NewRandSourceFrom(rng *rand.Rand) *RandSource {
	return &RandSource{rng: rng}
}

// NewTimeSeededSource returns a RandSource seeded from the wall clock.
func NewTimeSeededSource() *RandSource {
	return NewRandSource(uint64(time.Now().UnixNano()))
}

func (s *RandSource) Next(b Bound) int {
	if b.Max <= b.Min {
		return b.Min
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return b.Min + s.rng.IntN(b.Max-b.Min+1)
}

// Reseed resets the source to the sequence produced by seed.
func (s *RandSource) Reseed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
