package render

import (
	"math/rand/v2"
	"sync"
)

// Picker chooses one of n equivalent phrasings. It must return 0 <= i < n.
type Picker interface {
	Pick(n int) int
}

// First always picks the first phrasing. Use it when output must be exact.
type First struct{}

// Pick implements Picker.
func (First) Pick(int) int { return 0 }

// Random picks uniformly from the process-wide generator.
type Random struct{}

// Pick implements Picker.
func (Random) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return rand.IntN(n)
}

// Seeded picks from a private, reproducible generator. Safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded creates a Seeded picker.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Pick implements Picker.
func (s *Seeded) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
