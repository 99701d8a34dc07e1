// Package random provides the seeded random source used to build words.
package random

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/flarebyte/nimi/internal/syllable"
)

// Source draws syllables, nasal decisions and word lengths from one
// seeded generator. It is not safe for concurrent use.
type Source struct {
	seed int64
	rng  *rand.Rand
}

// New returns a Source seeded with seed. A zero seed is replaced by the
// current time so every run differs; Seed reports the value actually used.
func New(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the generator was created with.
func (s *Source) Seed() int64 { return s.seed }

// Choose returns a uniformly chosen entry of t.
func (s *Source) Choose(t syllable.Table) string {
	n := t.Len()
	if n == 0 {
		panic(fmt.Sprintf("random: empty syllable table %q", t.Name()))
	}
	return t.At(s.rng.Intn(n))
}

// Bool returns true with probability p. It never returns true for p == 0
// and always does for p == 1.
func (s *Source) Bool(p float64) bool {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("random: probability %v outside [0, 1]", p))
	}
	switch p {
	case 0:
		return false
	case 1:
		return true
	}
	return s.rng.Float64() < p
}

// IntRange returns a uniformly chosen int in [lo, hi].
func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("random: empty range [%d, %d]", lo, hi))
	}
	return lo + s.rng.Intn(hi-lo+1)
}
