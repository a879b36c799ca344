package rng

import "math/rand"

// Source is a deterministic, 32-bit-seeded uniform random source.
//
// Complexity: O(1) per Draw call, no allocations beyond the embedded
// *rand.Rand created at construction.
type Source struct {
	r    *rand.Rand
	seed uint32
}

// New returns a Source deterministically derived from seed. Two Sources
// constructed with the same seed produce identical Draw sequences for
// the same sequence of calls.
func New(seed uint32) *Source {
	return &Source{
		r:    rand.New(rand.NewSource(int64(seed))),
		seed: seed,
	}
}

// Seed returns the 32-bit seed this Source was constructed with.
func (s *Source) Seed() uint32 {
	return s.seed
}

// Draw returns a pseudo-random float64 in the half-open interval
// [lo, hi). Panics are never raised; callers are responsible for
// passing lo <= hi (a degenerate lo == hi interval always returns lo).
//
// Complexity: O(1).
func (s *Source) Draw(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}

	return lo + s.r.Float64()*(hi-lo)
}
