package markovbuilder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight DefaultWeightFn always returns.
const DefaultEdgeWeight float64 = 1

// WeightFn produces a non-negative edge weight given an optional
// *rand.Rand source. It must be deterministic for a given rng state;
// panics indicate a programmer error in the constructor's arguments,
// not a runtime condition.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight. Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("markovbuilder: ConstantWeightFn: value must be >= 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi).
// Panics if lo < 0 or hi < lo. If rng is nil, yields lo.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("markovbuilder: UniformWeightFn: require 0 <= lo <= hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// IDFn generates a vertex identifier from a zero-based index. It must
// be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns "s<idx>", e.g. 0 -> "s0", 1 -> "s1".
func DefaultIDFn(idx int) string {
	return fmt.Sprintf("s%d", idx)
}
