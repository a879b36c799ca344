package distributions

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tgenmarkov/rng"
)

// uniformLo and uniformHi bound every uniform draw consumed by the
// samplers in this package. Clamping away from 0 and 1 prevents ln(0)
// and keeps cos(2*pi*v) away from exact multiples that would otherwise
// be harmless but make golden-value tests brittle across platforms.
const (
	uniformLo = 0.0001
	uniformHi = 0.9999
)

// LogNormal draws one sample from a log-normal distribution with
// location mu and scale sigma, using the Box-Muller transform.
//
// It consumes exactly two draws from src, in order: u then v. Only one
// of the two normal variates Box-Muller produces is used; the other is
// discarded, matching the reference implementation this package is
// ported from.
//
// Complexity: O(1). Never panics: mu and sigma may be any non-negative
// finite value, including zero (sigma == 0 collapses the draw to a
// deterministic exp(mu)).
func LogNormal(src *rng.Source, mu, sigma float64) float64 {
	u := src.Draw(uniformLo, uniformHi)
	v := src.Draw(uniformLo, uniformHi)

	x := math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)

	return math.Exp(mu + sigma*x)
}

// Exponential draws one sample from an exponential distribution with
// rate lambda, using inverse transform sampling.
//
// It consumes exactly one draw from src. lambda must be strictly
// positive; lambda <= 0 is a programmer error (the distribution is
// undefined there) and panics rather than returning a silently wrong
// value, matching the panics-on-invalid-parameter convention used
// throughout this module's deterministic samplers.
//
// Complexity: O(1).
func Exponential(src *rng.Source, lambda float64) float64 {
	if lambda <= 0 {
		panic(fmt.Sprintf("distributions: Exponential requires lambda > 0, got %g", lambda))
	}

	u := src.Draw(uniformLo, uniformHi)

	return -math.Log(u) / lambda
}
