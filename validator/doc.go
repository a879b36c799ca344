// Package validator enforces every structural invariant a Markov
// emission graph must satisfy before an engine may be built from it:
// component E of the engine.
//
// Validation runs in two passes — vertices, then edges — and each pass
// accumulates every failure it finds rather than stopping at the
// first, so that Validate's returned error reports every problem in
// one call instead of forcing callers through a fix-one-rerun loop.
// Each failure names the offending vertex or edge id and a
// human-readable reason, following the sentinel-plus-%w-wrap error
// policy used throughout this module (see builder's errors.go in the
// reference corpus this package is grounded on).
package validator
