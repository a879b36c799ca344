// Package rng provides the deterministic, 32-bit-seeded uniform source
// shared by the engine's stochastic components (distributions, chooser,
// engine). Package markovbuilder draws its optional random weights from
// its own *math/rand.Rand instead.
//
// Algorithm choice (documented per the contract this package implements):
// rng wraps Go's math/rand.Rand, seeded via rand.NewSource(int64(seed)).
// Reproducibility is scoped to this exact implementation: a fixed seed,
// a fixed sequence of Draw calls, and a fixed version of this package
// yield a bit-identical output sequence. Swapping the underlying
// algorithm (e.g. to crypto/rand or a different PRNG family) voids the
// reproducibility guarantee, by design.
//
// rng.Source is not safe for concurrent use; callers needing concurrency
// must hold one Source per goroutine.
package rng
