// Package markovbuilder assembles markovgraph.Graph topologies
// programmatically, the way github.com/katalvlaran/lvlath/builder
// assembles core.Graph topologies: a Constructor type applied in
// sequence against a graph under a resolved, immutable configuration.
//
// It exists for two callers: tests that would rather describe a chain
// or fan-out shape in Go than maintain a GraphML fixture, and host
// code that wants to synthesize a Markov model at runtime instead of
// loading one from disk. Every constructor here produces a graph that
// still has to pass package validator before an engine will accept
// it — markovbuilder does not special-case validation, it only saves
// callers from hand-writing AddVertex/AddEdge calls.
//
// Determinism: the same sequence of constructors against the same
// BuilderOptions (in particular WithSeed) always adds the same
// vertices and edges in the same order.
package markovbuilder
