// Package tgenmarkov is a Markov emission engine: it loads a
// validated hidden-Markov-like graph description and produces a
// deterministic, seeded sequence of (observation, inter-event-delay)
// pairs for a higher-level traffic generator to act on.
//
// The root package holds no code of its own; it is organized as one
// focused subpackage per concern, in the style of
// github.com/katalvlaran/lvlath's core/matrix/algorithms split:
//
//	rng/           — seeded, deterministic uniform PRNG
//	distributions/ — log-normal and exponential samplers built on rng
//	markovgraph/   — the in-memory typed directed multigraph
//	graphml/       — GraphML decode/encode for markovgraph.Graph
//	validator/     — structural invariant enforcement at load time
//	chooser/       — weighted outgoing-edge selection
//	engine/        — the public state machine composing all of the above
//	markovbuilder/ — programmatic graph assembly, for tests and hosts
//	    that would rather synthesize a topology than write GraphML
//	cmd/tgenmarkov — a developer CLI that drives an Engine from a file
//
// Start with package engine's doc comment for the public construction
// and stepping surface; see markovgraph's doc comment for the data
// model those operations walk.
package tgenmarkov
