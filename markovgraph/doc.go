// Package markovgraph defines the in-memory typed directed multigraph
// that backs a Markov emission model: Vertex, Edge, Graph, and the
// sentinel errors structural (non-semantic) mutation can raise.
//
// Graph is deliberately close in shape to github.com/katalvlaran/lvlath's
// core.Graph — a vertex map plus an adjacency structure (without
// core.Graph's mutex: Graph is not safe for concurrent mutation),
// sentinel errors for malformed input, functional-option-free because
// this graph has exactly one valid configuration (directed, multi-edge,
// loop-permitting) fixed by the domain rather than left to the caller.
// The numeric domain is generalized from core.Edge's integer Weight to
// the float64 weights and continuous distribution parameters
// (lognorm_mu, lognorm_sigma, exp_lambda) a Markov emission edge needs.
//
// Vertex identity is the GraphML node id (a loader-assigned, opaque
// string), not the "name" attribute: GraphML permits more than one node
// to carry the same name attribute (e.g. two nodes both named "start"),
// and rejecting that duplication is a semantic job for package
// validator, not a structural one for Graph. Graph itself only enforces
// that node ids are unique and that edges reference ids that exist.
//
// Graph performs no semantic validation of attribute legality (vertex
// kind consistency, required-attribute presence, non-negativity,
// NaN/Inf) — see package validator. It is read-only after construction,
// from the engine's perspective; the only mutation surface is the
// insertion-order AddVertex/AddEdge pair used while loading or building
// a graph.
package markovgraph
