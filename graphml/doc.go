// Package graphml decodes and encodes the GraphML subset produced and
// consumed by igraph's graphml reader/writer: component D of the
// engine.
//
// A document declares a set of typed attribute keys, scoped to nodes or
// edges, then a single graph of nodes and edges carrying <data>
// children keyed by those declarations. This package recognizes the
// seven attributes the format actually uses:
//
//	node: name (string), type (string)
//	edge: type (string), weight (double),
//	      lognorm_mu (double), lognorm_sigma (double), exp_lambda (double)
//
// A GraphML node's structural id (its XML "id" attribute) is the
// vertex identity used throughout this module; the "name" data
// attribute is a separate, independently-validated field that may
// legitimately repeat across distinct node ids. Decode performs no
// semantic validation — parsing failures here are strictly Parse- or
// Unsupported-class (malformed XML, an attribute of the wrong
// attr.type); checks like "exactly one vertex named start" or "weight
// is non-negative" belong to the validator package, run after Decode
// succeeds.
//
// Encode renders a Graph back to this same subset, for engine.Serialize
// and for the round-trip each loaded graph must survive. Per
// igraph_write_graph_graphml's own preprocessing step (it strips any
// synthesized "id" attribute before writing), Encode never emits a
// "id" data key — a node's GraphML id carries that information
// structurally.
package graphml
