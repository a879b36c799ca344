// Package chooser implements weighted random selection of an outgoing
// edge of a given kind from a vertex: component F of the engine.
//
// Algorithm (two-pass weighted walk, per the specification this
// package implements):
//  1. Compute W = sum of weight(e) over the vertex's outgoing edges of
//     the requested kind.
//  2. Draw r = rng.Source.Draw(0, W).
//  3. Walk the outgoing edges in insertion (storage) order, accumulating
//     weight; return the first edge whose running total is >= r.
//
// Step 1 is precomputed once per (vertex, kind) at Chooser construction
// time rather than on every Choose call — a correct, faster equivalent
// explicitly sanctioned by the specification's design notes, since the
// underlying graph is immutable for the lifetime of a Chooser. Because
// Draw excludes its right endpoint, the last eligible edge is always
// reachable; a vertex with zero eligible edges, or eligible edges
// totalling zero weight, causes Choose to fail rather than panic or
// silently pick an edge.
package chooser
