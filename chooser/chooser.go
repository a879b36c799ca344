package chooser

import (
	"errors"

	"github.com/katalvlaran/tgenmarkov/markovgraph"
	"github.com/katalvlaran/tgenmarkov/rng"
)

// ErrNoEligibleEdge indicates a vertex has no outgoing edge of the
// requested kind, or the eligible edges sum to zero weight. This is a
// Runtime-class failure (per the specification's error taxonomy): it
// is never returned to a host caller, only handled internally by the
// engine, which folds it into termination.
var ErrNoEligibleEdge = errors.New("chooser: no eligible outgoing edge")

// Chooser performs weighted edge selection over a fixed, already
// validated Graph. It precomputes, once, the total outgoing weight per
// (vertex id, edge kind) pair.
type Chooser struct {
	graph  *markovgraph.Graph
	totals map[string][4]float64 // indexed by EdgeKind
}

// New precomputes weight totals for every vertex in g and returns a
// ready-to-use Chooser. g is assumed to have already passed validation:
// every edge's Weight is non-nil and non-negative.
//
// Complexity: O(V + E).
func New(g *markovgraph.Graph) *Chooser {
	c := &Chooser{
		graph:  g,
		totals: make(map[string][4]float64, g.VertexCount()),
	}

	for _, v := range g.Vertices() {
		var totals [4]float64
		for _, e := range g.OutgoingEdges(v.ID) {
			if e.Kind != markovgraph.EdgeKindTransition && e.Kind != markovgraph.EdgeKindEmission {
				continue
			}
			w := 0.0
			if e.Weight != nil {
				w = *e.Weight
			}
			totals[e.Kind] += w
		}
		c.totals[v.ID] = totals
	}

	return c
}

// Choose selects one outgoing edge of kind from vertex from, drawing
// exactly one uniform from src. Returns ErrNoEligibleEdge if no edge of
// that kind leaves from, or their weights sum to zero.
//
// Complexity: O(d) where d is the out-degree of from.
func (c *Chooser) Choose(src *rng.Source, from string, kind markovgraph.EdgeKind) (*markovgraph.Edge, error) {
	total := c.totals[from][kind]
	if total <= 0 {
		return nil, ErrNoEligibleEdge
	}

	r := src.Draw(0, total)

	cumulative := 0.0
	for _, e := range c.graph.OutgoingEdges(from) {
		if e.Kind != kind {
			continue
		}
		w := 0.0
		if e.Weight != nil {
			w = *e.Weight
		}
		cumulative += w
		if cumulative >= r {
			return e, nil
		}
	}

	// Floating-point rounding could in principle leave the running
	// total a hair under r on the last eligible edge; fall back to it
	// rather than report ErrNoEligibleEdge when we know total > 0.
	edges := c.graph.OutgoingEdges(from)
	for i := len(edges) - 1; i >= 0; i-- {
		if edges[i].Kind == kind {
			return edges[i], nil
		}
	}

	return nil, ErrNoEligibleEdge
}
