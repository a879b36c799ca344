package validator

import (
	"math"

	"github.com/katalvlaran/tgenmarkov/markovgraph"
)

// isReservedObservationName reports whether name is one of the four
// vertex names an observation vertex may carry, per the specification's
// glossary: packet-to-server, packet-to-origin, stream, and
// end-of-session.
func isReservedObservationName(name string) bool {
	switch name {
	case "+", "-", "$", "F":
		return true
	default:
		return false
	}
}

func finiteNonNegative(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}

// Validate runs the full two-pass validation of g and returns the id of
// g's unique start vertex on success. On failure it returns a non-nil
// *Errors aggregating every rule violation found; no partial result is
// produced, and the caller must not proceed to build an engine from g.
func Validate(g *markovgraph.Graph) (string, *Errors) {
	errs := &Errors{}

	startID := validateVertices(g, errs)
	validateEdges(g, errs)

	if errs.Len() > 0 {
		return "", errs
	}

	return startID, nil
}

func validateVertices(g *markovgraph.Graph, errs *Errors) string {
	startIDs := make([]string, 0, 1)

	for _, v := range g.Vertices() {
		isStart := v.NameSet && v.Name == "start"
		if isStart {
			startIDs = append(startIDs, v.ID)
		}

		if !v.NameSet || v.Name == "" {
			errs.add(ErrMissingVertexName, "vertex %q has no name", v.ID)
			continue
		}

		if !isStart {
			if !v.KindSet {
				errs.add(ErrMissingVertexType, "vertex %q (name %q) has no type", v.ID, v.Name)
				continue
			}
			if v.Kind == markovgraph.VertexKindInvalid {
				errs.add(ErrInvalidVertexType, "vertex %q (name %q) has type %q", v.ID, v.Name, v.RawKind)
				continue
			}
		}

		if v.KindSet && v.Kind == markovgraph.VertexKindObservation && !isReservedObservationName(v.Name) {
			errs.add(ErrObservationNameInvalid, "vertex %q has observation type but name %q", v.ID, v.Name)
		}

		if isReservedObservationName(v.Name) && v.KindSet && v.Kind != markovgraph.VertexKindObservation {
			errs.add(ErrReservedNameWrongType, "vertex %q named %q has type %q, want observation", v.ID, v.Name, v.RawKind)
		}
	}

	switch len(startIDs) {
	case 0:
		errs.add(ErrNoStartVertex, "graph has no vertex named \"start\"")
		return ""
	case 1:
		return startIDs[0]
	default:
		errs.add(ErrDuplicateStartVertex, "graph has %d vertices named \"start\"", len(startIDs))
		return ""
	}
}

func validateEdges(g *markovgraph.Graph, errs *Errors) {
	vertexName := func(id string) string {
		if v, ok := g.Vertex(id); ok {
			return v.Name
		}
		return ""
	}

	for _, e := range g.Edges() {
		if !e.KindSet {
			errs.add(ErrMissingEdgeType, "edge #%d (%s -> %s) has no type", e.Index, e.From, e.To)
			continue
		}
		if e.Kind != markovgraph.EdgeKindTransition && e.Kind != markovgraph.EdgeKindEmission {
			errs.add(ErrInvalidEdgeType, "edge #%d (%s -> %s) has type %q", e.Index, e.From, e.To, e.RawKind)
			continue
		}

		if e.Weight == nil {
			errs.add(ErrMissingWeight, "edge #%d (%s -> %s) has no weight", e.Index, e.From, e.To)
		} else if !finiteNonNegative(*e.Weight) {
			errs.add(ErrInvalidWeight, "edge #%d (%s -> %s) has weight %v", e.Index, e.From, e.To, *e.Weight)
		}

		fromIsObservation := isReservedObservationName(vertexName(e.From))
		toIsObservation := isReservedObservationName(vertexName(e.To))

		switch e.Kind {
		case markovgraph.EdgeKindTransition:
			if fromIsObservation || toIsObservation {
				errs.add(ErrTransitionTouchesObservation, "edge #%d (%s -> %s) is a transition touching an observation vertex", e.Index, e.From, e.To)
			}
		case markovgraph.EdgeKindEmission:
			if fromIsObservation {
				errs.add(ErrEmissionFromObservation, "edge #%d (%s -> %s) emits from an observation vertex", e.Index, e.From, e.To)
			}
			if !toIsObservation {
				errs.add(ErrEmissionNotToObservation, "edge #%d (%s -> %s) does not terminate on an observation vertex", e.Index, e.From, e.To)
			}

			validateEmissionParam(errs, e, "lognorm_mu", e.LogNormMu)
			validateEmissionParam(errs, e, "lognorm_sigma", e.LogNormSigma)
			validateEmissionParam(errs, e, "exp_lambda", e.ExpLambda)
		}
	}
}

func validateEmissionParam(errs *Errors, e *markovgraph.Edge, attr string, val *float64) {
	if val == nil {
		errs.add(ErrMissingEmissionParam, "edge #%d (%s -> %s) is missing %s", e.Index, e.From, e.To, attr)
		return
	}
	if !finiteNonNegative(*val) {
		errs.add(ErrInvalidEmissionParam, "edge #%d (%s -> %s) has %s = %v", e.Index, e.From, e.To, attr, *val)
	}
}
