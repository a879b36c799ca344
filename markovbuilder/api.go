package markovbuilder

import (
	"fmt"

	"github.com/katalvlaran/tgenmarkov/markovgraph"
)

// Constructor applies one deterministic mutation to a markovgraph.Graph
// under a resolved builderConfig. Constructors must validate their own
// parameters and never panic at runtime (only option constructors
// panic, and only on caller-supplied nonsense at setup time).
type Constructor func(g *markovgraph.Graph, cfg *builderConfig) error

// EmissionSpec describes one emission edge's destination and
// distribution parameters, the shape Chain and BranchingFanOut use to
// attach observation edges to a state.
type EmissionSpec struct {
	// To is the observation vertex name: "+", "-", "$", or "F".
	To string
	// Weight is this edge's selection weight among sibling emissions.
	Weight float64
	// LogNormMu, LogNormSigma, ExpLambda are the edge's distribution
	// parameters (see distributions.LogNormal / distributions.Exponential).
	LogNormMu, LogNormSigma, ExpLambda float64
}

// BuildGraph creates a new markovgraph.Graph, resolves cfg from opts,
// and applies every constructor in order. The first constructor error
// is wrapped with "markovbuilder: BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted, matching
// lvlath/builder.BuildGraph's fail-fast policy.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*markovgraph.Graph, error) {
	g := markovgraph.New()
	cfg := newBuilderConfig(opts...)

	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("markovbuilder: BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := c(g, cfg); err != nil {
			return nil, fmt.Errorf("markovbuilder: BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Start adds the unique "start" vertex with the given id and a single
// transition edge of weight w to firstState. It is normally the first
// constructor passed to BuildGraph.
func Start(id, firstState string, w float64) Constructor {
	return func(g *markovgraph.Graph, cfg *builderConfig) error {
		sv, err := g.AddVertex(id)
		if err != nil {
			return fmt.Errorf("Start: %w", err)
		}
		sv.Name, sv.NameSet = "start", true

		if _, ok := g.Vertex(firstState); !ok {
			return fmt.Errorf("Start: %w: %s", ErrUnknownVertex, firstState)
		}

		e, err := g.AddEdge(id, firstState)
		if err != nil {
			return fmt.Errorf("Start: %w", err)
		}
		weight := w
		e.Kind, e.KindSet, e.RawKind = markovgraph.EdgeKindTransition, true, "transition"
		e.Weight = &weight

		return nil
	}
}

// State adds a single hidden-state vertex named name (its id and its
// name are the same string; callers needing distinct id/name should
// call markovgraph.Graph.AddVertex directly).
func State(name string) Constructor {
	return func(g *markovgraph.Graph, cfg *builderConfig) error {
		v, err := g.AddVertex(name)
		if err != nil {
			return fmt.Errorf("State: %w", err)
		}
		v.Name, v.NameSet = name, true
		v.Kind, v.KindSet, v.RawKind = markovgraph.VertexKindState, true, "state"

		return nil
	}
}

// Transition adds a transition edge from -> to with weight w. Both
// vertices must already have been added by an earlier constructor.
func Transition(from, to string, w float64) Constructor {
	return func(g *markovgraph.Graph, cfg *builderConfig) error {
		e, err := g.AddEdge(from, to)
		if err != nil {
			return fmt.Errorf("Transition: %w", err)
		}
		weight := w
		e.Kind, e.KindSet, e.RawKind = markovgraph.EdgeKindTransition, true, "transition"
		e.Weight = &weight

		return nil
	}
}

// Emission adds an emission edge from a state vertex to the
// observation vertex named spec.To (creating that observation vertex
// on first use), carrying spec's weight and distribution parameters.
func Emission(from string, spec EmissionSpec) Constructor {
	return func(g *markovgraph.Graph, cfg *builderConfig) error {
		if _, ok := g.Vertex(spec.To); !ok {
			ov, err := g.AddVertex(spec.To)
			if err != nil {
				return fmt.Errorf("Emission: %w", err)
			}
			ov.Name, ov.NameSet = spec.To, true
			ov.Kind, ov.KindSet, ov.RawKind = markovgraph.VertexKindObservation, true, "observation"
		}

		e, err := g.AddEdge(from, spec.To)
		if err != nil {
			return fmt.Errorf("Emission: %w", err)
		}
		w, mu, sigma, lambda := spec.Weight, spec.LogNormMu, spec.LogNormSigma, spec.ExpLambda
		e.Kind, e.KindSet, e.RawKind = markovgraph.EdgeKindEmission, true, "emission"
		e.Weight = &w
		e.LogNormMu = &mu
		e.LogNormSigma = &sigma
		e.ExpLambda = &lambda

		return nil
	}
}

// Chain builds a linear hidden-state walk "start" -> s0 -> s1 -> ... ->
// s(n-1), each s(i) -> s(i+1) transition carrying weight
// transitionWeight, with every state also carrying one emission edge
// from emissions (spec i%len(emissions) for state i). The "start" -> s0
// transition has weight 1 and is added only when no vertex with id
// "start" exists yet. n must be >= 1.
//
// If transitionWeight <= 0, each transition's weight is instead drawn
// from cfg.weightFn (DefaultWeightFn unless overridden by
// WithWeightFn), fed cfg.rng (nil unless WithSeed was given) — the
// same indirection lvlath/builder.WeightFn uses to let a topology
// factory accept either a fixed weight or a caller-supplied generator.
//
// Complexity: O(n + len(emissions)).
func Chain(n int, transitionWeight float64, emissions []EmissionSpec) Constructor {
	return func(g *markovgraph.Graph, cfg *builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Chain: %w", ErrTooFewStates)
		}
		if len(emissions) == 0 {
			return fmt.Errorf("Chain: %w", ErrNoEmissionSpecs)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := State(ids[i])(g, cfg); err != nil {
				return err
			}
		}

		if _, ok := g.Vertex("start"); !ok {
			if err := Start("start", ids[0], 1)(g, cfg); err != nil {
				return err
			}
		}

		for i, id := range ids {
			if i < n-1 {
				w := transitionWeight
				if w <= 0 {
					w = cfg.weightFn(cfg.rng)
				}
				if err := Transition(id, ids[i+1], w)(g, cfg); err != nil {
					return err
				}
			}
			if err := Emission(id, emissions[i%len(emissions)])(g, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// BranchingFanOut attaches every spec in emissions as a separate
// emission edge leaving the existing state vertex named from, letting
// a single state choose among several observations with independent
// weights and distribution parameters.
func BranchingFanOut(from string, emissions []EmissionSpec) Constructor {
	return func(g *markovgraph.Graph, cfg *builderConfig) error {
		if len(emissions) == 0 {
			return fmt.Errorf("BranchingFanOut: %w", ErrNoEmissionSpecs)
		}
		if _, ok := g.Vertex(from); !ok {
			return fmt.Errorf("BranchingFanOut: %w: %s", ErrUnknownVertex, from)
		}

		for _, spec := range emissions {
			if err := Emission(from, spec)(g, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Absorbing adds an emission edge of weight w from the state vertex
// named from to the terminal observation "F", using an exponential
// delay with rate lambda (lognorm_mu and lognorm_sigma are 0). With
// lambda == 0 all three parameters are zero and the engine resolves the
// draw to a zero delay without calling distributions.Exponential; a
// negative lambda is rejected by package validator.
func Absorbing(from string, w, lambda float64) Constructor {
	return Emission(from, EmissionSpec{To: "F", Weight: w, ExpLambda: lambda})
}
