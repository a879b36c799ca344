package markovbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tgenmarkov/engine"
	"github.com/katalvlaran/tgenmarkov/markovbuilder"
	"github.com/katalvlaran/tgenmarkov/markovgraph"
)

func TestChainProducesValidatableGraph(t *testing.T) {
	g, err := markovbuilder.BuildGraph(nil,
		markovbuilder.Chain(3, 1, []markovbuilder.EmissionSpec{
			{To: "$", Weight: 9, ExpLambda: 1},
			{To: "F", Weight: 1, ExpLambda: 1},
		}),
	)
	require.NoError(t, err)
	require.Equal(t, 6, g.VertexCount()) // start + s0,s1,s2 + $,F

	e, err := engine.NewFromGraph("chain-fixture", 7, g)
	require.NoError(t, err)
	require.NotNil(t, e)
}

func TestBranchingFanOutWeights(t *testing.T) {
	g, err := markovbuilder.BuildGraph(nil,
		markovbuilder.State("s0"),
		markovbuilder.Start("start", "s0", 1),
		markovbuilder.BranchingFanOut("s0", []markovbuilder.EmissionSpec{
			{To: "$", Weight: 1, ExpLambda: 1},
			{To: "+", Weight: 3, ExpLambda: 1},
			{To: "-", Weight: 6, ExpLambda: 1},
		}),
		markovbuilder.Transition("s0", "s0", 1),
	)
	require.NoError(t, err)

	e, err := engine.NewFromGraph("fanout-fixture", 1, g)
	require.NoError(t, err)
	require.NotNil(t, e)
}

func TestAbsorbingTerminatesEventually(t *testing.T) {
	g, err := markovbuilder.BuildGraph(nil,
		markovbuilder.State("s0"),
		markovbuilder.Start("start", "s0", 1),
		markovbuilder.Absorbing("s0", 1, 1),
		markovbuilder.Transition("s0", "s0", 1),
	)
	require.NoError(t, err)

	e, err := engine.NewFromGraph("absorbing-fixture", 42, g)
	require.NoError(t, err)

	obs, _, err := e.Next()
	require.NoError(t, err)
	require.Equal(t, engine.ObservationEnd, obs)
}

func TestChainRejectsZeroStates(t *testing.T) {
	_, err := markovbuilder.BuildGraph(nil,
		markovbuilder.Chain(0, 1, []markovbuilder.EmissionSpec{{To: "F", Weight: 1, ExpLambda: 1}}),
	)
	require.ErrorIs(t, err, markovbuilder.ErrTooFewStates)
}

func TestBranchingFanOutRejectsUnknownVertex(t *testing.T) {
	_, err := markovbuilder.BuildGraph(nil,
		markovbuilder.BranchingFanOut("nope", []markovbuilder.EmissionSpec{{To: "F", Weight: 1}}),
	)
	require.ErrorIs(t, err, markovbuilder.ErrUnknownVertex)
}

func transitionWeightTo(t *testing.T, g *markovgraph.Graph, from, to string) float64 {
	t.Helper()
	for _, e := range g.OutgoingEdges(from) {
		if e.Kind == markovgraph.EdgeKindTransition && e.To == to {
			require.NotNil(t, e.Weight)
			return *e.Weight
		}
	}
	t.Fatalf("no transition edge %s -> %s", from, to)
	return 0
}

func TestChainUsesWeightFnWhenTransitionWeightIsNonPositive(t *testing.T) {
	emissions := []markovbuilder.EmissionSpec{{To: "F", Weight: 1, ExpLambda: 1}}

	opts := []markovbuilder.BuilderOption{
		markovbuilder.WithSeed(99),
		markovbuilder.WithWeightFn(markovbuilder.UniformWeightFn(2, 5)),
	}

	g1, err := markovbuilder.BuildGraph(opts, markovbuilder.Chain(3, 0, emissions))
	require.NoError(t, err)
	g2, err := markovbuilder.BuildGraph(opts, markovbuilder.Chain(3, 0, emissions))
	require.NoError(t, err)

	w1 := transitionWeightTo(t, g1, "s0", "s1")
	require.GreaterOrEqual(t, w1, 2.0)
	require.Less(t, w1, 5.0)

	w2 := transitionWeightTo(t, g2, "s0", "s1")
	require.Equal(t, w1, w2)
}

func TestChainDefaultWeightFnYieldsOne(t *testing.T) {
	emissions := []markovbuilder.EmissionSpec{{To: "F", Weight: 1, ExpLambda: 1}}

	g, err := markovbuilder.BuildGraph(nil, markovbuilder.Chain(2, 0, emissions))
	require.NoError(t, err)

	require.Equal(t, markovbuilder.DefaultEdgeWeight, transitionWeightTo(t, g, "s0", "s1"))
}
