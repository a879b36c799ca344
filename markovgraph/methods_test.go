package markovgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tgenmarkov/markovgraph"
)

func TestAddVertex_RejectsEmptyAndDuplicateIDs(t *testing.T) {
	g := markovgraph.New()

	_, err := g.AddVertex("")
	assert.ErrorIs(t, err, markovgraph.ErrEmptyID)

	_, err = g.AddVertex("a")
	require.NoError(t, err)

	_, err = g.AddVertex("a")
	assert.ErrorIs(t, err, markovgraph.ErrDuplicateID)
}

func TestAddEdge_RequiresExistingEndpoints(t *testing.T) {
	g := markovgraph.New()
	_, err := g.AddVertex("a")
	require.NoError(t, err)

	_, err = g.AddEdge("a", "b")
	assert.ErrorIs(t, err, markovgraph.ErrVertexNotFound)

	_, err = g.AddEdge("b", "a")
	assert.ErrorIs(t, err, markovgraph.ErrVertexNotFound)
}

func TestGraph_PreservesInsertionOrder(t *testing.T) {
	g := markovgraph.New()
	for _, id := range []string{"x", "y", "z"} {
		_, err := g.AddVertex(id)
		require.NoError(t, err)
	}
	var ids []string
	for _, v := range g.Vertices() {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"x", "y", "z"}, ids)

	for _, pair := range [][2]string{{"x", "y"}, {"x", "z"}, {"x", "y"}} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	require.Len(t, g.OutgoingEdges("x"), 3)
	assert.Equal(t, "y", g.OutgoingEdges("x")[0].To)
	assert.Equal(t, "z", g.OutgoingEdges("x")[1].To)
	assert.Equal(t, "y", g.OutgoingEdges("x")[2].To)
	// multigraph: two parallel x->y edges keep distinct identity via Index.
	assert.NotEqual(t, g.OutgoingEdges("x")[0].Index, g.OutgoingEdges("x")[2].Index)
}

func TestGraph_VertexAndCounts(t *testing.T) {
	g := markovgraph.New()
	_, err := g.AddVertex("a")
	require.NoError(t, err)
	_, err = g.AddVertex("b")
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b")
	require.NoError(t, err)

	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 1, g.EdgeCount())

	v, ok := g.Vertex("a")
	require.True(t, ok)
	assert.Equal(t, "a", v.ID)

	_, ok = g.Vertex("missing")
	assert.False(t, ok)

	assert.Nil(t, g.OutgoingEdges("missing"))
}

func TestVertexKind_String(t *testing.T) {
	assert.Equal(t, "state", markovgraph.VertexKindState.String())
	assert.Equal(t, "observation", markovgraph.VertexKindObservation.String())
	assert.Equal(t, "", markovgraph.VertexKindUnset.String())
	assert.Equal(t, "invalid", markovgraph.VertexKindInvalid.String())
}

func TestEdgeKind_String(t *testing.T) {
	assert.Equal(t, "transition", markovgraph.EdgeKindTransition.String())
	assert.Equal(t, "emission", markovgraph.EdgeKindEmission.String())
	assert.Equal(t, "", markovgraph.EdgeKindUnset.String())
	assert.Equal(t, "invalid", markovgraph.EdgeKindInvalid.String())
}
