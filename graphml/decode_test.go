package graphml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tgenmarkov/graphml"
	"github.com/katalvlaran/tgenmarkov/markovgraph"
	"github.com/katalvlaran/tgenmarkov/validator"
)

func TestDecodeFile_Minimal(t *testing.T) {
	g, err := graphml.DecodeFile("testdata/minimal.graphml")
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())

	start, ok := g.Vertex("n0")
	require.True(t, ok)
	assert.Equal(t, "start", start.Name)
	assert.False(t, start.KindSet)

	s1, ok := g.Vertex("n1")
	require.True(t, ok)
	assert.Equal(t, markovgraph.VertexKindState, s1.Kind)

	obs, ok := g.Vertex("n2")
	require.True(t, ok)
	assert.Equal(t, markovgraph.VertexKindObservation, obs.Kind)

	edges := g.OutgoingEdges("n1")
	require.Len(t, edges, 2)
}

// TestDecodeFile_MinimalValidates covers an S2-shaped graph (a
// self-looping state emitting "$"): a well-formed graph loads and passes
// validation with its start vertex identified.
func TestDecodeFile_MinimalValidates(t *testing.T) {
	g, err := graphml.DecodeFile("testdata/minimal.graphml")
	require.NoError(t, err)

	startID, errs := validator.Validate(g)
	require.Nil(t, errs)
	assert.Equal(t, "n0", startID)
}

// TestDecodeFile_NoStartFailsValidation covers the "exactly one start
// vertex" invariant: a graph with no start vertex fails validation.
func TestDecodeFile_NoStartFailsValidation(t *testing.T) {
	g, err := graphml.DecodeFile("testdata/no_start.graphml")
	require.NoError(t, err)

	_, errs := validator.Validate(g)
	require.NotNil(t, errs)
	assert.ErrorIs(t, errs, validator.ErrNoStartVertex)
}

// TestDecodeFile_DuplicateStartFailsValidation covers S4.
func TestDecodeFile_DuplicateStartFailsValidation(t *testing.T) {
	g, err := graphml.DecodeFile("testdata/duplicate_start.graphml")
	require.NoError(t, err)

	_, errs := validator.Validate(g)
	require.NotNil(t, errs)
	assert.ErrorIs(t, errs, validator.ErrDuplicateStartVertex)
}

func TestDecodeFile_MissingFile(t *testing.T) {
	_, err := graphml.DecodeFile("testdata/does_not_exist.graphml")
	assert.ErrorIs(t, err, graphml.ErrNotExist)
}

func TestDecodeFile_NotRegular(t *testing.T) {
	_, err := graphml.DecodeFile("testdata")
	assert.ErrorIs(t, err, graphml.ErrNotRegular)
}

func TestDecode_MalformedXML(t *testing.T) {
	r := strings.NewReader("<graphml><graph><node id=\"n0\"></graphml>")
	_, err := graphml.Decode(r)
	assert.ErrorIs(t, err, graphml.ErrParse)
}
