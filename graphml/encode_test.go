package graphml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tgenmarkov/graphml"
)

func TestEncode_OmitsSynthesizedIDAttribute(t *testing.T) {
	g, err := graphml.DecodeFile("testdata/minimal.graphml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphml.Encode(&buf, g))

	assert.NotContains(t, buf.String(), `attr.name="id"`)
	assert.Contains(t, buf.String(), `attr.name="name"`)
}

func TestEncode_ProducesParseableDocument(t *testing.T) {
	g, err := graphml.DecodeFile("testdata/minimal.graphml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphml.Encode(&buf, g))

	g2, err := graphml.Decode(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), g2.VertexCount())
	assert.Equal(t, g.EdgeCount(), g2.EdgeCount())
}
