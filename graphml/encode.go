package graphml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tgenmarkov/markovgraph"
)

const (
	keyNodeName = "v_name"
	keyNodeType = "v_type"
	keyEdgeType = "e_type"
	keyEdgeWeight = "e_weight"
	keyEdgeLogNormMu = "e_lognorm_mu"
	keyEdgeLogNormSigma = "e_lognorm_sigma"
	keyEdgeExpLambda = "e_exp_lambda"
)

// Encode renders g as a GraphML document to w. The node id used in the
// output is each Vertex's own id; no synthesized "id" data attribute is
// ever written, mirroring igraph_write_graph_graphml's own
// preprocessing step. A vertex or edge type is written from its RawKind
// text, or from Kind.String() when RawKind is empty (as it is for graphs
// built in memory rather than decoded).
func Encode(w io.Writer, g *markovgraph.Graph) error {
	doc := xmlDocument{
		Keys: []xmlKey{
			{ID: keyNodeName, For: "node", AttrName: "name", AttrType: "string"},
			{ID: keyNodeType, For: "node", AttrName: "type", AttrType: "string"},
			{ID: keyEdgeType, For: "edge", AttrName: "type", AttrType: "string"},
			{ID: keyEdgeWeight, For: "edge", AttrName: "weight", AttrType: "double"},
			{ID: keyEdgeLogNormMu, For: "edge", AttrName: "lognorm_mu", AttrType: "double"},
			{ID: keyEdgeLogNormSigma, For: "edge", AttrName: "lognorm_sigma", AttrType: "double"},
			{ID: keyEdgeExpLambda, For: "edge", AttrName: "exp_lambda", AttrType: "double"},
		},
	}

	for _, v := range g.Vertices() {
		node := xmlNode{ID: v.ID}
		if v.NameSet {
			node.Data = append(node.Data, xmlData{Key: keyNodeName, Value: v.Name})
		}
		if v.KindSet {
			kind := v.RawKind
			if kind == "" {
				kind = v.Kind.String()
			}
			node.Data = append(node.Data, xmlData{Key: keyNodeType, Value: kind})
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, node)
	}

	for _, e := range g.Edges() {
		edge := xmlEdge{Source: e.From, Target: e.To}
		if e.KindSet {
			kind := e.RawKind
			if kind == "" {
				kind = e.Kind.String()
			}
			edge.Data = append(edge.Data, xmlData{Key: keyEdgeType, Value: kind})
		}
		if e.Weight != nil {
			edge.Data = append(edge.Data, xmlData{Key: keyEdgeWeight, Value: formatDouble(*e.Weight)})
		}
		if e.LogNormMu != nil {
			edge.Data = append(edge.Data, xmlData{Key: keyEdgeLogNormMu, Value: formatDouble(*e.LogNormMu)})
		}
		if e.LogNormSigma != nil {
			edge.Data = append(edge.Data, xmlData{Key: keyEdgeLogNormSigma, Value: formatDouble(*e.LogNormSigma)})
		}
		if e.ExpLambda != nil {
			edge.Data = append(edge.Data, xmlData{Key: keyEdgeExpLambda, Value: formatDouble(*e.ExpLambda)})
		}
		doc.Graph.Edges = append(doc.Graph.Edges, edge)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("graphml: encode: %w", err)
	}

	return nil
}

func formatDouble(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
