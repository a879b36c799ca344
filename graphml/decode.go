package graphml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/tgenmarkov/markovgraph"
)

type xmlDocument struct {
	XMLName xml.Name  `xml:"graphml"`
	Keys    []xmlKey  `xml:"key"`
	Graph   xmlGraph  `xml:"graph"`
}

type xmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type xmlGraph struct {
	Nodes []xmlNode `xml:"node"`
	Edges []xmlEdge `xml:"edge"`
}

type xmlNode struct {
	ID   string    `xml:"id,attr"`
	Data []xmlData `xml:"data"`
}

type xmlEdge struct {
	Source string    `xml:"source,attr"`
	Target string    `xml:"target,attr"`
	Data   []xmlData `xml:"data"`
}

type xmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// keySet maps a key id to the attribute it carries, for one scope
// (node or edge).
type keySet map[string]xmlKey

// DecodeFile opens path and decodes it as a GraphML document. It
// returns ErrNotExist or ErrNotRegular before ever touching file
// contents, matching the construction-time checks the specification
// requires of a path-based load.
func DecodeFile(path string) (*markovgraph.Graph, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFailed, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFailed, path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a GraphML document from r and builds a markovgraph.Graph
// from its nodes and edges. It performs no semantic validation beyond
// what is needed to build a structurally sound Graph.
func Decode(r io.Reader) (*markovgraph.Graph, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	nodeKeys, edgeKeys, err := splitKeys(doc.Keys)
	if err != nil {
		return nil, err
	}

	g := markovgraph.New()

	for _, n := range doc.Graph.Nodes {
		v, err := g.AddVertex(n.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", ErrParse, n.ID, err)
		}
		if err := applyNodeData(v, n.Data, nodeKeys); err != nil {
			return nil, err
		}
	}

	for i, e := range doc.Graph.Edges {
		edge, err := g.AddEdge(e.Source, e.Target)
		if err != nil {
			return nil, fmt.Errorf("%w: edge #%d (%s -> %s): %v", ErrParse, i, e.Source, e.Target, err)
		}
		if err := applyEdgeData(edge, e.Data, edgeKeys); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func splitKeys(keys []xmlKey) (nodeKeys, edgeKeys keySet, err error) {
	nodeKeys = make(keySet, len(keys))
	edgeKeys = make(keySet, len(keys))

	for _, k := range keys {
		switch k.For {
		case "node":
			nodeKeys[k.ID] = k
		case "edge":
			edgeKeys[k.ID] = k
		default:
			// keys scoped to something other than node/edge (e.g. "all" or
			// "graph") are outside the subset this package recognizes and
			// are simply never looked up.
		}
	}

	return nodeKeys, edgeKeys, nil
}

func applyNodeData(v *markovgraph.Vertex, data []xmlData, keys keySet) error {
	for _, d := range data {
		k, ok := keys[d.Key]
		if !ok {
			continue
		}
		switch k.AttrName {
		case "name":
			if k.AttrType != "string" {
				return fmt.Errorf("%w: node key %q declares attr.name=name with attr.type=%q, want string", ErrUnsupported, k.ID, k.AttrType)
			}
			v.Name = d.Value
			v.NameSet = true
		case "type":
			if k.AttrType != "string" {
				return fmt.Errorf("%w: node key %q declares attr.name=type with attr.type=%q, want string", ErrUnsupported, k.ID, k.AttrType)
			}
			v.RawKind = d.Value
			v.Kind = parseVertexKind(d.Value)
			v.KindSet = true
		}
	}

	return nil
}

func applyEdgeData(e *markovgraph.Edge, data []xmlData, keys keySet) error {
	for _, d := range data {
		k, ok := keys[d.Key]
		if !ok {
			continue
		}
		switch k.AttrName {
		case "type":
			if k.AttrType != "string" {
				return fmt.Errorf("%w: edge key %q declares attr.name=type with attr.type=%q, want string", ErrUnsupported, k.ID, k.AttrType)
			}
			e.RawKind = d.Value
			e.Kind = parseEdgeKind(d.Value)
			e.KindSet = true
		case "weight":
			f, err := parseEdgeDouble(k, d)
			if err != nil {
				return err
			}
			e.Weight = f
		case "lognorm_mu":
			f, err := parseEdgeDouble(k, d)
			if err != nil {
				return err
			}
			e.LogNormMu = f
		case "lognorm_sigma":
			f, err := parseEdgeDouble(k, d)
			if err != nil {
				return err
			}
			e.LogNormSigma = f
		case "exp_lambda":
			f, err := parseEdgeDouble(k, d)
			if err != nil {
				return err
			}
			e.ExpLambda = f
		}
	}

	return nil
}

func parseEdgeDouble(k xmlKey, d xmlData) (*float64, error) {
	if k.AttrType != "double" {
		return nil, fmt.Errorf("%w: edge key %q declares attr.name=%s with attr.type=%q, want double", ErrUnsupported, k.ID, k.AttrName, k.AttrType)
	}
	v, err := strconv.ParseFloat(d.Value, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: edge key %q value %q: %v", ErrParse, k.ID, d.Value, err)
	}
	return &v, nil
}

func parseVertexKind(raw string) markovgraph.VertexKind {
	switch raw {
	case "state":
		return markovgraph.VertexKindState
	case "observation":
		return markovgraph.VertexKindObservation
	default:
		return markovgraph.VertexKindInvalid
	}
}

func parseEdgeKind(raw string) markovgraph.EdgeKind {
	switch raw {
	case "transition":
		return markovgraph.EdgeKindTransition
	case "emission":
		return markovgraph.EdgeKindEmission
	default:
		return markovgraph.EdgeKindInvalid
	}
}
