package markovgraph

// AddVertex inserts a new vertex with the given structural id.
// Returns ErrEmptyID if id is empty, ErrDuplicateID if id was already
// used. The returned *Vertex is owned by the graph; callers may set its
// remaining fields (Name, Kind, ...) before the graph is handed to a
// validator, but must not mutate it afterward.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if _, exists := g.vertices[id]; exists {
		return nil, ErrDuplicateID
	}

	v := &Vertex{ID: id}
	g.vertices[id] = v
	g.vertexByIx = append(g.vertexByIx, v)

	return v, nil
}

// AddEdge appends a new directed edge from -> to. Both endpoints must
// already exist (ErrVertexNotFound otherwise). Parallel edges between
// the same endpoints are always permitted (this is a multigraph); the
// returned Edge's Index records its position in insertion order, which
// is also the chooser's walk order.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (*Edge, error) {
	if _, ok := g.vertices[from]; !ok {
		return nil, ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return nil, ErrVertexNotFound
	}

	e := &Edge{Index: len(g.edges), From: from, To: to}
	g.edges = append(g.edges, e)
	g.out[from] = append(g.out[from], e)

	return e, nil
}

// Vertex returns the vertex with the given id, or nil and false if none
// exists.
//
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	v, ok := g.vertices[id]

	return v, ok
}

// Vertices returns all vertices in insertion (storage) order. The
// returned slice is owned by the graph and must not be mutated.
//
// Complexity: O(1).
func (g *Graph) Vertices() []*Vertex {
	return g.vertexByIx
}

// Edges returns all edges in insertion (storage) order. The returned
// slice is owned by the graph and must not be mutated.
//
// Complexity: O(1).
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// OutgoingEdges returns the edges leaving vertex id, in insertion
// order. Returns nil for a vertex with no outgoing edges (including an
// id that does not exist).
//
// Complexity: O(1).
func (g *Graph) OutgoingEdges(id string) []*Edge {
	return g.out[id]
}

// VertexCount returns the number of vertices in the graph.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertexByIx)
}

// EdgeCount returns the number of edges in the graph.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
