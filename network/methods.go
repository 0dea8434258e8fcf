// File: methods.go
// Role: vertex and edge lifecycle plus read-only queries on Graph.
// Determinism:
//   - Vertices(), NeighborIDs() and Edges() return sorted results.
// Concurrency:
//   - Mutators take mu.Lock; queries take mu.RLock.

package network

import "sort"

// AddVertex inserts a vertex with the given ID and Label == ID.
// Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given ID.
func (g *Graph) Vertex(id string) (Vertex, error) {
	if id == "" {
		return Vertex{}, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// RemoveVertex deletes the vertex and every edge incident to it.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for nbr := range g.adjacency[id] {
		delete(g.adjacency[nbr], id)
		g.edgeCount--
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// AddEdge connects from and to in both directions, creating missing vertices.
// Adding an existing edge is a no-op; from == to returns ErrLoopNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(from)
	g.ensureVertex(to)
	if _, ok := g.adjacency[from][to]; ok {
		return nil
	}
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the undirected edge between from and to.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adjacency[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[from], to)
	delete(g.adjacency[to], from)
	g.edgeCount--

	return nil
}

// HasEdge reports whether from and to are compatible. Symmetric.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// NeighborIDs returns the partners of id, sorted lexicographically.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of partners of id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adjacency[id]), nil
}

// Vertices returns all vertex IDs sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedIDs()
}

// Labels returns the display label of every vertex, keyed by vertex ID.
// Complexity: O(V).
func (g *Graph) Labels() map[string]string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[string]string, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v.Label
	}

	return out
}

// Edges returns every undirected edge once, with From < To, sorted by
// (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|, each undirected edge counted once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// IsClique reports whether every pair of members is connected.
// Unknown members make the answer false; the empty set and singletons of
// known vertices are cliques.
// Complexity: O(k²).
func (g *Graph) IsClique(members []string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for i, u := range members {
		if _, ok := g.vertices[u]; !ok {
			return false
		}
		for _, v := range members[i+1:] {
			if _, ok := g.adjacency[u][v]; !ok {
				return false
			}
		}
	}

	return true
}

// Clone returns a deep copy of vertices and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.induced(nil)
}

// InducedSubgraph returns a new Graph with only the vertices in keep and
// the edges between them. The receiver is not mutated.
// Complexity: O(V + E).
func (g *Graph) InducedSubgraph(keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.induced(keep)
}

// induced copies the graph restricted to keep (nil keeps everything).
// Must be called under at least a read lock.
func (g *Graph) induced(keep map[string]bool) *Graph {
	out := NewGraph()
	for id, v := range g.vertices {
		if keep != nil && !keep[id] {
			continue
		}
		cp := *v
		out.vertices[id] = &cp
		out.adjacency[id] = make(map[string]struct{})
	}
	for u, nbrs := range g.adjacency {
		if _, ok := out.vertices[u]; !ok {
			continue
		}
		for v := range nbrs {
			if _, ok := out.vertices[v]; !ok {
				continue
			}
			out.adjacency[u][v] = struct{}{}
			if u < v {
				out.edgeCount++
			}
		}
	}

	return out
}

// ensureVertex creates id with a plain label if missing. Write lock required.
func (g *Graph) ensureVertex(id string) *Vertex {
	v, ok := g.vertices[id]
	if !ok {
		v = &Vertex{ID: id, Label: id}
		g.vertices[id] = v
		g.adjacency[id] = make(map[string]struct{})
	}

	return v
}

// sortedIDs returns vertex IDs in lexicographic order. Read lock required.
func (g *Graph) sortedIDs() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
