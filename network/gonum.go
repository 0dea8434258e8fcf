package network

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Bridge is a gonum view of a Graph together with the name↔ID index
// needed to translate gonum results back to party names.
type Bridge struct {
	// Graph is a snapshot; later changes to the source Graph are not reflected.
	Graph *simple.UndirectedGraph

	ids   map[string]int64
	names []string
}

// Undirected returns a gonum snapshot of g. Node IDs are the positions of
// the vertices in sorted order, so the mapping is stable for equal graphs.
// Complexity: O(V log V + E).
func (g *Graph) Undirected() *Bridge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := g.sortedIDs()
	b := &Bridge{
		Graph: simple.NewUndirectedGraph(),
		ids:   make(map[string]int64, len(names)),
		names: names,
	}
	for i, name := range names {
		b.ids[name] = int64(i)
		b.Graph.AddNode(simple.Node(i))
	}
	for _, u := range names {
		for v := range g.adjacency[u] {
			if u < v {
				b.Graph.SetEdge(b.Graph.NewEdge(simple.Node(b.ids[u]), simple.Node(b.ids[v])))
			}
		}
	}

	return b
}

// ID returns the gonum node ID of a party.
func (b *Bridge) ID(name string) (int64, bool) {
	id, ok := b.ids[name]
	return id, ok
}

// Name returns the party name of a gonum node ID, or "" if out of range.
func (b *Bridge) Name(id int64) string {
	if id < 0 || id >= int64(len(b.names)) {
		return ""
	}
	return b.names[id]
}

// Names translates gonum nodes to party names, sorted lexicographically.
func (b *Bridge) Names(nodes []graph.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, b.Name(n.ID()))
	}
	sort.Strings(out)
	return out
}

// Len returns the number of nodes in the snapshot.
func (b *Bridge) Len() int { return len(b.names) }
