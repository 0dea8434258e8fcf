// Package network builds the party compatibility graph: an undirected,
// unweighted, loop-free graph whose vertices are parties and whose edges
// mean "can form a coalition with".
//
// The Graph G = (V,E) keeps the nested-map layout of a classic adjacency
// list:
//
//	adjacency[u][v] = struct{}{}   (mirrored: adjacency[v][u] as well)
//
// so HasEdge, AddEdge and RemoveEdge are O(1) and every listing
// (Vertices, NeighborIDs, Edges) is sorted for deterministic output.
//
// Building from a partner mapping:
//
//	g, err := network.FromPartners(partners, network.WithSeatLabels(seats))
//
// Each key and each listed partner becomes a vertex; listing B under A is
// enough for the A–B edge to exist in both directions. Self-partnering is
// ignored. WithSeatLabels sets each vertex Label to "A (40)"; the vertex ID
// stays the bare party name, so labels are display-only.
//
// Gonum bridge:
//
//	b := g.Undirected()
//	cliques := topo.BronKerbosch(b.Graph)
//	name := b.Name(cliques[0][0].ID())
//
// Node IDs are assigned in sorted vertex order, so the same graph always
// maps to the same int64 IDs.
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex
//	ErrEdgeNotFound    – missing edge
//	ErrLoopNotAllowed  – self-loop
//	ErrUnknownParty    – seat label requested for a party without seats
//	ErrOptionViolation – invalid option (e.g. nil seat table)
//
// Concurrency: a single sync.RWMutex guards vertices and adjacency; all
// methods are safe for concurrent use.
package network
