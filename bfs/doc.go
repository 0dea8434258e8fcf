// Package bfs provides breadth-first search over a network.Graph and the
// partition of the compatibility graph into "blocs": connected components
// of parties that are linked, directly or through intermediaries, by
// declared cooperation.
//
// What
//
//   - BFS(g, start, opts...) visits the parties reachable from start in
//     non-decreasing hop distance and returns Order, Depth and Parent.
//   - Components(g) returns every bloc, each sorted, blocs ordered by size
//     (largest first) and then by their first member.
//
// Why
//
//   - A coalition is a clique, and a clique never spans two blocs, so the
//     bloc list is a quick sanity view of which governments are possible
//     at all before enumerating cliques.
//
// Determinism
//
//	network.Graph.NeighborIDs returns partners sorted lexicographically and
//	BFS enqueues them in that order, so the visit sequence is reproducible.
//
// Options
//
//   - WithContext(ctx):        cancellation.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0); 0 ⇒ no limit.
//   - WithFilterNeighbor(fn):  skip curr→neighbor when fn returns false.
//   - WithOnVisit(fn):         hook per visited party; an error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start party does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative depth).
//   - ErrNeighbors            if neighbor lookup fails.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
