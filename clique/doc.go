// Package clique enumerates cliques of a compatibility graph. A clique is a
// set of parties all mutually willing to cooperate, i.e. a candidate
// coalition.
//
// Two strategies are offered:
//
//   - All:     every non-empty clique, singletons included. Cliques come out
//     grouped by size (1, 2, 3, …) and, within a size, in lexicographic
//     order of their sorted members. The enumeration extends each clique
//     only with later-ordered common neighbours, so every clique is produced
//     exactly once.
//   - Maximal: cliques that cannot be extended, computed by gonum's
//     Bron–Kerbosch (topo.BronKerbosch). Results are normalized to sorted
//     members, ordered by size descending then lexicographically.
//
// Members of every returned clique are sorted lexicographically.
//
// Complexity: All is output-sensitive, O(Σ|C|·d) for the cliques C it
// yields; Maximal is O(3^(V/3)) worst case.
//
// Errors:
//
//	ErrGraphNil         – nil graph
//	ErrUnknownStrategy  – Strategy value out of range
package clique
