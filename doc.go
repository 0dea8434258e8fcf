// Package coalitions ranks the governing coalitions a parliament can form
// and shows, for each of them, which parties it cannot do without.
//
// 🚀 What is inside?
//
//	A small pipeline of focused packages:
//		• parliament – seat tables, partner mappings, YAML scenarios
//		• network    – thread-safe undirected compatibility graph + gonum bridge
//		• bfs        – breadth-first traversal and connected blocs
//		• clique     – all cliques (size order) or maximal cliques (Bron–Kerbosch)
//		• coalition  – seat values, majority filter, ranking, necessary parties
//		• layout     – force-directed and circular party placement
//		• render     – network figures, per-coalition subplots, DOT, tables
//
// ✨ How it fits together:
//
//	scenario.yaml ─► parliament ─► network ─► clique ─► coalition ─► render
//	                                   └──────► layout ──────────────┘
//
// A coalition is a clique of the compatibility graph. Its value is the sum
// of its members' seats; it governs when the value reaches the majority
// (61 of 120 unless configured otherwise). A party is necessary when the
// coalition without it falls short.
//
// Quick example:
//
//	    A(40)───B(35)
//	       \    /
//	       C(30)      D(15)
//
//	{A,B,C}=105 governs and needs none of its members on its own;
//	{A,B}=75 governs and needs both A and B.
//
// The coalitions command (cmd/coalitions) exposes the pipeline on the
// command line:
//
//	go install github.com/katalvlaran/coalitions/cmd/coalitions@latest
package coalitions
