// Package layout places the parties of a compatibility graph in the plane.
//
// ForceDirected runs gonum's Eades spring embedder and rescales the result so
// that every coordinate lies in [-Scale, Scale] around the origin. Circular
// spaces the parties evenly on a circle of radius Scale in sorted order and
// is deterministic, which makes it the layout of choice for golden tests.
//
// A layout is computed once per graph and reused by every figure drawn from
// it, so the same party stays in the same place across subplots.
//
// Errors:
//   - ErrGraphNil if the graph is nil.
//   - ErrOptionViolation for invalid options.
//
// Complexity:
//   - ForceDirected: O(Updates · (V log V + E)) with Barnes-Hut repulsion.
//   - Circular: O(V log V).
package layout
