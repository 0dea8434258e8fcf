package clique

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/coalitions/network"
)

// Sentinel errors for clique enumeration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("clique: graph is nil")

	// ErrUnknownStrategy is returned for an out-of-range Strategy.
	ErrUnknownStrategy = errors.New("clique: unknown strategy")
)

// Strategy selects which cliques Enumerate returns.
type Strategy int

const (
	// AllCliques enumerates every clique.
	AllCliques Strategy = iota
	// MaximalCliques enumerates only maximal cliques.
	MaximalCliques
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case AllCliques:
		return "all"
	case MaximalCliques:
		return "maximal"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Enumerate dispatches to All or Maximal.
func Enumerate(g *network.Graph, s Strategy) ([][]string, error) {
	switch s {
	case AllCliques:
		return All(g)
	case MaximalCliques:
		return Maximal(g)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

// candidate is a clique under construction together with the common
// neighbours that may still extend it.
type candidate struct {
	base  []string
	nexts []string
}

// All returns every non-empty clique of g, ordered by size and then
// lexicographically.
//
// Implementation:
//   - Stage 1: Index vertices in sorted order; for each vertex keep only the
//     neighbours with a higher index ("later" set).
//   - Stage 2: Seed a FIFO queue with every singleton and its later set.
//   - Stage 3: Pop a candidate, emit it, and push base+u for each u in its
//     extension list, restricting the new list to later candidates that are
//     also neighbours of u.
//
// The FIFO queue yields cliques in non-decreasing size.
func All(g *network.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	order := g.Vertices()
	index := make(map[string]int, len(order))
	for i, v := range order {
		index[v] = i
	}
	later := make(map[string]map[string]struct{}, len(order))
	queue := make([]candidate, 0, len(order))
	for _, v := range order {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("clique: neighbours of %q: %w", v, err)
		}
		set := make(map[string]struct{}, len(nbrs))
		var nexts []string
		for _, u := range nbrs {
			if index[u] > index[v] {
				set[u] = struct{}{}
				nexts = append(nexts, u)
			}
		}
		later[v] = set
		queue = append(queue, candidate{base: []string{v}, nexts: nexts})
	}

	var out [][]string
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		out = append(out, c.base)
		for i, u := range c.nexts {
			base := make([]string, len(c.base)+1)
			copy(base, c.base)
			base[len(c.base)] = u
			var nexts []string
			for _, w := range c.nexts[i+1:] {
				if _, ok := later[u][w]; ok {
					nexts = append(nexts, w)
				}
			}
			queue = append(queue, candidate{base: base, nexts: nexts})
		}
	}

	return out, nil
}

// Maximal returns the maximal cliques of g, each sorted, ordered by size
// descending and then lexicographically. Isolated parties are maximal
// singleton cliques.
func Maximal(g *network.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	b := g.Undirected()
	found := topo.BronKerbosch(b.Graph)
	out := make([][]string, 0, len(found))
	for _, nodes := range found {
		out = append(out, b.Names(nodes))
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return less(out[i], out[j])
	})

	return out, nil
}

// less orders equal-length sorted string slices lexicographically.
func less(a, b []string) bool {
	for k := range a {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return false
}
