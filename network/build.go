package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/coalitions/parliament"
)

// labelSeparator splits a seat label into the party name and its seat suffix.
const labelSeparator = " ("

// Label formats the display name of party with its seat count: "A (40)".
func Label(party string, seats int) string {
	return fmt.Sprintf("%s%s%d)", party, labelSeparator, seats)
}

// ParseLabel returns the party name of a label produced by Label.
// Plain names are returned unchanged.
func ParseLabel(label string) string {
	if i := strings.Index(label, labelSeparator); i >= 0 {
		return label[:i]
	}
	return label
}

// FromPartners builds the compatibility graph of a partner mapping.
//
// Implementation:
//   - Stage 1: Apply options; surface recorded option errors.
//   - Stage 2: Add every key and every listed partner as a vertex, plus
//     any vertex listed by WithParties.
//   - Stage 3: Add one undirected edge per listed relation, skipping
//     self-partnering.
//   - Stage 4: Annotate seats and, with WithSeatLabels, rewrite labels.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrEmptyVertexID for an empty party or partner name.
//   - ErrUnknownParty when WithSeatLabels is set and a vertex has no seats.
//
// Complexity: O(V + E) plus O(V log V) for deterministic iteration.
func FromPartners(partners parliament.Partners, opts ...Option) (*Graph, error) {
	o := DefaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := NewGraph()
	for _, p := range o.Parties {
		if err := g.AddVertex(p); err != nil {
			return nil, fmt.Errorf("network: party %q: %w", p, err)
		}
	}

	keys := make([]string, 0, len(partners))
	for k := range partners {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, party := range keys {
		if err := g.AddVertex(party); err != nil {
			return nil, fmt.Errorf("network: party %q: %w", party, err)
		}
		for _, partner := range partners[party] {
			if partner == party {
				continue
			}
			if err := g.AddEdge(party, partner); err != nil {
				return nil, fmt.Errorf("network: edge %q–%q: %w", party, partner, err)
			}
		}
	}

	if o.Seats != nil {
		if err := g.annotate(o.Seats, o.SeatLabels); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// annotate stores seat counts on vertices and optionally rewrites labels.
// Only labelled graphs require every vertex to be present in seats.
func (g *Graph) annotate(seats parliament.Seats, labels bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, id := range g.sortedIDs() {
		n, ok := seats[id]
		if !ok && labels {
			return fmt.Errorf("%w: %q", ErrUnknownParty, id)
		}
		v := g.vertices[id]
		v.Seats = n
		if labels {
			v.Label = Label(id, n)
		}
	}

	return nil
}
