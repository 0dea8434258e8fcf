package coalition

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/coalitions/clique"
	"github.com/katalvlaran/coalitions/network"
	"github.com/katalvlaran/coalitions/parliament"
)

// Evaluate builds the compatibility graph of partners and scores its cliques
// against seats.
//
// Implementation:
//   - Stage 1: Apply options; validate seats and that every party named in
//     partners has a seat entry.
//   - Stage 2: Build the graph from partners. Parties that appear only in
//     seats are not vertices and never join a coalition.
//   - Stage 3: Hand off to EvaluateGraph.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrInvalidInput wrapping the parliament validation error.
func Evaluate(partners parliament.Partners, seats parliament.Seats, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := seats.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := partners.Validate(seats); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	g, err := network.FromPartners(partners, network.WithSeats(seats))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return evaluate(g, seats, o)
}

// EvaluateGraph scores the cliques of an already built compatibility graph.
// Vertices missing from seats are valued at zero.
//
// Implementation:
//   - Stage 1: Enumerate cliques with the configured strategy.
//   - Stage 2: Value each clique; with OnlyValid drop those below Majority.
//   - Stage 3: Stable sort by value, descending.
//   - Stage 4: Unless the table is empty, compute the necessary parties of
//     every record and whether they suffice.
//
// Complexity: dominated by enumeration; Stage 4 is O(R·P·k) for R records,
// P scanned parties and k members per record.
func EvaluateGraph(g *network.Graph, seats parliament.Seats, opts ...Option) (*Table, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, clique.ErrGraphNil
	}

	return evaluate(g, seats, o)
}

func evaluate(g *network.Graph, seats parliament.Seats, o Options) (*Table, error) {
	log := o.Logger.With("strategy", o.Strategy.String(), "majority", o.Majority)

	cliques, err := clique.Enumerate(g, o.Strategy)
	if err != nil {
		return nil, err
	}
	log.Debug("cliques enumerated", "count", len(cliques))

	tbl := &Table{
		Majority:  o.Majority,
		Strategy:  o.Strategy,
		OnlyValid: o.OnlyValid,
		Records:   make([]Record, 0, len(cliques)),
	}
	for _, members := range cliques {
		value := seats.Sum(members)
		if o.OnlyValid && value < o.Majority {
			continue
		}
		tbl.Records = append(tbl.Records, Record{Members: members, Value: value})
	}
	sort.SliceStable(tbl.Records, func(i, j int) bool {
		return tbl.Records[i].Value > tbl.Records[j].Value
	})

	if tbl.Empty() {
		log.Debug("no coalition survived filtering")
		return tbl, nil
	}

	universe := seats.Parties()
	for i := range tbl.Records {
		r := &tbl.Records[i]
		scan := universe
		if o.MembersOnly {
			scan = r.Members
		}
		r.Necessary = Necessary(r.Members, seats, scan, o.Majority)
		r.NecessaryAreSufficient = Sufficient(r.Necessary, seats, o.Majority)
	}
	log.Debug("coalitions evaluated", "records", len(tbl.Records))

	return tbl, nil
}

// Necessary returns the parties of scan whose removal drops members below
// majority, sorted. A party outside members removes nothing, so it is
// reported only when members already fall short.
// Complexity: O(|scan|·|members|).
func Necessary(members []string, seats parliament.Seats, scan []string, majority int) []string {
	out := make([]string, 0, len(members))
	for _, p := range scan {
		if seats.SumWithout(members, p) < majority {
			out = append(out, p)
		}
	}
	sort.Strings(out)

	return dedupe(out)
}

// Sufficient reports whether the necessary parties alone reach majority.
func Sufficient(necessary []string, seats parliament.Seats, majority int) bool {
	return seats.Sum(necessary) > majority-1
}

// contains reports whether s holds x.
func contains(s []string, x string) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}
	return false
}

// dedupe removes adjacent duplicates from a sorted slice in place.
func dedupe(s []string) []string {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// braces renders members as "{A, B}".
func braces(members []string) string {
	s := "{"
	for i, m := range members {
		if i > 0 {
			s += ", "
		}
		s += m
	}
	return s + "}"
}
