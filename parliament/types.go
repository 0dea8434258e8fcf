package parliament

import (
	"errors"
	"fmt"
	"sort"
)

const (
	// DefaultLegislature is the assumed number of seats in the legislature.
	DefaultLegislature = 120

	// DefaultMajority is the smallest governing seat count in a DefaultLegislature.
	DefaultMajority = DefaultLegislature/2 + 1
)

// Seats maps a party name to its seat count.
type Seats map[string]int

// Partners maps a party name to the parties it is willing to cooperate with.
type Partners map[string][]string

// Sum returns the total seats of the given parties.
// Names absent from the table contribute zero; duplicates are counted once.
// Complexity: O(k) for k names.
func (s Seats) Sum(parties []string) int {
	seen := make(map[string]struct{}, len(parties))
	total := 0
	for _, p := range parties {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		total += s[p]
	}
	return total
}

// SumWithout returns the seats of parties with the single name skip removed.
// Complexity: O(k).
func (s Seats) SumWithout(parties []string, skip string) int {
	return s.Sum(Without(parties, skip))
}

// Total returns the seats of every party in the table.
func (s Seats) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Parties returns the party names sorted lexicographically.
// Complexity: O(P log P).
func (s Seats) Parties() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Has reports whether party is present in the table.
func (s Seats) Has(party string) bool {
	_, ok := s[party]
	return ok
}

// Validate reports negative seat counts and empty names.
func (s Seats) Validate() error {
	var errs []error
	for _, p := range s.Parties() {
		if p == "" {
			errs = append(errs, invalid(p, "", ErrEmptyPartyName))
			continue
		}
		if s[p] < 0 {
			errs = append(errs, invalid(p, fmt.Sprintf("%d seats", s[p]), ErrNegativeSeats))
		}
	}
	return errors.Join(errs...)
}

// Parties returns every name mentioned by the mapping, as a key or as a
// partner, sorted lexicographically.
func (p Partners) Parties() []string {
	set := make(map[string]struct{}, len(p))
	for party, list := range p {
		set[party] = struct{}{}
		for _, q := range list {
			set[q] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Validate checks that every name in the mapping is non-empty and known to seats.
func (p Partners) Validate(seats Seats) error {
	var errs []error
	for _, name := range p.Parties() {
		switch {
		case name == "":
			errs = append(errs, invalid(name, "", ErrEmptyPartyName))
		case !seats.Has(name):
			errs = append(errs, invalid(name, "", ErrUnknownPartner))
		}
	}
	return errors.Join(errs...)
}

// Majority returns the smallest seat count controlling a legislature of
// the given size: ⌊total/2⌋+1. A non-positive total yields DefaultMajority.
func Majority(total int) int {
	if total <= 0 {
		return DefaultMajority
	}
	return total/2 + 1
}

// Without returns a copy of parties with every occurrence of skip removed.
func Without(parties []string, skip string) []string {
	out := make([]string, 0, len(parties))
	for _, p := range parties {
		if p != skip {
			out = append(out, p)
		}
	}
	return out
}
