package coalition

import (
	"sort"

	"github.com/katalvlaran/coalitions/clique"
)

// Table is the ranked result of an evaluation.
type Table struct {
	// Records are sorted by Value, descending; ties keep enumeration order.
	Records []Record

	// Majority is the threshold the table was evaluated against.
	Majority int

	// Strategy is the clique enumeration used.
	Strategy clique.Strategy

	// OnlyValid reports whether sub-majority coalitions were dropped.
	OnlyValid bool
}

// Empty reports whether no coalition survived filtering.
func (t *Table) Empty() bool { return t == nil || len(t.Records) == 0 }

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// Valid returns the records that reach the majority, in table order.
func (t *Table) Valid() []Record {
	if t == nil {
		return nil
	}
	out := make([]Record, 0, len(t.Records))
	for _, r := range t.Records {
		if r.Reaches(t.Majority) {
			out = append(out, r)
		}
	}
	return out
}

// Top returns at most n leading records. n <= 0 returns every record.
func (t *Table) Top(n int) []Record {
	if t == nil {
		return nil
	}
	if n <= 0 || n > len(t.Records) {
		n = len(t.Records)
	}
	return t.Records[:n]
}

// Find returns the record whose members equal the given set, in any order.
func (t *Table) Find(members ...string) (Record, bool) {
	if t == nil {
		return Record{}, false
	}
	want := append([]string(nil), members...)
	sort.Strings(want)
	want = dedupe(want)
	for _, r := range t.Records {
		if equal(r.Members, want) {
			return r, true
		}
	}
	return Record{}, false
}

// Containing returns the records that include party, in table order.
func (t *Table) Containing(party string) []Record {
	if t == nil {
		return nil
	}
	var out []Record
	for _, r := range t.Records {
		if r.IsMember(party) {
			out = append(out, r)
		}
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
