// Package coalition scores candidate governments.
//
// Evaluate turns a partner mapping and a seat table into a ranked Table of
// coalition Records:
//
//  1. Enumerate cliques of the compatibility graph: every clique, or only
//     maximal ones (WithOnlyMaximal).
//  2. Value each clique by the seats of its members.
//  3. With WithOnlyValid, drop cliques below the majority (61 of 120 by
//     default, see WithMajority).
//  4. Rank by value, largest first; ties keep enumeration order.
//  5. For each record, compute its necessary parties: every party P of the
//     seat table such that the members without P fall below the majority.
//  6. Record whether the necessary parties alone reach the majority.
//
// Step 5 scans the whole seat table rather than the members only. Removing
// a non-member changes nothing, so for a record that is itself short of a
// majority every party, member or not, is reported as necessary. The
// behaviour is kept as the default; WithMembersOnly restricts the scan to
// the record's members.
//
// When no clique survives filtering the Table has no records and no
// necessary-party computation takes place.
//
// Example:
//
//	tbl, err := coalition.Evaluate(partners, seats, coalition.WithOnlyValid())
//	for _, r := range tbl.Records {
//		fmt.Println(r.Members, r.Value, r.Necessary, r.NecessaryAreSufficient)
//	}
package coalition
