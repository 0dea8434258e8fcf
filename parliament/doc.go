// Package parliament holds the data model shared by every coalition
// computation: the party seat table, the partner (cooperation) mapping,
// the majority threshold and a YAML scenario bundling all of them.
//
// What
//
//   - Seats:    party → seat count; Sum over any party set.
//   - Partners: party → parties it is willing to govern with. The relation
//     is read as undirected by the network package, so listing it once is
//     enough.
//   - Majority: the smallest seat count that controls the legislature,
//     ⌊total/2⌋+1 (61 of 120 by default).
//   - Scenario: a named bundle of the above, decoded from YAML.
//
// Errors
//
//   - ErrNegativeSeats     a party has fewer than zero seats.
//   - ErrEmptyPartyName    a party or partner name is "".
//   - ErrUnknownPartner    a partner is not present in the seat table.
//   - ErrSeatOverflow      seats add up to more than the legislature size.
//   - ErrBadLegislature    legislature size or majority is out of range.
//
// Validate collects every violation with errors.Join, so callers can
// report all of them at once and still test with errors.Is.
//
// Example scenario:
//
//	name: toy
//	legislature: 120
//	seats:
//	  A: 40
//	  B: 35
//	partners:
//	  A: [B]
package parliament
