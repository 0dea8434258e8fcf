package parliament

import (
	"errors"
	"fmt"
)

// Sentinel errors for seat tables and scenarios.
var (
	// ErrNegativeSeats indicates a party with a negative seat count.
	ErrNegativeSeats = errors.New("parliament: negative seat count")

	// ErrEmptyPartyName indicates an empty party or partner name.
	ErrEmptyPartyName = errors.New("parliament: empty party name")

	// ErrUnknownPartner indicates a partner missing from the seat table.
	ErrUnknownPartner = errors.New("parliament: partner not in seat table")

	// ErrSeatOverflow indicates seats summing past the legislature size.
	ErrSeatOverflow = errors.New("parliament: seats exceed legislature size")

	// ErrBadLegislature indicates an invalid legislature size or majority.
	ErrBadLegislature = errors.New("parliament: invalid legislature size or majority")
)

// ValidationError ties a sentinel error to the party that caused it.
type ValidationError struct {
	Party  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v (party=%q)", e.Err, e.Party)
	}
	return fmt.Sprintf("%v: %s (party=%q)", e.Err, e.Reason, e.Party)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(party, reason string, err error) *ValidationError {
	return &ValidationError{Party: party, Reason: reason, Err: err}
}
