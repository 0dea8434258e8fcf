package coalition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coalitions/clique"
	"github.com/katalvlaran/coalitions/logging"
	"github.com/katalvlaran/coalitions/parliament"
)

// Sentinel errors for coalition evaluation.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coalition: invalid option supplied")

	// ErrInvalidInput is returned when seats or partners fail validation.
	ErrInvalidInput = errors.New("coalition: invalid input")
)

// Record is one candidate coalition.
type Record struct {
	// Members are the coalition's parties, sorted.
	Members []string

	// Value is the aggregate seat count of Members.
	Value int

	// Necessary lists the parties whose removal drops Members below the
	// majority, sorted. See the package doc for the universe it is drawn from.
	Necessary []string

	// NecessaryAreSufficient reports whether Necessary alone reaches the majority.
	NecessaryAreSufficient bool
}

// IsMember reports whether party belongs to the coalition.
func (r Record) IsMember(party string) bool { return contains(r.Members, party) }

// IsNecessary reports whether party is in the necessary set.
func (r Record) IsNecessary(party string) bool { return contains(r.Necessary, party) }

// Reaches reports whether the coalition holds at least majority seats.
func (r Record) Reaches(majority int) bool { return r.Value >= majority }

// String renders the record as "{A, B} 75".
func (r Record) String() string {
	return fmt.Sprintf("%s %d", braces(r.Members), r.Value)
}

// Option configures Evaluate.
type Option func(*Options)

// Options holds evaluation parameters.
type Options struct {
	// Strategy selects all cliques (default) or maximal cliques only.
	Strategy clique.Strategy

	// OnlyValid drops coalitions below Majority.
	OnlyValid bool

	// Majority is the governing threshold in seats.
	Majority int

	// MembersOnly restricts the necessary-party scan to coalition members.
	MembersOnly bool

	// Logger receives DEBUG progress entries.
	Logger *logging.Logger

	err error
}

// DefaultOptions returns all-clique enumeration, no filtering, majority 61
// and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Strategy: clique.AllCliques,
		Majority: parliament.DefaultMajority,
		Logger:   logging.NopLogger(),
	}
}

// WithOnlyMaximal restricts enumeration to maximal cliques.
func WithOnlyMaximal() Option {
	return func(o *Options) { o.Strategy = clique.MaximalCliques }
}

// WithOnlyValid drops coalitions that do not reach the majority.
func WithOnlyValid() Option {
	return func(o *Options) { o.OnlyValid = true }
}

// WithMajority sets the governing threshold; n must be positive.
func WithMajority(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: majority must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Majority = n
	}
}

// WithMembersOnly restricts the necessary-party scan to coalition members.
func WithMembersOnly() Option {
	return func(o *Options) { o.MembersOnly = true }
}

// WithLogger sets the logger used for progress entries.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
