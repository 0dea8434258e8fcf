package network

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/coalitions/parliament"
)

// Sentinel errors for compatibility graph operations.
var (
	// ErrEmptyVertexID indicates an empty vertex ID.
	ErrEmptyVertexID = errors.New("network: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("network: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("network: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("network: self-loop not allowed")

	// ErrUnknownParty indicates a vertex without an entry in the seat table.
	ErrUnknownParty = errors.New("network: party not in seat table")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("network: invalid option supplied")
)

// Vertex is a party in the compatibility graph.
type Vertex struct {
	// ID is the bare party name.
	ID string

	// Label is the display name; equals ID unless seat labels were requested.
	Label string

	// Seats is the party's seat count when known, otherwise 0.
	Seats int
}

// Edge is an undirected compatibility between two parties, From < To.
type Edge struct {
	From string
	To   string
}

// Graph is the in-memory compatibility graph.
// mu guards vertices and adjacency; edgeCount tracks undirected edges.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]*Vertex
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
	}
}

// Option configures FromPartners.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*BuildOptions)

// BuildOptions holds the parameters of FromPartners.
type BuildOptions struct {
	// Seats, when non-nil, annotates every vertex with its seat count.
	Seats parliament.Seats

	// SeatLabels rewrites Vertex.Label to "<name> (<seats>)".
	SeatLabels bool

	// Parties lists vertices to add even if no partner mapping mentions them.
	Parties []string

	err error
}

// DefaultBuildOptions returns options with no seats and plain labels.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{}
}

// WithSeats annotates vertices with seat counts without touching labels.
func WithSeats(seats parliament.Seats) Option {
	return func(o *BuildOptions) {
		if seats == nil {
			o.err = fmt.Errorf("%w: seat table is nil", ErrOptionViolation)
			return
		}
		o.Seats = seats
	}
}

// WithSeatLabels annotates vertices with seat counts and rewrites each label
// to "<name> (<seats>)". Every vertex must then exist in seats.
func WithSeatLabels(seats parliament.Seats) Option {
	return func(o *BuildOptions) {
		WithSeats(seats)(o)
		o.SeatLabels = true
	}
}

// WithParties adds the given parties as vertices, so that a party without
// any partner entry still appears (as an isolate).
func WithParties(parties ...string) Option {
	return func(o *BuildOptions) {
		o.Parties = append(o.Parties, parties...)
	}
}
