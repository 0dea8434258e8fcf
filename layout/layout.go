package layout

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	glayout "gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/coalitions/network"
)

var (
	// ErrGraphNil is returned when the graph argument is nil.
	ErrGraphNil = errors.New("layout: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("layout: invalid option supplied")
)

// Positions maps each party to its coordinates.
type Positions map[string]r2.Vec

// Bounds returns the smallest rectangle containing every position.
func (p Positions) Bounds() r2.Box {
	if len(p) == 0 {
		return r2.Box{}
	}
	b := r2.Box{
		Min: r2.Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: r2.Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, v := range p {
		b.Min.X = math.Min(b.Min.X, v.X)
		b.Min.Y = math.Min(b.Min.Y, v.Y)
		b.Max.X = math.Max(b.Max.X, v.X)
		b.Max.Y = math.Max(b.Max.Y, v.Y)
	}
	return b
}

// Option configures a layout.
type Option func(*Options)

// Options holds layout parameters.
type Options struct {
	// Updates is the number of Eades iterations.
	Updates int

	// Scale is the half-width of the square the layout is fitted into.
	Scale float64

	// Repulsion, Rate and Theta are passed to the Eades embedder.
	Repulsion float64
	Rate      float64
	Theta     float64

	err error
}

// DefaultOptions returns 50 updates at unit scale.
func DefaultOptions() Options {
	return Options{
		Updates:   50,
		Scale:     1,
		Repulsion: 1,
		Rate:      0.05,
		Theta:     0.2,
	}
}

// WithUpdates sets the number of embedder iterations; n must be positive.
func WithUpdates(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: updates must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Updates = n
	}
}

// WithScale sets the half-width of the bounding square; s must be positive.
func WithScale(s float64) Option {
	return func(o *Options) {
		if !(s > 0) || math.IsInf(s, 1) {
			o.err = fmt.Errorf("%w: scale must be positive and finite (%v)", ErrOptionViolation, s)
			return
		}
		o.Scale = s
	}
}

// WithRepulsion sets the Eades repulsion constant.
func WithRepulsion(r float64) Option {
	return func(o *Options) {
		if !(r > 0) {
			o.err = fmt.Errorf("%w: repulsion must be positive (%v)", ErrOptionViolation, r)
			return
		}
		o.Repulsion = r
	}
}

// WithRate sets the Eades update rate.
func WithRate(r float64) Option {
	return func(o *Options) {
		if !(r > 0) {
			o.err = fmt.Errorf("%w: rate must be positive (%v)", ErrOptionViolation, r)
			return
		}
		o.Rate = r
	}
}

func apply(g *network.Graph, opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if g == nil {
		return o, ErrGraphNil
	}
	return o, nil
}

// ForceDirected computes a spring layout of g.
//
// Implementation:
//   - Stage 1: Apply options; empty graphs yield empty Positions and a
//     single party sits at the origin.
//   - Stage 2: Run Updates iterations of gonum's EadesR2 on a gonum snapshot.
//   - Stage 3: Translate node IDs back to party names and rescale.
//
// Starting positions are random, so two calls may differ. Should the
// embedder produce a non-finite coordinate the Circular layout is returned.
func ForceDirected(g *network.Graph, opts ...Option) (Positions, error) {
	o, err := apply(g, opts)
	if err != nil {
		return nil, err
	}
	if pos, ok := trivial(g); ok {
		return pos, nil
	}

	b := g.Undirected()
	eades := glayout.EadesR2{
		Repulsion: o.Repulsion,
		Rate:      o.Rate,
		Updates:   o.Updates,
		Theta:     o.Theta,
	}
	opt := glayout.NewOptimizerR2(b.Graph, eades.Update)
	for opt.Update() {
	}

	pos := make(Positions, b.Len())
	for i := 0; i < b.Len(); i++ {
		v := opt.Coord2(int64(i))
		if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) {
			return circular(g.Vertices(), o.Scale), nil
		}
		pos[b.Name(int64(i))] = v
	}

	return Rescale(pos, o.Scale), nil
}

// Circular spaces the parties of g evenly on a circle, in sorted order,
// starting at angle zero.
func Circular(g *network.Graph, opts ...Option) (Positions, error) {
	o, err := apply(g, opts)
	if err != nil {
		return nil, err
	}
	if pos, ok := trivial(g); ok {
		return pos, nil
	}
	return circular(g.Vertices(), o.Scale), nil
}

func circular(names []string, scale float64) Positions {
	pos := make(Positions, len(names))
	step := 2 * math.Pi / float64(len(names))
	for i, name := range names {
		theta := step * float64(i)
		pos[name] = r2.Vec{X: scale * math.Cos(theta), Y: scale * math.Sin(theta)}
	}
	return pos
}

func trivial(g *network.Graph) (Positions, bool) {
	switch names := g.Vertices(); len(names) {
	case 0:
		return Positions{}, true
	case 1:
		return Positions{names[0]: {}}, true
	default:
		return nil, false
	}
}

// Rescale centres pos on the origin and scales it so the largest absolute
// coordinate equals scale. A layout with every party on one point collapses
// to the origin. The input map is not modified.
func Rescale(pos Positions, scale float64) Positions {
	if len(pos) == 0 {
		return Positions{}
	}
	names := make([]string, 0, len(pos))
	for name := range pos {
		names = append(names, name)
	}
	sort.Strings(names)

	xs := make([]float64, len(names))
	ys := make([]float64, len(names))
	for i, name := range names {
		xs[i], ys[i] = pos[name].X, pos[name].Y
	}
	n := float64(len(names))
	floats.AddConst(-floats.Sum(xs)/n, xs)
	floats.AddConst(-floats.Sum(ys)/n, ys)

	lim := math.Max(
		math.Max(floats.Max(xs), -floats.Min(xs)),
		math.Max(floats.Max(ys), -floats.Min(ys)),
	)
	if lim > 0 {
		floats.Scale(scale/lim, xs)
		floats.Scale(scale/lim, ys)
	}

	out := make(Positions, len(names))
	for i, name := range names {
		out[name] = r2.Vec{X: xs[i], Y: ys[i]}
	}
	return out
}
