package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/katalvlaran/coalitions/coalition"
	"github.com/katalvlaran/coalitions/layout"
	"github.com/katalvlaran/coalitions/network"
	"github.com/katalvlaran/coalitions/parliament"
)

// scene is the part of a figure shared by every subplot: parties in sorted
// order with their positions, labels and glyph radii.
type scene struct {
	names  []string
	xys    plotter.XYs
	labels []string
	radii  []vg.Length
	edges  []network.Edge
	index  map[string]int
	box    [4]float64 // xmin, xmax, ymin, ymax including padding
}

// newScene resolves every vertex of g against pos and seats.
func newScene(g *network.Graph, seats parliament.Seats, pos layout.Positions) (*scene, error) {
	names := g.Vertices()
	if len(names) == 0 {
		return nil, ErrEmptyGraph
	}
	labels := g.Labels()
	s := &scene{
		names:  names,
		xys:    make(plotter.XYs, len(names)),
		labels: make([]string, len(names)),
		radii:  make([]vg.Length, len(names)),
		edges:  g.Edges(),
		index:  make(map[string]int, len(names)),
	}
	for i, name := range names {
		p, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingPosition, name)
		}
		s.xys[i].X, s.xys[i].Y = p.X, p.Y
		s.labels[i] = labels[name]
		s.radii[i] = NodeRadius(seats[name])
		s.index[name] = i
	}

	b := pos.Bounds()
	pad := 0.2 * math.Max(math.Max(b.Max.X-b.Min.X, b.Max.Y-b.Min.Y), 1)
	s.box = [4]float64{b.Min.X - pad, b.Max.X + pad, b.Min.Y - pad, b.Max.Y + pad}

	return s, nil
}

// plot draws the scene with node colours from colorOf.
func (s *scene) plot(title string, colorOf func(party string) color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.X.Min, p.X.Max = s.box[0], s.box[1]
	p.Y.Min, p.Y.Max = s.box[2], s.box[3]

	for _, e := range s.edges {
		u, v := s.xys[s.index[e.From]], s.xys[s.index[e.To]]
		l, err := plotter.NewLine(plotter.XYs{u, v})
		if err != nil {
			return nil, fmt.Errorf("render: edge %s-%s: %w", e.From, e.To, err)
		}
		l.LineStyle.Color = edgeColor
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
	}

	sc, err := plotter.NewScatter(s.xys)
	if err != nil {
		return nil, fmt.Errorf("render: nodes: %w", err)
	}
	sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  colorOf(s.names[i]),
			Radius: s.radii[i],
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(sc)

	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: s.xys, Labels: s.labels})
	if err != nil {
		return nil, fmt.Errorf("render: labels: %w", err)
	}
	p.Add(lbls)

	return p, nil
}

// newCanvas allocates a canvas of the requested format.
func newCanvas(f Format, w, h vg.Length) (vg.CanvasWriterTo, error) {
	switch f {
	case PNG:
		return vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case SVG:
		return vgsvg.New(w, h), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// PlotNetwork draws the compatibility network: parties at pos, node area
// proportional to seats, labelled by vertex label.
//
// Errors:
//   - ErrEmptyGraph, ErrMissingPosition for unusable input.
//   - ErrUnknownFormat, ErrOptionViolation for invalid options.
func PlotNetwork(w io.Writer, g *network.Graph, seats parliament.Seats, pos layout.Positions, opts ...Option) error {
	o, err := applyOptions(opts)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrEmptyGraph
	}
	s, err := newScene(g, seats, pos)
	if err != nil {
		return err
	}
	p, err := s.plot(o.Title, func(string) color.Color { return plain })
	if err != nil {
		return err
	}

	c, err := newCanvas(o.Format, o.Width, o.RowHeight)
	if err != nil {
		return err
	}
	p.Draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", o.Format, err)
	}

	return nil
}

// PlotCoalitions draws one subplot per record of tbl, in table order, on a
// single column. Every subplot reuses pos so parties keep their place.
//
// Errors:
//   - ErrNoCoalitions when tbl is empty.
//   - as PlotNetwork otherwise.
func PlotCoalitions(w io.Writer, g *network.Graph, tbl *coalition.Table, seats parliament.Seats, pos layout.Positions, opts ...Option) error {
	o, err := applyOptions(opts)
	if err != nil {
		return err
	}
	if tbl.Empty() {
		return ErrNoCoalitions
	}
	if g == nil {
		return ErrEmptyGraph
	}
	s, err := newScene(g, seats, pos)
	if err != nil {
		return err
	}

	rows := tbl.Len()
	plots := make([][]*plot.Plot, rows)
	for i, r := range tbl.Records {
		p, err := s.plot(r.String(), func(party string) color.Color { return NodeColor(party, r) })
		if err != nil {
			return err
		}
		plots[i] = []*plot.Plot{p}
	}

	c, err := newCanvas(o.Format, o.Width, o.RowHeight*vg.Length(rows))
	if err != nil {
		return err
	}
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      1,
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(4),
		PadY:      vg.Points(12),
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("render: write %s: %w", o.Format, err)
	}

	return nil
}
