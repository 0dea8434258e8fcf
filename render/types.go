package render

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Sentinel errors for rendering.
var (
	// ErrNoCoalitions is returned when asked to plot an empty table.
	ErrNoCoalitions = errors.New("render: no coalitions to plot")

	// ErrUnknownFormat is returned for an unsupported image format.
	ErrUnknownFormat = errors.New("render: unknown image format")

	// ErrEmptyGraph is returned when the graph has no parties.
	ErrEmptyGraph = errors.New("render: graph has no parties")

	// ErrMissingPosition is returned when a party has no layout position.
	ErrMissingPosition = errors.New("render: party has no position")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Format is an image encoding.
type Format string

// Supported image formats.
const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat accepts "png" or "svg", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, SVG:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Option configures a figure.
type Option func(*Options)

// Options holds figure parameters.
type Options struct {
	Format Format

	// Width is the figure width.
	Width vg.Length

	// RowHeight is the height of one (sub)plot.
	RowHeight vg.Length

	// Title is shown above PlotNetwork figures.
	Title string

	err error
}

// DefaultOptions returns a 12in wide PNG with 8in rows.
func DefaultOptions() Options {
	return Options{
		Format:    PNG,
		Width:     12 * vg.Inch,
		RowHeight: 8 * vg.Inch,
	}
}

// WithFormat selects the image encoding.
func WithFormat(f Format) Option {
	return func(o *Options) {
		pf, err := ParseFormat(string(f))
		if err != nil {
			o.err = err
			return
		}
		o.Format = pf
	}
}

// WithSize sets the width and per-row height in inches.
func WithSize(widthIn, rowHeightIn float64) Option {
	return func(o *Options) {
		if !(widthIn > 0) || !(rowHeightIn > 0) {
			o.err = fmt.Errorf("%w: size must be positive (%vx%v)", ErrOptionViolation, widthIn, rowHeightIn)
			return
		}
		o.Width = vg.Length(widthIn) * vg.Inch
		o.RowHeight = vg.Length(rowHeightIn) * vg.Inch
	}
}

// WithTitle sets the network figure title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

func applyOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
