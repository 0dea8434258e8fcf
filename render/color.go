package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/coalitions/coalition"
)

// Class is the role a party plays in one coalition figure.
type Class int

const (
	// Outside parties are neither necessary nor members.
	Outside Class = iota
	// Necessary parties drop the coalition below the majority when removed.
	Necessary
	// Supporting members are needed because the necessary parties fall short.
	Supporting
	// Surplus members could leave; the necessary parties suffice.
	Surplus
)

var (
	green  = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	yellow = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	orange = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	red    = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}

	// plain is the node colour of the uncoloured network figure.
	plain = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

	edgeColor = color.Gray{Y: 0x60}
)

// Classify returns the class of party in r. Necessary wins over membership,
// so a necessary non-member of a sub-majority record is still Necessary.
func Classify(party string, r coalition.Record) Class {
	switch {
	case r.IsNecessary(party):
		return Necessary
	case r.IsMember(party) && !r.NecessaryAreSufficient:
		return Supporting
	case r.IsMember(party):
		return Surplus
	default:
		return Outside
	}
}

// Name returns the colour name used for the class in figures and DOT.
func (c Class) Name() string {
	switch c {
	case Necessary:
		return "green"
	case Supporting:
		return "yellow"
	case Surplus:
		return "orange"
	default:
		return "red"
	}
}

// Color returns the fill colour of the class.
func (c Class) Color() color.Color {
	switch c {
	case Necessary:
		return green
	case Supporting:
		return yellow
	case Surplus:
		return orange
	default:
		return red
	}
}

// NodeColor returns the fill colour of party in r.
func NodeColor(party string, r coalition.Record) color.Color {
	return Classify(party, r).Color()
}

// minRadius keeps seatless parties visible.
const minRadius = vg.Millimeter

// NodeRadius returns a glyph radius whose area is 30 square points per
// seat, never smaller than one millimetre.
func NodeRadius(seats int) vg.Length {
	if seats <= 0 {
		return minRadius
	}
	r := vg.Length(math.Sqrt(30 * float64(seats) / math.Pi))
	if r < minRadius {
		return minRadius
	}
	return r
}
