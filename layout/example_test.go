package layout_test

import (
	"fmt"

	"github.com/katalvlaran/coalitions/layout"
	"github.com/katalvlaran/coalitions/network"
	"github.com/katalvlaran/coalitions/parliament"
)

// ExampleCircular lays three parties out on a circle of radius 1.
func ExampleCircular() {
	g, _ := network.FromPartners(parliament.Partners{"A": {"B"}, "C": nil})
	pos, _ := layout.Circular(g)
	for _, name := range g.Vertices() {
		fmt.Printf("%s %.1f %.1f\n", name, pos[name].X, pos[name].Y)
	}
	// Output:
	// A 1.0 0.0
	// B -0.5 0.9
	// C -0.5 -0.9
}
