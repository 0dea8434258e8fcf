package layout_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/coalitions/layout"
	"github.com/katalvlaran/coalitions/network"
)

func BenchmarkForceDirected(b *testing.B) {
	g := network.NewGraph()
	for i := 0; i < 20; i++ {
		_ = g.AddEdge(fmt.Sprintf("P%02d", i), fmt.Sprintf("P%02d", (i+1)%20))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = layout.ForceDirected(g)
	}
}
