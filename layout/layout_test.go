package layout_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/coalitions/layout"
	"github.com/katalvlaran/coalitions/network"
	"github.com/katalvlaran/coalitions/parliament"
)

func toyGraph(t *testing.T) *network.Graph {
	t.Helper()
	g, err := network.FromPartners(parliament.Partners{
		"A": {"B", "C"},
		"B": {"C"},
		"D": nil,
	})
	require.NoError(t, err)
	return g
}

func assertWithin(t *testing.T, pos layout.Positions, scale float64) {
	t.Helper()
	const eps = 1e-9
	for name, v := range pos {
		assert.False(t, math.IsNaN(v.X) || math.IsNaN(v.Y), "%s is NaN", name)
		assert.LessOrEqual(t, math.Abs(v.X), scale+eps, name)
		assert.LessOrEqual(t, math.Abs(v.Y), scale+eps, name)
	}
}

// TestForceDirected places every party inside the scaled square.
func TestForceDirected(t *testing.T) {
	g := toyGraph(t)
	for _, scale := range []float64{1, 2.5} {
		pos, err := layout.ForceDirected(g, layout.WithScale(scale), layout.WithUpdates(20))
		require.NoError(t, err)
		require.Len(t, pos, 4)
		assert.ElementsMatch(t, g.Vertices(), keys(pos))
		assertWithin(t, pos, scale)
	}
}

// TestCircular is deterministic.
func TestCircular(t *testing.T) {
	pos, err := layout.Circular(toyGraph(t), layout.WithScale(2))
	require.NoError(t, err)
	assert.InDelta(t, 2, pos["A"].X, 1e-9)
	assert.InDelta(t, 0, pos["A"].Y, 1e-9)
	assert.InDelta(t, 0, pos["B"].X, 1e-9)
	assert.InDelta(t, 2, pos["B"].Y, 1e-9)
	assert.InDelta(t, -2, pos["C"].X, 1e-9)
	assertWithin(t, pos, 2)
}

// TestTrivialGraphs covers empty and single-party graphs.
func TestTrivialGraphs(t *testing.T) {
	pos, err := layout.ForceDirected(network.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, pos)

	g := network.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	pos, err = layout.Circular(g)
	require.NoError(t, err)
	assert.Equal(t, layout.Positions{"A": {}}, pos)
}

// TestOptions rejects invalid parameters and nil graphs.
func TestOptions(t *testing.T) {
	cases := []struct {
		name string
		opt  layout.Option
	}{
		{"ZeroUpdates", layout.WithUpdates(0)},
		{"NegativeScale", layout.WithScale(-1)},
		{"NaNScale", layout.WithScale(math.NaN())},
		{"InfScale", layout.WithScale(math.Inf(1))},
		{"ZeroRepulsion", layout.WithRepulsion(0)},
		{"ZeroRate", layout.WithRate(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layout.ForceDirected(toyGraph(t), tc.opt)
			assert.ErrorIs(t, err, layout.ErrOptionViolation)
		})
	}

	_, err := layout.Circular(nil)
	assert.ErrorIs(t, err, layout.ErrGraphNil)
}

// TestRescale centres and fits coordinates.
func TestRescale(t *testing.T) {
	in := layout.Positions{"A": {X: 10, Y: 10}, "B": {X: 30, Y: 10}}
	out := layout.Rescale(in, 1)
	assert.InDelta(t, -1, out["A"].X, 1e-12)
	assert.InDelta(t, 1, out["B"].X, 1e-12)
	assert.InDelta(t, 0, out["A"].Y, 1e-12)
	assert.Equal(t, r2.Vec{X: 10, Y: 10}, in["A"], "input must not be modified")

	same := layout.Rescale(layout.Positions{"A": {X: 3, Y: 3}, "B": {X: 3, Y: 3}}, 1)
	assert.Equal(t, r2.Vec{}, same["A"])

	assert.Empty(t, layout.Rescale(nil, 1))
}

// TestPositions_Bounds reports the enclosing box.
func TestPositions_Bounds(t *testing.T) {
	b := layout.Positions{"A": {X: -1, Y: 2}, "B": {X: 3, Y: -4}}.Bounds()
	assert.Equal(t, r2.Vec{X: -1, Y: -4}, b.Min)
	assert.Equal(t, r2.Vec{X: 3, Y: 2}, b.Max)
	assert.Equal(t, r2.Box{}, layout.Positions{}.Bounds())
}

func keys(pos layout.Positions) []string {
	out := make([]string, 0, len(pos))
	for k := range pos {
		out = append(out, k)
	}
	return out
}
