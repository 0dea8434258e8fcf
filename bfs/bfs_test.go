package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/coalitions/bfs"
	"github.com/katalvlaran/coalitions/network"
	"github.com/katalvlaran/coalitions/parliament"
)

func mustGraph(t *testing.T, partners parliament.Partners) *network.Graph {
	t.Helper()
	g, err := network.FromPartners(partners)
	if err != nil {
		t.Fatalf("FromPartners: %v", err)
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := network.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Components(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("Components(nil): want ErrGraphNil, got %v", err)
	}
}

// TestBFS_CycleAndDepths covers a square A–B–C–D–A.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := mustGraph(t, parliament.Partners{"A": {"B", "D"}, "C": {"B", "D"}})
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if got := res.Depth["C"]; got != 2 {
		t.Errorf("Depth[C] = %d; want 2", got)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
	if _, err := res.PathTo("Z"); err == nil {
		t.Error("PathTo(Z): want error")
	}
}

// TestBFS_MaxDepthAndFilter verifies depth limits and neighbor filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := mustGraph(t, parliament.Partners{"A": {"B"}, "B": {"C"}})
	res, _ := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	if !reflect.DeepEqual(res.Order, []string{"A", "B"}) {
		t.Errorf("MaxDepth(1) order = %v", res.Order)
	}
	res, _ = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "B" }))
	if !reflect.DeepEqual(res.Order, []string{"A"}) {
		t.Errorf("filtered order = %v", res.Order)
	}
}

// TestBFS_HookAndCancel verifies OnVisit errors and context cancellation.
func TestBFS_HookAndCancel(t *testing.T) {
	g := mustGraph(t, parliament.Partners{"A": {"B"}})
	stop := errors.New("stop")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("hook error: want %v, got %v", stop, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}

// TestComponents lists blocs, largest first.
func TestComponents(t *testing.T) {
	g := mustGraph(t, parliament.Partners{
		"A": {"B", "C"},
		"B": {"A", "C"},
		"D": nil,
		"E": {"F"},
	})
	blocs, err := bfs.Components(g)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"A", "B", "C"}, {"E", "F"}, {"D"}}
	if !reflect.DeepEqual(blocs, want) {
		t.Errorf("Components = %v; want %v", blocs, want)
	}

	empty, err := bfs.Components(network.NewGraph())
	if err != nil || len(empty) != 0 {
		t.Errorf("empty graph: got %v, %v", empty, err)
	}
}
