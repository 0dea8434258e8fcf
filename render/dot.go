package render

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/coalitions/coalition"
	"github.com/katalvlaran/coalitions/network"
	"github.com/katalvlaran/coalitions/parliament"
)

// dotNode carries a party and its Graphviz attributes.
type dotNode struct {
	id    int64
	name  string
	attrs []encoding.Attribute
}

func (n dotNode) ID() int64                        { return n.id }
func (n dotNode) DOTID() string                    { return n.name }
func (n dotNode) Attributes() []encoding.Attribute { return n.attrs }

var _ graph.Node = dotNode{}

// DOT encodes g in Graphviz format. Every party is labelled with its seats
// and a width proportional to NodeRadius. When record is non-nil parties are
// filled with their Classify colour.
func DOT(g *network.Graph, seats parliament.Seats, record *coalition.Record) ([]byte, error) {
	if g == nil {
		return nil, ErrEmptyGraph
	}
	names := g.Vertices()
	ug := simple.NewUndirectedGraph()
	nodes := make(map[string]dotNode, len(names))
	for i, name := range names {
		n := dotNode{
			id:   int64(i),
			name: name,
			attrs: []encoding.Attribute{
				{Key: "label", Value: fmt.Sprintf("%q", network.Label(name, seats[name]))},
				{Key: "width", Value: fmt.Sprintf("%.2f", 2*float64(NodeRadius(seats[name]))/72)},
			},
		}
		if record != nil {
			n.attrs = append(n.attrs,
				encoding.Attribute{Key: "style", Value: "filled"},
				encoding.Attribute{Key: "fillcolor", Value: Classify(name, *record).Name()},
			)
		}
		nodes[name] = n
		ug.AddNode(n)
	}
	for _, e := range g.Edges() {
		ug.SetEdge(ug.NewEdge(nodes[e.From], nodes[e.To]))
	}

	title := "coalitions"
	if record != nil {
		title = record.String()
	}
	b, err := dot.Marshal(ug, title, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("render: dot: %w", err)
	}
	return b, nil
}
