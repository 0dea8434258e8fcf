package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/coalitions/bfs"
	"github.com/katalvlaran/coalitions/network"
	"github.com/katalvlaran/coalitions/parliament"
)

// ExampleComponents splits a compatibility graph into blocs.
func ExampleComponents() {
	g, _ := network.FromPartners(parliament.Partners{
		"Left":   {"Green", "Centre"},
		"Right":  {"Farmers"},
		"Pirate": nil,
	})
	blocs, err := bfs.Components(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, b := range blocs {
		fmt.Println(b)
	}

	// Output:
	// [Centre Green Left]
	// [Farmers Right]
	// [Pirate]
}
