package coalition_test

import (
	"fmt"

	"github.com/katalvlaran/coalitions/coalition"
	"github.com/katalvlaran/coalitions/parliament"
)

// ExampleEvaluate ranks the governing coalitions of a four-party house.
func ExampleEvaluate() {
	seats := parliament.Seats{"A": 40, "B": 35, "C": 30, "D": 15}
	partners := parliament.Partners{
		"A": {"B", "C"},
		"B": {"C"},
		"D": {},
	}

	tbl, err := coalition.Evaluate(partners, seats, coalition.WithOnlyValid())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range tbl.Records {
		fmt.Println(r, r.Necessary, r.NecessaryAreSufficient)
	}
	// Output:
	// {A, B, C} 105 [] false
	// {A, B} 75 [A B] true
	// {A, C} 70 [A C] true
	// {B, C} 65 [B C] true
}
