package planner_test

import (
	"fmt"

	"github.com/katalvlaran/trackrun/gridgraph"
	"github.com/katalvlaran/trackrun/planner"
)

// ExampleSolve plans a drive over two flags on either side of the start.
func ExampleSolve() {
	grid := gridgraph.Grid{{"F", "1", "S", "1", "1", "F"}}
	moves, err := planner.Solve(grid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(moves)
	// Output:
	// [left left right right right right right]
}
