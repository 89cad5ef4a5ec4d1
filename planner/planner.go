package planner

import (
	"fmt"

	"github.com/katalvlaran/trackrun/bfs"
	"github.com/katalvlaran/trackrun/gridgraph"
	"github.com/katalvlaran/trackrun/tsp"
)

// Result is a full plan. Points[Order[i]] is the i-th key point visited;
// Order[0] is always 0 (the start).
type Result struct {
	Points []gridgraph.Position
	Order  []int
	Cost   int
	Moves  []gridgraph.Direction
	// Expanded counts cells dequeued across all pairwise walks.
	Expanded int
}

// MoveNames returns Moves as outward names.
func (r *Result) MoveNames() []string {
	return Names(r.Moves)
}

// Solve returns the shortest move list from the start through every flag.
// The grid is assumed structurally valid (see gridgraph.Validate); only the
// start and teleport structure are re-derived.
func Solve(grid gridgraph.Grid) ([]string, error) {
	res, err := Plan(grid)
	if err != nil {
		return nil, err
	}

	return res.MoveNames(), nil
}

// Plan runs the full pipeline and returns the chosen order, its cost and
// the assembled moves.
func Plan(grid gridgraph.Grid) (*Result, error) {
	gg, err := gridgraph.NewGridGraph(grid)
	if err != nil {
		return nil, err
	}
	kp, err := gridgraph.ExtractKeyPoints(gg)
	if err != nil {
		return nil, err
	}
	points := kp.Points()
	expanded := 0
	table := bfs.Pairwise(gg, kp.Partner, points, bfs.WithOnVisit(func(gridgraph.Position, int) {
		expanded++
	}))

	// Checked before the exponential stage so it never runs in vain.
	for i := 1; i < len(points); i++ {
		if !table.Reachable(0, i) {
			return nil, &UnreachableError{Flag: points[i]}
		}
	}

	path, err := tsp.OpenPath(table.Dist)
	if err != nil {
		return nil, err
	}
	if !tsp.IsPermutationFromZero(path.Order, len(points)) || tsp.PathCost(table.Dist, path.Order) != path.Cost {
		return nil, fmt.Errorf("%w: order %v cost %d", ErrInconsistentPlan, path.Order, path.Cost)
	}

	return &Result{
		Points: points,
		Order:  path.Order,
		Cost:   path.Cost,
		Moves:  Assemble(path.Order, table.Moves),

		Expanded: expanded,
	}, nil
}
