package planner

import (
	"github.com/katalvlaran/trackrun/gridgraph"
	"github.com/katalvlaran/trackrun/tsp"
)

// Prepare readies untrusted input for Plan: it validates grid, trims every
// token and refuses more than maxFlags flags. A maxFlags ≤ 0 applies only the
// optimizer's own ceiling. The input is never modified.
func Prepare(grid gridgraph.Grid, maxFlags int) (gridgraph.Grid, error) {
	if err := gridgraph.Validate(grid); err != nil {
		return nil, err
	}
	grid = gridgraph.Normalize(grid)

	limit := tsp.MaxVertices - 1
	if maxFlags > 0 && maxFlags < limit {
		limit = maxFlags
	}
	if n := gridgraph.CountFlags(grid); n > limit {
		return nil, &TooManyFlagsError{Count: n, Max: limit}
	}

	return grid, nil
}

// PlanChecked is Prepare followed by Plan. Every caller facing external
// input goes through it so catalog tracks and request grids plan alike.
func PlanChecked(grid gridgraph.Grid, maxFlags int) (*Result, error) {
	g, err := Prepare(grid, maxFlags)
	if err != nil {
		return nil, err
	}

	return Plan(g)
}
