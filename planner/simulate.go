package planner

import (
	"github.com/katalvlaran/trackrun/gridgraph"
)

// Trace records a replayed drive.
type Trace struct {
	// Path holds the traveler's position after each move; Path[0] is the start.
	Path []gridgraph.Position
	// Flags holds each distinct flag in the order it was first reached.
	Flags []gridgraph.Position
}

// VisitedAll reports whether every flag in kp was reached.
func (t *Trace) VisitedAll(kp *gridgraph.KeyPoints) bool {
	seen := make(map[gridgraph.Position]bool, len(t.Flags))
	for _, f := range t.Flags {
		seen[f] = true
	}
	for _, f := range kp.Flags {
		if !seen[f] {
			return false
		}
	}

	return true
}

// Replay parses move names and drives them on grid. It returns the trace,
// the grid's key points and whether every flag was reached. A move that
// cannot be driven yields a *StepError together with the partial trace.
func Replay(grid gridgraph.Grid, names []string) (*Trace, *gridgraph.KeyPoints, error) {
	moves, err := ParseMoves(names)
	if err != nil {
		return nil, nil, err
	}

	return Simulate(grid, moves)
}

// Simulate replays moves on grid from its start, relocating through
// teleports exactly as the planner does. It fails on the first move that
// leaves the grid or enters a blocked cell.
func Simulate(grid gridgraph.Grid, moves []gridgraph.Direction) (*Trace, *gridgraph.KeyPoints, error) {
	gg, err := gridgraph.NewGridGraph(grid)
	if err != nil {
		return nil, nil, err
	}
	kp, err := gridgraph.ExtractKeyPoints(gg)
	if err != nil {
		return nil, nil, err
	}

	cur := kp.Start
	tr := &Trace{Path: make([]gridgraph.Position, 0, len(moves)+1)}
	tr.Path = append(tr.Path, cur)
	seen := make(map[gridgraph.Position]bool)
	for i, m := range moves {
		next := cur.Step(m)
		if !gg.InBounds(next) {
			return tr, kp, &StepError{Index: i, Move: m, From: cur, To: next, Err: ErrOutOfBounds}
		}
		if !gg.Drivable(next) {
			return tr, kp, &StepError{Index: i, Move: m, From: cur, To: next, Err: ErrBlockedStep}
		}
		if gridgraph.IsTeleport(gg.Tile(next)) {
			if q, ok := kp.Partner[next]; ok {
				next = q
			}
		}
		cur = next
		tr.Path = append(tr.Path, cur)
		if gg.Tile(cur) == gridgraph.TileFlag && !seen[cur] {
			seen[cur] = true
			tr.Flags = append(tr.Flags, cur)
		}
	}

	return tr, kp, nil
}
