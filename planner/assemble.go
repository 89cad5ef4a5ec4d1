package planner

import (
	"fmt"

	"github.com/katalvlaran/trackrun/gridgraph"
)

// Assemble concatenates moves[a][b] for every consecutive pair (a, b) in order.
func Assemble(order []int, moves [][][]gridgraph.Direction) []gridgraph.Direction {
	total := 0
	for i := 1; i < len(order); i++ {
		total += len(moves[order[i-1]][order[i]])
	}
	out := make([]gridgraph.Direction, 0, total)
	for i := 1; i < len(order); i++ {
		out = append(out, moves[order[i-1]][order[i]]...)
	}

	return out
}

// Names translates directions to "up", "down", "left" and "right".
func Names(moves []gridgraph.Direction) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}

	return out
}

// ParseMoves is the inverse of Names.
func ParseMoves(names []string) ([]gridgraph.Direction, error) {
	out := make([]gridgraph.Direction, len(names))
	for i, n := range names {
		d, ok := gridgraph.ParseDirection(n)
		if !ok {
			return nil, fmt.Errorf("%w: %q at %d", ErrUnknownMove, n, i)
		}
		out[i] = d
	}

	return out, nil
}
