package gridgraph

import "strings"

// Validate performs the structural checks a track must pass before it is
// handed to the planner:
//  1. non-empty, all rows of equal length;
//  2. every trimmed token is "0", "1", "S", "F" or begins with "T";
//  3. exactly one start and at least one flag;
//  4. every teleport label appears exactly twice.
//
// The first violation found is returned as a *ValidationError whose Message
// is suitable for track authors and whose cause is one of the package
// sentinels. Teleport labels are reported in first-seen order.
//
// Complexity: O(W×H).
func Validate(grid Grid) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return invalid(ErrEmptyGrid, "Grid must be non-empty")
	}
	cols := len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return invalid(ErrNonRectangular, "All rows must have equal length")
		}
	}

	var (
		starts, flags int
		counts        = make(map[string]int)
		labels        []string
	)
	for r, row := range grid {
		for c, raw := range row {
			cell := strings.TrimSpace(raw)
			if cell == "" {
				return invalid(ErrEmptyCell, "Empty cell at (%d,%d)", r, c)
			}
			switch {
			case cell == TileStart:
				starts++
			case cell == TileFlag:
				flags++
			case IsTeleport(cell):
				if _, seen := counts[cell]; !seen {
					labels = append(labels, cell)
				}
				counts[cell]++
			case cell == TileBlocked || cell == TileRoad:
			default:
				return invalid(ErrInvalidToken, "Invalid token '%s' at (%d,%d)", cell, r, c)
			}
		}
	}

	if starts != 1 {
		return invalid(ErrStartCount, "There must be exactly one start 'S'")
	}
	if flags < 1 {
		return invalid(ErrNoFlags, "There must be at least one flag 'F'")
	}
	for _, label := range labels {
		if n := counts[label]; n != 2 {
			return invalid(ErrTeleportCount, "Teleport %s must appear exactly twice (found %d)", label, n)
		}
	}

	return nil
}

// Normalize returns a copy of grid with every token trimmed of surrounding
// whitespace, matching what Validate accepted.
func Normalize(grid Grid) Grid {
	out := make(Grid, len(grid))
	for r, row := range grid {
		out[r] = make([]string, len(row))
		for c, cell := range row {
			out[r][c] = strings.TrimSpace(cell)
		}
	}

	return out
}

// CountFlags returns the number of flag tiles in grid.
func CountFlags(grid Grid) int {
	n := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell == TileFlag {
				n++
			}
		}
	}

	return n
}
