package gridgraph

// ExtractKeyPoints scans gg once in row-major order and returns its key points:
//   - Start: the "S" cell (ErrMissingStart if none; the last one wins if the
//     grid was not validated and holds several).
//   - Flags: every "F" cell, in scan order.
//   - Teleports: cells grouped by their literal label, in scan order.
//   - Partner: the symmetric teleport lookup.
//
// Any label seen a number of times other than two yields a *TeleportError
// (wrapping ErrMalformedTeleport) for the first such label in scan order.
//
// ExtractKeyPoints does not check token legality; see Validate.
// Complexity: O(W×H).
func ExtractKeyPoints(gg *GridGraph) (*KeyPoints, error) {
	var (
		start    Position
		hasStart bool
		flags    []Position
		tps      = make(map[string][]Position)
		labels   []string
	)
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			p := Position{Row: r, Col: c}
			switch cell := gg.Tiles[r][c]; {
			case cell == TileStart:
				start, hasStart = p, true
			case cell == TileFlag:
				flags = append(flags, p)
			case IsTeleport(cell):
				if _, seen := tps[cell]; !seen {
					labels = append(labels, cell)
				}
				tps[cell] = append(tps[cell], p)
			}
		}
	}
	if !hasStart {
		return nil, ErrMissingStart
	}

	partner := make(map[Position]Position, 2*len(labels))
	for _, label := range labels {
		pts := tps[label]
		if len(pts) != 2 {
			return nil, &TeleportError{Label: label, Count: len(pts)}
		}
		partner[pts[0]] = pts[1]
		partner[pts[1]] = pts[0]
	}

	return &KeyPoints{Start: start, Flags: flags, Teleports: tps, Partner: partner}, nil
}
