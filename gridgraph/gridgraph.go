package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular grid.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(grid Grid) (*GridGraph, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	tiles := make(Grid, h)
	for r := 0; r < h; r++ {
		tiles[r] = make([]string, w)
		copy(tiles[r], grid[r])
	}

	return &GridGraph{Width: w, Height: h, Tiles: tiles}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < gg.Height && p.Col >= 0 && p.Col < gg.Width
}

// Tile returns the token at p. p must be in bounds.
func (gg *GridGraph) Tile(p Position) string {
	return gg.Tiles[p.Row][p.Col]
}

// Drivable reports whether p is in bounds and not blocked.
func (gg *GridGraph) Drivable(p Position) bool {
	return gg.InBounds(p) && gg.Tiles[p.Row][p.Col] != TileBlocked
}

// Len returns the number of cells, W×H.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}

// Index maps p to its row-major index: Row*Width + Col.
// Complexity: O(1).
func (gg *GridGraph) Index(p Position) int {
	return p.Row*gg.Width + p.Col
}

// PositionOf converts a row-major index back to a Position.
// Complexity: O(1).
func (gg *GridGraph) PositionOf(idx int) Position {
	return Position{Row: idx / gg.Width, Col: idx % gg.Width}
}
