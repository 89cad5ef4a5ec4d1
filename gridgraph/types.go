package gridgraph

import (
	"fmt"
	"strings"
)

// Tile tokens understood by the planner.
const (
	TileBlocked = "0"
	TileRoad    = "1"
	TileStart   = "S"
	TileFlag    = "F"

	// TeleportPrefix starts every teleport label.
	TeleportPrefix = "T"
)

// Grid is a rectangular table of tile tokens addressed as grid[row][col].
type Grid [][]string

// Position identifies a grid cell. It is comparable and usable as a map key.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the neighbor of p in direction d.
func (p Position) Step(d Direction) Position {
	off := d.Offset()
	return Position{Row: p.Row + off[0], Col: p.Col + off[1]}
}

// Direction is one of the four physical moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the moves in expansion order. Traversals depend on this
// order for reproducible parent links.
var Directions = [4]Direction{Up, Down, Left, Right}

var directionNames = [4]string{"up", "down", "left", "right"}

// Offset returns the (row, col) delta of d.
func (d Direction) Offset() [2]int {
	switch d {
	case Up:
		return [2]int{-1, 0}
	case Down:
		return [2]int{1, 0}
	case Left:
		return [2]int{0, -1}
	default:
		return [2]int{0, 1}
	}
}

// String returns the outward move name ("up", "down", "left", "right").
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection maps an outward move name back to its Direction.
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}

	return 0, false
}

// IsTeleport reports whether tile is a teleport label.
func IsTeleport(tile string) bool {
	return strings.HasPrefix(tile, TeleportPrefix)
}

// KeyPoints holds the result of ExtractKeyPoints.
//
// Flags keeps row-major scan order; Teleports keeps arrival order per label.
// Partner is symmetric: Partner[a]==b implies Partner[b]==a.
type KeyPoints struct {
	Start     Position
	Flags     []Position
	Teleports map[string][]Position
	Partner   map[Position]Position
}

// Points returns the canonical key-point sequence: start first, then flags.
// Index 0 is always the start.
func (k *KeyPoints) Points() []Position {
	pts := make([]Position, 0, len(k.Flags)+1)
	pts = append(pts, k.Start)

	return append(pts, k.Flags...)
}

// GridGraph is an immutable view over a validated-shape track grid.
// Width and Height define dimensions; Tiles[row][col] holds the tokens.
type GridGraph struct {
	Width, Height int
	Tiles         Grid
}
