// Package gridgraph treats a 2D track grid of string tiles as a graph,
// locating the key points a route planner must sequence.
//
// What:
//
//   - GridGraph wraps a rectangular [][]string track with row-major indexing.
//   - Validate performs the structural checks a track must pass before planning.
//   - ExtractKeyPoints finds the start, every flag (row-major order) and every
//     teleport pair, and builds the symmetric teleport partner map.
//
// Tiles:
//
//   - "0" blocked, "1" road, "S" start, "F" flag.
//   - Any token beginning with "T" is a teleport label ("T1", "TA", ...). Both
//     cells sharing a label are paired; entering either relocates to the other.
//
// Complexity:
//
//   - NewGridGraph:     O(W×H) time and memory (deep copy).
//   - Validate:         O(W×H) time, O(T) memory for teleport counts.
//   - ExtractKeyPoints: O(W×H) time, O(F+T) memory.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: shape problems.
//   - ErrEmptyCell, ErrInvalidToken, ErrStartCount, ErrNoFlags, ErrTeleportCount:
//     reported by Validate inside a *ValidationError.
//   - ErrMissingStart, ErrMalformedTeleport: reported by ExtractKeyPoints.
package gridgraph
