package tsp

import (
	"errors"
	"math"
)

// Inf marks a missing edge. Any entry ≥ Inf is never relaxed.
const Inf = math.MaxInt32

// MaxVertices bounds n. The dp and parent tables hold 2ⁿ×n ints each,
// about 320 MiB together at n = 20.
const MaxVertices = 20

var (
	// ErrEmptyMatrix is returned for a matrix with no rows.
	ErrEmptyMatrix = errors.New("tsp: empty matrix")
	// ErrNonSquare is returned when a row length differs from n.
	ErrNonSquare = errors.New("tsp: matrix is not square")
	// ErrNonZeroDiagonal is returned when dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("tsp: self-distance must be 0")
	// ErrNegativeWeight is returned for a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")
	// ErrTooLarge is returned when n exceeds MaxVertices.
	ErrTooLarge = errors.New("tsp: too many vertices for exact solver")
	// ErrInfeasible is returned when no path covers every vertex.
	ErrInfeasible = errors.New("tsp: no feasible path visits every vertex")
)

// PathResult holds the outcome of OpenPath.
type PathResult struct {
	// Order is a permutation of 0..n-1 beginning with 0.
	Order []int

	// Cost is the sum of dist along consecutive Order entries.
	Cost int
}
