package tsp

import "fmt"

// validateDist checks shape, diagonal and sign. It returns n on success.
// Complexity: O(n²).
func validateDist(dist [][]int) (int, error) {
	n := len(dist)
	if n == 0 {
		return 0, ErrEmptyMatrix
	}
	if n > MaxVertices {
		return 0, fmt.Errorf("%w: n=%d, max %d", ErrTooLarge, n, MaxVertices)
	}
	for i := 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, fmt.Errorf("%w: row %d length %d, want %d", ErrNonSquare, i, len(dist[i]), n)
		}
		if dist[i][i] != 0 {
			return 0, fmt.Errorf("%w: dist[%d][%d]=%d", ErrNonZeroDiagonal, i, i, dist[i][i])
		}
		for j := 0; j < n; j++ {
			if dist[i][j] < 0 {
				return 0, fmt.Errorf("%w: dist[%d][%d]=%d", ErrNegativeWeight, i, j, dist[i][j])
			}
		}
	}

	return n, nil
}
