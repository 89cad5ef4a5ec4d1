package tsp

// OpenPath solves the path-variant TSP exactly on dist using Held–Karp.
//
// The input is an n×n matrix where dist[i][j] is the cost to go from i to j;
// a value ≥ Inf means "no edge". The diagonal must be zero.
//
// dp[mask][j] is the minimum cost to start at 0, visit exactly the vertices
// in mask (bit 0 always set) and end at j. Transitions extend a state by one
// unvisited vertex. For each (mask, j) the cheapest predecessor is kept; on
// equal cost the smaller predecessor index wins. The answer is the cheapest
// dp[full][j] with j != 0, smaller j on ties.
//
// It returns ErrInfeasible when no state covers every vertex with j != 0,
// which includes n == 1.
//
// Time complexity:   O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func OpenPath(dist [][]int) (PathResult, error) {
	n, err := validateDist(dist)
	if err != nil {
		return PathResult{}, err
	}

	// Maximum subset mask: all n bits set.
	allMask := (1 << n) - 1

	// --- 1. Allocate DP and parent tables ---
	dp := make([][]int, 1<<n)
	parent := make([][]int, 1<<n)
	for mask := 0; mask <= allMask; mask++ {
		dp[mask] = make([]int, n)
		parent[mask] = make([]int, n)
		for j := 0; j < n; j++ {
			dp[mask][j] = Inf
			parent[mask][j] = -1
		}
	}
	// Base case: only the start visited, standing on it.
	startMask := 1 << 0
	dp[startMask][0] = 0

	// --- 2. Fill DP for all masks that include vertex 0 ---
	for mask := 0; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j := 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue // j not in subset
			}
			prevMask := mask ^ (1 << j)
			// k ascending with strict < keeps the smallest predecessor on ties.
			for k := 0; k < n; k++ {
				if prevMask&(1<<k) == 0 || dp[prevMask][k] >= Inf {
					continue
				}
				c := dist[k][j]
				if c >= Inf {
					continue // no edge k→j
				}
				if cand := dp[prevMask][k] + c; cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// --- 3. Pick the cheapest end vertex ---
	best, last := Inf, -1
	for j := 1; j < n; j++ {
		if dp[allMask][j] < best {
			best, last = dp[allMask][j], j
		}
	}
	if last < 0 {
		return PathResult{}, ErrInfeasible
	}

	// --- 4. Reconstruct order from parent table ---
	order := make([]int, n)
	mask := allMask
	j := last
	for i := n - 1; i >= 1; i-- {
		order[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}
	order[0] = 0

	return PathResult{Order: order, Cost: best}, nil
}
