package tsp

// PathCost sums dist over consecutive entries of order. It returns Inf if any
// hop is missing. An order of length ≤1 costs 0.
func PathCost(dist [][]int, order []int) int {
	total := 0
	for i := 1; i < len(order); i++ {
		c := dist[order[i-1]][order[i]]
		if c >= Inf {
			return Inf
		}
		total += c
	}

	return total
}

// IsPermutationFromZero reports whether order starts at 0 and lists each of
// 0..n-1 exactly once.
func IsPermutationFromZero(order []int, n int) bool {
	if len(order) != n || n == 0 || order[0] != 0 {
		return false
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
