// Package tsp provides an exact solver for the open (path) variant of the
// Travelling Salesman Problem on an integer distance matrix.
//
// OpenPath fixes vertex 0 as the start, visits every other vertex exactly
// once, and does not return to the start. It uses the Held–Karp
// dynamic-programming algorithm over bitmask subsets.
//
//   - Complexity: O(n²·2ⁿ)
//   - Memory:     O(n·2ⁿ)
//   - Supports "missing" edges via Inf.
//
// Ties are broken deterministically: among equal-cost predecessors the
// smaller index wins, and among equal-cost final vertices the smaller index
// wins. Repeated runs on the same matrix always yield the same order.
//
// Use this package for small instances only (n ≤ MaxVertices).
package tsp
