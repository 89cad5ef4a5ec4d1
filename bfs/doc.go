// Package bfs provides the breadth-first traversal used to compute shortest
// move sequences between key points on a track grid.
//
// What
//
//   - Walk explores a gridgraph.GridGraph from one source cell in FIFO order,
//     where every physical step (up, down, left, right) costs exactly 1.
//   - Stepping onto a teleport tile relocates the traveler to the paired tile
//     within that same step: the landing cell, not the teleport cell, receives
//     the distance and parent link, and the recorded move is the physical
//     direction of the step.
//   - Pairwise runs Walk from every key point and tabulates distances and
//     move sequences for every ordered pair.
//
// Determinism
//
//	Neighbors are expanded in the fixed order up, down, left, right, and a
//	cell's distance is only overwritten on a strict improvement. Parent links,
//	and therefore reconstructed move sequences, are fully reproducible.
//
// Unreachable cells
//
//	Cells never reached keep the Unreached sentinel. Unreachable pairs in a
//	PairTable carry Unreached and an empty move list; they are represented,
//	never reported as errors, so the caller decides feasibility.
//
// Complexity (C = W×H cells, K = key points)
//
//   - Walk:     O(C) time, O(C) memory.
//   - Pairwise: O(K·C) time, O(C + K²·L) memory (L = longest move list).
package bfs
