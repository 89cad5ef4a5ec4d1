// Package trackrun plans the shortest drive over a tile track: start at the
// start tile, pass every flag at least once in any order, and let paired
// teleport tiles relocate the car instantly when entered.
//
// Under the hood, everything is organized in subpackages:
//
//	gridgraph/ — track grid model, structural validation, key-point extraction
//	bfs/       — unit-cost traversal with teleport folding; pairwise move table
//	tsp/       — exact Held–Karp solver for the open (no return) tour
//	planner/   — Solve pipeline, move assembly and replay
//	tracks/    — JSON/YAML track catalog
//	server/    — HTTP + WebSocket service
//	cmd/trackd — service binary
//
// Quick example:
//
//	moves, err := planner.Solve(gridgraph.Grid{{"S", "F", "1"}})
//	// moves == []string{"right"}
package trackrun
