// Package planner computes the shortest move list that drives from a track's
// start tile through every flag tile, honoring teleport pairs.
//
// Pipeline
//
//	grid → key points → pairwise distance/move table → visit order → move list
//
//  1. gridgraph.ExtractKeyPoints finds the start, flags and teleport pairs.
//  2. bfs.Pairwise computes distances and moves between every key point.
//  3. Every flag must be reachable from the start (ErrUnreachableFlag).
//  4. tsp.OpenPath orders the flags to minimize total distance.
//  5. Assemble concatenates the per-hop moves.
//
// Solve is pure and allocates everything per call; concurrent calls share no
// state. The optimizer is exponential in the number of flags; PlanChecked
// validates, trims and bounds untrusted grids before planning them.
//
// Replay drives a move list on a grid and reports which flags it reached.
//
// Errors
//
//   - ErrMissingStart, ErrMalformedTeleport (a *gridgraph.TeleportError).
//   - ErrUnreachableFlag (an *UnreachableError naming the first such flag).
//   - ErrInfeasible when the optimizer finds no covering order.
//   - ErrTooManyFlags (a *TooManyFlagsError) and validation errors from Prepare.
//   - ErrUnknownMove, ErrBlockedStep, ErrOutOfBounds (a *StepError) from Replay.
//   - Shape errors from gridgraph.NewGridGraph.
package planner
