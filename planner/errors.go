package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trackrun/gridgraph"
	"github.com/katalvlaran/trackrun/tsp"
)

// Errors surfaced by Solve. They alias the sentinels of the stage that
// raises them so errors.Is works against either package.
var (
	ErrMissingStart      = gridgraph.ErrMissingStart
	ErrMalformedTeleport = gridgraph.ErrMalformedTeleport
	ErrInfeasible        = tsp.ErrInfeasible

	// ErrUnreachableFlag is returned when a flag cannot be reached from the start.
	ErrUnreachableFlag = errors.New("planner: some flags are unreachable from start")

	// ErrBlockedStep is returned by Simulate when a move enters a blocked cell.
	ErrBlockedStep = errors.New("planner: move enters a blocked cell")
	// ErrOutOfBounds is returned by Simulate when a move leaves the grid.
	ErrOutOfBounds = errors.New("planner: move leaves the grid")
	// ErrUnknownMove is returned by ParseMoves for a name other than up/down/left/right.
	ErrUnknownMove = errors.New("planner: unknown move")

	// ErrTooManyFlags is returned by Prepare when a grid exceeds the flag limit.
	ErrTooManyFlags = errors.New("planner: too many flags")
	// ErrInconsistentPlan is returned by Plan when the optimizer's cost does
	// not match its own order.
	ErrInconsistentPlan = errors.New("planner: optimizer result is inconsistent")
)

// UnreachableError names the first flag, in scan order, that the start
// cannot reach.
type UnreachableError struct {
	Flag gridgraph.Position
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("Some flags are unreachable from start (flag at %v)", e.Flag)
}

func (e *UnreachableError) Unwrap() error { return ErrUnreachableFlag }

// TooManyFlagsError refuses a grid before the exponential optimizer runs.
type TooManyFlagsError struct {
	Count, Max int
}

func (e *TooManyFlagsError) Error() string {
	return fmt.Sprintf("Too many flags: %d (limit %d)", e.Count, e.Max)
}

func (e *TooManyFlagsError) Unwrap() error { return ErrTooManyFlags }

// StepError reports the first move of a replay that cannot be driven.
// Err is ErrOutOfBounds or ErrBlockedStep.
type StepError struct {
	Index int
	Move  gridgraph.Direction
	From  gridgraph.Position
	To    gridgraph.Position
	Err   error
}

func (e *StepError) Error() string {
	if errors.Is(e.Err, ErrOutOfBounds) {
		return fmt.Sprintf("Move %d (%v) from %v leaves the grid", e.Index, e.Move, e.From)
	}

	return fmt.Sprintf("Move %d (%v) from %v enters a blocked cell at %v", e.Index, e.Move, e.From, e.To)
}

func (e *StepError) Unwrap() error { return e.Err }
