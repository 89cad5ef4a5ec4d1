package server

import (
	"errors"

	"github.com/katalvlaran/trackrun/gridgraph"
	"github.com/katalvlaran/trackrun/planner"
	"github.com/katalvlaran/trackrun/tsp"
)

var (
	errTrackNotFound = errors.New("server: track not found")
	errBadBody       = errors.New("server: invalid request body")
)

// detail maps an error to the message shown to API clients.
func detail(err error) string {
	var (
		ve *gridgraph.ValidationError
		te *gridgraph.TeleportError
		ue *planner.UnreachableError
		fe *planner.TooManyFlagsError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &te):
		return te.Error()
	case errors.As(err, &ue):
		return ue.Error()
	case errors.As(err, &fe):
		return fe.Error()
	case errors.Is(err, planner.ErrUnknownMove):
		return "Unknown move; expected up, down, left or right"
	case errors.Is(err, planner.ErrMissingStart):
		return "Grid missing start 'S'"
	case errors.Is(err, planner.ErrInfeasible):
		return "No feasible tour that visits all flags"
	case errors.Is(err, tsp.ErrTooLarge):
		return "Too many flags for the exact planner"
	case errors.Is(err, errTrackNotFound):
		return "Track not found"
	case errors.Is(err, errBadBody):
		return "Invalid request body"
	default:
		return err.Error()
	}
}
