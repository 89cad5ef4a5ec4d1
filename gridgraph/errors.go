package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrEmptyCell indicates a cell holding only whitespace.
	ErrEmptyCell = errors.New("gridgraph: empty cell")
	// ErrInvalidToken indicates a token outside {0,1,S,F,T*}.
	ErrInvalidToken = errors.New("gridgraph: invalid token")
	// ErrStartCount indicates the grid does not hold exactly one start.
	ErrStartCount = errors.New("gridgraph: grid must contain exactly one start")
	// ErrNoFlags indicates the grid holds no flag.
	ErrNoFlags = errors.New("gridgraph: grid must contain at least one flag")
	// ErrTeleportCount indicates a teleport label not appearing exactly twice.
	ErrTeleportCount = errors.New("gridgraph: teleport label must appear exactly twice")

	// ErrMissingStart is returned by ExtractKeyPoints when no start tile exists.
	ErrMissingStart = errors.New("gridgraph: grid missing start 'S'")
	// ErrMalformedTeleport is returned by ExtractKeyPoints for an unpaired label.
	ErrMalformedTeleport = errors.New("gridgraph: malformed teleport")
)

// ValidationError describes why Validate rejected a grid. Message is the
// human-readable text shown to track authors; Err is the sentinel cause.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(cause error, format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...), Err: cause}
}

// TeleportError identifies the offending label of a malformed teleport.
type TeleportError struct {
	Label string
	Count int
}

func (e *TeleportError) Error() string {
	return fmt.Sprintf("Teleport %s must appear exactly twice (found %d)", e.Label, e.Count)
}

func (e *TeleportError) Unwrap() error { return ErrMalformedTeleport }
