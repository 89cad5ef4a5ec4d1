package tracks

import (
	"errors"

	"github.com/katalvlaran/trackrun/gridgraph"
)

var (
	// ErrUnsupportedFormat is returned for file extensions other than .json, .yaml, .yml.
	ErrUnsupportedFormat = errors.New("tracks: unsupported file format")
	// ErrInvalidTrack wraps the validation failure of a single track.
	ErrInvalidTrack = errors.New("tracks: invalid track")
	// ErrDuplicateID is returned when two tracks share an id.
	ErrDuplicateID = errors.New("tracks: duplicate track id")
	// ErrMissingID is returned for a track without an id.
	ErrMissingID = errors.New("tracks: track id is required")
)

// Track is one playable grid.
type Track struct {
	ID   string         `json:"id" yaml:"id"`
	Name string         `json:"name" yaml:"name"`
	Grid gridgraph.Grid `json:"grid" yaml:"grid"`
}

// document is the on-disk shape.
type document struct {
	Tracks []Track `json:"tracks" yaml:"tracks"`
}

// Catalog is an ordered, read-only set of validated tracks.
// It is safe for concurrent readers.
type Catalog struct {
	tracks []Track
	byID   map[string]int
}
