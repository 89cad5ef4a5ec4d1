package tracks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trackrun/gridgraph"
)

// Format selects the decoder used by Parse.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatFor picks a Format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// LoadFile reads and validates a catalog file.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tracks: read %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse decodes data in the given format and validates every track.
func Parse(data []byte, format Format) (*Catalog, error) {
	var doc document
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("tracks: decode yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("tracks: decode json: %w", err)
		}
	}

	return New(doc.Tracks)
}

// New builds a Catalog from tracks, validating each one in order.
// A failing track yields "Invalid track '<id>': <reason>".
func New(tracks []Track) (*Catalog, error) {
	c := &Catalog{
		tracks: make([]Track, 0, len(tracks)),
		byID:   make(map[string]int, len(tracks)),
	}
	for i, t := range tracks {
		if t.ID == "" {
			return nil, fmt.Errorf("%w (entry %d)", ErrMissingID, i)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, t.ID)
		}
		if t.Name == "" {
			t.Name = t.ID
		}
		if err := gridgraph.Validate(t.Grid); err != nil {
			return nil, fmt.Errorf("%w: Invalid track '%s': %w", ErrInvalidTrack, t.ID, err)
		}
		c.byID[t.ID] = len(c.tracks)
		c.tracks = append(c.tracks, t)
	}

	return c, nil
}

// Len returns the number of tracks.
func (c *Catalog) Len() int { return len(c.tracks) }

// All returns the tracks in file order. The slice is a copy.
func (c *Catalog) All() []Track {
	return append([]Track(nil), c.tracks...)
}

// Get looks a track up by id.
func (c *Catalog) Get(id string) (Track, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Track{}, false
	}

	return c.tracks[i], true
}
