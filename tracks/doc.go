// Package tracks loads the catalog of playable tracks from a JSON or YAML
// file. Every track is validated with gridgraph.Validate at load time, so a
// loaded Catalog only ever holds well-formed grids.
//
// File shape (JSON shown; YAML uses the same keys):
//
//	{"tracks": [{"id": "loop", "name": "Loop", "grid": [["S","1"],["F","1"]]}]}
//
// A missing name defaults to the id. IDs must be unique and non-empty.
package tracks
