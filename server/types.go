package server

import (
	"encoding/json"

	"github.com/katalvlaran/trackrun/gridgraph"
	"github.com/katalvlaran/trackrun/tracks"
)

// TrackListResponse is returned by GET /api/tracks.
type TrackListResponse struct {
	Tracks []tracks.Track `json:"tracks"`
}

// ValidateRequest is the body of POST /api/validate.
type ValidateRequest struct {
	Grid gridgraph.Grid `json:"grid"`
}

// ValidateResponse reports the validation outcome.
type ValidateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// SolveRequest is the body of POST /api/solve and of "solve" envelopes.
// TrackID is used when Grid is empty.
type SolveRequest struct {
	Grid    gridgraph.Grid `json:"grid,omitempty"`
	TrackID string         `json:"trackId,omitempty"`
}

// SolveResponse carries the planned moves.
type SolveResponse struct {
	RequestID string   `json:"requestId,omitempty"`
	Moves     []string `json:"moves"`
}

// VerifyRequest is the body of POST /api/verify and of "verify" envelopes.
// TrackID is used when Grid is empty.
type VerifyRequest struct {
	Grid    gridgraph.Grid `json:"grid,omitempty"`
	TrackID string         `json:"trackId,omitempty"`
	Moves   []string       `json:"moves"`
}

// VerifyResponse reports whether a move list drives over every flag.
type VerifyResponse struct {
	Valid        bool   `json:"valid"`
	FlagsVisited int    `json:"flagsVisited"`
	FlagsTotal   int    `json:"flagsTotal"`
	Message      string `json:"message"`
}

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	RequestID string `json:"requestId,omitempty"`
	Detail    string `json:"detail"`
}

// Envelope frames every WebSocket message.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WebSocket message types.
const (
	MsgSolve    = "solve"
	MsgSolution = "solution"
	MsgVerify   = "verify"
	MsgVerdict  = "verdict"
	MsgError    = "error"
	MsgPing     = "ping"
	MsgPong     = "pong"
)
