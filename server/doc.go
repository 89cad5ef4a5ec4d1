// Package server exposes the planner and the track catalog over HTTP and a
// WebSocket channel.
//
// Routes:
//
//	GET  /api/tracks        list the catalog
//	GET  /api/tracks/{id}   one track
//	POST /api/validate      {"grid": [[...]]} → {"valid": bool, "message": string}
//	POST /api/solve         {"grid": [[...]]} or {"trackId": "..."} → {"moves": [...]}
//	POST /api/verify        {"grid" or "trackId", "moves": [...]} → {"valid": bool, ...}
//	GET  /healthz           {"status": "ok"}
//	GET  /ws                WebSocket; "solve" and "verify" envelopes
//
// Every failure of a solve, whether a validation problem or a planner error,
// is answered with 400 and {"detail": message}. Grids with more than
// Config.MaxFlags flags are refused before planning. Settings may come from a
// TOML file via LoadConfig.
package server
