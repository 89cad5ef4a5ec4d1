package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/trackrun/gridgraph"
	"github.com/katalvlaran/trackrun/planner"
	"github.com/katalvlaran/trackrun/tracks"
)

// maxBodyBytes caps request bodies; a 1000×1000 grid fits comfortably.
const maxBodyBytes = 8 << 20

// Server serves the planner. It holds no per-request state; handlers may run
// concurrently.
type Server struct {
	cfg      Config
	catalog  *tracks.Catalog
	log      *log.Logger
	mux      *http.ServeMux
	upgrader websocket.Upgrader
}

// New wires routes for catalog. A nil logger falls back to log.Default().
func New(cfg Config, catalog *tracks.Catalog, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:     cfg,
		catalog: catalog,
		log:     logger,
		mux:     http.NewServeMux(),
	}
	s.upgrader = websocket.Upgrader{CheckOrigin: s.checkOrigin}

	s.mux.HandleFunc("GET /api/tracks", s.handleListTracks)
	s.mux.HandleFunc("GET /api/tracks/{id}", s.handleGetTrack)
	s.mux.HandleFunc("POST /api/validate", s.handleValidate)
	s.mux.HandleFunc("POST /api/solve", s.handleSolve)
	s.mux.HandleFunc("POST /api/verify", s.handleVerify)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /ws", s.handleWS)

	return s
}

// Handler returns the routed handler wrapped in request-ID and CORS middleware.
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.withCORS(s.mux))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Printf("[HTTP] listening on %s (%d tracks)", s.cfg.Addr, s.catalog.Len())
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	s.log.Printf("[HTTP] shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleListTracks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, TrackListResponse{Tracks: s.catalog.All()})
}

func (s *Server) handleGetTrack(w http.ResponseWriter, r *http.Request) {
	t, ok := s.catalog.Get(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: "Track not found"})
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: detail(err)})
		return
	}
	if err := gridgraph.Validate(req.Grid); err != nil {
		writeJSON(w, http.StatusOK, ValidateResponse{Valid: false, Message: detail(err)})
		return
	}
	writeJSON(w, http.StatusOK, ValidateResponse{Valid: true, Message: "OK"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	id := requestID(r.Context())
	var req SolveRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{RequestID: id, Detail: detail(err)})
		return
	}
	moves, status, err := s.solve(id, req)
	if err != nil {
		writeJSON(w, status, ErrorResponse{RequestID: id, Detail: detail(err)})
		return
	}
	writeJSON(w, http.StatusOK, SolveResponse{RequestID: id, Moves: moves})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: detail(err)})
		return
	}
	out, status, err := s.verify(req)
	if err != nil {
		writeJSON(w, status, ErrorResponse{Detail: detail(err)})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// grid resolves the request's grid, falling back to the catalog track.
func (s *Server) grid(g gridgraph.Grid, trackID string) (gridgraph.Grid, int, error) {
	if len(g) == 0 && trackID != "" {
		t, ok := s.catalog.Get(trackID)
		if !ok {
			return nil, http.StatusNotFound, fmt.Errorf("%w: %q", errTrackNotFound, trackID)
		}
		return t.Grid, http.StatusOK, nil
	}

	return g, http.StatusOK, nil
}

// solve resolves the request's grid and plans it through planner.PlanChecked.
// The returned status is meaningful only when err != nil.
func (s *Server) solve(id string, req SolveRequest) ([]string, int, error) {
	grid, status, err := s.grid(req.Grid, req.TrackID)
	if err != nil {
		return nil, status, err
	}

	start := time.Now()
	res, err := planner.PlanChecked(grid, s.cfg.MaxFlags)
	if err != nil {
		s.log.Printf("[SOLVE] id=%s failed after %v: %v", id, time.Since(start), err)
		return nil, http.StatusBadRequest, err
	}
	s.log.Printf("[SOLVE] id=%s flags=%d expanded=%d moves=%d took=%v",
		id, len(res.Points)-1, res.Expanded, len(res.Moves), time.Since(start))

	return res.MoveNames(), http.StatusOK, nil
}

// verify replays the request's moves on its grid. An undrivable move is a
// verdict, not a request error.
func (s *Server) verify(req VerifyRequest) (*VerifyResponse, int, error) {
	grid, status, err := s.grid(req.Grid, req.TrackID)
	if err != nil {
		return nil, status, err
	}
	if err := gridgraph.Validate(grid); err != nil {
		return nil, http.StatusBadRequest, err
	}

	tr, kp, err := planner.Replay(gridgraph.Normalize(grid), req.Moves)
	var se *planner.StepError
	switch {
	case errors.As(err, &se):
		return &VerifyResponse{
			Valid:        false,
			FlagsVisited: len(tr.Flags),
			FlagsTotal:   len(kp.Flags),
			Message:      se.Error(),
		}, http.StatusOK, nil
	case err != nil:
		return nil, http.StatusBadRequest, err
	}

	out := &VerifyResponse{
		Valid:        tr.VisitedAll(kp),
		FlagsVisited: len(tr.Flags),
		FlagsTotal:   len(kp.Flags),
		Message:      "OK",
	}
	if !out.Valid {
		out.Message = fmt.Sprintf("Visited %d of %d flags", out.FlagsVisited, out.FlagsTotal)
	}

	return out, http.StatusOK, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadBody, err)
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
