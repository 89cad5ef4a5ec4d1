package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// handleWS upgrades the connection and answers envelopes until the client
// closes. Messages on one connection are handled in order.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Printf("[WS] upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	s.log.Printf("[WS] connected %s", r.RemoteAddr)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Printf("[WS] read: %v", err)
			}
			return
		}
		reply := s.dispatch(data)
		if err := conn.WriteJSON(reply); err != nil {
			s.log.Printf("[WS] write: %v", err)
			return
		}
	}
}

// dispatch turns one inbound envelope into its reply.
func (s *Server) dispatch(data []byte) Envelope {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return errorEnvelope("", fmt.Sprintf("Invalid message: %v", err))
	}
	switch env.Type {
	case MsgPing:
		return Envelope{Type: MsgPong}
	case MsgSolve:
		id := uuid.NewString()
		var req SolveRequest
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return errorEnvelope(id, fmt.Sprintf("Invalid solve payload: %v", err))
		}
		moves, _, err := s.solve(id, req)
		if err != nil {
			return errorEnvelope(id, detail(err))
		}
		payload, _ := json.Marshal(SolveResponse{RequestID: id, Moves: moves})
		return Envelope{Type: MsgSolution, Payload: payload}
	case MsgVerify:
		var req VerifyRequest
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return errorEnvelope("", fmt.Sprintf("Invalid verify payload: %v", err))
		}
		out, _, err := s.verify(req)
		if err != nil {
			return errorEnvelope("", detail(err))
		}
		payload, _ := json.Marshal(out)
		return Envelope{Type: MsgVerdict, Payload: payload}
	default:
		return errorEnvelope("", fmt.Sprintf("Unknown message type %q", env.Type))
	}
}

func errorEnvelope(id, msg string) Envelope {
	payload, _ := json.Marshal(ErrorResponse{RequestID: id, Detail: msg})

	return Envelope{Type: MsgError, Payload: payload}
}
