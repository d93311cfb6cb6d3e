package api

import (
	"encoding/json"
	"net/http"

	"github.com/DeVyAN2006/honeypot-scam-api/internal/extractor"
)

// honeypotRequest tolerates any payload shape; only the fields below are
// read, everything else is ignored.
type honeypotRequest struct {
	ConversationID string `json:"conversation_id"`
	SessionID      string `json:"session_id"`
	Message        struct {
		Text string `json:"text"`
	} `json:"message"`
}

// envelope is the only response shape the honeypot routes emit. Every
// outcome, including malformed input, is HTTP 200 with this envelope; the
// extra fields are omitted on the degenerate paths.
type envelope struct {
	Status         string               `json:"status"`
	Reply          string               `json:"reply"`
	ConversationID string               `json:"conversation_id,omitempty"`
	IsScam         *bool                `json:"is_scam,omitempty"`
	Confidence     *float64             `json:"confidence,omitempty"`
	PersonaState   string               `json:"persona_state,omitempty"`
	Entities       *extractor.EntitySet `json:"entities,omitempty"`
}

// honeypot handles POST /api/honeypot.
func (s *Server) honeypot(w http.ResponseWriter, r *http.Request) {
	var req honeypotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, envelope{Status: "success", Reply: "Invalid input received."})
		return
	}

	if req.Message.Text == "" {
		writeEnvelope(w, envelope{Status: "success", Reply: "Invalid input received."})
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = req.SessionID
	}

	out := s.engine.Process(r.Context(), conversationID, req.Message.Text)

	writeEnvelope(w, envelope{
		Status:         "success",
		Reply:          out.Reply,
		ConversationID: out.ConversationID,
		IsScam:         &out.Verdict.IsScam,
		Confidence:     &out.Verdict.Confidence,
		PersonaState:   string(out.State),
		Entities:       &out.Entities,
	})
}

func writeEnvelope(w http.ResponseWriter, e envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(e)
}
