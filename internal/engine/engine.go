// Package engine wires scoring, extraction, persona advancement and reply
// synthesis into the per-message pipeline.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DeVyAN2006/honeypot-scam-api/internal/detector"
	"github.com/DeVyAN2006/honeypot-scam-api/internal/events"
	"github.com/DeVyAN2006/honeypot-scam-api/internal/extractor"
	"github.com/DeVyAN2006/honeypot-scam-api/internal/persona"
	"github.com/DeVyAN2006/honeypot-scam-api/internal/reply"
	"github.com/DeVyAN2006/honeypot-scam-api/internal/session"
)

// EventPublisher is the telemetry sink. Failures are logged and swallowed.
type EventPublisher interface {
	Publish(subject string, data any) error
}

// SafeReply is returned when the pipeline itself faults. The transport
// contract requires a usable reply no matter what.
const SafeReply = "Message processed safely."

// Outcome is everything the pipeline derived from one message.
type Outcome struct {
	ConversationID string              `json:"conversation_id"`
	Verdict        detector.Verdict    `json:"verdict"`
	Entities       extractor.EntitySet `json:"entities"`
	Previous       persona.State       `json:"previous_state"`
	State          persona.State       `json:"persona_state"`
	Reply          string              `json:"reply"`
}

type Engine struct {
	sessions  *session.Store
	synth     *reply.Synthesizer
	publisher EventPublisher
	logger    *slog.Logger
}

// New builds the engine. publisher may be nil.
func New(sessions *session.Store, synth *reply.Synthesizer, publisher EventPublisher, logger *slog.Logger) *Engine {
	return &Engine{
		sessions:  sessions,
		synth:     synth,
		publisher: publisher,
		logger:    logger,
	}
}

// Process runs the full pipeline for one inbound message. It never fails:
// an internal fault degrades to the safe default (non-scam, idle persona,
// neutral reply) instead of propagating.
func (e *Engine) Process(ctx context.Context, conversationID, text string) (out Outcome) {
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("pipeline fault, degrading to safe default",
				"conversation_id", conversationID, "panic", r)
			out = Outcome{
				ConversationID: conversationID,
				Previous:       persona.Idle,
				State:          persona.Idle,
				Reply:          SafeReply,
			}
		}
	}()

	verdict := detector.Score(text)
	entities := extractor.Extract(text)

	var previous persona.State
	next := e.sessions.Advance(conversationID, func(cur persona.State) persona.State {
		previous = cur
		return persona.Next(cur, verdict.IsScam, entities.HasPaymentEntities())
	})

	answer := e.synth.Reply(ctx, next, text, entities)

	e.logger.Info("message processed",
		"conversation_id", conversationID,
		"is_scam", verdict.IsScam,
		"confidence", verdict.Confidence,
		"state", string(next),
	)

	e.publish(conversationID, verdict, entities, previous, next)

	return Outcome{
		ConversationID: conversationID,
		Verdict:        verdict,
		Entities:       entities,
		Previous:       previous,
		State:          next,
		Reply:          answer,
	}
}

// Sessions returns the number of tracked conversations.
func (e *Engine) Sessions() int {
	return e.sessions.Len()
}

func (e *Engine) publish(conversationID string, verdict detector.Verdict, entities extractor.EntitySet, previous, next persona.State) {
	if e.publisher == nil {
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)

	if verdict.IsScam {
		evt := events.ScamDetected{
			EventID:        uuid.NewString(),
			ConversationID: conversationID,
			Confidence:     verdict.Confidence,
			UPIIDs:         len(entities.UPIIDs),
			BankAccounts:   len(entities.BankAccounts),
			IFSCCodes:      len(entities.IFSCCodes),
			PhishingLinks:  len(entities.PhishingLinks),
			PersonaState:   string(next),
			Timestamp:      now,
		}
		if err := e.publisher.Publish(events.SubjectScamDetected, evt); err != nil {
			e.logger.Warn("failed to publish scam event", "error", err)
		}
	}

	if previous != next {
		evt := events.ConversationAdvanced{
			ConversationID: conversationID,
			From:           string(previous),
			To:             string(next),
			Timestamp:      now,
		}
		if err := e.publisher.Publish(events.SubjectConversationAdvanced, evt); err != nil {
			e.logger.Warn("failed to publish state change", "error", err)
		}
	}
}
