// Package events publishes conversation telemetry to NATS. The publisher is
// optional: the engine runs fine without one.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects emitted by the engine.
const (
	SubjectScamDetected         = "honeypot.scam.detected"
	SubjectConversationAdvanced = "honeypot.conversation.advanced"
)

// ScamDetected is published whenever a message crosses the scam threshold.
type ScamDetected struct {
	EventID        string  `json:"event_id"`
	ConversationID string  `json:"conversation_id"`
	Confidence     float64 `json:"confidence"`
	UPIIDs         int     `json:"upi_ids"`
	BankAccounts   int     `json:"bank_accounts"`
	IFSCCodes      int     `json:"ifsc_codes"`
	PhishingLinks  int     `json:"phishing_links"`
	PersonaState   string  `json:"persona_state"`
	Timestamp      string  `json:"timestamp"`
}

// ConversationAdvanced is published on every persona state change.
type ConversationAdvanced struct {
	ConversationID string `json:"conversation_id"`
	From           string `json:"from"`
	To             string `json:"to"`
	Timestamp      string `json:"timestamp"`
}

type Publisher struct {
	conn   *nats.Conn
	logger *slog.Logger
}

func NewPublisher(url, token string, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Publisher{conn: nc, logger: logger}, nil
}

func (p *Publisher) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return p.conn.Publish(subject, payload)
}

func (p *Publisher) Close() {
	p.conn.Close()
}
