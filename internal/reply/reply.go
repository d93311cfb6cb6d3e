// Package reply produces the baiting response for each persona state,
// optionally via an external language-model generator with a deterministic
// fallback.
package reply

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/DeVyAN2006/honeypot-scam-api/internal/extractor"
	"github.com/DeVyAN2006/honeypot-scam-api/internal/persona"
)

// Generator is the external natural-language capability. Any failure is
// treated uniformly by the synthesizer; no generator detail leaks upward.
type Generator interface {
	Generate(ctx context.Context, system, userContext string, maxTokens int, temperature float64) (string, error)
}

const (
	maxTokens   = 60
	temperature = 0.9
)

const systemPrompt = `You are playing a non-technical, worried, trusting person on the other end of a suspicious conversation. You never accuse the sender of anything. You try to get them to repeat or re-share payment details. Reply in under two sentences.`

// Synthesizer builds replies. A nil generator means deterministic only.
type Synthesizer struct {
	gen     Generator
	timeout time.Duration
	logger  *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a synthesizer. rng drives the choice among the fixed reply
// candidates; pass a seeded source in tests for determinism.
func New(gen Generator, rng *rand.Rand, timeout time.Duration, logger *slog.Logger) *Synthesizer {
	return &Synthesizer{gen: gen, rng: rng, timeout: timeout, logger: logger}
}

// Fixed reply candidates per persona state.
var (
	idleReply = "Okay, noted. Thank you for the message."

	confusedReplies = []string{
		"Sorry, I don't really understand. What is this about?",
		"Wait, what happened to my account? Can you explain?",
		"I'm a bit confused, could you tell me that again slowly?",
	}

	trustingReplies = []string{
		"Oh no, I don't want any trouble. What should I do now?",
		"Okay, I believe you. Please tell me the steps.",
		"Alright, I will do whatever is needed. Just guide me.",
	}

	genericExtractingReplies = []string{
		"The payment did not go through on my end. Can you send the details once more?",
		"It says the transaction failed. Is there another way I can pay you?",
	}

	apologyReply = "Sorry, I didn't quite get that. Could you say it again?"
)

// Reply returns the response for the given persona state. It never fails and
// never returns an empty string: the generator gets one bounded attempt,
// after which the deterministic path answers.
func (s *Synthesizer) Reply(ctx context.Context, state persona.State, message string, entities extractor.EntitySet) string {
	if s.gen != nil {
		if text, ok := s.generate(ctx, state, message, entities); ok {
			return text
		}
	}
	return s.deterministic(state, entities)
}

func (s *Synthesizer) generate(ctx context.Context, state persona.State, message string, entities extractor.EntitySet) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	userCtx := fmt.Sprintf(
		"Persona state: %s\nScammer message: %s\nExtracted UPI ids: %s\nExtracted bank accounts: %s\nExtracted links: %s",
		state, message,
		strings.Join(entities.UPIIDs, ", "),
		strings.Join(entities.BankAccounts, ", "),
		strings.Join(entities.PhishingLinks, ", "),
	)

	text, err := s.gen.Generate(ctx, systemPrompt, userCtx, maxTokens, temperature)
	if err != nil {
		s.logger.Debug("generator failed, using deterministic reply", "state", string(state), "error", err)
		return "", false
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	return text, true
}

func (s *Synthesizer) deterministic(state persona.State, entities extractor.EntitySet) string {
	switch state {
	case persona.Idle:
		return idleReply
	case persona.Confused:
		return s.pick(confusedReplies)
	case persona.Trusting:
		return s.pick(trustingReplies)
	case persona.Extracting:
		switch {
		case len(entities.UPIIDs) > 0:
			return fmt.Sprintf("I tried paying %s but it keeps failing. Do you have another UPI id?", entities.UPIIDs[0])
		case len(entities.BankAccounts) > 0:
			return fmt.Sprintf("The transfer to account %s was rejected. Could you share the IFSC code for it?", entities.BankAccounts[0])
		case len(entities.PhishingLinks) > 0:
			return "That link does not open on my phone. Can you send a different one?"
		default:
			return s.pick(genericExtractingReplies)
		}
	default:
		return apologyReply
	}
}

func (s *Synthesizer) pick(candidates []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return candidates[s.rng.IntN(len(candidates))]
}
