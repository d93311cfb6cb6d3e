// Package detector scores inbound messages for scam likelihood.
package detector

import (
	"math"
	"strings"

	"github.com/DeVyAN2006/honeypot-scam-api/internal/patterns"
)

// Verdict is the scoring result for one message.
type Verdict struct {
	IsScam     bool    `json:"is_scam"`
	Confidence float64 `json:"confidence"`
}

// Threshold is the confidence above which a message is called a scam.
const Threshold = 0.4

// Signal weights. Keyword hits use the flat per-keyword variant: each
// distinct scam keyword contributes WeightKeyword, with no presence bonus.
const (
	WeightKeyword     = 0.1
	WeightUrgency     = 0.2
	WeightPayment     = 0.2
	WeightURL         = 0.2
	WeightUPI         = 0.3
	WeightBankAccount = 0.3
)

// Score computes a scam verdict for a message. Keyword matching is
// case-insensitive; regex signals run against the raw text so routing-code
// casing survives. Empty or whitespace-only input scores zero.
func Score(message string) Verdict {
	if strings.TrimSpace(message) == "" {
		return Verdict{}
	}

	msg := strings.ToLower(message)
	score := 0.0

	for _, w := range patterns.ScamKeywords {
		if strings.Contains(msg, w) {
			score += WeightKeyword
		}
	}
	if containsAny(msg, patterns.UrgencyKeywords) {
		score += WeightUrgency
	}
	if containsAny(msg, patterns.PaymentKeywords) {
		score += WeightPayment
	}
	if patterns.URL.MatchString(message) {
		score += WeightURL
	}
	if patterns.UPI.MatchString(message) {
		score += WeightUPI
	}
	if patterns.BankAccount.MatchString(message) {
		score += WeightBankAccount
	}

	confidence := clamp(math.Round(score*100) / 100)
	return Verdict{
		IsScam:     confidence > Threshold,
		Confidence: confidence,
	}
}

func containsAny(msg string, words []string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

func clamp(score float64) float64 {
	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
