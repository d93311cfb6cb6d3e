package detector

import (
	"math"
	"strings"
	"testing"
)

func TestScore_EmptyInput(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"empty string", ""},
		{"whitespace only", "   \t\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.message)
			if got.IsScam {
				t.Errorf("Score(%q).IsScam = true, want false", tt.message)
			}
			if got.Confidence != 0.0 {
				t.Errorf("Score(%q).Confidence = %f, want 0.0", tt.message, got.Confidence)
			}
		})
	}
}

func TestScore_Benign(t *testing.T) {
	got := Score("Hello friend")
	if got.IsScam {
		t.Errorf("expected benign message, got IsScam=true (confidence %f)", got.Confidence)
	}
	if got.Confidence > Threshold {
		t.Errorf("benign confidence %f exceeds threshold", got.Confidence)
	}
}

func TestScore_LotteryScam(t *testing.T) {
	got := Score("You have won a lottery! Urgent! Send money to bank account 123456789.")
	if !got.IsScam {
		t.Errorf("expected scam verdict, got IsScam=false (confidence %f)", got.Confidence)
	}
	if got.Confidence <= Threshold {
		t.Errorf("expected confidence > %v, got %f", Threshold, got.Confidence)
	}
}

func TestScore_SignalWeights(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    float64
	}{
		{"single keyword", "your account", 0.1},
		{"two distinct keywords", "account blocked", 0.2},
		{"repeated keyword counts once", "account account account", 0.1},
		{"urgency bonus", "reply immediately", 0.2},
		// "urgent" is both a scam keyword and an urgency keyword.
		{"urgent double-dips", "urgent", 0.3},
		{"payment bonus", "please pay", 0.2},
		{"url bonus", "see http://example.com", 0.2},
		{"upi bonus", "handle abc@okhdfc", 0.3},
		// "abc@upi" also contains the payment keyword "upi".
		{"upi handle plus payment keyword", "send to abc@upi", 0.5},
		{"account number bonus", "use 123456789", 0.3},
		{"eight digits is not an account", "use 12345678", 0.0},
		{"nineteen digits is not an account", "use 1234567890123456789", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.message)
			if math.Abs(got.Confidence-tt.want) > 0.001 {
				t.Errorf("Score(%q).Confidence = %f, want %f", tt.message, got.Confidence, tt.want)
			}
		})
	}
}

func TestScore_ClampedAtOne(t *testing.T) {
	// Every signal at once pushes the raw sum well past 1.0.
	msg := "URGENT: account blocked suspended fraud security alert. Verify now, " +
		"pay at http://evil.example to handle abc@upi or account 123456789"
	got := Score(msg)
	if got.Confidence != 1.0 {
		t.Errorf("expected confidence clamped to 1.0, got %f", got.Confidence)
	}
	if !got.IsScam {
		t.Error("expected IsScam=true at full confidence")
	}
}

func TestScore_VerdictMatchesThreshold(t *testing.T) {
	// IsScam must be true iff confidence > 0.4, across a spread of inputs.
	messages := []string{
		"",
		"Hello friend",
		"account",
		"account blocked",
		"urgent payment",
		"urgent payment to abc@upi",
		"account blocked, verify urgently at https://evil.example",
		strings.Repeat("fraud alert urgent pay upi 123456789 http://x.com ", 3),
	}

	for _, msg := range messages {
		got := Score(msg)
		if got.Confidence < 0.0 || got.Confidence > 1.0 {
			t.Errorf("Score(%q).Confidence = %f out of range", msg, got.Confidence)
		}
		if got.IsScam != (got.Confidence > Threshold) {
			t.Errorf("Score(%q): IsScam=%v inconsistent with confidence %f", msg, got.IsScam, got.Confidence)
		}
	}
}

func TestScore_CaseInsensitiveKeywords(t *testing.T) {
	lower := Score("verify your account")
	upper := Score("VERIFY YOUR ACCOUNT")
	if lower.Confidence != upper.Confidence {
		t.Errorf("keyword matching should ignore case: %f vs %f", lower.Confidence, upper.Confidence)
	}
}
