// Package patterns holds the keyword lists and compiled regexes shared by
// scam scoring and entity extraction. No logic lives here.
package patterns

import "regexp"

// ScamKeywords are generic scam-indicator words, matched case-insensitively.
var ScamKeywords = []string{
	"account", "blocked", "suspended", "verify",
	"fraud", "security", "alert", "urgent",
}

// UrgencyKeywords signal time pressure.
var UrgencyKeywords = []string{
	"urgent", "immediately", "now", "asap",
}

// PaymentKeywords signal a money ask.
var PaymentKeywords = []string{
	"pay", "payment", "transfer", "upi", "bank",
}

// Compiled once at init; matching always runs against the raw message so
// that IFSC casing is preserved.
var (
	// UPI handles: short alphanumeric token (dots, dashes, underscores
	// allowed), "@", then an alphabetic provider token of 2+ letters.
	UPI = regexp.MustCompile(`[a-zA-Z0-9.\-_]{2,}@[a-zA-Z]{2,}`)

	// Bank accounts: standalone run of 9-18 digits.
	BankAccount = regexp.MustCompile(`\b\d{9,18}\b`)

	// IFSC routing codes: 4 uppercase letters, literal 0, 6 uppercase
	// alphanumerics.
	IFSC = regexp.MustCompile(`\b[A-Z]{4}0[A-Z0-9]{6}\b`)

	// Links: http or https up to the next whitespace.
	URL = regexp.MustCompile(`https?://\S+`)
)
