// Package extractor pulls structured financial and contact artifacts out of
// free-text messages.
package extractor

import "github.com/DeVyAN2006/honeypot-scam-api/internal/patterns"

// Extract runs the four entity patterns over a message and returns all
// non-overlapping matches per pattern, in order of appearance. The zero
// value is returned for empty input; Extract never fails.
func Extract(message string) EntitySet {
	if message == "" {
		return EntitySet{}
	}

	return EntitySet{
		UPIIDs:        patterns.UPI.FindAllString(message, -1),
		BankAccounts:  patterns.BankAccount.FindAllString(message, -1),
		IFSCCodes:     patterns.IFSC.FindAllString(message, -1),
		PhishingLinks: patterns.URL.FindAllString(message, -1),
	}
}
