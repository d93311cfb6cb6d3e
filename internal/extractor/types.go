package extractor

// EntitySet holds every artifact pulled out of a single message, per
// pattern, in order of appearance. Matches are a raw find-all projection:
// repeated text yields repeated entries.
type EntitySet struct {
	UPIIDs        []string `json:"upi_ids"`
	BankAccounts  []string `json:"bank_accounts"`
	IFSCCodes     []string `json:"ifsc_codes"`
	PhishingLinks []string `json:"phishing_links"`
}

// HasPaymentEntities reports whether the set contains anything a scammer
// could be paid through. IFSC codes alone do not qualify: a routing code
// without an account is not a payment destination.
func (e EntitySet) HasPaymentEntities() bool {
	return len(e.UPIIDs) > 0 || len(e.BankAccounts) > 0 || len(e.PhishingLinks) > 0
}
