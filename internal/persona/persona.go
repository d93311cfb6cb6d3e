// Package persona models how convincingly the fake victim behaves over the
// course of one conversation.
package persona

// State is the victim persona's engagement stage. States only move forward
// while the scammer keeps scamming; any non-scam message resets to Idle.
type State string

const (
	// Idle means no scam engagement yet (or engagement was reset).
	Idle State = "idle"
	// Confused plays a victim who doesn't understand what is happening.
	Confused State = "confused"
	// Trusting plays a victim who believes the scammer and will comply.
	Trusting State = "trusting"
	// Extracting actively baits the scammer into revealing payment details.
	Extracting State = "extracting"
)

// Next computes the persona state after one message. Pure function: same
// arguments, same answer.
//
// The persona escalates one stage per scam message. Reaching Extracting
// requires the scammer to have shown a payment destination (UPI handle,
// account number or link); until then the persona idles at Trusting.
// Extracting is terminal while the scam continues.
func Next(current State, isScam, hasPaymentEntities bool) State {
	if !isScam {
		return Idle
	}

	switch current {
	case Idle:
		return Confused
	case Confused:
		return Trusting
	case Trusting:
		if hasPaymentEntities {
			return Extracting
		}
		return Trusting
	case Extracting:
		return Extracting
	default:
		// Unknown states re-enter the ladder at the bottom.
		return Confused
	}
}
