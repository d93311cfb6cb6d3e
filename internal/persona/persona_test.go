package persona

import "testing"

func TestNext_TransitionTable(t *testing.T) {
	tests := []struct {
		name       string
		current    State
		isScam     bool
		hasPayment bool
		want       State
	}{
		{"idle stays idle on benign", Idle, false, false, Idle},
		{"idle to confused", Idle, true, false, Confused},
		{"idle to confused even with payment entities", Idle, true, true, Confused},
		{"confused resets on benign", Confused, false, false, Idle},
		{"confused to trusting", Confused, true, false, Trusting},
		{"confused to trusting with payment entities", Confused, true, true, Trusting},
		{"trusting resets on benign", Trusting, false, true, Idle},
		{"trusting holds without payment entities", Trusting, true, false, Trusting},
		{"trusting to extracting", Trusting, true, true, Extracting},
		{"extracting resets on benign", Extracting, false, false, Idle},
		{"extracting is terminal", Extracting, true, false, Extracting},
		{"extracting is terminal with payment entities", Extracting, true, true, Extracting},
		{"unknown state rejoins at confused", State("bogus"), true, false, Confused},
		{"unknown state resets on benign", State("bogus"), false, false, Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.current, tt.isScam, tt.hasPayment)
			if got != tt.want {
				t.Errorf("Next(%s, %v, %v) = %s, want %s", tt.current, tt.isScam, tt.hasPayment, got, tt.want)
			}
		})
	}
}

func TestNext_Pure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Next(Trusting, true, true); got != Extracting {
			t.Fatalf("call %d: Next(Trusting, true, true) = %s, want %s", i, got, Extracting)
		}
	}
}

func TestNext_EscalationPath(t *testing.T) {
	// Full baiting arc: two scam messages climb to trusting, a payment
	// destination tips it into extracting.
	s := Idle
	s = Next(s, true, false)
	if s != Confused {
		t.Fatalf("after msg1: %s, want %s", s, Confused)
	}
	s = Next(s, true, false)
	if s != Trusting {
		t.Fatalf("after msg2: %s, want %s", s, Trusting)
	}
	s = Next(s, true, true)
	if s != Extracting {
		t.Fatalf("after msg3: %s, want %s", s, Extracting)
	}
}
