package metrics

import "testing"

func TestGuessOutcomesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, o := range []string{OutcomeAccepted, OutcomeUnknownTeam, OutcomeSessionOver, OutcomeError} {
		if o == "" || seen[o] {
			t.Fatalf("outcome %q is empty or duplicated", o)
		}
		seen[o] = true
	}
	for _, key := range []string{AttrMethod, AttrPath, AttrStatus, AttrOutcome, AttrSource} {
		if key == "" {
			t.Fatal("expected attribute keys to be set")
		}
	}
}
