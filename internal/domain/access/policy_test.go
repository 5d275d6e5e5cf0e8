package access

import (
	"testing"
	"time"

	"invoice-app/internal/domain/users"
)

func TestComputeState(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	cases := []struct {
		name string
		user users.User
		want State
	}{
		{"active plan", users.User{Plan: users.PlanActive}, StateFull},
		{"running trial", users.User{Plan: users.PlanTrial, TrialEndsAt: &future}, StateTrial},
		{"elapsed trial before sweep", users.User{Plan: users.PlanTrial, TrialEndsAt: &past}, StateLocked},
		{"trial without end date", users.User{Plan: users.PlanTrial}, StateLocked},
		{"expired plan", users.User{Plan: users.PlanExpired, TrialEndsAt: &past}, StateLocked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeState(now, tc.user); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestCapabilitiesFor(t *testing.T) {
	if caps := CapabilitiesFor(StateLocked); len(caps) != 1 || caps[0] != "billing_portal" {
		t.Errorf("locked users should only keep the billing portal, got %v", caps)
	}

	full := CapabilitiesFor(StateFull)
	trial := CapabilitiesFor(StateTrial)
	if len(full) <= len(trial) {
		t.Errorf("full access should grant more than trial: full=%v trial=%v", full, trial)
	}
	for _, c := range trial {
		if c == "chat" {
			return
		}
	}
	t.Errorf("trial users should have chat, got %v", trial)
}
