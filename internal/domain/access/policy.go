package access

import (
	"time"

	"invoice-app/internal/domain/users"
)

type Policy struct {
	State        State
	Capabilities []string
}

// Effective access for UI/product: trial|full|locked
func ComputeState(now time.Time, u users.User) State {
	switch u.Plan {
	case users.PlanActive:
		return StateFull
	case users.PlanTrial:
		// An elapsed trial the sweeper has not reached yet is already
		// locked from the product's point of view.
		if u.TrialEndsAt != nil && now.Before(*u.TrialEndsAt) {
			return StateTrial
		}
		return StateLocked
	default:
		return StateLocked
	}
}

func ComputePolicy(now time.Time, u users.User) Policy {
	state := ComputeState(now, u)
	return Policy{
		State:        state,
		Capabilities: CapabilitiesFor(state),
	}
}

func CapabilitiesFor(state State) []string {
	switch state {
	case StateFull:
		return []string{"invoices", "chat", "billing_portal"}
	case StateTrial:
		return []string{"invoices", "chat"}
	default:
		// locked users can still reach the billing portal to reactivate
		return []string{"billing_portal"}
	}
}
