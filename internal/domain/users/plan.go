package users

// Plan states. Records start in trial; the sweeper moves elapsed trials to
// expired, the billing webhook moves paying users to active. Neither ever
// moves a record back to trial.
const (
	PlanTrial   = "trial"
	PlanActive  = "active"
	PlanExpired = "expired"
)

func ValidPlan(p string) bool {
	switch p {
	case PlanTrial, PlanActive, PlanExpired:
		return true
	}
	return false
}
