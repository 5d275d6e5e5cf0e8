package access

type State string

const (
	StateTrial  State = "trial"
	StateFull   State = "full"
	StateLocked State = "locked"
)
