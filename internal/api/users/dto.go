package users

import "time"

type MeResponse struct {
	User   UserDTO   `json:"user"`
	Trial  *TrialDTO `json:"trial"`
	Access AccessDTO `json:"access"`
}

type UserDTO struct {
	ID          string    `json:"id"`
	ExternalID  string    `json:"external_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Plan        string    `json:"plan"`
	CreatedAt   time.Time `json:"created_at"`
}

type TrialDTO struct {
	EndsAt   *time.Time `json:"ends_at"`
	DaysLeft *int       `json:"days_left"`
}

type AccessDTO struct {
	State        string   `json:"state"` // trial|full|locked
	Capabilities []string `json:"capabilities"`
}
