package sync

import (
	"time"

	"invoice-app/internal/domain/users"
)

type SyncResponse struct {
	Synced bool          `json:"synced"`
	User   SyncedUserDTO `json:"user"`
}

type SyncedUserDTO struct {
	ID          string     `json:"id"`
	ExternalID  string     `json:"external_id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Plan        string     `json:"plan"`
	TrialEndsAt *time.Time `json:"trial_ends_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func BuildSyncedUserDTO(u *users.User) SyncedUserDTO {
	return SyncedUserDTO{
		ID:          u.ID,
		ExternalID:  u.ExternalID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Plan:        u.Plan,
		TrialEndsAt: u.TrialEndsAt,
		CreatedAt:   u.CreatedAt,
	}
}
