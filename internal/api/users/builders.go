package users

import (
	"time"

	"invoice-app/internal/domain/users"
)

func BuildUserDTO(u users.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		ExternalID:  u.ExternalID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Plan:        u.Plan,
		CreatedAt:   u.CreatedAt,
	}
}

func BuildTrialDTO(now time.Time, u users.User) *TrialDTO {
	if u.Plan != users.PlanTrial || u.TrialEndsAt == nil {
		return nil
	}

	d := 0
	if now.Before(*u.TrialEndsAt) {
		d = int(u.TrialEndsAt.Sub(now).Hours() / 24)
		if d < 0 {
			d = 0
		}
	}

	return &TrialDTO{
		EndsAt:   u.TrialEndsAt,
		DaysLeft: &d,
	}
}
