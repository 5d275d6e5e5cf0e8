package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the durable representation of an authenticated principal.
// ExternalID is the identity provider's stable subject and is set exactly
// once at creation; Email and DisplayName are refreshed on every sync.
type User struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	ExternalID  string `gorm:"column:external_id;not null;uniqueIndex:idx_users_external_id"`
	Email       string `gorm:"not null"`
	DisplayName string `gorm:"column:display_name"`

	Plan        string     `gorm:"type:varchar(20);not null;default:'trial'"`
	TrialEndsAt *time.Time `gorm:"column:trial_ends_at"`

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Plan == "" {
		u.Plan = PlanTrial
	}
	return nil
}

// TrialExpired reports whether the record is an elapsed trial. It is only
// meaningful while Plan == trial; other plans never re-trigger expiration.
func (u *User) TrialExpired(now time.Time) bool {
	return u.Plan == PlanTrial && u.TrialEndsAt != nil && !now.Before(*u.TrialEndsAt)
}
