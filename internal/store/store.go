package store

import (
	"context"
	"time"

	"invoice-app/internal/domain/users"
)

// UserStore is the persistence boundary for user records. Implementations
// map backend failures onto the errs taxonomy: absence is errs.CodeNotFound,
// a duplicate external id is errs.CodeConflict, and configuration or
// connectivity failures are errs.CodeUnavailable.
type UserStore interface {
	FindByExternalID(ctx context.Context, externalID string) (*users.User, error)

	// Insert persists a new record. Uniqueness of ExternalID is enforced
	// by the backend, not by the caller.
	Insert(ctx context.Context, u *users.User) (*users.User, error)

	// Update applies the given field set to one record atomically.
	Update(ctx context.Context, id string, fields map[string]interface{}) (*users.User, error)

	// ScanExpiredTrials returns all records still in trial whose
	// trial_ends_at is at or before now.
	ScanExpiredTrials(ctx context.Context, now time.Time) ([]users.User, error)

	// TransitionPlan moves a record out of trial into newPlan. A record
	// no longer in trial is reported as errs.CodeNotFound so concurrent
	// sweeps never double-process it.
	TransitionPlan(ctx context.Context, id string, newPlan string) (*users.User, error)
}
