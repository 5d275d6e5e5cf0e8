package sync

import (
	"context"
	"time"

	"invoice-app/internal/domain/errs"
	"invoice-app/internal/domain/users"
	"invoice-app/internal/store"

	"go.uber.org/zap"
)

// Principal is the authenticated identity handed over by the identity
// provider. It is trusted verbatim; the provider owns it.
type Principal struct {
	ExternalID  string
	Email       string
	DisplayName string
}

// Reconciler ensures a current user record exists for a principal.
type Reconciler struct {
	store       store.UserStore
	trialPeriod time.Duration
	now         func() time.Time
	log         *zap.Logger
}

func NewReconciler(s store.UserStore, trialPeriod time.Duration, log *zap.Logger) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{
		store:       s,
		trialPeriod: trialPeriod,
		now:         time.Now,
		log:         log,
	}
}

// Reconcile looks up the record for p.ExternalID, creating it on first
// sight with a fresh trial, and refreshing the mutable identity fields
// otherwise. It performs zero or one write per call. A creation race is
// resolved by re-reading the winning record; plan state is never touched.
func (r *Reconciler) Reconcile(ctx context.Context, p Principal) (*users.User, error) {
	if p.ExternalID == "" {
		return nil, errs.ErrInvalidPrincipal
	}

	existing, err := r.store.FindByExternalID(ctx, p.ExternalID)
	switch {
	case err == nil:
		return r.refresh(ctx, existing, p)

	case errs.Is(err, errs.CodeNotFound):
		return r.create(ctx, p)

	default:
		return nil, err
	}
}

// IsSynced reports whether a record exists for the external id. Absence is
// a valid state, not an error.
func (r *Reconciler) IsSynced(ctx context.Context, externalID string) (bool, error) {
	if externalID == "" {
		return false, errs.ErrInvalidPrincipal
	}

	_, err := r.store.FindByExternalID(ctx, externalID)
	if err != nil {
		if errs.Is(err, errs.CodeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Reconciler) create(ctx context.Context, p Principal) (*users.User, error) {
	trialEnd := r.now().Add(r.trialPeriod)
	record := &users.User{
		ExternalID:  p.ExternalID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Plan:        users.PlanTrial,
		TrialEndsAt: &trialEnd,
	}

	created, err := r.store.Insert(ctx, record)
	if err == nil {
		r.log.Info("created user record",
			zap.String("external_id", p.ExternalID),
			zap.Time("trial_ends_at", trialEnd))
		return created, nil
	}

	// Lost the creation race: another reconcile inserted the record
	// between our read and write. The store's uniqueness guarantee is
	// the arbiter; take the winner and fall through to the update path.
	if errs.Is(err, errs.CodeConflict) {
		winner, ferr := r.store.FindByExternalID(ctx, p.ExternalID)
		if ferr != nil {
			return nil, ferr
		}
		return r.refresh(ctx, winner, p)
	}

	return nil, err
}

// refresh updates the mutable identity fields when they drifted from the
// provider. Plan and trial window are left untouched; an unchanged
// principal causes no write at all.
func (r *Reconciler) refresh(ctx context.Context, u *users.User, p Principal) (*users.User, error) {
	fields := map[string]interface{}{}
	if p.Email != "" && p.Email != u.Email {
		fields["email"] = p.Email
	}
	if p.DisplayName != u.DisplayName {
		fields["display_name"] = p.DisplayName
	}
	if len(fields) == 0 {
		return u, nil
	}

	updated, err := r.store.Update(ctx, u.ID, fields)
	if err != nil {
		return nil, err
	}
	r.log.Info("refreshed user record",
		zap.String("external_id", p.ExternalID),
		zap.Int("fields", len(fields)))
	return updated, nil
}
