package store

import (
	"context"
	"errors"
	"time"

	"invoice-app/internal/domain/errs"
	"invoice-app/internal/domain/users"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// GormUserStore persists user records in Postgres through gorm.
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) FindByExternalID(ctx context.Context, externalID string) (*users.User, error) {
	if s.db == nil {
		return nil, errs.ErrStoreNotConfigured
	}

	var u users.User
	err := s.db.WithContext(ctx).Where("external_id = ?", externalID).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(errs.CodeUnavailable, "failed to query user store", err)
	}
	return &u, nil
}

func (s *GormUserStore) Insert(ctx context.Context, u *users.User) (*users.User, error) {
	if s.db == nil {
		return nil, errs.ErrStoreNotConfigured
	}

	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, errs.ErrDuplicateUser
		}
		return nil, errs.Wrap(errs.CodeUnavailable, "failed to insert user", err)
	}
	return u, nil
}

func (s *GormUserStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*users.User, error) {
	if s.db == nil {
		return nil, errs.ErrStoreNotConfigured
	}

	res := s.db.WithContext(ctx).Model(&users.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, errs.Wrap(errs.CodeUnavailable, "failed to update user", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, errs.ErrUserNotFound
	}

	var u users.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, errs.Wrap(errs.CodeUnavailable, "failed to reload user", err)
	}
	return &u, nil
}

func (s *GormUserStore) ScanExpiredTrials(ctx context.Context, now time.Time) ([]users.User, error) {
	if s.db == nil {
		return nil, errs.ErrStoreNotConfigured
	}

	var expired []users.User
	err := s.db.WithContext(ctx).
		Where("plan = ? AND trial_ends_at IS NOT NULL AND trial_ends_at <= ?", users.PlanTrial, now).
		Find(&expired).Error
	if err != nil {
		return nil, errs.Wrap(errs.CodeUnavailable, "failed to scan expired trials", err)
	}
	return expired, nil
}

func (s *GormUserStore) TransitionPlan(ctx context.Context, id string, newPlan string) (*users.User, error) {
	if s.db == nil {
		return nil, errs.ErrStoreNotConfigured
	}
	if !users.ValidPlan(newPlan) {
		return nil, errs.New(errs.CodeInvalid, "unknown plan "+newPlan)
	}

	// Conditional on the current plan so a racing sweep or webhook can
	// never transition the same record twice.
	res := s.db.WithContext(ctx).Model(&users.User{}).
		Where("id = ? AND plan = ?", id, users.PlanTrial).
		Update("plan", newPlan)
	if res.Error != nil {
		return nil, errs.Wrap(errs.CodeUnavailable, "failed to transition plan", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, errs.ErrUserNotFound
	}

	var u users.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, errs.Wrap(errs.CodeUnavailable, "failed to reload user", err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
