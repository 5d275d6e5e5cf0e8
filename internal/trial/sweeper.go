package trial

import (
	"context"
	"time"

	"invoice-app/internal/domain/errs"
	"invoice-app/internal/domain/users"
	"invoice-app/internal/store"

	"go.uber.org/zap"
)

// Sweeper transitions elapsed trials to expired. Each record's transition
// is independent and conditional, so sweeps are safe to repeat and to run
// concurrently: a record already out of trial is skipped.
type Sweeper struct {
	store store.UserStore
	now   func() time.Time
	log   *zap.Logger
}

func NewSweeper(s store.UserStore, log *zap.Logger) *Sweeper {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sweeper{store: s, now: time.Now, log: log}
}

// SweepExpiredTrials scans for trials past their end timestamp and moves
// each to expired, returning how many records it transitioned. A store
// failure aborts the sweep; transitions already committed stay committed
// and the partial count is returned alongside the error. The next sweep
// picks up whatever this one missed.
func (s *Sweeper) SweepExpiredTrials(ctx context.Context) (int, error) {
	now := s.now()

	expired, err := s.store.ScanExpiredTrials(ctx, now)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range expired {
		_, err := s.store.TransitionPlan(ctx, expired[i].ID, users.PlanExpired)
		if err != nil {
			// Another sweep or a billing event got there first.
			if errs.Is(err, errs.CodeNotFound) {
				continue
			}
			return count, err
		}
		count++
	}

	if count > 0 {
		s.log.Info("expired trials swept", zap.Int("count", count))
	}
	return count, nil
}
