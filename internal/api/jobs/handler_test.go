package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invoice-app/config"
	"invoice-app/internal/app/http/middleware"
	"invoice-app/internal/domain/errs"
	"invoice-app/internal/domain/users"
	"invoice-app/internal/trial"

	"github.com/gin-gonic/gin"
)

type stubUserStore struct {
	expired []users.User
	plans   map[string]string
}

func (s *stubUserStore) FindByExternalID(ctx context.Context, externalID string) (*users.User, error) {
	return nil, errs.ErrUserNotFound
}

func (s *stubUserStore) Insert(ctx context.Context, u *users.User) (*users.User, error) {
	return nil, errs.ErrDuplicateUser
}

func (s *stubUserStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*users.User, error) {
	return nil, errs.ErrUserNotFound
}

func (s *stubUserStore) ScanExpiredTrials(ctx context.Context, now time.Time) ([]users.User, error) {
	return s.expired, nil
}

func (s *stubUserStore) TransitionPlan(ctx context.Context, id string, newPlan string) (*users.User, error) {
	if s.plans[id] != users.PlanTrial {
		return nil, errs.ErrUserNotFound
	}
	s.plans[id] = newPlan
	return &users.User{ID: id, Plan: newPlan}, nil
}

func newTestRouter(store *stubUserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(trial.NewSweeper(store, nil))

	r := gin.New()
	jobs := r.Group("/jobs")
	jobs.Use(middleware.CronAuthMiddleware())
	jobs.POST("/expire-trials", h.ExpireTrials)
	return r
}

func TestExpireTrials_ReturnsCount(t *testing.T) {
	config.CRON_SECRET = ""

	end := time.Now().Add(-time.Hour)
	store := &stubUserStore{
		expired: []users.User{{ID: "u1", Plan: users.PlanTrial, TrialEndsAt: &end}},
		plans:   map[string]string{"u1": users.PlanTrial},
	}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs/expire-trials", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success            bool   `json:"success"`
		ExpiredTrialsCount int    `json:"expiredTrialsCount"`
		Timestamp          string `json:"timestamp"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.ExpiredTrialsCount != 1 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if _, err := time.Parse(time.RFC3339, resp.Timestamp); err != nil {
		t.Errorf("timestamp not RFC3339: %q", resp.Timestamp)
	}
	if store.plans["u1"] != users.PlanExpired {
		t.Errorf("expected u1 expired, got %s", store.plans["u1"])
	}
}

func TestExpireTrials_RequiresSecretWhenConfigured(t *testing.T) {
	config.CRON_SECRET = "s3cret"
	defer func() { config.CRON_SECRET = "" }()

	store := &stubUserStore{plans: map[string]string{}}
	r := newTestRouter(store)

	// no token
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/jobs/expire-trials", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	// wrong token
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs/expire-trials", nil)
	req.Header.Set("Authorization", "Bearer nope")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", w.Code)
	}

	// correct token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/jobs/expire-trials", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with correct token, got %d: %s", w.Code, w.Body.String())
	}
}
