package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invoice-app/internal/domain/errs"
	"invoice-app/internal/domain/users"
	syncsvc "invoice-app/internal/sync"

	"github.com/gin-gonic/gin"
)

type stubUserStore struct {
	byExtID map[string]*users.User
	fail    error
}

func (s *stubUserStore) FindByExternalID(ctx context.Context, externalID string) (*users.User, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	u, ok := s.byExtID[externalID]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserStore) Insert(ctx context.Context, u *users.User) (*users.User, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	cp := *u
	cp.ID = "id-" + u.ExternalID
	s.byExtID[u.ExternalID] = &cp
	return &cp, nil
}

func (s *stubUserStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*users.User, error) {
	return nil, errs.ErrUserNotFound
}

func (s *stubUserStore) ScanExpiredTrials(ctx context.Context, now time.Time) ([]users.User, error) {
	return nil, nil
}

func (s *stubUserStore) TransitionPlan(ctx context.Context, id string, newPlan string) (*users.User, error) {
	return nil, errs.ErrUserNotFound
}

func newTestRouter(store *stubUserStore, externalID, email, name string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	reconciler := syncsvc.NewReconciler(store, 90*24*time.Hour, nil)
	h := NewHandler(reconciler)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if externalID != "" {
			c.Set("external_id", externalID)
		}
		c.Set("email", email)
		c.Set("name", name)
	})
	r.POST("/sync", h.SyncNow)
	r.GET("/sync/status", h.SyncStatus)
	return r
}

func TestSyncNow_CreatesAndReturnsRecord(t *testing.T) {
	store := &stubUserStore{byExtID: map[string]*users.User{}}
	r := newTestRouter(store, "u1", "a@x.com", "A")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sync", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp SyncResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Synced {
		t.Error("expected synced=true")
	}
	if resp.User.ExternalID != "u1" || resp.User.Plan != users.PlanTrial {
		t.Errorf("unexpected user payload: %+v", resp.User)
	}
}

func TestSyncNow_MissingPrincipalIsBadRequest(t *testing.T) {
	store := &stubUserStore{byExtID: map[string]*users.User{}}
	r := newTestRouter(store, "", "a@x.com", "A")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sync", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSyncNow_StoreUnavailableIsServerError(t *testing.T) {
	store := &stubUserStore{byExtID: map[string]*users.User{}, fail: errs.ErrStoreNotConfigured}
	r := newTestRouter(store, "u1", "a@x.com", "A")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sync", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "User store is not configured" {
		t.Errorf("expected configuration message, got %q", resp["error"])
	}
}

func TestSyncStatus_ReflectsStoreState(t *testing.T) {
	store := &stubUserStore{byExtID: map[string]*users.User{}}
	r := newTestRouter(store, "u1", "a@x.com", "A")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sync/status", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"synced":false}` {
		t.Fatalf("expected synced=false, got %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sync", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("sync failed: %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sync/status", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"synced":true}` {
		t.Fatalf("expected synced=true, got %d %s", w.Code, w.Body.String())
	}
}
