package sync

import (
	"errors"
	"net/http"

	"invoice-app/internal/domain/errs"
	syncsvc "invoice-app/internal/sync"

	"github.com/gin-gonic/gin"
)

// Handler exposes the manual "sync now" surface and the sync-status probe.
type Handler struct {
	reconciler *syncsvc.Reconciler
}

func NewHandler(reconciler *syncsvc.Reconciler) *Handler {
	return &Handler{reconciler: reconciler}
}

// POST /sync
func (h *Handler) SyncNow(c *gin.Context) {
	principal := syncsvc.Principal{
		ExternalID:  c.GetString("external_id"),
		Email:       c.GetString("email"),
		DisplayName: c.GetString("name"),
	}

	user, err := h.reconciler.Reconcile(c.Request.Context(), principal)
	if err != nil {
		status, msg := translateSyncError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, SyncResponse{
		Synced: true,
		User:   BuildSyncedUserDTO(user),
	})
}

// GET /sync/status
func (h *Handler) SyncStatus(c *gin.Context) {
	externalID := c.GetString("external_id")

	synced, err := h.reconciler.IsSynced(c.Request.Context(), externalID)
	if err != nil {
		status, msg := translateSyncError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"synced": synced})
}

// translateSyncError maps the error taxonomy onto transport, keeping the
// "not configured" and "transient failure" cases distinguishable for the
// frontend's retry prompt.
func translateSyncError(err error) (int, string) {
	switch {
	case errs.Is(err, errs.CodeInvalid):
		return http.StatusBadRequest, "Session is missing a user id; sign in again"
	case errors.Is(err, errs.ErrStoreNotConfigured):
		return http.StatusInternalServerError, "User store is not configured"
	case errs.Is(err, errs.CodeUnavailable):
		return http.StatusInternalServerError, "User store is unreachable; try again shortly"
	default:
		return http.StatusInternalServerError, "Sync failed"
	}
}
