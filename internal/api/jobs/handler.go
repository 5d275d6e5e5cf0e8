package jobs

import (
	"errors"
	"net/http"
	"time"

	"invoice-app/internal/domain/errs"
	"invoice-app/internal/trial"

	"github.com/gin-gonic/gin"
)

// Handler exposes the scheduled-job trigger for the trial sweeper.
type Handler struct {
	sweeper *trial.Sweeper
}

func NewHandler(sweeper *trial.Sweeper) *Handler {
	return &Handler{sweeper: sweeper}
}

// GET|POST /jobs/expire-trials
func (h *Handler) ExpireTrials(c *gin.Context) {
	count, err := h.sweeper.SweepExpiredTrials(c.Request.Context())
	if err != nil {
		msg := "Sweep aborted; store unreachable"
		if errors.Is(err, errs.ErrStoreNotConfigured) {
			msg = "Sweep aborted; user store is not configured"
		}
		// Transitions committed before the failure are retained; the
		// next run picks up the remainder.
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":            false,
			"error":              msg,
			"expiredTrialsCount": count,
			"timestamp":          time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"expiredTrialsCount": count,
		"timestamp":          time.Now().UTC().Format(time.RFC3339),
	})
}
