package routes

import (
	authapi "invoice-app/internal/api/auth"
	"invoice-app/internal/api/billing"
	chatapi "invoice-app/internal/api/chat"
	debugapi "invoice-app/internal/api/debug"
	jobsapi "invoice-app/internal/api/jobs"
	stripewebhooks "invoice-app/internal/api/stripewebhook"
	syncapi "invoice-app/internal/api/sync"
	usersapi "invoice-app/internal/api/users"
	"invoice-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers carries the dependency-injected handler set built in main.
type Handlers struct {
	Auth *authapi.Handler
	Sync *syncapi.Handler
	Jobs *jobsapi.Handler
	Chat *chatapi.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/debug/env", debugapi.EnvCheck)

	public := r.Group("/")
	public.Use(middleware.SanitizeInputMiddleware())

	public.GET("/auth/google", h.Auth.GoogleStart)
	public.GET("/auth/google/callback", h.Auth.GoogleCallback)

	// Scheduled-job triggers; gated by CRON_SECRET when configured
	jobs := r.Group("/jobs")
	jobs.Use(middleware.CronAuthMiddleware())
	jobs.GET("/expire-trials", h.Jobs.ExpireTrials)
	jobs.POST("/expire-trials", h.Jobs.ExpireTrials)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.GET("/sync/status", h.Sync.SyncStatus)
	auth.POST("/sync", h.Sync.SyncNow)
	auth.POST("/billing-portal", billing.CreateBillingPortal)

	// Trial or active plan only
	active := auth.Group("/")
	active.Use(middleware.RequireActiveAccess(), middleware.SanitizeInputMiddleware())
	active.POST("/chat", h.Chat.Chat)
}
