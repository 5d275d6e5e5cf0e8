package main

import (
	"context"
	"log"
	"os"
	"time"

	"invoice-app/config"
	"invoice-app/database"
	authapi "invoice-app/internal/api/auth"
	chatapi "invoice-app/internal/api/chat"
	jobsapi "invoice-app/internal/api/jobs"
	syncapi "invoice-app/internal/api/sync"
	routes "invoice-app/internal/app/http"
	"invoice-app/internal/infra/genai"
	"invoice-app/internal/store"
	syncsvc "invoice-app/internal/sync"
	"invoice-app/internal/trial"
	"invoice-app/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	zlog, err := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_ENCODING"))
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	userStore := store.NewGormUserStore(database.DB)
	trialPeriod := time.Duration(config.TRIAL_PERIOD_DAYS) * 24 * time.Hour

	reconciler := syncsvc.NewReconciler(userStore, trialPeriod, zlog)
	sweeper := trial.NewSweeper(userStore, zlog)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, routes.Handlers{
		Auth: authapi.NewHandler(reconciler),
		Sync: syncapi.NewHandler(reconciler),
		Jobs: jobsapi.NewHandler(sweeper),
		Chat: chatapi.NewHandler(genai.NewClient(config.GEMINI_API_KEY)),
	})

	// Optional in-process sweep; normally an external scheduler hits
	// /jobs/expire-trials instead.
	if config.SWEEP_SCHEDULE != "" {
		c := cron.New()
		_, err := c.AddFunc(config.SWEEP_SCHEDULE, func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if _, err := sweeper.SweepExpiredTrials(ctx); err != nil {
				zlog.Error("scheduled sweep failed", zap.Error(err))
			}
		})
		if err != nil {
			log.Fatal("Invalid SWEEP_SCHEDULE:", err)
		}
		c.Start()
		defer c.Stop()
		zlog.Info("in-process sweep scheduled", zap.String("cadence", config.SWEEP_SCHEDULE))
	}

	r.Run(":" + config.PORT)
}
