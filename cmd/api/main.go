package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/hris-cloud/docs"
	"github.com/linskybing/hris-cloud/internal/api/middleware"
	"github.com/linskybing/hris-cloud/internal/api/routes"
	"github.com/linskybing/hris-cloud/internal/application"
	"github.com/linskybing/hris-cloud/internal/application/scoring"
	"github.com/linskybing/hris-cloud/internal/config"
	"github.com/linskybing/hris-cloud/internal/config/db"
	"github.com/linskybing/hris-cloud/internal/cron"
	"github.com/linskybing/hris-cloud/internal/cvtext"
	"github.com/linskybing/hris-cloud/internal/domain/applicant"
	"github.com/linskybing/hris-cloud/internal/llm"
	"github.com/linskybing/hris-cloud/internal/migrations"
	"github.com/linskybing/hris-cloud/internal/notify"
	"github.com/linskybing/hris-cloud/internal/repository"
	"github.com/linskybing/hris-cloud/internal/storage"
)

// @title HRIS Cloud API
// @version 1.0
// @description Recruitment pipeline, employee roster and policy assistant.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()
	if err := migrations.Run(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store storage.ObjectStore
	if minioStore, err := storage.NewMinioStore(ctx); err != nil {
		log.Printf("[storage] MinIO unavailable, using in-memory store: %v", err)
		store = storage.NewMemoryStore()
	} else {
		store = minioStore
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, store)
	services.Applicant.Reader = cvtext.NewReader(config.MaxCVSize)
	services.Applicant.Notifier = notify.New(config.ResendAPIKey, config.EmailFrom)

	gemini, err := llm.NewGemini(ctx, config.GeminiAPIKey, config.GeminiModel)
	var worker *scoring.Worker
	switch {
	case errors.Is(err, llm.ErrDisabled):
		log.Println("[llm] GEMINI_API_KEY not set, AI scoring and policy chat disabled")
	case err != nil:
		log.Fatalf("Failed to initialize Gemini: %v", err)
	default:
		services.Policy.Answerer = llm.NewAnswerer(gemini)
		worker = scoring.NewWorker(repos, llm.NewScorer(gemini), config.ScoringWorkers, config.ScoringPollInterval)
		worker.OnScored = func(a applicant.Applicant) {
			services.Watcher.Notify(a.ProjectID)
		}
		services.Applicant.Queue = worker
		worker.Start(ctx)
	}

	cleanupDone := cron.StartCleanupTask(ctx, services.Audit, config.AuditRetentionDays)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, services, repos)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Stop()
	}
	<-cleanupDone
	log.Println("Server stopped")
}
