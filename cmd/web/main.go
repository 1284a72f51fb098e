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

	"go-jobboard/config"
	"go-jobboard/internal/delivery/http/web"
	"go-jobboard/internal/repository/postgres"
	"go-jobboard/internal/usecase"
	"go-jobboard/migrations"
	"go-jobboard/pkg/auth"
	"go-jobboard/pkg/database"
	"go-jobboard/pkg/logger"
	"go-jobboard/pkg/metrics"
	"go-jobboard/pkg/redis"
	"go-jobboard/pkg/security"
	"go-jobboard/pkg/storage"
	"go-jobboard/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board", "port", cfg.Port)

	ctx := context.Background()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl, database.PoolOptions{})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool, migrations.FS); err != nil {
		logger.Log.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	// 4. Session revocation: Redis when configured, in-process otherwise
	revoked := auth.NewMemoryRevocationStore()
	redisClient, err := redis.Connect(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case err == nil:
		defer redisClient.Close()
		revoked = auth.NewRedisRevocationStore(redisClient)
		logger.Log.Info("Redis connected, sessions revoked in Redis")
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Warn("Redis not configured, using in-memory session revocation")
	default:
		logger.Log.Warn("Redis unavailable, using in-memory session revocation", "error", err)
	}

	// 5. Resume storage
	files, err := storage.New(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to set up resume storage", "error", err)
		os.Exit(1)
	}

	audit := security.NewAuditLogger("jobboard", gin.Mode())
	defer func() { _ = audit.Sync() }()

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	savedJobRepo := postgres.NewSavedJobRepository(dbPool)

	// 7. Setup UseCases
	validate := validation.New()
	authUC := usecase.NewAuthUsecase(userRepo, validate)
	profileUC := usecase.NewProfileUsecase(profileRepo, files, validate, cfg.MaxResumeBytes)
	jobUC := usecase.NewJobUsecase(jobRepo, profileRepo, applicationRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, profileRepo, validate)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo, profileRepo)

	sessions, err := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		logger.Log.Error("Failed to set up sessions", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 8. Setup Router
	router, err := web.NewRouter(web.RouterDeps{
		AuthUC:        authUC,
		ProfileUC:     profileUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		SavedJobUC:    savedJobUC,
		Sessions:      sessions,
		Revoked:       revoked,
		Audit:         audit,
		Metrics:       metrics.New(reg),
		Logger:        logger.Log,
		Config:        cfg,
	})
	if err != nil {
		logger.Log.Error("Failed to build router", "error", err)
		os.Exit(1)
	}

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
