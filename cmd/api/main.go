package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/silverpath/funnel-api/docs"
	"github.com/silverpath/funnel-api/internal/cache"
	"github.com/silverpath/funnel-api/internal/config"
	"github.com/silverpath/funnel-api/internal/database"
	"github.com/silverpath/funnel-api/internal/http/handler"
	"github.com/silverpath/funnel-api/internal/http/middleware"
	"github.com/silverpath/funnel-api/internal/http/router"
	"github.com/silverpath/funnel-api/internal/jobs"
	"github.com/silverpath/funnel-api/internal/logger"
	"github.com/silverpath/funnel-api/internal/repository"
	"github.com/silverpath/funnel-api/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Silverpath Funnel API
// @version 1.0
// @description Senior marketing readiness funnel: company intake, scored assessment and consultation booking
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@silverpath.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
		zap.String("store", basicCfg.Database.Driver),
	)

	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "funnel-api-staging.silverpath.io"
	case "production":
		docs.SwaggerInfo.Host = "api.silverpath.io"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// In development secrets come from the environment; in staging and
	// production they may come from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	store, db, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() {
			if err := database.Close(db); err != nil {
				log.Warn("Error closing database", zap.Error(err))
			}
		}()
	}

	checks := map[string]router.HealthCheck{
		"database": store.Ping,
	}

	// Results cache is optional; the API recomputes results without it
	var resultsCache cache.ResultsCache = cache.NoopResultsCache{}
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn("Redis connection failed, continuing without results cache",
				zap.String("address", cfg.Redis.Address),
				zap.Error(err),
			)
		} else {
			resultsCache = cache.NewRedisResultsCache(redisClient, cfg.Redis.ResultsTTLDuration())
			checks["redis"] = func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			}
			log.Info("Results cache enabled",
				zap.String("address", cfg.Redis.Address),
				zap.Duration("ttl", cfg.Redis.ResultsTTLDuration()),
			)
		}
	}

	// Initialize services
	companyService := service.NewCompanyService(store, log)
	assessmentService := service.NewAssessmentService(store, store, resultsCache, log)
	consultationService := service.NewConsultationService(store, store, store, log)

	// Initialize handlers
	companyHandler := handler.NewCompanyHandler(companyService, assessmentService, log)
	assessmentHandler := handler.NewAssessmentHandler(assessmentService, log)
	consultationHandler := handler.NewConsultationHandler(consultationService, log)

	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	rt := router.NewRouter(
		cfg,
		log,
		db,
		checks,
		rateLimiter,
		companyHandler,
		assessmentHandler,
		consultationHandler,
	)

	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterPendingReportJob(
			scheduler,
			consultationService,
			log,
			cfg.Jobs.PendingReportSchedule,
			true,
		); err != nil {
			log.Error("Failed to register pending consultation report job", zap.Error(err))
			scheduler = nil
		} else {
			scheduler.Start()
			log.Info("Pending consultation report scheduled",
				zap.Time("next_run", scheduler.NextRun(jobs.PendingReportJobName)))
		}
	} else {
		log.Info("Background jobs disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				log.Warn("Error closing Redis client", zap.Error(err))
			}
		}
	}

	log.Info("Server stopped")
	return nil
}

// openStore selects the entity store for the configured driver. The returned
// *gorm.DB is nil for the in-memory store.
func openStore(cfg *config.Config, log *zap.Logger) (repository.Store, *gorm.DB, error) {
	if cfg.Database.Driver == config.DriverMemory {
		log.Warn("Using in-memory store, data is lost on restart")
		return repository.NewMemoryStore(), nil, nil
	}

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := migrateOrClose(db, database.AutoMigrate); err != nil {
			return nil, nil, err
		}
		log.Info("Database schema auto-migrated")
	}

	return repository.NewGormStore(db), db, nil
}

// migrateOrClose runs migrate and releases the connection pool when it fails
func migrateOrClose(db *gorm.DB, migrate func(*gorm.DB) error) error {
	if err := migrate(db); err != nil {
		_ = database.Close(db)
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}
