package router

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/silverpath/funnel-api/internal/config"
	"github.com/silverpath/funnel-api/internal/database"
	"github.com/silverpath/funnel-api/internal/http/handler"
	"github.com/silverpath/funnel-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/silverpath/funnel-api/docs" // Import generated swagger docs
)

// healthCheckTimeout bounds each dependency check on the readiness probes
const healthCheckTimeout = 3 * time.Second

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

type Router struct {
	cfg                 *config.Config
	logger              *zap.Logger
	db                  *gorm.DB
	checks              map[string]HealthCheck
	rateLimiter         *middleware.RateLimiter
	companyHandler      *handler.CompanyHandler
	assessmentHandler   *handler.AssessmentHandler
	consultationHandler *handler.ConsultationHandler
}

// NewRouter wires the HTTP surface. db may be nil when the in-memory store is
// in use; checks are the dependencies reported by /health/ready.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	checks map[string]HealthCheck,
	rateLimiter *middleware.RateLimiter,
	companyHandler *handler.CompanyHandler,
	assessmentHandler *handler.AssessmentHandler,
	consultationHandler *handler.ConsultationHandler,
) *Router {
	return &Router{
		cfg:                 cfg,
		logger:              logger,
		db:                  db,
		checks:              checks,
		rateLimiter:         rateLimiter,
		companyHandler:      companyHandler,
		assessmentHandler:   assessmentHandler,
		consultationHandler: consultationHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/health/db", rt.databaseHealth)
	r.Get("/health/ready", rt.readiness)

	if rt.cfg.Server.EnableMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route("/api", func(r chi.Router) {
		if timeout := rt.cfg.Server.RequestTimeoutDuration(); timeout > 0 {
			r.Use(chimiddleware.Timeout(timeout))
		}

		r.Route("/companies", func(r chi.Router) {
			r.Post("/", rt.companyHandler.Create)
			r.Get("/{id}", rt.companyHandler.GetByID)
			r.Get("/{id}/assessment", rt.companyHandler.GetAssessment)
			r.Get("/{id}/consultations", rt.consultationHandler.ListByCompany)
		})

		r.Route("/assessments", func(r chi.Router) {
			r.Post("/", rt.assessmentHandler.Create)
			r.Get("/schema", rt.assessmentHandler.Schema)
			r.Get("/{id}", rt.assessmentHandler.GetByID)
			r.Get("/{id}/results", rt.assessmentHandler.GetResults)
		})

		r.Route("/consultations", func(r chi.Router) {
			r.Post("/", rt.consultationHandler.Create)
			r.Get("/{id}", rt.consultationHandler.GetByID)
		})
	})

	return r
}

// databaseHealth checks the store and, for SQL backends, reports pool stats
func (rt *Router) databaseHealth(w http.ResponseWriter, r *http.Request) {
	check, ok := rt.checks["database"]
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unhealthy",
			"error":   "no database configured",
			"service": "database",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := check(ctx); err != nil {
		rt.logger.Error("Database health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":  "unhealthy",
			"error":   err.Error(),
			"service": "database",
		})
		return
	}

	body := map[string]interface{}{
		"status":  "healthy",
		"service": "database",
		"driver":  rt.cfg.Database.Driver,
	}

	if rt.db != nil {
		stats, err := database.Stats(rt.db)
		if err == nil {
			body["stats"] = map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
				"max_idle_closed":      stats.MaxIdleClosed,
				"max_lifetime_closed":  stats.MaxLifetimeClosed,
			}
		}
	}

	writeJSON(w, http.StatusOK, body)
}

// readiness runs every registered dependency check
func (rt *Router) readiness(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(rt.checks))
	for name := range rt.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]interface{}, len(names))
	allHealthy := true

	for _, name := range names {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		err := rt.checks[name](ctx)
		cancel()

		if err != nil {
			rt.logger.Error("Readiness check failed", zap.String("dependency", name), zap.Error(err))
			checks[name] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
			continue
		}
		checks[name] = map[string]interface{}{
			"status": "healthy",
		}
	}

	status, code := "healthy", http.StatusOK
	if !allHealthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]interface{}{
		"status": status,
		"checks": checks,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
