package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/httprate"
	"github.com/silverpath/funnel-api/internal/config"
	"github.com/silverpath/funnel-api/internal/domain"
	"github.com/silverpath/funnel-api/internal/metrics"
	"go.uber.org/zap"
)

const retryAfterSeconds = "60"

// exemptions lists clients and routes that bypass the limiter.
// Path entries ending in "/*" match the whole subtree.
type exemptions struct {
	clients  map[string]struct{}
	paths    map[string]struct{}
	prefixes []string
}

func newExemptions(clients, paths []string) exemptions {
	ex := exemptions{
		clients: make(map[string]struct{}, len(clients)),
		paths:   make(map[string]struct{}, len(paths)),
	}
	for _, c := range clients {
		ex.clients[c] = struct{}{}
	}
	for _, p := range paths {
		if prefix, ok := strings.CutSuffix(p, "/*"); ok {
			ex.prefixes = append(ex.prefixes, prefix)
			continue
		}
		ex.paths[p] = struct{}{}
	}
	return ex
}

func (ex exemptions) covers(r *http.Request, client string) bool {
	if _, ok := ex.clients[client]; ok {
		return true
	}
	if _, ok := ex.paths[r.URL.Path]; ok {
		return true
	}
	for _, prefix := range ex.prefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return true
		}
	}
	return false
}

// RateLimiter throttles anonymous funnel traffic per client address
type RateLimiter struct {
	enabled bool
	exempt  exemptions
	limit   func(http.Handler) http.Handler
	logger  *zap.Logger
}

// NewRateLimiter builds a sliding-window limiter from config
func NewRateLimiter(cfg *config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	rl := &RateLimiter{
		enabled: cfg.Enabled,
		exempt:  newExemptions(cfg.WhitelistIPs, cfg.WhitelistPaths),
		logger:  logger,
	}
	rl.limit = httprate.Limit(
		cfg.RequestsPerMinute,
		time.Minute,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return "client:" + clientIP(r), nil
		}),
		httprate.WithLimitHandler(rl.reject),
	)

	logger.Info("rate limiter configured",
		zap.Bool("enabled", cfg.Enabled),
		zap.Int("per_minute", cfg.RequestsPerMinute),
		zap.Int("exempt_clients", len(cfg.WhitelistIPs)),
		zap.Strings("exempt_paths", cfg.WhitelistPaths),
	)
	return rl
}

// LimitByIP wraps next with the per-client limit
func (rl *RateLimiter) LimitByIP(next http.Handler) http.Handler {
	if !rl.enabled {
		return next
	}

	limited := rl.limit(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.exempt.covers(r, clientIP(r)) {
			next.ServeHTTP(w, r)
			return
		}
		limited.ServeHTTP(w, r)
	})
}

// clientIP resolves the caller address. Proxy headers win over the socket
// address; for a forwarded chain the left-most hop is the client.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func (rl *RateLimiter) reject(w http.ResponseWriter, r *http.Request) {
	metrics.RateLimitedRequests.Inc()
	rl.logger.Warn("request throttled",
		zap.String("client_ip", clientIP(r)),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", RequestIDFromContext(r.Context())),
	)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", retryAfterSeconds)
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(domain.ErrorResponse{
		Error:   "Too Many Requests",
		Message: "Too many requests. Please try again later.",
		Code:    http.StatusTooManyRequests,
	})
}
