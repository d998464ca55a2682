// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "funnel_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	CompaniesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "funnel_companies_created_total",
			Help: "Total number of companies that entered the funnel",
		},
	)

	AssessmentsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_assessments_scored_total",
			Help: "Total number of assessments scored, by monthly budget bracket",
		},
		[]string{"monthly_budget"},
	)

	AssessmentScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "funnel_assessment_score",
			Help:    "Distribution of assessment scores",
			Buckets: prometheus.LinearBuckets(30, 15, 9), // 30..150
		},
	)

	ConsultationsBooked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_consultations_booked_total",
			Help: "Total number of consultations booked, by urgency",
		},
		[]string{"urgency"},
	)

	PendingConsultations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "funnel_pending_consultations",
			Help: "Consultations still pending at the last backlog report",
		},
	)

	RateLimitedRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "funnel_rate_limited_requests_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)

	ResultsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_results_cache_lookups_total",
			Help: "Assessment results cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

// Cache lookup outcomes
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
