// Package observer holds the Prometheus metrics exported on /metrics.
package observer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Magic Extract dispatch outcomes.
const (
	OutcomeProcessed    = "processed"
	OutcomeDuplicate    = "duplicate"
	OutcomeNoMatch      = "no_match"
	OutcomeMissingEmail = "missing_email"
	OutcomeFailed       = "failed"
)

var (
	EmailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_magic_extract_emails_total",
			Help: "Inbound emails handled by Magic Extract, labeled by outcome.",
		},
		[]string{"outcome"},
	)

	DiagnosticsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_magic_extract_diagnostics_total",
			Help: "Rule evaluation diagnostics (bad patterns, missing email), labeled by kind.",
		},
		[]string{"kind"},
	)

	ClientsUpsertedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_magic_extract_clients_upserted_total",
			Help: "Clients written by Magic Extract, labeled by created or merged.",
		},
		[]string{"result"},
	)

	ProcessingDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "crm_magic_extract_processing_duration_seconds",
			Help:    "Time spent dispatching one inbound email.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
	)

	AdminLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_admin_center_logins_total",
			Help: "Admin Center login attempts, labeled by result.",
		},
		[]string{"result"},
	)

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_http_rate_limited_total",
			Help: "Requests rejected by the per-IP rate limiter, labeled by scope.",
		},
		[]string{"scope"},
	)

	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crm_http_request_duration_seconds",
			Help:    "HTTP request latency, labeled by method and status class.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)
)

// ObserveEmail records one dispatch outcome and its duration.
func ObserveEmail(outcome string, started time.Time) {
	EmailsTotal.WithLabelValues(outcome).Inc()
	ProcessingDurationSeconds.Observe(time.Since(started).Seconds())
}

// StatusClass collapses an HTTP status into "2xx", "4xx" and so on.
func StatusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
