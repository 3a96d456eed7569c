// Package metrics provides Prometheus metrics for the planner API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup kinds and outcomes used by the enrichment counters.
const (
	LookupNote = "note"
	LookupUser = "user"

	OutcomeFound   = "found"
	OutcomeMissing = "missing"
	OutcomeError   = "error"
)

var (
	// HTTPRequestsTotal counts requests by route pattern, method and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	// HTTPRequestDuration observes request latency by route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planner_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// EnrichmentLookupsTotal counts note and user lookups issued while enriching meetings.
	EnrichmentLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_enrichment_lookups_total",
			Help: "Total number of lookups issued by meeting enrichment",
		},
		[]string{"kind", "outcome"},
	)

	// EnrichmentDuration observes the duration of a whole enrichment batch.
	EnrichmentDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planner_enrichment_duration_seconds",
			Help:    "Meeting enrichment batch duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"status"},
	)

	// MigrationRunsTotal counts seed migrations by result.
	MigrationRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_migration_runs_total",
			Help: "Total number of seed migration runs",
		},
		[]string{"status"},
	)
)

// RecordLookup records one enrichment lookup.
func RecordLookup(kind, outcome string) {
	EnrichmentLookupsTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveEnrichment records the duration of an enrichment batch.
func ObserveEnrichment(start time.Time, err error) {
	EnrichmentDuration.WithLabelValues(statusLabel(err)).Observe(time.Since(start).Seconds())
}

// RecordMigration records the result of a migration run.
func RecordMigration(err error) {
	MigrationRunsTotal.WithLabelValues(statusLabel(err)).Inc()
}

// Middleware records request count and latency per chi route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
