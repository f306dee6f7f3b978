package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Search cache outcomes, labelled by listing side ("supply" or "demand").
	cacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orgmatch_search_cache_hits_total",
			Help: "Total number of search cache hits",
		},
		[]string{"side"},
	)

	cacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orgmatch_search_cache_misses_total",
			Help: "Total number of search cache misses, including forced refreshes and cache errors",
		},
		[]string{"side"},
	)

	cacheInvalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orgmatch_search_cache_invalidations_total",
			Help: "Total number of explicit cache invalidations",
		},
		[]string{"side"},
	)

	// Matching worker calls.
	workerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orgmatch_worker_requests_total",
			Help: "Total number of matching worker requests",
		},
		[]string{"side", "status"},
	)

	workerRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orgmatch_worker_request_duration_seconds",
			Help:    "Matching worker request latency in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"side"},
	)

	searchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orgmatch_search_duration_seconds",
			Help:    "End-to-end search handling time in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"side", "source"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orgmatch_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "orgmatch_http_request_duration_seconds",
			Help:    "HTTP request handling time in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)
)

func RecordCacheHit(side string)          { cacheHitsTotal.WithLabelValues(side).Inc() }
func RecordCacheMiss(side string)         { cacheMissesTotal.WithLabelValues(side).Inc() }
func RecordCacheInvalidation(side string) { cacheInvalidationsTotal.WithLabelValues(side).Inc() }

func RecordWorkerRequest(side string, err error, duration time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	workerRequestsTotal.WithLabelValues(side, status).Inc()
	workerRequestDuration.WithLabelValues(side).Observe(duration.Seconds())
}

// RecordSearch tracks a completed search. source is "cache" or "fresh".
func RecordSearch(side, source string, duration time.Duration) {
	searchDuration.WithLabelValues(side, source).Observe(duration.Seconds())
}

func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
