// Package metrics exposes the service's Prometheus metrics on a custom
// registry, kept free of the default Go collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var (
	httpRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "custoplan",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "custoplan",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	datasetLoads = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "custoplan",
		Subsystem: "ingest",
		Name:      "dataset_loads_total",
		Help:      "Workbook loads by dataset and cache result.",
	}, []string{"dataset", "result"})
)

// RecordRequest records one served HTTP request.
func RecordRequest(method, route string, status int, duration time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordDatasetLoad records one workbook load and whether the content
// hash hit the parse cache.
func RecordDatasetLoad(dataset string, cacheHit bool) {
	result := "miss"
	if cacheHit {
		result = "hit"
	}
	datasetLoads.WithLabelValues(dataset, result).Inc()
}

// Handler serves the registry in Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
