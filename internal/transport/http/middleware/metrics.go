package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"custoplan/internal/platform/metrics"
)

// Metrics records request counters and latency, keyed by the chi route
// pattern so parameterized paths do not explode label cardinality.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		route := r.URL.Path
		if ctx := chi.RouteContext(r.Context()); ctx != nil {
			if pattern := ctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		metrics.RecordRequest(r.Method, route, recorder.status, time.Since(start))
	})
}
