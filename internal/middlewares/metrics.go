package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-company-portal/internal/metrics"
)

// MetricsMiddleware records request counts and latencies per chi route
// pattern, so /companies/1 and /companies/2 share one series.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		metrics.ObserveHTTPRequest(r.Method, route, rw.statusCode, time.Since(start))
	})
}
