package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records a counter and a latency observation for every
// finished request. The chi route pattern is used as the route label so
// parametrised paths do not explode the cardinality.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(mw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}

		h.metrics.RecordRequest(route, r.Method, mw.status)
		h.metrics.RecordRequestLatency(route, time.Since(start))
	})
}
