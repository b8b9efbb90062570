// Package metrics collects and exposes Prometheus metrics for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector is the recording interface used by the HTTP middleware
// and handlers.
type MetricsCollector interface {
	RecordRequest(route, method string, statusCode int)
	RecordRequestLatency(route string, duration time.Duration)
	RecordAuthFailure(reason string)
	RecordLoanSubmitted()
}

// Collector is the Prometheus-backed implementation.
type Collector struct {
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	authFailures   *prometheus.CounterVec
	loansSubmitted prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "microfund_http_requests_total",
			Help: "HTTP requests by route, method and status code",
		}, []string{"route", "method", "status_code"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "microfund_http_request_latency_seconds",
			Help:    "HTTP request latency in seconds by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		authFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "microfund_auth_failures_total",
			Help: "Rejected authentication attempts by reason",
		}, []string{"reason"}),
		loansSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "microfund_loans_submitted_total",
			Help: "Accepted business-loan applications",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.requestLatency,
		c.authFailures,
		c.loansSubmitted,
	)

	return c
}

// RecordRequest counts one finished HTTP request.
func (c *Collector) RecordRequest(route, method string, statusCode int) {
	c.requests.WithLabelValues(route, method, strconv.Itoa(statusCode)).Inc()
}

// RecordRequestLatency records how long a request took.
func (c *Collector) RecordRequestLatency(route string, duration time.Duration) {
	c.requestLatency.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordAuthFailure counts one rejected authentication attempt.
func (c *Collector) RecordAuthFailure(reason string) {
	c.authFailures.WithLabelValues(reason).Inc()
}

// RecordLoanSubmitted counts one accepted loan application.
func (c *Collector) RecordLoanSubmitted() {
	c.loansSubmitted.Inc()
}

// Handler returns the HTTP handler serving Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
