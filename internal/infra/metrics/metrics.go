// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "elderguard"

// Check outcomes recorded for the fall-detection bridge.
const (
	OutcomeFall        = "fall"
	OutcomeClear       = "clear"
	OutcomeUnreachable = "unreachable"
)

// Generative call outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Metrics groups every collector the service updates. All methods are safe on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	rateLimitDenied     *prometheus.CounterVec
	bridgeChecks        *prometheus.CounterVec
	generativeRequests  *prometheus.CounterVec
	alertsRecorded      *prometheus.CounterVec
}

// New creates a private registry with runtime collectors and the service metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		rateLimitDenied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_deny_total",
				Help:      "Requests rejected by the rate limiter",
			},
			[]string{"path"},
		),
		bridgeChecks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bridge_checks_total",
				Help:      "Fall-detection bridge checks by outcome",
			},
			[]string{"outcome"},
		),
		generativeRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generative_requests_total",
				Help:      "Generative API calls by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		alertsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alerts_recorded_total",
				Help:      "Alerts written by type and severity",
			},
			[]string{"type", "severity"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// IncRateLimitDenied counts a request rejected by the limiter.
func (m *Metrics) IncRateLimitDenied(path string) {
	if m == nil {
		return
	}
	m.rateLimitDenied.WithLabelValues(path).Inc()
}

// IncBridgeCheck counts one bridge check outcome.
func (m *Metrics) IncBridgeCheck(outcome string) {
	if m == nil {
		return
	}
	m.bridgeChecks.WithLabelValues(outcome).Inc()
}

// IncGenerative counts one generative call.
func (m *Metrics) IncGenerative(operation, outcome string) {
	if m == nil {
		return
	}
	m.generativeRequests.WithLabelValues(operation, outcome).Inc()
}

// IncAlert counts one recorded alert.
func (m *Metrics) IncAlert(alertType, severity string) {
	if m == nil {
		return
	}
	m.alertsRecorded.WithLabelValues(alertType, severity).Inc()
}
