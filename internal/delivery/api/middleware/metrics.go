package middleware

import (
	"net/http"
	"time"

	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MetricsMiddleware records request counts and latencies per route.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the request after the rest of the chain ran.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The central error handler has not written the response yet.
			status = statusOf(err)
		}
		m.metrics.ObserveHTTPRequest(c.Request().Method, routePath(c), status, time.Since(start))

		return err
	}
}

// routePath returns the registered route pattern, keeping label cardinality bounded.
func routePath(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}

	return "unmatched"
}

// statusOf predicts the status the central error handler will write for err.
func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
