package middleware

import (
	"net/http"
	"strings"
	"testing"

	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_RecordsRoutePattern(t *testing.T) {
	m := metrics.New()
	mw := NewMetricsMiddleware(m)
	e := echo.New()

	c, _ := newContext(e, http.MethodDelete, "/api/medical/log-1")
	c.SetPath("/api/medical/:id")
	err := mw.Handle(func(echo.Context) error { return domainerrors.ErrMedicalLogNotFound })(c)
	require.ErrorIs(t, err, domainerrors.ErrMedicalLogNotFound)

	expected := `
# HELP elderguard_http_requests_total Total number of HTTP requests
# TYPE elderguard_http_requests_total counter
elderguard_http_requests_total{method="DELETE",path="/api/medical/:id",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "elderguard_http_requests_total"))
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, statusOf(domainerrors.ErrAlertForbidden))
	assert.Equal(t, http.StatusMethodNotAllowed, statusOf(echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, statusOf(assert.AnError))
}
