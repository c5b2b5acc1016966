package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "elderguard/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, header string, logs *bytes.Buffer) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	logger := slog.New(slog.NewTextHandler(logs, nil))
	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("handled")
		return c.NoContent(http.StatusNoContent)
	}, NewRequestIDMiddleware(logger).Process)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	return rec, seen
}

func TestRequestIDMiddleware_KeepsCallerID(t *testing.T) {
	var logs bytes.Buffer
	rec, seen := serveWithRequestID(t, "monitor-42", &logs)

	assert.Equal(t, "monitor-42", seen)
	assert.Equal(t, "monitor-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, logs.String(), "request_id=monitor-42")
}

func TestRequestIDMiddleware_ReplacesMissingOrMalformedID(t *testing.T) {
	for _, header := range []string{"", "bad id\twith spaces", strings.Repeat("a", 129)} {
		var logs bytes.Buffer
		rec, seen := serveWithRequestID(t, header, &logs)

		_, err := uuid.Parse(seen)
		require.NoError(t, err, "header %q", header)
		assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	}
}
