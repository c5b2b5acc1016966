package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"", false},
		{"3f2c1a9e-7d1b-4f5e-9a2b-1c3d5e7f9a0b", true},
		{"monitor:watch_1.2", true},
		{"has space", false},
		{"line\nbreak", false},
		{strings.Repeat("x", 128), true},
		{strings.Repeat("x", 129), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidRequestID(tt.id), "%q", tt.id)
	}
}

func TestGetRequestID_FallsBackToFreshID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	first := GetRequestID(c)
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With("request_id", "req-1")

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}
