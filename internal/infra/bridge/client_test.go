package bridge

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elderguard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string, timeout time.Duration) *Client {
	cfg := &config.Config{}
	cfg.Bridge.BaseURL = baseURL
	cfg.Bridge.Timeout = timeout

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPredict(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		want   bool
		errMsg string
	}{
		{name: "fall detected", body: `{"fall_detected": true}`, status: http.StatusOK, want: true},
		{name: "no fall", body: `{"fall_detected": false}`, status: http.StatusOK, want: false},
		{name: "server error", body: `oops`, status: http.StatusInternalServerError, errMsg: "status 500"},
		{name: "bad json", body: `{"fall_detected":`, status: http.StatusOK, errMsg: "decode"},
		{name: "missing field", body: `{"confidence": 0.9}`, status: http.StatusOK, errMsg: "missing fall_detected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, predictPath, r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			got, err := newTestClient(srv.URL+"/", time.Second).Predict(context.Background())
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPredict_UnreachableFailsFast(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	start := time.Now()
	_, err = newTestClient("http://"+addr, 2*time.Second).Predict(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), 2500*time.Millisecond)
}

func TestPredict_SlowBridgeTimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	_, err := newTestClient(srv.URL, 100*time.Millisecond).Predict(context.Background())
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPredict_NotConfigured(t *testing.T) {
	_, err := newTestClient("", time.Second).Predict(context.Background())
	require.Error(t, err)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	c := newTestClient("http://localhost:5000", 0)
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)
	assert.Equal(t, "http://localhost:5000", c.BaseURL())
}
