package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"elderguard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	h := NewHealthHandler(usecase.SystemInfo{Environment: "development", Version: "1.0.0", FirebaseReady: true})
	c, rec := newRequest(http.MethodGet, "/health", "", nil)

	require.NoError(t, h.HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "ElderGuard Backend is running", body.Message)
	assert.Equal(t, "development", body.Environment)
	assert.Equal(t, "1.0.0", body.Version)
	assert.Equal(t, "initialized", body.Firebase)
	assert.False(t, body.Timestamp.IsZero())
}
