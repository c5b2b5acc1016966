package handler

import (
	"net/http"
	"time"

	"elderguard/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the unauthenticated liveness endpoint
type HealthHandler struct {
	info usecase.SystemInfo
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(info usecase.SystemInfo) *HealthHandler {
	return &HealthHandler{info: info}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Version     string    `json:"version"`
	Firebase    string    `json:"firebase"`
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	firebase := "unavailable"
	if h.info.FirebaseReady {
		firebase = "initialized"
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Success:     true,
		Message:     "ElderGuard Backend is running",
		Timestamp:   time.Now().UTC(),
		Environment: h.info.Environment,
		Version:     h.info.Version,
		Firebase:    firebase,
	})
}
