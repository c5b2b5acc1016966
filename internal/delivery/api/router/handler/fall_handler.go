package handler

import (
	"log/slog"
	"net/http"

	"elderguard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FallHandlerParams holds dependencies for FallHandler, injected by Fx.
type FallHandlerParams struct {
	fx.In

	FallUC usecase.FallUsecase
	Logger *slog.Logger
}

// FallHandler serves /api/check-fall
type FallHandler struct {
	fallUC usecase.FallUsecase
	logger *slog.Logger
}

// NewFallHandler is the constructor for FallHandler
func NewFallHandler(params FallHandlerParams) *FallHandler {
	return &FallHandler{
		fallUC: params.FallUC,
		logger: params.Logger,
	}
}

// FallCheckResponse is the flat body polled by the dashboard
type FallCheckResponse struct {
	Success bool `json:"success"`
	Alert   bool `json:"alert"`
}

// CheckFall handles GET /api/check-fall. It always answers 200.
func (h *FallHandler) CheckFall(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	check := h.fallUC.CheckFall(c.Request().Context(), p)

	return c.JSON(http.StatusOK, FallCheckResponse{
		Success: check.Success,
		Alert:   check.Alert,
	})
}
