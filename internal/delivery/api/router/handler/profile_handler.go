package handler

import (
	"log/slog"
	"net/http"

	"elderguard/internal/delivery/api/response"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/domain/entity"
	"elderguard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves /api/profile
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// SOSRequest represents the optional body of an SOS trigger
type SOSRequest struct {
	Message string `json:"message" validate:"max=500"`
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateSettings handles PUT /api/profile/settings
func (h *ProfileHandler) UpdateSettings(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	var settings entity.ProfileSettings
	if err := c.Bind(&settings); err != nil {
		return response.FromAppError(c, domainerrors.ErrInvalidInput)
	}

	profile, err := h.profileUC.UpdateSettings(c.Request().Context(), p, settings)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, profile, "Settings updated successfully")
}

// GetSystemStatus handles GET /api/profile/system-status
func (h *ProfileHandler) GetSystemStatus(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	status, err := h.profileUC.GetSystemStatus(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// TriggerSOS handles POST /api/profile/sos
func (h *ProfileHandler) TriggerSOS(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	var req SOSRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.FromAppError(c, domainerrors.ErrInvalidInput)
		}
		if err := c.Validate(&req); err != nil {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
		}
	}

	result, err := h.profileUC.TriggerSOS(c.Request().Context(), p, req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "SOS alert recorded"
	if result.Dispatched {
		message = "SOS alert dispatched"
	}

	return response.SuccessWithMessage(c, http.StatusCreated, result, message)
}
