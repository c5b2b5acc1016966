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

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler serves /api/alerts
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// CreateAlertRequest represents the request body for raising an alert
type CreateAlertRequest struct {
	Type     string `json:"type" validate:"required,oneof=fall posture sos manual"`
	Severity string `json:"severity" validate:"required,oneof=info warning critical"`
	Message  string `json:"message" validate:"notblank,max=500"`
}

// UpdatePostureRequest represents the request body for recording the current posture
type UpdatePostureRequest struct {
	Action  string `json:"action" validate:"notblank,max=100"`
	Posture string `json:"posture" validate:"max=100"`
}

// ListAlerts handles GET /api/alerts
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, alerts)
}

// CreateAlert handles POST /api/alerts
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	var req CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.FromAppError(c, domainerrors.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidAlert.ErrorCode(), err.Error())
	}

	alert, err := h.alertUC.CreateAlert(c.Request().Context(), p, &usecase.CreateAlertInput{
		Type:     entity.AlertType(req.Type),
		Severity: entity.AlertSeverity(req.Severity),
		Message:  req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, alert, "Alert created successfully")
}

// AcknowledgeAlert handles PUT /api/alerts/:id/acknowledge
func (h *AlertHandler) AcknowledgeAlert(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	alert, err := h.alertUC.AcknowledgeAlert(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, alert, "Alert acknowledged")
}

// GetCurrentPosture handles GET /api/alerts/posture/current
func (h *AlertHandler) GetCurrentPosture(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	status, err := h.alertUC.GetCurrentPosture(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}

// UpdatePosture handles PUT /api/alerts/posture/current
func (h *AlertHandler) UpdatePosture(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	var req UpdatePostureRequest
	if err := c.Bind(&req); err != nil {
		return response.FromAppError(c, domainerrors.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrActionRequired.ErrorCode(), err.Error())
	}

	status, err := h.alertUC.UpdatePosture(c.Request().Context(), p, &usecase.PostureInput{
		Action:  req.Action,
		Posture: req.Posture,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}
