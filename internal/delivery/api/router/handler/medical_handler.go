package handler

import (
	"log/slog"
	"net/http"

	"elderguard/internal/delivery/api/response"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MedicalHandlerParams holds dependencies for MedicalHandler, injected by Fx.
type MedicalHandlerParams struct {
	fx.In

	MedicalUC usecase.MedicalUsecase
	Logger    *slog.Logger
}

// MedicalHandler serves /api/medical
type MedicalHandler struct {
	medicalUC usecase.MedicalUsecase
	logger    *slog.Logger
}

// NewMedicalHandler is the constructor for MedicalHandler
func NewMedicalHandler(params MedicalHandlerParams) *MedicalHandler {
	return &MedicalHandler{
		medicalUC: params.MedicalUC,
		logger:    params.Logger,
	}
}

// MedicalLogRequest represents the request body for creating or updating a medical log
type MedicalLogRequest struct {
	Note string `json:"note"`
}

// ListLogs handles GET /api/medical
func (h *MedicalHandler) ListLogs(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	logs, err := h.medicalUC.ListLogs(c.Request().Context(), p)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, logs)
}

// CreateLog handles POST /api/medical
func (h *MedicalHandler) CreateLog(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	var req MedicalLogRequest
	if err := c.Bind(&req); err != nil {
		return response.FromAppError(c, domainerrors.ErrNoteRequired)
	}

	medicalLog, err := h.medicalUC.CreateLog(c.Request().Context(), p, req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusCreated, medicalLog, "Medical log created successfully")
}

// UpdateLog handles PUT /api/medical/:id
func (h *MedicalHandler) UpdateLog(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	var req MedicalLogRequest
	if err := c.Bind(&req); err != nil {
		return response.FromAppError(c, domainerrors.ErrNoteRequired)
	}

	medicalLog, err := h.medicalUC.UpdateLog(c.Request().Context(), p, c.Param("id"), req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, medicalLog, "Medical log updated successfully")
}

// DeleteLog handles DELETE /api/medical/:id
func (h *MedicalHandler) DeleteLog(c echo.Context) error {
	p, ok, err := principal(c)
	if !ok {
		return err
	}

	if err := h.medicalUC.DeleteLog(c.Request().Context(), p, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, nil, "Medical log deleted successfully")
}
