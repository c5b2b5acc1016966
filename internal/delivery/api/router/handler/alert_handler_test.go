package handler

import (
	"net/http"
	"testing"

	"elderguard/internal/domain/entity"
	domainerrors "elderguard/internal/domain/errors"
	mockUsecase "elderguard/internal/mocks/usecase"
	"elderguard/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAlertHandler(t *testing.T) (*AlertHandler, *mockUsecase.MockAlertUsecase) {
	uc := mockUsecase.NewMockAlertUsecase(t)

	return NewAlertHandler(AlertHandlerParams{AlertUC: uc, Logger: discardLogger()}), uc
}

func TestAlertHandler_CreateAlert(t *testing.T) {
	h, uc := createTestAlertHandler(t)
	c, rec := newRequest(http.MethodPost, "/api/alerts", `{"type":"manual","severity":"warning","message":"Missed dinner"}`, caregiverPrincipal)

	uc.EXPECT().
		CreateAlert(mock.Anything, caregiverPrincipal, &usecase.CreateAlertInput{
			Type:     entity.AlertTypeManual,
			Severity: entity.SeverityWarning,
			Message:  "Missed dinner",
		}).
		Return(&entity.Alert{ID: "alert-1"}, nil)

	require.NoError(t, h.CreateAlert(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAlertHandler_CreateAlert_Invalid(t *testing.T) {
	bodies := []string{
		`{"type":"earthquake","severity":"info","message":"x"}`,
		`{"type":"fall","severity":"extreme","message":"x"}`,
		`{"type":"fall","severity":"info","message":"  "}`,
	}

	for _, body := range bodies {
		h, _ := createTestAlertHandler(t)
		c, rec := newRequest(http.MethodPost, "/api/alerts", body, caregiverPrincipal)

		require.NoError(t, h.CreateAlert(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "INVALID_ALERT", decode(t, rec).Error.Code)
	}
}

func TestAlertHandler_AcknowledgeAlert_NotFound(t *testing.T) {
	h, uc := createTestAlertHandler(t)
	c, rec := newRequest(http.MethodPut, "/api/alerts/missing/acknowledge", "", caregiverPrincipal)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	uc.EXPECT().AcknowledgeAlert(mock.Anything, caregiverPrincipal, "missing").Return(nil, domainerrors.ErrAlertNotFound)

	require.NoError(t, h.AcknowledgeAlert(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAlertHandler_GetCurrentPosture(t *testing.T) {
	h, uc := createTestAlertHandler(t)
	c, rec := newRequest(http.MethodGet, "/api/alerts/posture/current", "", familyPrincipal)

	uc.EXPECT().GetCurrentPosture(mock.Anything, familyPrincipal).Return(entity.UnknownPosture("family-1"), nil)

	require.NoError(t, h.GetCurrentPosture(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":"family-1","action":"Unknown"}`, string(decode(t, rec).Data))
}

func TestAlertHandler_UpdatePosture_BlankAction(t *testing.T) {
	h, _ := createTestAlertHandler(t)
	c, rec := newRequest(http.MethodPut, "/api/alerts/posture/current", `{"action":" "}`, caregiverPrincipal)

	require.NoError(t, h.UpdatePosture(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ACTION_REQUIRED", decode(t, rec).Error.Code)
}
