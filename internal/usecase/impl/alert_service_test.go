package impl

import (
	"context"
	"testing"
	"time"

	"elderguard/internal/domain/entity"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/domain/repository"
	"elderguard/internal/domain/service"
	mockRepo "elderguard/internal/mocks/repository"
	mockSvc "elderguard/internal/mocks/service"
	"elderguard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// alertServiceFixtures holds all test dependencies for alert service tests.
type alertServiceFixtures struct {
	service     *alertService
	alertRepo   *mockRepo.MockAlertRepository
	postureRepo *mockRepo.MockPostureRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestAlertService(t *testing.T) alertServiceFixtures {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	postureRepo := mockRepo.NewMockPostureRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewAlertService(AlertServiceParams{
		AlertRepo:   alertRepo,
		PostureRepo: postureRepo,
		Publisher:   publisher,
		Logger:      discardLogger(),
	}).(*alertService)
	svc.now = func() time.Time { return fixedNow }

	return alertServiceFixtures{
		service:     svc,
		alertRepo:   alertRepo,
		postureRepo: postureRepo,
		publisher:   publisher,
	}
}

func TestAlertService_CreateAlert(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	principal := caregiver()

	fx.alertRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Alert")).
		Run(func(_ context.Context, alert *entity.Alert) { alert.ID = "alert-1" }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.MatchedBy(func(event *service.AlertEvent) bool {
			return event.AlertID == "alert-1" && event.Type == "manual" && event.Source == "caregiver"
		})).
		Return(nil)

	alert, err := fx.service.CreateAlert(ctx, principal, &usecase.CreateAlertInput{
		Type:     entity.AlertTypeManual,
		Severity: entity.SeverityWarning,
		Message:  "  Skipped lunch  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "alert-1", alert.ID)
	assert.Equal(t, "Skipped lunch", alert.Message)
	assert.Equal(t, principal.UID, alert.UserID)
	assert.Equal(t, entity.SourceCaregiver, alert.Source)
	assert.False(t, alert.Acknowledged)
	assert.Equal(t, fixedNow, alert.CreatedAt)
}

func TestAlertService_CreateAlert_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	fx.alertRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	alert, err := fx.service.CreateAlert(ctx, caregiver(), &usecase.CreateAlertInput{
		Type:     entity.AlertTypeFall,
		Severity: entity.SeverityCritical,
		Message:  "Fell in the kitchen",
	})
	require.NoError(t, err)
	assert.NotNil(t, alert)
}

func TestAlertService_CreateAlert_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreateAlertInput
	}{
		{name: "unknown type", input: usecase.CreateAlertInput{Type: "earthquake", Severity: entity.SeverityInfo, Message: "x"}},
		{name: "unknown severity", input: usecase.CreateAlertInput{Type: entity.AlertTypeManual, Severity: "meh", Message: "x"}},
		{name: "blank message", input: usecase.CreateAlertInput{Type: entity.AlertTypeManual, Severity: entity.SeverityInfo, Message: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAlertService(t)

			_, err := fx.service.CreateAlert(context.Background(), caregiver(), &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidAlert)
		})
	}
}

func TestAlertService_ListAlerts(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	alerts := []*entity.Alert{{ID: "a1"}, {ID: "a2"}}

	fx.alertRepo.EXPECT().FindRecentByUser(ctx, "family-1", entity.MaxAlertsListed).Return(alerts, nil)

	got, err := fx.service.ListAlerts(ctx, family())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAlertService_AcknowledgeAlert(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	principal := caregiver()

	fx.alertRepo.EXPECT().FindByID(ctx, "alert-1").Return(&entity.Alert{ID: "alert-1", UserID: principal.UID}, nil)
	fx.alertRepo.EXPECT().Acknowledge(ctx, "alert-1", principal.UID, fixedNow).Return(nil)

	alert, err := fx.service.AcknowledgeAlert(ctx, principal, "alert-1")
	require.NoError(t, err)
	assert.True(t, alert.Acknowledged)
	assert.Equal(t, principal.UID, alert.AcknowledgedBy)
	require.NotNil(t, alert.AcknowledgedAt)
	assert.Equal(t, fixedNow, *alert.AcknowledgedAt)
}

func TestAlertService_AcknowledgeAlert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		found   *entity.Alert
		findErr error
		wantErr error
	}{
		{name: "missing alert", findErr: repository.ErrAlertNotFound, wantErr: domainerrors.ErrAlertNotFound},
		{name: "foreign alert", found: &entity.Alert{ID: "alert-1", UserID: "other"}, wantErr: domainerrors.ErrAlertForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAlertService(t)
			ctx := context.Background()

			fx.alertRepo.EXPECT().FindByID(ctx, "alert-1").Return(tt.found, tt.findErr)

			_, err := fx.service.AcknowledgeAlert(ctx, caregiver(), "alert-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAlertService_GetCurrentPosture_Unknown(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	fx.postureRepo.EXPECT().FindByUser(ctx, "family-1").Return(nil, repository.ErrPostureNotFound)

	status, err := fx.service.GetCurrentPosture(ctx, family())
	require.NoError(t, err)
	assert.Equal(t, entity.ActionUnknown, status.Action)
	assert.Equal(t, "family-1", status.UserID)
	assert.Nil(t, status.UpdatedAt)
}

func TestAlertService_GetCurrentPosture_RepositoryError(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	fx.postureRepo.EXPECT().FindByUser(ctx, "family-1").Return(nil, errors.New("deadline exceeded"))

	_, err := fx.service.GetCurrentPosture(ctx, family())
	require.Error(t, err)
}

func TestAlertService_UpdatePosture(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()

	fx.postureRepo.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(status *entity.PostureStatus) bool {
			return status.Action == "Walking" && status.Posture == "upright" && status.Source == entity.SourceCaregiver
		})).
		Return(nil)

	status, err := fx.service.UpdatePosture(ctx, caregiver(), &usecase.PostureInput{Action: " Walking ", Posture: "upright"})
	require.NoError(t, err)
	assert.Equal(t, "Walking", status.Action)
	require.NotNil(t, status.UpdatedAt)
	assert.Equal(t, fixedNow, *status.UpdatedAt)
}

func TestAlertService_UpdatePosture_ActionRequired(t *testing.T) {
	fx := createTestAlertService(t)

	_, err := fx.service.UpdatePosture(context.Background(), caregiver(), &usecase.PostureInput{Action: "  "})
	assert.ErrorIs(t, err, domainerrors.ErrActionRequired)
}
