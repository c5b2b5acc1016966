package impl

import (
	"context"
	"testing"
	"time"

	"elderguard/internal/domain/entity"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/domain/repository"
	mockRepo "elderguard/internal/mocks/repository"
	mockSvc "elderguard/internal/mocks/service"
	mockUsecase "elderguard/internal/mocks/usecase"
	"elderguard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     *profileService
	profileRepo *mockRepo.MockProfileRepository
	alertRepo   *mockRepo.MockAlertRepository
	publisher   *mockSvc.MockEventPublisher
	notifier    *mockSvc.MockNotificationService
	fall        *mockUsecase.MockFallUsecase
}

func createTestProfileService(t *testing.T, info usecase.SystemInfo) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	notifier := mockSvc.NewMockNotificationService(t)
	fall := mockUsecase.NewMockFallUsecase(t)

	svc := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		AlertRepo:   alertRepo,
		Publisher:   publisher,
		Notifier:    notifier,
		Fall:        fall,
		Info:        info,
		Logger:      discardLogger(),
	}).(*profileService)
	svc.now = func() time.Time { return fixedNow }

	return profileServiceFixtures{
		service:     svc,
		profileRepo: profileRepo,
		alertRepo:   alertRepo,
		publisher:   publisher,
		notifier:    notifier,
		fall:        fall,
	}
}

func TestProfileService_GetProfile_Existing(t *testing.T) {
	fx := createTestProfileService(t, usecase.SystemInfo{})
	ctx := context.Background()
	stored := &entity.Profile{UID: "caregiver-1", PostureTracking: false, AlertDispatch: true}

	fx.profileRepo.EXPECT().FindByUID(ctx, "caregiver-1").Return(stored, nil)

	profile, err := fx.service.GetProfile(ctx, caregiver())
	require.NoError(t, err)
	assert.Same(t, stored, profile)
}

func TestProfileService_GetProfile_CreatesDefault(t *testing.T) {
	fx := createTestProfileService(t, usecase.SystemInfo{})
	ctx := context.Background()
	principal := caregiver()

	fx.profileRepo.EXPECT().FindByUID(ctx, principal.UID).Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.UID == principal.UID && p.PostureTracking && p.AlertDispatch
		})).
		Return(nil)

	profile, err := fx.service.GetProfile(ctx, principal)
	require.NoError(t, err)
	assert.Equal(t, principal.Email, profile.Email)
	assert.Equal(t, entity.RoleCaregiver, profile.Role)
	assert.True(t, profile.PostureTracking)
	assert.True(t, profile.AlertDispatch)
	assert.Equal(t, fixedNow, profile.CreatedAt)
}

func TestProfileService_GetProfile_RepositoryError(t *testing.T) {
	fx := createTestProfileService(t, usecase.SystemInfo{})
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByUID(ctx, "caregiver-1").Return(nil, errors.New("permission denied"))

	_, err := fx.service.GetProfile(ctx, caregiver())
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestProfileService_UpdateSettings(t *testing.T) {
	fx := createTestProfileService(t, usecase.SystemInfo{})
	ctx := context.Background()
	settings := entity.ProfileSettings{AlertDispatch: boolPtr(false)}

	fx.profileRepo.EXPECT().
		FindByUID(ctx, "caregiver-1").
		Return(&entity.Profile{UID: "caregiver-1", PostureTracking: true, AlertDispatch: true}, nil)
	fx.profileRepo.EXPECT().UpdateSettings(ctx, "caregiver-1", settings).Return(nil)

	profile, err := fx.service.UpdateSettings(ctx, caregiver(), settings)
	require.NoError(t, err)
	assert.True(t, profile.PostureTracking)
	assert.False(t, profile.AlertDispatch)
	assert.Equal(t, fixedNow, profile.UpdatedAt)
}

func TestProfileService_UpdateSettings_Empty(t *testing.T) {
	fx := createTestProfileService(t, usecase.SystemInfo{})

	_, err := fx.service.UpdateSettings(context.Background(), caregiver(), entity.ProfileSettings{})
	assert.ErrorIs(t, err, domainerrors.ErrNoSettings)
}

func TestProfileService_GetSystemStatus(t *testing.T) {
	info := usecase.SystemInfo{
		Environment:      "development",
		Version:          "1.0.0",
		StartedAt:        fixedNow.Add(-90 * time.Minute),
		FirebaseReady:    true,
		GeminiConfigured: false,
		BridgeURL:        "http://localhost:5000",
	}
	fx := createTestProfileService(t, info)
	ctx := context.Background()
	checkedAt := fixedNow.Add(-3 * time.Second)

	fx.profileRepo.EXPECT().
		FindByUID(ctx, "family-1").
		Return(&entity.Profile{UID: "family-1", PostureTracking: true}, nil)
	fx.fall.EXPECT().LastCheck().Return(&entity.FallCheck{Success: true, Alert: true, CheckedAt: checkedAt}, true)

	status, err := fx.service.GetSystemStatus(ctx, family())
	require.NoError(t, err)
	assert.Equal(t, "connected", status.Firebase)
	assert.Equal(t, "not_configured", status.Gemini)
	assert.Equal(t, "online", status.Bridge.Status)
	assert.Equal(t, "http://localhost:5000", status.Bridge.URL)
	assert.True(t, status.Bridge.LastAlert)
	require.NotNil(t, status.Bridge.LastCheckedAt)
	assert.Equal(t, checkedAt, *status.Bridge.LastCheckedAt)
	assert.True(t, status.PostureTracking)
	assert.False(t, status.AlertDispatch)
	assert.Equal(t, "development", status.Environment)
	assert.Equal(t, "1.0.0", status.Version)
	assert.NotEmpty(t, status.Uptime)
	assert.Equal(t, fixedNow, status.Timestamp)
}

func TestProfileService_GetSystemStatus_BridgeStates(t *testing.T) {
	tests := []struct {
		name   string
		check  *entity.FallCheck
		seen   bool
		expect string
	}{
		{name: "never checked", expect: "unknown"},
		{name: "unreachable", check: &entity.FallCheck{Success: false, CheckedAt: fixedNow}, seen: true, expect: "offline"},
		{name: "clear", check: &entity.FallCheck{Success: true, CheckedAt: fixedNow}, seen: true, expect: "online"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t, usecase.SystemInfo{})
			ctx := context.Background()

			fx.profileRepo.EXPECT().FindByUID(ctx, "family-1").Return(&entity.Profile{UID: "family-1"}, nil)
			fx.fall.EXPECT().LastCheck().Return(tt.check, tt.seen)

			status, err := fx.service.GetSystemStatus(ctx, family())
			require.NoError(t, err)
			assert.Equal(t, tt.expect, status.Bridge.Status)
			assert.Equal(t, "unavailable", status.Firebase)
			assert.Empty(t, status.Uptime)
		})
	}
}

func TestProfileService_TriggerSOS_Dispatches(t *testing.T) {
	fx := createTestProfileService(t, usecase.SystemInfo{})
	ctx := context.Background()
	principal := family()

	fx.alertRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Alert) bool {
			return a.Type == entity.AlertTypeSOS && a.Severity == entity.SeverityCritical && a.Source == entity.SourceSOS
		})).
		Run(func(_ context.Context, a *entity.Alert) { a.ID = "sos-1" }).
		Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)
	fx.profileRepo.EXPECT().
		FindByUID(ctx, principal.UID).
		Return(&entity.Profile{UID: principal.UID, AlertDispatch: true}, nil)
	fx.notifier.EXPECT().
		SendTopicNotification(ctx, "sos-family-1", "SOS Alert", "SOS triggered by fred@example.com", map[string]string{
			"alertId":  "sos-1",
			"userId":   "family-1",
			"type":     "sos",
			"severity": "critical",
		}).
		Return(nil)

	result, err := fx.service.TriggerSOS(ctx, principal, "   ")
	require.NoError(t, err)
	assert.True(t, result.Dispatched)
	assert.Equal(t, "sos-1", result.Alert.ID)
	assert.Equal(t, "SOS triggered by fred@example.com", result.Alert.Message)
}

func TestProfileService_TriggerSOS_DispatchDisabled(t *testing.T) {
	fx := createTestProfileService(t, usecase.SystemInfo{})
	ctx := context.Background()

	fx.alertRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)
	fx.profileRepo.EXPECT().
		FindByUID(ctx, "caregiver-1").
		Return(&entity.Profile{UID: "caregiver-1", AlertDispatch: false}, nil)

	result, err := fx.service.TriggerSOS(ctx, caregiver(), "Help, fell in the garden")
	require.NoError(t, err)
	assert.False(t, result.Dispatched)
	assert.Equal(t, "Help, fell in the garden", result.Alert.Message)
}

func TestProfileService_TriggerSOS_PushFailure(t *testing.T) {
	fx := createTestProfileService(t, usecase.SystemInfo{})
	ctx := context.Background()

	fx.alertRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)
	fx.profileRepo.EXPECT().
		FindByUID(ctx, "caregiver-1").
		Return(&entity.Profile{UID: "caregiver-1", AlertDispatch: true}, nil)
	fx.notifier.EXPECT().
		SendTopicNotification(ctx, "sos-caregiver-1", "SOS Alert", "help", mock.Anything).
		Return(errors.New("fcm unavailable"))

	result, err := fx.service.TriggerSOS(ctx, caregiver(), "help")
	require.NoError(t, err)
	assert.False(t, result.Dispatched)
	assert.NotNil(t, result.Alert)
}

func TestProfileService_TriggerSOS_RecordFailure(t *testing.T) {
	fx := createTestProfileService(t, usecase.SystemInfo{})
	ctx := context.Background()

	fx.alertRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("unavailable"))

	_, err := fx.service.TriggerSOS(ctx, caregiver(), "help")
	require.Error(t, err)
}
