package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "elderguard/internal/delivery/context"
	"elderguard/internal/domain/entity"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/domain/repository"
	"elderguard/internal/domain/service"
	"elderguard/internal/infra/metrics"
	"elderguard/internal/usecase"
	"elderguard/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Component states reported by the system status endpoint.
const (
	statusConnected     = "connected"
	statusUnavailable   = "unavailable"
	statusConfigured    = "configured"
	statusNotConfigured = "not_configured"
	statusOnline        = "online"
	statusOffline       = "offline"
	statusUnknown       = "unknown"
)

type profileService struct {
	profileRepo repository.ProfileRepository
	alertRepo   repository.AlertRepository
	publisher   service.EventPublisher
	notifier    service.NotificationService
	fall        usecase.FallUsecase
	info        usecase.SystemInfo
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	AlertRepo   repository.AlertRepository
	Publisher   service.EventPublisher
	Notifier    service.NotificationService
	Fall        usecase.FallUsecase
	Info        usecase.SystemInfo
	Metrics     *metrics.Metrics `optional:"true"`
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		alertRepo:   params.AlertRepo,
		publisher:   params.Publisher,
		notifier:    params.Notifier,
		fall:        params.Fall,
		info:        params.Info,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetProfile returns the principal's profile, writing the default on first access
func (s *profileService) GetProfile(ctx context.Context, principal *entity.Principal) (*entity.Profile, error) {
	profile, err := s.profileRepo.FindByUID(ctx, principal.UID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	profile = entity.NewDefaultProfile(principal, s.now())
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create default profile")
	}

	s.log(ctx).Info("Default profile created", slog.String("user_id", principal.UID))

	return profile, nil
}

// UpdateSettings applies the provided toggles to the principal's profile
func (s *profileService) UpdateSettings(ctx context.Context, principal *entity.Principal, settings entity.ProfileSettings) (*entity.Profile, error) {
	if settings.IsEmpty() {
		return nil, domainerrors.ErrNoSettings
	}

	// Settings on a never-read profile start from the defaults.
	profile, err := s.GetProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.UpdateSettings(ctx, principal.UID, settings); err != nil {
		return nil, errors.Wrap(err, "failed to update profile settings")
	}

	if settings.PostureTracking != nil {
		profile.PostureTracking = *settings.PostureTracking
	}
	if settings.AlertDispatch != nil {
		profile.AlertDispatch = *settings.AlertDispatch
	}
	profile.UpdatedAt = s.now()

	return profile, nil
}

// GetSystemStatus reports each backend component
func (s *profileService) GetSystemStatus(ctx context.Context, principal *entity.Principal) (*usecase.SystemStatus, error) {
	profile, err := s.GetProfile(ctx, principal)
	if err != nil {
		return nil, err
	}

	now := s.now()
	status := &usecase.SystemStatus{
		Firebase:        choose(s.info.FirebaseReady, statusConnected, statusUnavailable),
		Gemini:          choose(s.info.GeminiConfigured, statusConfigured, statusNotConfigured),
		Bridge:          s.bridgeStatus(),
		PostureTracking: profile.PostureTracking,
		AlertDispatch:   profile.AlertDispatch,
		Environment:     s.info.Environment,
		Version:         s.info.Version,
		Timestamp:       now,
	}
	if !s.info.StartedAt.IsZero() {
		status.Uptime = util.FormatDuration(now.Sub(s.info.StartedAt))
	}

	return status, nil
}

func (s *profileService) bridgeStatus() usecase.BridgeStatus {
	status := usecase.BridgeStatus{Status: statusUnknown, URL: s.info.BridgeURL}
	if s.fall == nil {
		return status
	}

	last, ok := s.fall.LastCheck()
	if !ok {
		return status
	}

	checkedAt := last.CheckedAt
	status.LastCheckedAt = &checkedAt
	status.LastAlert = last.Alert
	status.Status = choose(last.Success, statusOnline, statusOffline)

	return status
}

// TriggerSOS records a critical SOS alert, publishes it and pushes it when dispatch is enabled
func (s *profileService) TriggerSOS(ctx context.Context, principal *entity.Principal, message string) (*usecase.SOSResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		message = fmt.Sprintf("SOS triggered by %s", displayName(principal))
	}

	alert := &entity.Alert{
		UserID:    principal.UID,
		Type:      entity.AlertTypeSOS,
		Severity:  entity.SeverityCritical,
		Message:   message,
		Source:    entity.SourceSOS,
		CreatedAt: s.now(),
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "failed to record SOS alert")
	}

	s.metrics.IncAlert(string(alert.Type), string(alert.Severity))
	publishAlert(ctx, s.publisher, s.log(ctx), alert)

	result := &usecase.SOSResult{Alert: alert}

	profile, err := s.GetProfile(ctx, principal)
	if err != nil {
		s.log(ctx).Warn("SOS recorded but profile lookup failed, skipping dispatch",
			slog.String("alert_id", alert.ID),
			slog.Any("error", err),
		)

		return result, nil
	}
	if !profile.AlertDispatch || s.notifier == nil {
		return result, nil
	}

	topic := service.SOSTopicPrefix + principal.UID
	data := map[string]string{
		"alertId":  alert.ID,
		"userId":   principal.UID,
		"type":     string(alert.Type),
		"severity": string(alert.Severity),
	}
	if err := s.notifier.SendTopicNotification(ctx, topic, "SOS Alert", message, data); err != nil {
		s.log(ctx).Warn("SOS push dispatch failed",
			slog.String("alert_id", alert.ID),
			slog.String("topic", topic),
			slog.Any("error", err),
		)

		return result, nil
	}

	result.Dispatched = true
	s.log(ctx).Info("SOS dispatched",
		slog.String("alert_id", alert.ID),
		slog.String("topic", topic),
	)

	return result, nil
}

func displayName(principal *entity.Principal) string {
	if principal.Email != "" {
		return principal.Email
	}

	return principal.UID
}

func choose(cond bool, yes, no string) string {
	if cond {
		return yes
	}

	return no
}
