package impl

import (
	"context"
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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type alertService struct {
	alertRepo   repository.AlertRepository
	postureRepo repository.PostureRepository
	publisher   service.EventPublisher
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	AlertRepo   repository.AlertRepository
	PostureRepo repository.PostureRepository
	Publisher   service.EventPublisher
	Metrics     *metrics.Metrics `optional:"true"`
	Logger      *slog.Logger
}

// NewAlertService creates a new alert service instance
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		alertRepo:   params.AlertRepo,
		postureRepo: params.PostureRepo,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListAlerts returns the principal's most recent alerts
func (s *alertService) ListAlerts(ctx context.Context, principal *entity.Principal) ([]*entity.Alert, error) {
	alerts, err := s.alertRepo.FindRecentByUser(ctx, principal.UID, entity.MaxAlertsListed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list alerts")
	}

	return alerts, nil
}

// CreateAlert records a caregiver-raised alert and publishes it
func (s *alertService) CreateAlert(ctx context.Context, principal *entity.Principal, input *usecase.CreateAlertInput) (*entity.Alert, error) {
	message := strings.TrimSpace(input.Message)
	if !input.Type.IsValid() || !input.Severity.IsValid() || message == "" {
		return nil, domainerrors.ErrInvalidAlert
	}

	alert := &entity.Alert{
		UserID:    principal.UID,
		Type:      input.Type,
		Severity:  input.Severity,
		Message:   message,
		Source:    entity.SourceCaregiver,
		CreatedAt: s.now(),
	}

	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, errors.Wrap(err, "failed to create alert")
	}

	s.metrics.IncAlert(string(alert.Type), string(alert.Severity))
	publishAlert(ctx, s.publisher, s.log(ctx), alert)

	s.log(ctx).Info("Alert created",
		slog.String("alert_id", alert.ID),
		slog.String("type", string(alert.Type)),
		slog.String("severity", string(alert.Severity)),
	)

	return alert, nil
}

// AcknowledgeAlert marks an alert owned by the principal as handled
func (s *alertService) AcknowledgeAlert(ctx context.Context, principal *entity.Principal, id string) (*entity.Alert, error) {
	alert, err := s.alertRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert")
	}

	if !alert.IsOwnedBy(principal.UID) {
		return nil, domainerrors.ErrAlertForbidden
	}

	at := s.now()
	if err := s.alertRepo.Acknowledge(ctx, id, principal.UID, at); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return nil, domainerrors.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to acknowledge alert")
	}

	alert.Acknowledged = true
	alert.AcknowledgedAt = &at
	alert.AcknowledgedBy = principal.UID

	return alert, nil
}

// GetCurrentPosture returns the stored posture or an Unknown status
func (s *alertService) GetCurrentPosture(ctx context.Context, principal *entity.Principal) (*entity.PostureStatus, error) {
	status, err := s.postureRepo.FindByUser(ctx, principal.UID)
	if err != nil {
		if errors.Is(err, repository.ErrPostureNotFound) {
			return entity.UnknownPosture(principal.UID), nil
		}

		return nil, errors.Wrap(err, "failed to get posture status")
	}

	return status, nil
}

// UpdatePosture overwrites the principal's current posture
func (s *alertService) UpdatePosture(ctx context.Context, principal *entity.Principal, input *usecase.PostureInput) (*entity.PostureStatus, error) {
	action := strings.TrimSpace(input.Action)
	if action == "" {
		return nil, domainerrors.ErrActionRequired
	}

	now := s.now()
	status := &entity.PostureStatus{
		UserID:    principal.UID,
		Action:    action,
		Posture:   strings.TrimSpace(input.Posture),
		Source:    entity.SourceCaregiver,
		UpdatedAt: &now,
	}

	if err := s.postureRepo.Upsert(ctx, status); err != nil {
		return nil, errors.Wrap(err, "failed to update posture status")
	}

	return status, nil
}
