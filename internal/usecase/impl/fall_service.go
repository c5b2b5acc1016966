package impl

import (
	"context"
	"log/slog"
	"time"

	"elderguard/config"
	deliverycontext "elderguard/internal/delivery/context"
	"elderguard/internal/domain/entity"
	"elderguard/internal/domain/repository"
	"elderguard/internal/domain/service"
	"elderguard/internal/infra/metrics"
	"elderguard/internal/usecase"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/fx"
)

const (
	lastCheckKey        = "check:last"
	fallAlertKeyPrefix  = "fall:"
	fallAlertMessage    = "Fall detected by the monitoring camera"
	defaultFallCooldown = time.Minute
)

type fallService struct {
	detector    service.FallDetector
	postureRepo repository.PostureRepository
	alertRepo   repository.AlertRepository
	publisher   service.EventPublisher
	cache       *gocache.Cache
	cooldown    time.Duration
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

// FallServiceParams holds dependencies for FallService, injected by Fx.
type FallServiceParams struct {
	fx.In

	Detector    service.FallDetector
	PostureRepo repository.PostureRepository
	AlertRepo   repository.AlertRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Metrics     *metrics.Metrics `optional:"true"`
	Logger      *slog.Logger
}

// NewFallService creates a new fall detection service instance
func NewFallService(params FallServiceParams) usecase.FallUsecase {
	cooldown := params.Config.Bridge.AlertCooldown
	if cooldown <= 0 {
		cooldown = defaultFallCooldown
	}

	return &fallService{
		detector:    params.Detector,
		postureRepo: params.PostureRepo,
		alertRepo:   params.AlertRepo,
		publisher:   params.Publisher,
		cache:       gocache.New(cooldown, 2*cooldown),
		cooldown:    cooldown,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *fallService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CheckFall polls the bridge once; bridge failures become an unsuccessful check
func (s *fallService) CheckFall(ctx context.Context, principal *entity.Principal) *entity.FallCheck {
	detected, err := s.detector.Predict(ctx)
	check := &entity.FallCheck{CheckedAt: s.now()}

	if err != nil {
		s.metrics.IncBridgeCheck(metrics.OutcomeUnreachable)
		s.log(ctx).Warn("Fall detection bridge unavailable", slog.Any("error", err))
		s.cache.Set(lastCheckKey, *check, gocache.NoExpiration)

		return check
	}

	check.Success = true
	check.Alert = detected
	s.cache.Set(lastCheckKey, *check, gocache.NoExpiration)

	if !detected {
		s.metrics.IncBridgeCheck(metrics.OutcomeClear)

		return check
	}

	s.metrics.IncBridgeCheck(metrics.OutcomeFall)
	if principal != nil {
		s.recordFall(ctx, principal.UID, check.CheckedAt)
	}

	return check
}

// LastCheck returns the most recent check outcome
func (s *fallService) LastCheck() (*entity.FallCheck, bool) {
	v, ok := s.cache.Get(lastCheckKey)
	if !ok {
		return nil, false
	}

	check, ok := v.(entity.FallCheck)
	if !ok {
		return nil, false
	}

	return &check, true
}

// recordFall stores the posture and alert for a detected fall, at most once per cooldown per user.
// Failures are logged only; the check result is already decided.
func (s *fallService) recordFall(ctx context.Context, userID string, at time.Time) {
	if err := s.cache.Add(fallAlertKeyPrefix+userID, at, s.cooldown); err != nil {
		s.log(ctx).Debug("Fall alert suppressed during cooldown", slog.String("user_id", userID))

		return
	}

	status := &entity.PostureStatus{
		UserID:    userID,
		Action:    entity.ActionFallDetected,
		Source:    entity.SourceBridge,
		UpdatedAt: &at,
	}
	if err := s.postureRepo.Upsert(ctx, status); err != nil {
		s.log(ctx).Error("Failed to record fall posture", slog.String("user_id", userID), slog.Any("error", err))
	}

	alert := &entity.Alert{
		UserID:    userID,
		Type:      entity.AlertTypeFall,
		Severity:  entity.SeverityCritical,
		Message:   fallAlertMessage,
		Source:    entity.SourceBridge,
		CreatedAt: at,
	}
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		s.log(ctx).Error("Failed to record fall alert", slog.String("user_id", userID), slog.Any("error", err))

		return
	}

	s.metrics.IncAlert(string(alert.Type), string(alert.Severity))
	publishAlert(ctx, s.publisher, s.log(ctx), alert)

	s.log(ctx).Warn("Fall detected", slog.String("user_id", userID), slog.String("alert_id", alert.ID))
}
