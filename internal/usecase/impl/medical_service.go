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
	"elderguard/internal/usecase"

	"github.com/pkg/errors"
)

type medicalService struct {
	logRepo repository.MedicalLogRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewMedicalService creates a new medical log service instance
func NewMedicalService(logRepo repository.MedicalLogRepository, logger *slog.Logger) usecase.MedicalUsecase {
	return &medicalService{
		logRepo: logRepo,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *medicalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListLogs returns every log owned by the principal, newest first
func (s *medicalService) ListLogs(ctx context.Context, principal *entity.Principal) ([]*entity.MedicalLog, error) {
	logs, err := s.logRepo.FindByUser(ctx, principal.UID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list medical logs")
	}

	return logs, nil
}

// CreateLog stores a new note authored by the principal
func (s *medicalService) CreateLog(ctx context.Context, principal *entity.Principal, note string) (*entity.MedicalLog, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, domainerrors.ErrNoteRequired
	}

	now := s.now()
	medicalLog := &entity.MedicalLog{
		UserID:    principal.UID,
		Note:      note,
		Author:    principal.Email,
		Role:      principal.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.logRepo.Create(ctx, medicalLog); err != nil {
		return nil, errors.Wrap(err, "failed to create medical log")
	}

	s.log(ctx).Info("Medical log created",
		slog.String("log_id", medicalLog.ID),
		slog.String("user_id", principal.UID),
	)

	return medicalLog, nil
}

// UpdateLog replaces the note of a log owned by the principal
func (s *medicalService) UpdateLog(ctx context.Context, principal *entity.Principal, id, note string) (*entity.MedicalLog, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, domainerrors.ErrNoteRequired
	}

	medicalLog, err := s.findOwned(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	medicalLog.Note = note
	medicalLog.UpdatedAt = s.now()

	if err := s.logRepo.UpdateNote(ctx, medicalLog); err != nil {
		if errors.Is(err, repository.ErrMedicalLogNotFound) {
			return nil, domainerrors.ErrMedicalLogNotFound
		}

		return nil, errors.Wrap(err, "failed to update medical log")
	}

	return medicalLog, nil
}

// DeleteLog removes a log owned by the principal
func (s *medicalService) DeleteLog(ctx context.Context, principal *entity.Principal, id string) error {
	if _, err := s.findOwned(ctx, principal, id); err != nil {
		return err
	}

	if err := s.logRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete medical log")
	}

	s.log(ctx).Info("Medical log deleted",
		slog.String("log_id", id),
		slog.String("user_id", principal.UID),
	)

	return nil
}

// findOwned loads a log and checks ownership. A missing log is reported before a foreign one.
func (s *medicalService) findOwned(ctx context.Context, principal *entity.Principal, id string) (*entity.MedicalLog, error) {
	medicalLog, err := s.logRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicalLogNotFound) {
			return nil, domainerrors.ErrMedicalLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find medical log")
	}

	if !medicalLog.IsOwnedBy(principal.UID) {
		return nil, domainerrors.ErrMedicalLogForbidden
	}

	return medicalLog, nil
}
