// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"elderguard/internal/domain/entity"
)

// MedicalUsecase defines the operations over a subject's medical logs.
type MedicalUsecase interface {
	// ListLogs returns every log owned by the principal, newest first.
	ListLogs(ctx context.Context, principal *entity.Principal) ([]*entity.MedicalLog, error)

	// CreateLog stores a trimmed, non-empty note authored by the principal.
	CreateLog(ctx context.Context, principal *entity.Principal, note string) (*entity.MedicalLog, error)

	// UpdateLog replaces the note of a log the principal owns.
	UpdateLog(ctx context.Context, principal *entity.Principal, id, note string) (*entity.MedicalLog, error)

	// DeleteLog removes a log the principal owns.
	DeleteLog(ctx context.Context, principal *entity.Principal, id string) error
}
