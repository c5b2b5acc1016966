package repository

import (
	"context"

	"elderguard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPostureNotFound is returned when no posture status has been recorded for a user.
var ErrPostureNotFound = errors.New("posture status not found")

// PostureRepository stores the current posture status per user.
type PostureRepository interface {
	// FindByUser returns the stored status for userID.
	FindByUser(ctx context.Context, userID string) (*entity.PostureStatus, error)

	// Upsert overwrites the status for status.UserID.
	Upsert(ctx context.Context, status *entity.PostureStatus) error
}
