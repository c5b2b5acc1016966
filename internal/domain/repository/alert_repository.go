package repository

import (
	"context"
	"time"

	"elderguard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAlertNotFound is returned when an alert does not exist.
var ErrAlertNotFound = errors.New("alert not found")

// AlertRepository defines the persistence operations for alerts.
type AlertRepository interface {
	// Create persists a new alert and assigns its ID.
	Create(ctx context.Context, alert *entity.Alert) error

	// FindByID retrieves an alert by ID.
	FindByID(ctx context.Context, id string) (*entity.Alert, error)

	// FindRecentByUser lists up to limit alerts owned by userID, newest first.
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]*entity.Alert, error)

	// Acknowledge marks an alert as acknowledged by the given subject.
	Acknowledge(ctx context.Context, id, by string, at time.Time) error
}
