// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"elderguard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrMedicalLogNotFound is returned when a medical log does not exist.
var ErrMedicalLogNotFound = errors.New("medical log not found")

// MedicalLogRepository defines the persistence operations for medical logs.
type MedicalLogRepository interface {
	// Create persists a new log and assigns its ID.
	Create(ctx context.Context, log *entity.MedicalLog) error

	// FindByID retrieves a log by ID.
	FindByID(ctx context.Context, id string) (*entity.MedicalLog, error)

	// FindByUser lists all logs owned by userID, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.MedicalLog, error)

	// UpdateNote replaces the note and bumps updatedAt.
	UpdateNote(ctx context.Context, log *entity.MedicalLog) error

	// Delete removes a log by ID.
	Delete(ctx context.Context, id string) error
}
