package repository

import (
	"context"

	"elderguard/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a user has no profile document yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the persistence operations for user profiles.
type ProfileRepository interface {
	// FindByUID retrieves the profile document for uid.
	FindByUID(ctx context.Context, uid string) (*entity.Profile, error)

	// Save writes the full profile document.
	Save(ctx context.Context, profile *entity.Profile) error

	// UpdateSettings merges the provided toggles into the profile document.
	UpdateSettings(ctx context.Context, uid string, settings entity.ProfileSettings) error
}
