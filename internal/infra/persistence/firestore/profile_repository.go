package firestore

import (
	"context"
	"time"

	"elderguard/internal/domain/entity"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/domain/repository"
	"elderguard/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	client *fs.Client
	now    func() time.Time
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *fs.Client) repository.ProfileRepository {
	return &profileRepository{
		client: client,
		now:    time.Now,
	}
}

// FindByUID retrieves the profile document for uid.
func (repo *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.Profile, error) {
	ref, ok := docRef(repo.client, model.UsersCollection, uid)
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	var m model.ProfileModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile")
	}
	if m.UID == "" {
		m.UID = snap.Ref.ID
	}

	return toProfileDomain(&m), nil
}

// Save writes the full profile document.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	ref, ok := docRef(repo.client, model.UsersCollection, profile.UID)
	if !ok {
		return errors.New("profile requires a UID")
	}

	if _, err := ref.Set(ctx, fromProfileDomain(profile)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save profile")
	}

	return nil
}

// UpdateSettings merges the provided toggles and bumps updatedAt.
func (repo *profileRepository) UpdateSettings(ctx context.Context, uid string, settings entity.ProfileSettings) error {
	ref, ok := docRef(repo.client, model.UsersCollection, uid)
	if !ok {
		return repository.ErrProfileNotFound
	}

	updates := []fs.Update{{Path: "updatedAt", Value: repo.now()}}
	if settings.PostureTracking != nil {
		updates = append(updates, fs.Update{Path: "postureTracking", Value: *settings.PostureTracking})
	}
	if settings.AlertDispatch != nil {
		updates = append(updates, fs.Update{Path: "alertDispatch", Value: *settings.AlertDispatch})
	}

	if _, err := ref.Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile settings")
	}

	return nil
}
