package firestore

import (
	"context"

	"elderguard/internal/domain/entity"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/domain/repository"
	"elderguard/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// postureRepository implements the repository.PostureRepository interface.
type postureRepository struct {
	client *fs.Client
}

// NewPostureRepository is the constructor for postureRepository.
func NewPostureRepository(client *fs.Client) repository.PostureRepository {
	return &postureRepository{
		client: client,
	}
}

// FindByUser returns the stored posture status for userID.
func (repo *postureRepository) FindByUser(ctx context.Context, userID string) (*entity.PostureStatus, error) {
	ref, ok := docRef(repo.client, model.PostureCollection, userID)
	if !ok {
		return nil, repository.ErrPostureNotFound
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPostureNotFound
		}

		return nil, errors.Wrap(err, "failed to find posture status")
	}

	var m model.PostureModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode posture status")
	}

	return toPostureDomain(&m), nil
}

// Upsert overwrites the posture document keyed by status.UserID.
func (repo *postureRepository) Upsert(ctx context.Context, status *entity.PostureStatus) error {
	ref, ok := docRef(repo.client, model.PostureCollection, status.UserID)
	if !ok {
		return errors.New("posture status requires a user ID")
	}

	if _, err := ref.Set(ctx, fromPostureDomain(status)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write posture status")
	}

	return nil
}
