package firestore

import (
	"context"

	"elderguard/internal/domain/entity"
	domainerrors "elderguard/internal/domain/errors"
	"elderguard/internal/domain/repository"
	"elderguard/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// medicalLogRepository implements the repository.MedicalLogRepository interface.
type medicalLogRepository struct {
	client *fs.Client
}

// NewMedicalLogRepository is the constructor for medicalLogRepository.
func NewMedicalLogRepository(client *fs.Client) repository.MedicalLogRepository {
	return &medicalLogRepository{
		client: client,
	}
}

// Create persists a new medical log and assigns its generated ID.
func (repo *medicalLogRepository) Create(ctx context.Context, log *entity.MedicalLog) error {
	ref := repo.client.Collection(model.MedicalLogsCollection).NewDoc()

	if _, err := ref.Create(ctx, fromMedicalLogDomain(log)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create medical log")
	}

	log.ID = ref.ID

	return nil
}

// FindByID retrieves a medical log by its document ID.
func (repo *medicalLogRepository) FindByID(ctx context.Context, id string) (*entity.MedicalLog, error) {
	ref, ok := docRef(repo.client, model.MedicalLogsCollection, id)
	if !ok {
		return nil, repository.ErrMedicalLogNotFound
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMedicalLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find medical log by ID")
	}

	var m model.MedicalLogModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode medical log")
	}

	return toMedicalLogDomain(snap.Ref.ID, &m), nil
}

// FindByUser lists every log owned by userID, newest first.
func (repo *medicalLogRepository) FindByUser(ctx context.Context, userID string) ([]*entity.MedicalLog, error) {
	iter := repo.client.Collection(model.MedicalLogsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", fs.Desc).
		Documents(ctx)
	defer iter.Stop()

	logs := make([]*entity.MedicalLog, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list medical logs")
		}

		var m model.MedicalLogModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode medical log")
		}
		logs = append(logs, toMedicalLogDomain(snap.Ref.ID, &m))
	}

	return logs, nil
}

// UpdateNote replaces the note and updatedAt fields only.
func (repo *medicalLogRepository) UpdateNote(ctx context.Context, log *entity.MedicalLog) error {
	ref, ok := docRef(repo.client, model.MedicalLogsCollection, log.ID)
	if !ok {
		return repository.ErrMedicalLogNotFound
	}

	_, err := ref.Update(ctx, []fs.Update{
		{Path: "note", Value: log.Note},
		{Path: "updatedAt", Value: log.UpdatedAt},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrMedicalLogNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update medical log")
	}

	return nil
}

// Delete removes a medical log by ID.
func (repo *medicalLogRepository) Delete(ctx context.Context, id string) error {
	ref, ok := docRef(repo.client, model.MedicalLogsCollection, id)
	if !ok {
		return repository.ErrMedicalLogNotFound
	}

	if _, err := ref.Delete(ctx); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete medical log")
	}

	return nil
}
