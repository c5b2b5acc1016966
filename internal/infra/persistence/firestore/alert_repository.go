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
	"google.golang.org/api/iterator"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	client *fs.Client
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(client *fs.Client) repository.AlertRepository {
	return &alertRepository{
		client: client,
	}
}

// Create persists a new alert and assigns its generated ID.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	ref := repo.client.Collection(model.AlertsCollection).NewDoc()

	if _, err := ref.Create(ctx, fromAlertDomain(alert)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert")
	}

	alert.ID = ref.ID

	return nil
}

// FindByID retrieves an alert by its document ID.
func (repo *alertRepository) FindByID(ctx context.Context, id string) (*entity.Alert, error) {
	ref, ok := docRef(repo.client, model.AlertsCollection, id)
	if !ok {
		return nil, repository.ErrAlertNotFound
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAlertNotFound
		}

		return nil, errors.Wrap(err, "failed to find alert by ID")
	}

	var m model.AlertModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode alert")
	}

	return toAlertDomain(snap.Ref.ID, &m), nil
}

// FindRecentByUser lists up to limit alerts owned by userID, newest first.
func (repo *alertRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]*entity.Alert, error) {
	query := repo.client.Collection(model.AlertsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", fs.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	alerts := make([]*entity.Alert, 0)
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list alerts")
		}

		var m model.AlertModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrap(err, "failed to decode alert")
		}
		alerts = append(alerts, toAlertDomain(snap.Ref.ID, &m))
	}

	return alerts, nil
}

// Acknowledge marks an alert as handled by the given subject.
func (repo *alertRepository) Acknowledge(ctx context.Context, id, by string, at time.Time) error {
	ref, ok := docRef(repo.client, model.AlertsCollection, id)
	if !ok {
		return repository.ErrAlertNotFound
	}

	_, err := ref.Update(ctx, []fs.Update{
		{Path: "acknowledged", Value: true},
		{Path: "acknowledgedAt", Value: at},
		{Path: "acknowledgedBy", Value: by},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrAlertNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to acknowledge alert")
	}

	return nil
}
