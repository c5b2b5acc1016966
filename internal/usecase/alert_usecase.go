package usecase

import (
	"context"

	"elderguard/internal/domain/entity"
)

// CreateAlertInput is a caregiver-raised alert.
type CreateAlertInput struct {
	Type     entity.AlertType     `json:"type"`
	Severity entity.AlertSeverity `json:"severity"`
	Message  string               `json:"message"`
}

// PostureInput records the monitored person's current action.
type PostureInput struct {
	Action  string `json:"action"`
	Posture string `json:"posture"`
}

// AlertUsecase defines alert and posture operations.
type AlertUsecase interface {
	// ListAlerts returns the principal's most recent alerts, newest first, capped at entity.MaxAlertsListed.
	ListAlerts(ctx context.Context, principal *entity.Principal) ([]*entity.Alert, error)

	// CreateAlert records an alert and publishes an event for it.
	CreateAlert(ctx context.Context, principal *entity.Principal, input *CreateAlertInput) (*entity.Alert, error)

	// AcknowledgeAlert marks an alert the principal owns as handled.
	AcknowledgeAlert(ctx context.Context, principal *entity.Principal, id string) (*entity.Alert, error)

	// GetCurrentPosture returns the stored posture, or an Unknown status when none exists.
	GetCurrentPosture(ctx context.Context, principal *entity.Principal) (*entity.PostureStatus, error)

	// UpdatePosture overwrites the principal's current posture status.
	UpdatePosture(ctx context.Context, principal *entity.Principal, input *PostureInput) (*entity.PostureStatus, error)
}
