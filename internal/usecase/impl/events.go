// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "elderguard/internal/delivery/context"
	"elderguard/internal/domain/entity"
	"elderguard/internal/domain/service"
)

// newAlertEvent builds the event published for a stored alert.
func newAlertEvent(ctx context.Context, alert *entity.Alert) *service.AlertEvent {
	return &service.AlertEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		AlertID:   alert.ID,
		UserID:    alert.UserID,
		Type:      string(alert.Type),
		Severity:  string(alert.Severity),
		Message:   alert.Message,
		Source:    string(alert.Source),
		CreatedAt: alert.CreatedAt,
	}
}

// publishAlert publishes the alert event. Publishing is best effort: the alert is already stored.
func publishAlert(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, alert *entity.Alert) {
	if publisher == nil {
		return
	}

	if err := publisher.PublishAlertEvent(ctx, newAlertEvent(ctx, alert)); err != nil {
		logger.Warn("Failed to publish alert event",
			slog.String("alert_id", alert.ID),
			slog.Any("error", err),
		)
	}
}
