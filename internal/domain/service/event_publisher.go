package service

import (
	"context"
	"time"
)

// AlertEvent is published whenever an alert is recorded.
type AlertEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	AlertID   string    `json:"alert_id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert event for downstream consumers
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
