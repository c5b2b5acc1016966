package service

import (
	"context"
)

// SOSTopicPrefix prefixes the push topic family devices subscribe to for a monitored user.
const SOSTopicPrefix = "sos-"

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendTopicNotification sends a push notification to every device subscribed to topic
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
