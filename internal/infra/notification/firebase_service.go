package notification

import (
	"context"
	"log/slog"
	"strings"

	"elderguard/internal/domain/service"
	"elderguard/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// messageSender is the subset of *messaging.Client used to push notifications.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseService creates a push notification service on the gateway's messaging client.
func NewFirebaseService(client *messaging.Client, logger *slog.Logger) service.NotificationService {
	return newFirebaseService(client, logger)
}

func newFirebaseService(client messageSender, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client: client,
		logger: logger,
	}
}

// SendTopicNotification sends a push notification to every device subscribed to topic
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return errors.New("notification topic is required")
	}

	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	s.logger.Info("Push notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}
