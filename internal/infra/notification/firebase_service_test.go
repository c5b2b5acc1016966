package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/p/messages/1", nil
}

func newTestService(sender *fakeSender) *firebaseService {
	return newFirebaseService(sender, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSendTopicNotification(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(sender)

	err := svc.SendTopicNotification(context.Background(), "sos-user-1", "SOS", "Help requested", map[string]string{"alertId": "a1"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "sos-user-1", msg.Topic)
	assert.Equal(t, "SOS", msg.Notification.Title)
	assert.Equal(t, "Help requested", msg.Notification.Body)
	assert.Equal(t, "a1", msg.Data["alertId"])
	assert.Equal(t, "high", msg.Android.Priority)
}

func TestSendTopicNotification_BlankTopic(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestService(sender)

	err := svc.SendTopicNotification(context.Background(), "  ", "SOS", "body", nil)
	require.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestSendTopicNotification_SendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("quota exceeded")}
	svc := newTestService(sender)

	err := svc.SendTopicNotification(context.Background(), "sos-user-1", "SOS", "body", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sos-user-1")
	assert.Contains(t, err.Error(), "quota exceeded")
}
