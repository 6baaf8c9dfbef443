package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"rentflow/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, message)

	return "projects/test/messages/1", nil
}

func newTestService(client messagingClient) *firebaseService {
	return &firebaseService{client: client, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestFirebaseService_SendToTopic(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := newTestService(client)

	err := svc.SendToTopic(context.Background(), "user_123", "Contract sent", "Please review", map[string]string{"contract_id": "c-1"})

	require.NoError(t, err)
	require.Len(t, client.sent, 1)
	msg := client.sent[0]
	assert.Equal(t, "user_123", msg.Topic)
	assert.Empty(t, msg.Token)
	assert.Equal(t, "Contract sent", msg.Notification.Title)
	assert.Equal(t, "c-1", msg.Data["contract_id"])
	assert.Equal(t, "high", msg.Android.Priority)
}

func TestFirebaseService_SendToTopic_Errors(t *testing.T) {
	t.Run("empty topic", func(t *testing.T) {
		client := &fakeMessagingClient{}
		err := newTestService(client).SendToTopic(context.Background(), "", "t", "b", nil)

		assert.ErrorIs(t, err, service.ErrPushRejected)
		assert.Empty(t, client.sent)
	})

	t.Run("send failure", func(t *testing.T) {
		cause := errors.New("unavailable")
		err := newTestService(&fakeMessagingClient{err: cause}).SendToTopic(context.Background(), "user_1", "t", "b", nil)

		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, service.ErrPushRejected)
	})
}
