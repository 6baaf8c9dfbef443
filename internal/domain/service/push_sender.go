package service

import (
	"context"

	"rentflow/internal/errors"
)

// ErrPushRejected marks a push the provider refused permanently; retrying it cannot succeed.
var ErrPushRejected = errors.New("push message rejected")

// PushSender defines the interface for device push delivery
type PushSender interface {
	// SendToTopic sends a push notification to every device subscribed to topic
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}
