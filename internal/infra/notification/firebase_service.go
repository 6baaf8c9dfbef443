// Package notification delivers push notifications to devices.
package notification

import (
	"context"
	"log/slog"

	"rentflow/config"
	"rentflow/internal/domain/service"
	"rentflow/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messagingClient is the subset of the FCM client the sender uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
	logger *slog.Logger
}

// NewFirebaseService creates a push sender backed by Firebase Cloud Messaging
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.PushSender, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client, logger: logger}, nil
}

// SendToTopic sends a push notification to every device subscribed to topic
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	if topic == "" {
		return errors.Wrap(service.ErrPushRejected, "topic is required")
	}

	messageID, err := s.client.Send(ctx, topicMessage(topic, title, body, data))
	if err != nil {
		if messaging.IsInvalidArgument(err) {
			return errors.Wrapf(errors.Join(service.ErrPushRejected, err), "FCM rejected message for topic %s", topic)
		}

		return errors.Wrap(err, "failed to send notification")
	}

	s.logger.Debug("push notification sent",
		slog.String("topic", topic),
		slog.String("message_id", messageID),
	)

	return nil
}

func topicMessage(topic, title, body string, data map[string]string) *messaging.Message {
	return &messaging.Message{
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
}
