package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"rentflow/internal/domain/entity"
	"rentflow/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements Notifier using Google Cloud Pub/Sub. Every
// user topic shares one Pub/Sub topic and is carried as a message attribute.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.Notifier, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("google pub/sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// Publish sends event to Pub/Sub and waits for the server acknowledgement
func (p *googlePubSubPublisher) Publish(ctx context.Context, topic string, event *entity.ContractEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: Attributes(topic, event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish event %s", event.ID)
	}

	p.logger.Debug("event published to google pub/sub",
		slog.String("event_id", event.ID.String()),
		slog.String("topic", topic),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
