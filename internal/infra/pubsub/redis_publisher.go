package pubsub

import (
	"context"
	"log/slog"

	"rentflow/internal/domain/entity"
	"rentflow/internal/domain/service"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

// redisPublisher implements Notifier with redis PUBLISH on "<prefix>:<topic>"
type redisPublisher struct {
	client *goredis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisPublisher creates a notifier publishing on redis channels
func NewRedisPublisher(client *goredis.Client, prefix string, logger *slog.Logger) service.Notifier {
	return &redisPublisher{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

// Publish sends the JSON event to the channel of topic
func (p *redisPublisher) Publish(ctx context.Context, topic string, event *entity.ContractEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	channel := p.Channel(topic)
	receivers, err := p.client.Publish(ctx, channel, data).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to publish event %s on %s", event.ID, channel)
	}

	p.logger.Debug("event published to redis",
		slog.String("event_id", event.ID.String()),
		slog.String("channel", channel),
		slog.Int64("receivers", receivers),
	)

	return nil
}

// Channel returns the redis channel carrying topic
func (p *redisPublisher) Channel(topic string) string {
	if p.prefix == "" {
		return topic
	}

	return p.prefix + ":" + topic
}

// Close is a no-op, the redis client is owned by its fx provider
func (p *redisPublisher) Close() error {
	return nil
}
