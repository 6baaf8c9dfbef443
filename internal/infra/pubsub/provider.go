// Package pubsub broadcasts contract events to per-user topics.
package pubsub

import (
	"context"
	"log/slog"

	"rentflow/config"
	"rentflow/internal/domain/constants"
	"rentflow/internal/domain/entity"
	"rentflow/internal/domain/service"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// noopPublisher is used when no broadcast channel is configured
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(_ context.Context, topic string, event *entity.ContractEvent) error {
	p.logger.Debug("event publishing disabled, skipping",
		slog.String("event_id", event.ID.String()),
		slog.String("topic", topic),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Redis  *goredis.Client `optional:"true"`
}

// NewNotifier creates a Notifier based on configuration
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Notifier
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.NotifierProviderNoop {
		logger.Info("notifier not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var notifier service.Notifier
	switch cfg.Provider {
	case constants.NotifierProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("using local HTTP publisher", slog.String("endpoint", cfg.LocalEndpoint))

		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = config.DefaultNotifyTimeout
		}
		notifier = NewLocalHTTPPublisher(cfg.LocalEndpoint, timeout, logger)

	case constants.NotifierProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		var err error
		notifier, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.NotifierProviderRedis:
		if params.Redis == nil {
			return nil, errors.New("redis must be enabled for redis provider")
		}
		logger.Info("using redis publisher", slog.String("channel", cfg.Channel))

		notifier = NewRedisPublisher(params.Redis, cfg.Channel, logger)

	default:
		return nil, errors.Errorf("unknown notifier provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("closing notifier")

			return notifier.Close()
		},
	})

	return notifier, nil
}

// Module provides the notifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
