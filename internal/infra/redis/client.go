// Package redis provides the redis connection and the contract lock built on it.
package redis

import (
	"context"
	"log/slog"

	"rentflow/config"
	"rentflow/internal/domain/lifecycle"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for the redis client, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewClient connects to redis. It returns nil when redis is disabled.
func NewClient(params ClientParams) (*goredis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("redis disabled")

		return nil, nil
	}
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required when redis is enabled")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
			}
			params.Logger.Info("redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
