package main

import (
	"context"
	"log/slog"
	"os"

	"rentflow/config"
	"rentflow/internal/delivery"
	"rentflow/internal/delivery/worker"
	"rentflow/internal/delivery/worker/handler"
	"rentflow/internal/domain/service"
	"rentflow/internal/errors"
	logs "rentflow/internal/infra/log"
	"rentflow/internal/infra/notification"
	"rentflow/internal/infra/redis"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		redis.NewClient,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushSender,
			redis.NewDeliveryLedger,
		),
	)
}

// newPushSender returns nil when Firebase is not configured; the worker then acknowledges and drops events.
func newPushSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Warn("Firebase is not configured, push delivery disabled")

		return nil, nil
	}

	sender, err := notification.NewFirebaseService(ctx, cfg.Firebase, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return sender, nil
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
