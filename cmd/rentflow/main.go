package main

import (
	"context"
	"log/slog"
	"os"

	"rentflow/config"
	"rentflow/internal/delivery"
	"rentflow/internal/delivery/api"
	"rentflow/internal/delivery/api/middleware"
	"rentflow/internal/delivery/api/router/handler"
	"rentflow/internal/infra/auth"
	"rentflow/internal/infra/ekyc"
	"rentflow/internal/infra/imageprep"
	logs "rentflow/internal/infra/log"
	"rentflow/internal/infra/persistence/postgres"
	"rentflow/internal/infra/pubsub"
	"rentflow/internal/infra/qrcode"
	"rentflow/internal/infra/redis"
	"rentflow/internal/infra/storage"
	"rentflow/internal/usecase/impl"

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
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			redis.NewClient,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewContractRepository,
			postgres.NewTemplateRepository,
			postgres.NewRoomRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.New,
			ekyc.New,
			storage.New,
			imageprep.New,
			redis.NewContractLocker,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationEmitter,
			impl.NewContractService,
			impl.NewIdentityService,
			impl.NewRenewalService,
			impl.NewTemplateService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewContractHandler,
			handler.NewIdentityHandler,
			handler.NewRenewalHandler,
			handler.NewTemplateHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
