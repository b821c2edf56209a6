package main

import (
	"context"
	"log/slog"
	"os"

	"localguide/config"
	"localguide/internal/delivery"
	"localguide/internal/delivery/api"
	"localguide/internal/delivery/api/middleware"
	"localguide/internal/delivery/api/router/handler"
	"localguide/internal/infra/auth"
	logs "localguide/internal/infra/log"
	"localguide/internal/infra/metrics"
	"localguide/internal/infra/persistence/postgres"
	"localguide/internal/infra/pubsub"
	"localguide/internal/infra/qrcode"
	"localguide/internal/infra/storage"
	"localguide/internal/usecase/impl"

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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		metrics.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewSpotRepository,
			postgres.NewLandmarkRepository,
			postgres.NewImageRepository,
			postgres.NewReviewRepository,
			postgres.NewBusinessRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
			storage.NewImageStore,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewCatalogService,
			impl.NewImageService,
			impl.NewReviewService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewImageHandler,
			handler.NewReviewHandler,
			handler.NewAdminHandler,
			handler.NewAuthHandler,
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
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
