package main

import (
	"context"
	"log/slog"
	"os"

	"pawsconnect/config"
	"pawsconnect/internal/delivery"
	"pawsconnect/internal/delivery/http"
	"pawsconnect/internal/delivery/http/middleware"
	"pawsconnect/internal/delivery/http/router/handler"
	"pawsconnect/internal/infra/auth"
	logs "pawsconnect/internal/infra/log"
	"pawsconnect/internal/infra/persistence/postgres"
	"pawsconnect/internal/infra/storage"
	"pawsconnect/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPetRepository,
			postgres.NewAdoptionRepository,
			postgres.NewCareServiceRepository,
			postgres.NewBookingRepository,
			postgres.NewListingRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPetService,
			impl.NewAdoptionService,
			impl.NewCareService,
			impl.NewListingService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPetHandler,
			handler.NewAdoptionHandler,
			handler.NewCareHandler,
			handler.NewListingHandler,
			handler.NewNotificationHandler,
			handler.NewAdminHandler,
			handler.NewImageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
