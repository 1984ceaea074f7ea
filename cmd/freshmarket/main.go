package main

import (
	"context"
	"log/slog"
	"os"

	"freshmarket/config"
	"freshmarket/internal/delivery"
	"freshmarket/internal/delivery/http"
	"freshmarket/internal/delivery/http/middleware"
	"freshmarket/internal/delivery/http/router/handler"
	"freshmarket/internal/infra/auth"
	"freshmarket/internal/infra/cache"
	"freshmarket/internal/infra/events"
	logs "freshmarket/internal/infra/log"
	"freshmarket/internal/infra/persistence/postgres"
	"freshmarket/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		cache.Module,
		events.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCategoryRepository,
			postgres.NewFarmRepository,
			postgres.NewProductRepository,
			postgres.NewStockLinkRepository,
			postgres.NewOrderRepository,
			postgres.NewLineItemRepository,
			postgres.NewReviewRepository,
			postgres.NewUserRepository,
			postgres.NewRoleRepository,
			postgres.NewDeliveryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCategoryService,
			impl.NewFarmService,
			impl.NewProductService,
			impl.NewStockLinkService,
			impl.NewOrderService,
			impl.NewLineItemService,
			impl.NewReviewService,
			impl.NewUserService,
			impl.NewRoleService,
			impl.NewDeliveryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewRoleHandler,
			handler.NewFarmHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewStockLinkHandler,
			handler.NewOrderHandler,
			handler.NewLineItemHandler,
			handler.NewReviewHandler,
			handler.NewDeliveryHandler,
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
