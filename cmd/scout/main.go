package main

import (
	"context"
	"log/slog"
	"os"

	"scout/config"
	"scout/internal/delivery"
	"scout/internal/delivery/http"
	"scout/internal/delivery/http/middleware"
	"scout/internal/delivery/http/router/handler"
	"scout/internal/infra/geocode"
	"scout/internal/infra/isochrone"
	logs "scout/internal/infra/log"
	"scout/internal/infra/persistence/postgres"
	"scout/internal/infra/places"
	"scout/internal/infra/render"
	"scout/internal/infra/transit"
	"scout/internal/usecase/impl"

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
			postgres.NewPropertyRepository,
			postgres.NewPOIRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geocode.NewClient,
			places.NewClient,
			transit.NewClient,
			isochrone.NewClient,
			render.NewSlogRenderer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPropertyService,
			impl.NewPOIService,
			impl.NewSearchService,
			impl.NewDiscoveryService,
			impl.NewIsochroneService,
			impl.NewMapSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPropertyHandler,
			handler.NewPOIHandler,
			handler.NewSearchHandler,
			handler.NewDiscoveryHandler,
			handler.NewIsochroneHandler,
			handler.NewViewStateHandler,
			handler.NewSheetHandler,
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
