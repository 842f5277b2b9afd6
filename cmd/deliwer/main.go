package main

import (
	"context"
	"log/slog"
	"os"

	"deliwer/config"
	"deliwer/internal/delivery"
	"deliwer/internal/delivery/api"
	"deliwer/internal/delivery/api/middleware"
	"deliwer/internal/delivery/api/router/handler"
	"deliwer/internal/infra/auth"
	logs "deliwer/internal/infra/log"
	"deliwer/internal/infra/metrics"
	"deliwer/internal/infra/persistence"
	"deliwer/internal/infra/pubsub"
	"deliwer/internal/infra/qrcode"
	"deliwer/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
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
		persistence.New,
		metrics.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			pubsub.NewEventPublisher,
			metrics.NewRecorder,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewTradeInService,
			impl.NewOrderService,
			impl.NewAffiliateService,
			impl.NewLeaderboardService,
			impl.NewChallengeService,
			impl.NewAnalyticsService,
			impl.NewCampaignService,
			impl.NewDroughtRegionService,
			impl.NewAdminService,
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
			handler.NewTradeInHandler,
			handler.NewOrderHandler,
			handler.NewAffiliateHandler,
			handler.NewLeaderboardHandler,
			handler.NewChallengeHandler,
			handler.NewAnalyticsHandler,
			handler.NewCampaignHandler,
			handler.NewUserHandler,
			handler.NewDroughtRegionHandler,
			handler.NewAdminHandler,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
