package main

import (
	"context"
	"log/slog"
	"os"

	"devicestore/config"
	"devicestore/internal/delivery"
	"devicestore/internal/delivery/api"
	"devicestore/internal/delivery/api/router/handler"
	"devicestore/internal/infra/auth"
	"devicestore/internal/infra/fingerprint"
	"devicestore/internal/infra/firebase"
	"devicestore/internal/infra/identifier"
	logs "devicestore/internal/infra/log"
	"devicestore/internal/infra/messaging"
	"devicestore/internal/infra/persistence"
	"devicestore/internal/usecase"
	"devicestore/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type subscriptionLifecycleParams struct {
	fx.In

	Lc             fx.Lifecycle
	Config         *config.Config
	Logger         *slog.Logger
	SubscriptionUC usecase.SubscriptionUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			registerSubscriptionLifecycle,
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
			firebase.NewAppProvider,
		),
		persistence.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identifier.NewUUIDGenerator,
			fingerprint.NewUserAgentDetector,
		),
		auth.Module,
		messaging.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistryService,
			impl.NewSubscriptionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSubscriptionHandler,
			handler.NewSessionHandler,
			handler.NewDeviceHandler,
			handler.NewMessagingHandler,
			handler.NewPushHandler,
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

// registerSubscriptionLifecycle subscribes on start when configured and always
// detaches the listeners on stop.
func registerSubscriptionLifecycle(params subscriptionLifecycleParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if params.Config.Subscription == nil || !params.Config.Subscription.AutoSubscribe {
				return nil
			}

			// Permission may be granted later; Subscribe can be retried through the control API.
			if err := params.SubscriptionUC.Subscribe(context.WithoutCancel(ctx)); err != nil {
				params.Logger.Warn("Auto-subscribe failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return params.SubscriptionUC.Unsubscribe(ctx)
		},
	})
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
