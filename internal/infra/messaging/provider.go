package messaging

import (
	"context"
	"log/slog"

	"devicestore/config"
	"devicestore/internal/domain/lifecycle"
	"devicestore/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the messaging provider, injected by Fx
type ProviderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// ProviderResult exposes the provider and, for the local provider, its token injector.
// Injector is nil for providers that receive tokens on their own.
type ProviderResult struct {
	fx.Out

	Messaging service.MessagingProvider
	Injector  service.TokenInjector
}

// NewMessagingProvider creates a MessagingProvider based on configuration
func NewMessagingProvider(params ProviderParams) (ProviderResult, error) {
	cfg := params.Config.Messaging
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == config.MessagingProviderLocal || cfg.Provider == config.MessagingProviderPush {
		granted := cfg != nil && cfg.PermissionGranted
		provider := config.MessagingProviderLocal
		if cfg != nil && cfg.Provider != "" {
			provider = cfg.Provider
		}
		// Push deliveries reach the same token feed through the control API.
		logger.Info("Using local messaging provider",
			slog.String("provider", provider),
			slog.Bool("permission_granted", granted),
		)

		local := NewLocalProvider(granted)

		return ProviderResult{Messaging: local, Injector: local}, nil
	}

	if cfg.Provider != config.MessagingProviderPubSub {
		return ProviderResult{}, errors.Errorf("unknown messaging provider: %s", cfg.Provider)
	}

	if cfg.PubSub == nil || cfg.PubSub.ProjectID == "" {
		return ProviderResult{}, errors.New("project ID is required for pubsub provider")
	}
	if cfg.PubSub.SubscriptionID == "" {
		return ProviderResult{}, errors.New("subscription ID is required for pubsub provider")
	}

	provider, err := NewPubSubProvider(params.Ctx, cfg.PubSub.ProjectID, cfg.PubSub.SubscriptionID, logger)
	if err != nil {
		return ProviderResult{}, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: provider.Start,
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			logger.Info("Closing Pub/Sub token provider")

			return provider.Close(stopCtx)
		},
	})

	return ProviderResult{Messaging: provider}, nil
}

// Module provides the messaging FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMessagingProvider),
)
