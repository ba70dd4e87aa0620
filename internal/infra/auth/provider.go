package auth

import (
	"context"
	"log/slog"

	"devicestore/config"
	"devicestore/internal/domain/service"
	"devicestore/internal/infra/firebase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the identity provider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.AppProvider
}

// ProviderResult exposes the session under both of its roles.
type ProviderResult struct {
	fx.Out

	Identity service.IdentityProvider
	Session  service.IdentitySession
}

// NewIdentityProvider creates the identity provider selected by configuration.
func NewIdentityProvider(params ProviderParams) (ProviderResult, error) {
	provider := config.IdentityProviderFirebase
	if params.Config.Identity != nil && params.Config.Identity.Provider != "" {
		provider = params.Config.Identity.Provider
	}

	var verifier IDTokenVerifier
	switch provider {
	case config.IdentityProviderLocal:
		params.Logger.Warn("Using local identity provider, credentials are not verified")
		verifier = NewLocalVerifier()

	case config.IdentityProviderFirebase:
		app, err := params.Firebase.App()
		if err != nil {
			return ProviderResult{}, err
		}

		client, err := app.Auth(params.Ctx)
		if err != nil {
			return ProviderResult{}, errors.Wrap(err, "failed to get Firebase Auth client")
		}
		verifier = client

	default:
		return ProviderResult{}, errors.Errorf("unknown identity provider: %s", provider)
	}

	session := NewSessionIdentity(verifier, params.Logger)

	return ProviderResult{Identity: session, Session: session}, nil
}

// Module provides the identity FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewIdentityProvider),
)
