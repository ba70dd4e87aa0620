// Package persistence selects the device document store backend.
package persistence

import (
	"context"
	"log/slog"

	"devicestore/config"
	"devicestore/internal/domain/lifecycle"
	"devicestore/internal/domain/repository"
	"devicestore/internal/domain/service"
	"devicestore/internal/infra/firebase"
	firestoreStore "devicestore/internal/infra/persistence/firestore"
	"devicestore/internal/infra/persistence/memory"
	"devicestore/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the document store, injected by Fx
type StoreParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.AppProvider
	IDs      service.IDGenerator
}

// NewDeviceDocumentStore creates the store selected by store.driver.
func NewDeviceDocumentStore(params StoreParams) (repository.DeviceDocumentStore, error) {
	cfg := params.Config
	collection := repository.DefaultCollectionPath
	maxAttempts := 0
	if cfg.Registry != nil {
		if cfg.Registry.CollectionPath != "" {
			collection = cfg.Registry.CollectionPath
		}
		maxAttempts = cfg.Registry.MaxAttempts
	}

	driver := config.StoreDriverFirestore
	if cfg.Store != nil && cfg.Store.Driver != "" {
		driver = cfg.Store.Driver
	}

	params.Logger.Info("Creating device document store",
		slog.String("driver", driver),
		slog.String("collection", collection),
	)

	switch driver {
	case config.StoreDriverMemory:
		return memory.NewDeviceStore(maxAttempts), nil

	case config.StoreDriverFirestore:
		app, err := params.Firebase.App()
		if err != nil {
			return nil, err
		}

		client, err := app.Firestore(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firestore client")
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return firestoreStore.NewDeviceStore(client, collection, maxAttempts, params.IDs), nil

	case config.StoreDriverPostgres:
		if cfg.Postgres == nil {
			return nil, errors.New("store driver postgres requires a postgres section")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    cfg,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		store := postgres.NewDeviceStore(db, collection, maxAttempts, params.Logger)
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return store.Migrate(ctx)
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown store driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewDeviceDocumentStore),
)
