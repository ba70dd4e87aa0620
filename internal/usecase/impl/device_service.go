package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"devicestore/internal/domain/entity"
	domainerrors "devicestore/internal/domain/errors"
	"devicestore/internal/domain/repository"
	"devicestore/internal/domain/service"
	"devicestore/internal/errors"
	"devicestore/internal/usecase"

	"go.uber.org/fx"
)

// RegistryServiceParams holds dependencies for the registry service, injected by Fx.
type RegistryServiceParams struct {
	fx.In

	Store         repository.DeviceDocumentStore
	IDs           service.IDGenerator
	Fingerprinter service.DeviceFingerprinter
	Logger        *slog.Logger
}

type registryService struct {
	store         repository.DeviceDocumentStore
	ids           service.IDGenerator
	fingerprinter service.DeviceFingerprinter
	logger        *slog.Logger
}

// NewRegistryService creates the token registry.
func NewRegistryService(params RegistryServiceParams) usecase.TokenRegistry {
	return &registryService{
		store:         params.Store,
		ids:           params.IDs,
		fingerprinter: params.Fingerprinter,
		logger:        params.Logger,
	}
}

// AddToken registers token for userID unless a device already holds it.
func (s *registryService) AddToken(ctx context.Context, userID, token string) error {
	if err := validateUserAndToken(userID, token); err != nil {
		return err
	}

	var created bool
	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.DeviceDocumentTx) error {
		created = false

		snap, err := tx.Get(userID)
		if err != nil {
			return err
		}

		if !snap.Exists {
			doc := entity.NewUserDevices(userID)
			s.insertDevice(doc.Devices, token)
			created = true

			return tx.Set(userID, doc)
		}

		devices := snap.Document.Devices
		if _, found := snap.Document.FindByToken(token); !found {
			s.insertDevice(devices, token)
			created = true
		}

		return tx.Update(userID, devices)
	})
	if err != nil {
		return wrapTransactionError(err, "add token")
	}

	s.logger.DebugContext(ctx, "Token registered",
		slog.String("user_id", userID),
		slog.String("token_prefix", tokenPrefix(token)),
		slog.Bool("new_device", created),
	)

	return nil
}

// DeleteToken removes the device holding token, if any.
func (s *registryService) DeleteToken(ctx context.Context, userID, token string) error {
	if err := validateUserAndToken(userID, token); err != nil {
		return err
	}

	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.DeviceDocumentTx) error {
		snap, err := tx.Get(userID)
		if err != nil {
			return err
		}

		// The store requires a write for every document read in a transaction.
		if !snap.Exists {
			return tx.Set(userID, entity.NewUserDevices(userID))
		}

		devices := snap.Document.Devices
		if deviceID, found := snap.Document.FindByToken(token); found {
			delete(devices, deviceID)
		}

		return tx.Update(userID, devices)
	})
	if err != nil {
		return wrapTransactionError(err, "delete token")
	}

	s.logger.DebugContext(ctx, "Token removed",
		slog.String("user_id", userID),
		slog.String("token_prefix", tokenPrefix(token)),
	)

	return nil
}

// UpdateToken replaces oldToken with newToken; an empty token means "not given".
func (s *registryService) UpdateToken(ctx context.Context, userID, oldToken, newToken string) error {
	if strings.TrimSpace(userID) == "" {
		return domainerrors.ErrInvalidArgument.WithDetails("userID is required")
	}

	err := s.store.RunTransaction(ctx, func(ctx context.Context, tx repository.DeviceDocumentTx) error {
		snap, err := tx.Get(userID)
		if err != nil {
			return err
		}

		if !snap.Exists {
			doc := entity.NewUserDevices(userID)
			if newToken != "" {
				s.insertDevice(doc.Devices, newToken)
			}

			return tx.Set(userID, doc)
		}

		devices := snap.Document.Devices
		if oldToken != "" {
			if deviceID, found := snap.Document.FindByToken(oldToken); found {
				delete(devices, deviceID)
			}
		}
		if newToken != "" {
			if _, found := snap.Document.FindByToken(newToken); !found {
				s.insertDevice(devices, newToken)
			}
		}

		return tx.Update(userID, devices)
	})
	if err != nil {
		return wrapTransactionError(err, "update token")
	}

	s.logger.DebugContext(ctx, "Token rotated",
		slog.String("user_id", userID),
		slog.String("old_token_prefix", tokenPrefix(oldToken)),
		slog.String("new_token_prefix", tokenPrefix(newToken)),
	)

	return nil
}

// ListDevices returns the user's devices ordered by device ID.
func (s *registryService) ListDevices(ctx context.Context, userID string) ([]entity.Device, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("userID is required")
	}

	doc, err := s.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return []entity.Device{}, nil
		}

		return nil, errors.Wrap(err, "failed to read device document")
	}

	devices := make([]entity.Device, 0, len(doc.Devices))
	for _, device := range doc.Devices {
		devices = append(devices, device)
	}
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].DeviceID < devices[j].DeviceID
	})

	return devices, nil
}

// insertDevice adds a new Web device for token under a freshly minted ID.
func (s *registryService) insertDevice(devices map[string]entity.Device, token string) {
	fingerprint := s.fingerprinter.Detect()
	deviceID := s.ids.Generate()

	devices[deviceID] = entity.Device{
		DeviceID:  deviceID,
		FCMToken:  token,
		Name:      fingerprint.Name,
		OS:        fingerprint.OS,
		Type:      entity.DeviceTypeWeb,
		UserAgent: fingerprint.UserAgent,
	}
}

func validateUserAndToken(userID, token string) error {
	if strings.TrimSpace(userID) == "" {
		return domainerrors.ErrInvalidArgument.WithDetails("userID is required")
	}
	if token == "" {
		return domainerrors.ErrInvalidArgument.WithDetails("token is required")
	}

	return nil
}

func wrapTransactionError(err error, details string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewTransactionError(err, details)
}

// tokenPrefix keeps push tokens out of logs.
func tokenPrefix(token string) string {
	return token[:min(10, len(token))]
}
