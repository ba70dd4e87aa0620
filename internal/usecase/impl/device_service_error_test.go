package impl

import (
	"context"
	"testing"

	"devicestore/internal/domain/entity"
	domainerrors "devicestore/internal/domain/errors"
	"devicestore/internal/domain/repository"
	"devicestore/internal/errors"
	"devicestore/internal/infra/persistence/memory"
	mockRepo "devicestore/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createMockedRegistryService(t *testing.T) (*mockRepo.MockDeviceDocumentStore, *registryService) {
	store := mockRepo.NewMockDeviceDocumentStore(t)
	service := NewRegistryService(RegistryServiceParams{
		Store:         store,
		IDs:           newSequentialIDs(t),
		Fingerprinter: newTestFingerprinter(t),
		Logger:        discardLogger(),
	})

	return store, service.(*registryService)
}

func TestRegistryService_Validation(t *testing.T) {
	store, service := createMockedRegistryService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{name: "add without user", call: func() error { return service.AddToken(ctx, "", "T1") }},
		{name: "add without token", call: func() error { return service.AddToken(ctx, "u1", "") }},
		{name: "delete without user", call: func() error { return service.DeleteToken(ctx, " ", "T1") }},
		{name: "delete without token", call: func() error { return service.DeleteToken(ctx, "u1", "") }},
		{name: "update without user", call: func() error { return service.UpdateToken(ctx, "", "T1", "T2") }},
		{name: "list without user", call: func() error {
			_, err := service.ListDevices(ctx, "")

			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
		})
	}

	store.AssertNotCalled(t, "RunTransaction", mock.Anything, mock.Anything)
}

func TestRegistryService_AddToken_StoreFailure(t *testing.T) {
	store, service := createMockedRegistryService(t)
	ctx := context.Background()
	storeErr := errors.New("unavailable")

	store.EXPECT().
		RunTransaction(ctx, mock.Anything).
		Return(storeErr)

	err := service.AddToken(ctx, "u1", "T1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.ErrorIs(t, err, storeErr)

	var txErr *domainerrors.TransactionError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, "add token", txErr.Details())
}

func TestRegistryService_ReadFailureInsideTransaction(t *testing.T) {
	store, service := createMockedRegistryService(t)
	ctx := context.Background()
	readErr := errors.New("read failed")

	store.EXPECT().
		RunTransaction(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context, repository.DeviceDocumentTx) error) error {
			return fn(ctx, failingTx{err: readErr})
		}).
		Times(3)

	for _, call := range []func() error{
		func() error { return service.AddToken(ctx, "u1", "T1") },
		func() error { return service.DeleteToken(ctx, "u1", "T1") },
		func() error { return service.UpdateToken(ctx, "u1", "T1", "T2") },
	} {
		err := call()
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
		assert.ErrorIs(t, err, readErr)
	}
}

func TestRegistryService_Contention(t *testing.T) {
	store := memory.NewDeviceStore(1)
	service := NewRegistryService(RegistryServiceParams{
		Store:         &contendedStore{DeviceStore: store},
		IDs:           newSequentialIDs(t),
		Fingerprinter: newTestFingerprinter(t),
		Logger:        discardLogger(),
	})

	err := service.AddToken(context.Background(), "u1", "T1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.ErrorIs(t, err, repository.ErrTransactionContention)
}

func TestRegistryService_ListDevices_StoreFailure(t *testing.T) {
	store, service := createMockedRegistryService(t)
	ctx := context.Background()
	storeErr := errors.New("unavailable")

	store.EXPECT().Get(ctx, "u1").Return(nil, storeErr)

	_, err := service.ListDevices(ctx, "u1")
	require.ErrorIs(t, err, storeErr)
}

type failingTx struct {
	err error
}

func (f failingTx) Get(string) (*repository.DeviceSnapshot, error) { return nil, f.err }

func (f failingTx) Set(string, *entity.UserDevices) error { return f.err }

func (f failingTx) Update(string, map[string]entity.Device) error { return f.err }

// contendedStore commits a competing write inside every transaction.
type contendedStore struct {
	*memory.DeviceStore
}

func (s *contendedStore) RunTransaction(ctx context.Context, fn func(context.Context, repository.DeviceDocumentTx) error) error {
	return s.DeviceStore.RunTransaction(ctx, func(ctx context.Context, tx repository.DeviceDocumentTx) error {
		if err := fn(ctx, tx); err != nil {
			return err
		}

		return s.DeviceStore.RunTransaction(ctx, func(_ context.Context, inner repository.DeviceDocumentTx) error {
			return inner.Set("u1", entity.NewUserDevices("u1"))
		})
	})
}
