package impl

import (
	"context"
	"testing"

	"devicestore/internal/domain/entity"
	domainerrors "devicestore/internal/domain/errors"
	"devicestore/internal/errors"
	"devicestore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionService_Subscribe_PermissionDenied(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.messaging.EXPECT().RequestPermission(ctx).Return(domainerrors.ErrPermissionDenied).Once()

	err := fx.service.Subscribe(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.False(t, fx.service.State().Subscribed)
	fx.messaging.AssertNotCalled(t, "GetToken", mock.Anything)
}

func TestSubscriptionService_Subscribe_GetTokenFailureRollsBack(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	tokenErr := errors.New("messaging unavailable")

	fx.messaging.EXPECT().RequestPermission(ctx).Return(nil).Once()
	fx.messaging.EXPECT().GetToken(ctx).Return("", tokenErr).Once()

	err := fx.service.Subscribe(ctx)
	require.ErrorIs(t, err, tokenErr)
	assert.Equal(t, usecase.SubscriptionState{}, fx.service.State())
}

func TestSubscriptionService_Subscribe_AddTokenFailureRollsBack(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	storeErr := domainerrors.NewTransactionError(errors.New("unavailable"), "add token")

	fx.messaging.EXPECT().RequestPermission(ctx).Return(nil).Once()
	fx.messaging.EXPECT().GetToken(ctx).Return("T1", nil).Once()
	fx.identity.EXPECT().CurrentUser(ctx).Return(&entity.Identity{UID: "u1"}).Once()
	fx.registry.EXPECT().AddToken(ctx, "u1", "T1").Return(storeErr).Once()

	err := fx.service.Subscribe(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.Equal(t, usecase.SubscriptionState{}, fx.service.State())
	fx.identity.AssertNotCalled(t, "OnAuthStateChanged", mock.Anything)

	// A later Subscribe starts over.
	fx.subscribeAs(t, "T1", &entity.Identity{UID: "u1"})
	assert.True(t, fx.service.State().Subscribed)
}

func TestSubscriptionService_AuthState_AddTokenFailureKeepsUserUncached(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	storeErr := errors.New("unavailable")

	fx.subscribeAs(t, "T1", nil)

	fx.registry.EXPECT().AddToken(mock.Anything, "u1", "T1").Return(storeErr).Once()
	require.ErrorIs(t, fx.onAuth(ctx, &entity.Identity{UID: "u1"}), storeErr)
	assert.Empty(t, fx.service.State().UserID)

	// A repeated event retries the registration.
	fx.registry.EXPECT().AddToken(mock.Anything, "u1", "T1").Return(nil).Once()
	require.NoError(t, fx.onAuth(ctx, &entity.Identity{UID: "u1"}))
	assert.Equal(t, "u1", fx.service.State().UserID)
}

func TestSubscriptionService_TokenRefresh_UpdateFailureKeepsCachedToken(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	storeErr := errors.New("unavailable")

	fx.subscribeAs(t, "T1", &entity.Identity{UID: "u1"})

	fx.messaging.EXPECT().GetToken(mock.Anything).Return("T2", nil).Once()
	fx.registry.EXPECT().UpdateToken(mock.Anything, "u1", "T1", "T2").Return(storeErr).Once()
	require.ErrorIs(t, fx.onToken(ctx), storeErr)

	// The retry still rotates from T1.
	fx.messaging.EXPECT().GetToken(mock.Anything).Return("T2", nil).Once()
	fx.registry.EXPECT().UpdateToken(mock.Anything, "u1", "T1", "T2").Return(nil).Once()
	require.NoError(t, fx.onToken(ctx))
}

func TestSubscriptionService_TokenRefresh_GetTokenFailure(t *testing.T) {
	fx := createTestSubscriptionService(t)
	tokenErr := errors.New("messaging unavailable")

	fx.subscribeAs(t, "T1", &entity.Identity{UID: "u1"})

	fx.messaging.EXPECT().GetToken(mock.Anything).Return("", tokenErr).Once()

	require.ErrorIs(t, fx.onToken(context.Background()), tokenErr)
	assert.True(t, fx.service.State().HasToken)
}

func TestSubscriptionService_SignOut_FailureKeepsUser(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	storeErr := errors.New("unavailable")

	fx.subscribeAs(t, "T1", &entity.Identity{UID: "u1"})

	fx.registry.EXPECT().DeleteToken(ctx, "u1", "T1").Return(storeErr).Once()

	require.ErrorIs(t, fx.service.SignOut(ctx), storeErr)
	assert.Equal(t, "u1", fx.service.State().UserID)
}
