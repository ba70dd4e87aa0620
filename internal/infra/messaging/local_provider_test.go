package messaging

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	domainerrors "devicestore/internal/domain/errors"
	"devicestore/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalProvider_Permission(t *testing.T) {
	ctx := context.Background()
	provider := NewLocalProvider(false)

	err := provider.RequestPermission(ctx)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))

	provider.SetPermission(true)
	assert.NoError(t, provider.RequestPermission(ctx))
}

func TestLocalProvider_SetTokenNotifiesListeners(t *testing.T) {
	ctx := context.Background()
	provider := NewLocalProvider(true)

	token, err := provider.GetToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	var seen []string
	handle := provider.OnTokenRefresh(func(ctx context.Context) error {
		current, err := provider.GetToken(ctx)
		seen = append(seen, current)

		return err
	})

	require.NoError(t, provider.SetToken(ctx, "T1"))
	require.NoError(t, provider.SetToken(ctx, "T1"))

	handle.Detach()
	require.NoError(t, provider.SetToken(ctx, "T2"))

	assert.Equal(t, []string{"T1", "T1"}, seen)

	token, err = provider.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T2", token)
}

func TestLocalProvider_ListenerErrorReturned(t *testing.T) {
	ctx := context.Background()
	provider := NewLocalProvider(true)
	listenerErr := errors.New("store unavailable")

	provider.OnTokenRefresh(func(context.Context) error { return listenerErr })

	err := provider.SetToken(ctx, "T1")
	assert.True(t, errors.Is(err, listenerErr))
}

func TestTokenFeed_DeliveriesDoNotOverlap(t *testing.T) {
	ctx := context.Background()
	feed := newTokenFeed()

	var active, maxActive atomic.Int32
	feed.subscribe(func(context.Context) error {
		n := active.Add(1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		active.Add(-1)

		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = feed.publish(ctx, "T")
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive.Load())
}

func TestDecodeTokenEvent(t *testing.T) {
	event, err := DecodeTokenEvent([]byte(`{"token":"T2","issued_at":"2024-01-02T03:04:05Z"}`))
	require.NoError(t, err)
	assert.Equal(t, "T2", event.Token)
	assert.Equal(t, 2024, event.IssuedAt.Year())

	_, err = DecodeTokenEvent([]byte(`not json`))
	assert.Error(t, err)
}
