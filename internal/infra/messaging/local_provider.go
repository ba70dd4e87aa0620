package messaging

import (
	"context"
	"sync/atomic"

	domainerrors "devicestore/internal/domain/errors"
	"devicestore/internal/domain/service"
)

// LocalProvider receives tokens from the client application through the control API.
type LocalProvider struct {
	feed    *tokenFeed
	granted atomic.Bool
}

// NewLocalProvider creates a provider with the given initial permission.
func NewLocalProvider(permissionGranted bool) *LocalProvider {
	p := &LocalProvider{feed: newTokenFeed()}
	p.granted.Store(permissionGranted)

	return p
}

// RequestPermission fails with ErrPermissionDenied until permission is granted.
func (p *LocalProvider) RequestPermission(_ context.Context) error {
	if !p.granted.Load() {
		return domainerrors.ErrPermissionDenied
	}

	return nil
}

// GetToken returns the last reported token.
func (p *LocalProvider) GetToken(_ context.Context) (string, error) {
	return p.feed.current(), nil
}

// OnTokenRefresh registers fn for token reports.
func (p *LocalProvider) OnTokenRefresh(fn service.TokenRefreshFunc) service.ListenerHandle {
	return p.feed.subscribe(fn)
}

// SetToken records a token reported by the client and notifies listeners.
func (p *LocalProvider) SetToken(ctx context.Context, token string) error {
	return p.feed.publish(ctx, token)
}

// SetPermission records the user's notification permission decision.
func (p *LocalProvider) SetPermission(granted bool) {
	p.granted.Store(granted)
}
