// Package messaging adapts push token sources to service.MessagingProvider.
package messaging

import (
	"context"
	"sync"

	"devicestore/internal/domain/service"
	"devicestore/internal/errors"
	"devicestore/internal/infra/listener"
)

// tokenFeed caches the current token and fans refreshes out to listeners.
type tokenFeed struct {
	mu    sync.Mutex
	token string

	// notifyMu keeps deliveries serial so no listener runs concurrently with itself.
	notifyMu  sync.Mutex
	listeners *listener.Registry[service.TokenRefreshFunc]
}

func newTokenFeed() *tokenFeed {
	return &tokenFeed{listeners: listener.NewRegistry[service.TokenRefreshFunc]()}
}

func (f *tokenFeed) current() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.token
}

func (f *tokenFeed) subscribe(fn service.TokenRefreshFunc) service.ListenerHandle {
	return f.listeners.Add(fn)
}

// publish stores token and notifies every listener, even when the token did not
// change, so a redelivered event lets a failed listener retry.
func (f *tokenFeed) publish(ctx context.Context, token string) error {
	f.notifyMu.Lock()
	defer f.notifyMu.Unlock()

	f.mu.Lock()
	f.token = token
	f.mu.Unlock()

	var errs []error
	for _, fn := range f.listeners.Snapshot() {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
