package service

import (
	"context"
)

// TokenRefreshFunc is invoked after the push platform rotated the device token.
// A returned error is handed back to the event source.
type TokenRefreshFunc func(ctx context.Context) error

// MessagingProvider is the push-messaging platform as seen by one device.
type MessagingProvider interface {
	// RequestPermission returns domain ErrPermissionDenied when notifications are not allowed.
	RequestPermission(ctx context.Context) error

	// GetToken returns the current push token, or "" when none has been issued yet.
	GetToken(ctx context.Context) (string, error)

	// OnTokenRefresh registers fn. Invocations of fn never overlap each other.
	OnTokenRefresh(fn TokenRefreshFunc) ListenerHandle
}

// TokenInjector feeds tokens and permission decisions reported by the client
// application into a local messaging provider.
type TokenInjector interface {
	// SetToken records token as current and notifies refresh listeners.
	// An empty token means the platform revoked the previous one.
	SetToken(ctx context.Context, token string) error

	// SetPermission records whether the user allowed notifications.
	SetPermission(granted bool)
}
