package service

import (
	"context"

	"devicestore/internal/domain/entity"
)

// AuthStateFunc receives the new identity, nil after sign-out.
// A returned error is handed back to the event source.
type AuthStateFunc func(ctx context.Context, user *entity.Identity) error

// IdentityProvider reports the authenticated user of this installation.
type IdentityProvider interface {
	// CurrentUser returns nil when nobody is signed in.
	CurrentUser(ctx context.Context) *entity.Identity

	// OnAuthStateChanged registers fn. Invocations of fn never overlap each other.
	OnAuthStateChanged(fn AuthStateFunc) ListenerHandle
}

// IdentitySession signs this installation's user in and out.
type IdentitySession interface {
	// SignIn verifies idToken and makes its subject the current user.
	SignIn(ctx context.Context, idToken string) (*entity.Identity, error)

	// SignOut clears the current user.
	SignOut(ctx context.Context) error
}
