// Package auth provides the identity provider backed by Firebase Authentication.
package auth

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"devicestore/internal/domain/entity"
	domainerrors "devicestore/internal/domain/errors"
	"devicestore/internal/domain/service"
	"devicestore/internal/errors"
	"devicestore/internal/infra/listener"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// IDTokenVerifier verifies a sign-in credential. *firebaseauth.Client satisfies it.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// SessionIdentity tracks the signed-in user of this installation and notifies
// auth-state listeners on every sign-in and sign-out.
type SessionIdentity struct {
	verifier IDTokenVerifier
	logger   *slog.Logger

	mu      sync.Mutex
	current *entity.Identity

	// notifyMu keeps state changes and their deliveries in one order.
	notifyMu  sync.Mutex
	listeners *listener.Registry[service.AuthStateFunc]
}

// NewSessionIdentity creates an identity provider with nobody signed in.
func NewSessionIdentity(verifier IDTokenVerifier, logger *slog.Logger) *SessionIdentity {
	return &SessionIdentity{
		verifier:  verifier,
		logger:    logger,
		listeners: listener.NewRegistry[service.AuthStateFunc](),
	}
}

// CurrentUser returns the signed-in user, or nil.
func (s *SessionIdentity) CurrentUser(_ context.Context) *entity.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	user := *s.current

	return &user
}

// OnAuthStateChanged registers fn for sign-in and sign-out events.
func (s *SessionIdentity) OnAuthStateChanged(fn service.AuthStateFunc) service.ListenerHandle {
	return s.listeners.Add(fn)
}

// SignIn verifies idToken and makes its subject the current user. Listener
// errors are returned after the user has been switched.
func (s *SessionIdentity) SignIn(ctx context.Context, idToken string) (*entity.Identity, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, domainerrors.ErrInvalidIDToken.WithDetails("id token is required")
	}

	token, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.WarnContext(ctx, "ID token verification failed", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidIDToken.WithDetails(err.Error())
	}

	user := &entity.Identity{UID: token.UID}

	s.logger.InfoContext(ctx, "User signed in", slog.String("user_id", user.UID))

	return user, s.transition(ctx, user)
}

// SignOut clears the current user.
func (s *SessionIdentity) SignOut(ctx context.Context) error {
	s.logger.InfoContext(ctx, "User signed out")

	return s.transition(ctx, nil)
}

func (s *SessionIdentity) transition(ctx context.Context, user *entity.Identity) error {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	var errs []error
	for _, fn := range s.listeners.Snapshot() {
		var arg *entity.Identity
		if user != nil {
			copied := *user
			arg = &copied
		}
		if err := fn(ctx, arg); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// localVerifier trusts the credential as the user ID. Development only.
type localVerifier struct{}

// NewLocalVerifier returns a verifier that accepts any non-empty credential as a UID.
func NewLocalVerifier() IDTokenVerifier {
	return localVerifier{}
}

func (localVerifier) VerifyIDToken(_ context.Context, idToken string) (*firebaseauth.Token, error) {
	return &firebaseauth.Token{UID: idToken, Subject: idToken}, nil
}
