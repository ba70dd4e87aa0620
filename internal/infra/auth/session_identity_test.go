package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"devicestore/internal/domain/entity"
	domainerrors "devicestore/internal/domain/errors"
	"devicestore/internal/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	uid string
	err error
}

func (v stubVerifier) VerifyIDToken(_ context.Context, _ string) (*firebaseauth.Token, error) {
	if v.err != nil {
		return nil, v.err
	}

	return &firebaseauth.Token{UID: v.uid}, nil
}

func newTestSession(verifier IDTokenVerifier) *SessionIdentity {
	return NewSessionIdentity(verifier, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSessionIdentity_SignInNotifiesListeners(t *testing.T) {
	session := newTestSession(stubVerifier{uid: "u1"})

	var seen []*entity.Identity
	session.OnAuthStateChanged(func(_ context.Context, user *entity.Identity) error {
		seen = append(seen, user)

		return nil
	})

	user, err := session.SignIn(context.Background(), "credential")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UID)
	assert.Equal(t, "u1", session.CurrentUser(context.Background()).UID)

	require.NoError(t, session.SignOut(context.Background()))
	assert.Nil(t, session.CurrentUser(context.Background()))

	require.Len(t, seen, 2)
	assert.Equal(t, "u1", seen[0].UID)
	assert.Nil(t, seen[1])
}

func TestSessionIdentity_RejectsInvalidToken(t *testing.T) {
	session := newTestSession(stubVerifier{err: errors.New("expired")})

	_, err := session.SignIn(context.Background(), "credential")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidIDToken)
	assert.Nil(t, session.CurrentUser(context.Background()))

	_, err = session.SignIn(context.Background(), " ")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidIDToken)
}

func TestSessionIdentity_ListenerErrorsAreReturned(t *testing.T) {
	session := newTestSession(NewLocalVerifier())

	failure := errors.New("store unavailable")
	session.OnAuthStateChanged(func(_ context.Context, _ *entity.Identity) error {
		return failure
	})

	_, err := session.SignIn(context.Background(), "u2")
	require.ErrorIs(t, err, failure)
	assert.Equal(t, "u2", session.CurrentUser(context.Background()).UID)
}

func TestSessionIdentity_DetachedListenerIsSkipped(t *testing.T) {
	session := newTestSession(NewLocalVerifier())

	calls := 0
	handle := session.OnAuthStateChanged(func(_ context.Context, _ *entity.Identity) error {
		calls++

		return nil
	})
	handle.Detach()

	_, err := session.SignIn(context.Background(), "u3")
	require.NoError(t, err)
	assert.Zero(t, calls)
}
