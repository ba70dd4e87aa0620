package usecase

import (
	"context"

	"devicestore/internal/domain/entity"
)

// TokenRegistry reconciles a user's device document with token changes.
// Every mutating call is a single atomic read-modify-write of that document.
type TokenRegistry interface {
	// AddToken registers token for userID unless a device already holds it,
	// creating the document when it does not exist.
	AddToken(ctx context.Context, userID, token string) error

	// DeleteToken removes the device holding token, if any.
	DeleteToken(ctx context.Context, userID, token string) error

	// UpdateToken replaces oldToken with newToken. Either may be empty to mean "not given".
	UpdateToken(ctx context.Context, userID, oldToken, newToken string) error

	// ListDevices returns the user's devices ordered by device ID.
	ListDevices(ctx context.Context, userID string) ([]entity.Device, error)
}
