// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"devicestore/internal/domain/entity"

	"github.com/pkg/errors"
)

// DefaultCollectionPath is the collection holding one device document per user.
const DefaultCollectionPath = "user-devices"

var (
	// ErrDocumentNotFound is returned by non-transactional reads of a missing document.
	ErrDocumentNotFound = errors.New("device document not found")
	// ErrTransactionContention is returned when a transaction lost every optimistic attempt.
	ErrTransactionContention = errors.New("device document transaction contention")
)

// DeviceSnapshot is a transactional read of a user's device document.
type DeviceSnapshot struct {
	Exists   bool
	Document *entity.UserDevices // Never nil. Devices is never nil either, a missing field reads as empty.
}

// DeviceDocumentTx is the read-modify-write surface available inside a transaction.
// Every document read in a transaction must also be written before it returns.
type DeviceDocumentTx interface {
	// Get reads the user's document.
	Get(userID string) (*DeviceSnapshot, error)

	// Set replaces the whole document.
	Set(userID string, doc *entity.UserDevices) error

	// Update replaces the devices field of an existing document.
	Update(userID string, devices map[string]entity.Device) error
}

// DeviceDocumentStore addresses documents as collection(path).document(userID).
type DeviceDocumentStore interface {
	// RunTransaction runs fn atomically. Contention retries are the store's own
	// concern; the final error is returned unchanged when fn fails.
	RunTransaction(ctx context.Context, fn func(ctx context.Context, tx DeviceDocumentTx) error) error

	// Get reads a document outside any transaction. Returns ErrDocumentNotFound when absent.
	Get(ctx context.Context, userID string) (*entity.UserDevices, error)
}
