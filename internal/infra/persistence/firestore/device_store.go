// Package firestore stores device documents in Cloud Firestore.
package firestore

import (
	"context"

	"devicestore/internal/domain/entity"
	"devicestore/internal/domain/repository"
	"devicestore/internal/domain/service"
	"devicestore/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	userIDField  = "userId"
	devicesField = "devices"
)

// DeviceStore addresses documents as <collection>/<userID>.
type DeviceStore struct {
	client      *firestore.Client
	collection  string
	maxAttempts int
	ids         service.IDGenerator
}

// NewDeviceStore creates a store over client. ids names devices read from
// legacy array documents.
func NewDeviceStore(client *firestore.Client, collection string, maxAttempts int, ids service.IDGenerator) *DeviceStore {
	if collection == "" {
		collection = repository.DefaultCollectionPath
	}

	return &DeviceStore{
		client:      client,
		collection:  collection,
		maxAttempts: maxAttempts,
		ids:         ids,
	}
}

// RunTransaction runs fn in a Firestore transaction. Firestore retries
// aborted commits itself; running out of attempts maps to ErrTransactionContention.
func (s *DeviceStore) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.DeviceDocumentTx) error) error {
	opts := []firestore.TransactionOption{}
	if s.maxAttempts > 0 {
		opts = append(opts, firestore.MaxAttempts(s.maxAttempts))
	}

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(ctx, &firestoreTx{tx: tx, collection: s.client.Collection(s.collection), ids: s.ids})
	}, opts...)
	if err == nil {
		return nil
	}

	if status.Code(err) == codes.Aborted {
		return errors.Wrap(repository.ErrTransactionContention, err.Error())
	}

	return err
}

// Get reads a document outside any transaction.
func (s *DeviceStore) Get(ctx context.Context, userID string) (*entity.UserDevices, error) {
	snap, err := s.client.Collection(s.collection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrapf(err, "failed to read device document %s", userID)
	}

	return decodeUserDevices(userID, snap.Data(), s.ids)
}

type firestoreTx struct {
	tx         *firestore.Transaction
	collection *firestore.CollectionRef
	ids        service.IDGenerator
}

func (t *firestoreTx) Get(userID string) (*repository.DeviceSnapshot, error) {
	snap, err := t.tx.Get(t.collection.Doc(userID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &repository.DeviceSnapshot{Exists: false, Document: entity.NewUserDevices(userID)}, nil
		}

		return nil, errors.Wrapf(err, "failed to read device document %s", userID)
	}

	doc, err := decodeUserDevices(userID, snap.Data(), t.ids)
	if err != nil {
		return nil, err
	}

	return &repository.DeviceSnapshot{Exists: true, Document: doc}, nil
}

func (t *firestoreTx) Set(userID string, doc *entity.UserDevices) error {
	devices := doc.Devices
	if devices == nil {
		devices = map[string]entity.Device{}
	}

	return t.tx.Set(t.collection.Doc(userID), map[string]any{
		userIDField:  userID,
		devicesField: devices,
	})
}

func (t *firestoreTx) Update(userID string, devices map[string]entity.Device) error {
	return t.tx.Update(t.collection.Doc(userID), documentUpdates(userID, devices))
}

// documentUpdates writes the full {userId, devices} shape.
func documentUpdates(userID string, devices map[string]entity.Device) []firestore.Update {
	if devices == nil {
		devices = map[string]entity.Device{}
	}

	return []firestore.Update{
		{Path: userIDField, Value: userID},
		{Path: devicesField, Value: devices},
	}
}
