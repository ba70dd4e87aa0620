// Package memory provides an in-process device document store with optimistic
// transactions. It backs development runs and tests.
package memory

import (
	"context"
	"maps"
	"sync"

	"devicestore/internal/domain/entity"
	"devicestore/internal/domain/repository"
	"devicestore/internal/errors"
)

const defaultMaxAttempts = 5

type record struct {
	doc     *entity.UserDevices
	version uint64
}

// DeviceStore keeps every document in memory. Transactions read committed
// state and commit only if nothing they read changed in the meantime.
type DeviceStore struct {
	mu          sync.Mutex
	records     map[string]record
	maxAttempts int
}

// NewDeviceStore creates an empty store. maxAttempts below one uses the default.
func NewDeviceStore(maxAttempts int) *DeviceStore {
	if maxAttempts < 1 {
		maxAttempts = defaultMaxAttempts
	}

	return &DeviceStore{
		records:     make(map[string]record),
		maxAttempts: maxAttempts,
	}
}

// RunTransaction runs fn and commits its writes, retrying on conflicting commits.
func (s *DeviceStore) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.DeviceDocumentTx) error) error {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return errors.WithStack(err)
		}

		tx := &memoryTx{
			store:  s,
			reads:  make(map[string]uint64),
			writes: make(map[string]*entity.UserDevices),
		}
		if err := fn(ctx, tx); err != nil {
			return err
		}

		if s.commit(tx) {
			return nil
		}
	}

	return errors.Wrapf(repository.ErrTransactionContention, "gave up after %d attempts", s.maxAttempts)
}

// Get returns a copy of the stored document.
func (s *DeviceStore) Get(_ context.Context, userID string) (*entity.UserDevices, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[userID]
	if !ok {
		return nil, repository.ErrDocumentNotFound
	}

	return cloneDocument(rec.doc), nil
}

func (s *DeviceStore) commit(tx *memoryTx) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, version := range tx.reads {
		if s.records[userID].version != version {
			return false
		}
	}

	for userID, doc := range tx.writes {
		rec := s.records[userID]
		s.records[userID] = record{doc: doc, version: rec.version + 1}
	}

	return true
}

func (s *DeviceStore) read(userID string) (*entity.UserDevices, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[userID]
	if !ok {
		return nil, 0, false
	}

	return cloneDocument(rec.doc), rec.version, true
}

type memoryTx struct {
	store  *DeviceStore
	reads  map[string]uint64
	writes map[string]*entity.UserDevices
}

func (tx *memoryTx) Get(userID string) (*repository.DeviceSnapshot, error) {
	doc, version, ok := tx.store.read(userID)
	tx.reads[userID] = version
	if !ok {
		return &repository.DeviceSnapshot{Exists: false, Document: entity.NewUserDevices(userID)}, nil
	}

	return &repository.DeviceSnapshot{Exists: true, Document: doc}, nil
}

func (tx *memoryTx) Set(userID string, doc *entity.UserDevices) error {
	copied := cloneDocument(doc)
	copied.UserID = userID
	tx.writes[userID] = copied

	return nil
}

func (tx *memoryTx) Update(userID string, devices map[string]entity.Device) error {
	base, ok := tx.writes[userID]
	if !ok {
		current, _, exists := tx.store.read(userID)
		if !exists {
			return errors.Wrapf(repository.ErrDocumentNotFound, "update %s", userID)
		}
		base = current
	}

	base.Devices = maps.Clone(devices)
	if base.Devices == nil {
		base.Devices = make(map[string]entity.Device)
	}
	tx.writes[userID] = base

	return nil
}

func cloneDocument(doc *entity.UserDevices) *entity.UserDevices {
	copied := entity.NewUserDevices(doc.UserID)
	maps.Copy(copied.Devices, doc.Devices)

	return copied
}
