package postgres

import (
	"context"
	"log/slog"

	"devicestore/internal/domain/entity"
	"devicestore/internal/domain/repository"
	"devicestore/internal/errors"
	"devicestore/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultMaxAttempts = 5

// DeviceStore keeps one row per (collection, user). Transactions lock the row
// they read; racing inserts of a missing row fail on the primary key and retry.
type DeviceStore struct {
	db          *gorm.DB
	collection  string
	maxAttempts int
	logger      *slog.Logger
}

// NewDeviceStore creates a store over db.
func NewDeviceStore(db *gorm.DB, collection string, maxAttempts int, logger *slog.Logger) *DeviceStore {
	if collection == "" {
		collection = repository.DefaultCollectionPath
	}
	if maxAttempts < 1 {
		maxAttempts = defaultMaxAttempts
	}

	return &DeviceStore{
		db:          db,
		collection:  collection,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Migrate creates or updates the device_documents table.
func (s *DeviceStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&model.DeviceDocumentModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate device_documents")
	}

	return nil
}

// RunTransaction runs fn in a database transaction, retrying on conflicts.
func (s *DeviceStore) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.DeviceDocumentTx) error) error {
	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err := execute(ctx, s.db, func(tx *gorm.DB) error {
			return fn(ctx, &postgresTx{db: tx, collection: s.collection, existing: make(map[string]bool)})
		})
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}

		lastErr = err
		s.logger.DebugContext(ctx, "Device document transaction conflict, retrying",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)
	}

	return errors.Wrap(repository.ErrTransactionContention, lastErr.Error())
}

// Get reads a document outside any transaction.
func (s *DeviceStore) Get(ctx context.Context, userID string) (*entity.UserDevices, error) {
	var row model.DeviceDocumentModel
	err := s.db.WithContext(ctx).
		Where("collection = ? AND user_id = ?", s.collection, userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrapf(err, "failed to read device document %s", userID)
	}

	return row.ToDomain(), nil
}

type postgresTx struct {
	db         *gorm.DB
	collection string
	existing   map[string]bool
}

func (t *postgresTx) Get(userID string) (*repository.DeviceSnapshot, error) {
	var row model.DeviceDocumentModel
	err := t.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("collection = ? AND user_id = ?", t.collection, userID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			t.existing[userID] = false

			return &repository.DeviceSnapshot{Exists: false, Document: entity.NewUserDevices(userID)}, nil
		}

		return nil, errors.Wrapf(err, "failed to read device document %s", userID)
	}

	t.existing[userID] = true

	return &repository.DeviceSnapshot{Exists: true, Document: row.ToDomain()}, nil
}

func (t *postgresTx) Set(userID string, doc *entity.UserDevices) error {
	copied := *doc
	copied.UserID = userID
	row := model.NewDeviceDocumentModel(t.collection, &copied)

	// A row that was absent when read is inserted, so a concurrent insert
	// surfaces as a primary key violation instead of a lost update.
	if !t.existing[userID] {
		return t.db.Create(row).Error
	}

	return t.db.Save(row).Error
}

func (t *postgresTx) Update(userID string, devices map[string]entity.Device) error {
	if devices == nil {
		devices = map[string]entity.Device{}
	}

	result := t.db.Model(&model.DeviceDocumentModel{}).
		Where("collection = ? AND user_id = ?", t.collection, userID).
		Update("devices", datatypes.NewJSONType(devices))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.Wrapf(repository.ErrDocumentNotFound, "update %s", userID)
	}

	return nil
}
