package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"floatclock/internal/models"
)

// StoreEntryRepository is a named key-value store backed by the store_entries table.
type StoreEntryRepository interface {
	// Get returns the raw JSON value of key, or found=false when nothing was stored.
	Get(ctx context.Context, store, key string) (value []byte, found bool, err error)
	// Put replaces the value of key.
	Put(ctx context.Context, store, key string, value []byte) error
}

type storeEntryRepository struct {
	db *gorm.DB
}

func NewStoreEntryRepository(db *gorm.DB) StoreEntryRepository {
	return &storeEntryRepository{db: db}
}

func (r *storeEntryRepository) Get(ctx context.Context, store, key string) ([]byte, bool, error) {
	var entry models.StoreEntry
	err := r.db.WithContext(ctx).
		Where(&models.StoreEntry{Store: store, Key: key}).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(entry.Value), true, nil
}

func (r *storeEntryRepository) Put(ctx context.Context, store, key string, value []byte) error {
	entry := models.StoreEntry{
		Store:     store,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry).Error
}
