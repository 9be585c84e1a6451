package models

import (
	"time"

	"gorm.io/datatypes"
)

// StoreEntry is one key of a named key-value store. The settings record lives
// under a single key of a single store.
type StoreEntry struct {
	Store     string         `gorm:"primaryKey;size:128"`
	Key       string         `gorm:"primaryKey;size:128"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}
