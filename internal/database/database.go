// Package database opens the sqlite file that holds the clock's stores.
package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"floatclock/internal/models"
)

const pragmas = "_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"

type Config struct {
	Path     string
	LogLevel logger.LogLevel
	// Log receives gorm's output. Nil means the standard library logger.
	Log wailslogger.Logger
}

// Init opens (creating if needed) the database at cfg.Path and migrates it.
func Init(cfg Config) (*gorm.DB, error) {
	if cfg.LogLevel == 0 {
		cfg.LogLevel = logger.Warn
	}
	if cfg.Path == "" {
		cfg.Path = DefaultPath()
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	var sink logger.Writer = log.Default()
	if cfg.Log != nil {
		sink = appLogSink{cfg.Log}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path+"?"+pragmas), &gorm.Config{
		Logger: logger.New(sink, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  cfg.LogLevel,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", cfg.Path, err)
	}

	// One connection serializes writers; sqlite would otherwise answer "database is locked".
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&models.StoreEntry{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// appLogSink feeds gorm's logger into the app logger.
type appLogSink struct {
	log wailslogger.Logger
}

func (s appLogSink) Printf(format string, args ...any) {
	s.log.Info("gorm: " + fmt.Sprintf(format, args...))
}
