package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"floatclock/internal/database"
	"floatclock/internal/utils"
)

const (
	DefaultStoreName        = "settings.json"
	DefaultSettingsKey      = "settings"
	DefaultGeometryDebounce = 500 * time.Millisecond
	DefaultLogFile          = "floatclock.log"
)

// Config is the shell configuration of the app. None of it changes how
// preferences behave; it only says where they live and how loud the logs are.
type Config struct {
	DBPath           string
	StoreName        string
	SettingsKey      string
	LogLevel         logger.LogLevel
	LogFile          string
	GeometryDebounce time.Duration
}

func Default() Config {
	return Config{
		DBPath:           database.DefaultPath(),
		StoreName:        DefaultStoreName,
		SettingsKey:      DefaultSettingsKey,
		LogLevel:         logger.INFO,
		LogFile:          DefaultLogFile,
		GeometryDebounce: DefaultGeometryDebounce,
	}
}

// Load reads the optional project .env and then the FLOATCLOCK_* variables.
func Load() (Config, error) {
	// A missing .env is normal outside of development.
	if err := utils.LoadEnv(); err != nil && !utils.IsMissing(err) {
		return Default(), fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests can avoid the process env.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv("FLOATCLOCK_DB_PATH")); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(getenv("FLOATCLOCK_STORE")); v != "" {
		cfg.StoreName = v
	}
	if v := strings.TrimSpace(getenv("FLOATCLOCK_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(getenv("FLOATCLOCK_LOG_LEVEL")); v != "" {
		level, err := logger.StringToLogLevel(strings.ToLower(v))
		if err != nil {
			return cfg, fmt.Errorf("FLOATCLOCK_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}
	if v := strings.TrimSpace(getenv("FLOATCLOCK_GEOMETRY_DEBOUNCE")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("FLOATCLOCK_GEOMETRY_DEBOUNCE: %w", err)
		}
		if d < DefaultGeometryDebounce {
			d = DefaultGeometryDebounce
		}
		cfg.GeometryDebounce = d
	}

	return cfg, nil
}
