package config_test

import (
	"testing"
	"time"

	"floatclock/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "settings.json", cfg.StoreName)
	assert.Equal(t, 500*time.Millisecond, cfg.GeometryDebounce)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := config.FromEnv(envMap(map[string]string{
		"FLOATCLOCK_DB_PATH":           "/tmp/clock.db",
		"FLOATCLOCK_STORE":             "prefs",
		"FLOATCLOCK_LOG_LEVEL":         "debug",
		"FLOATCLOCK_GEOMETRY_DEBOUNCE": "750ms",
	}))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/clock.db", cfg.DBPath)
	assert.Equal(t, "prefs", cfg.StoreName)
	assert.Equal(t, logger.DEBUG, cfg.LogLevel)
	assert.Equal(t, 750*time.Millisecond, cfg.GeometryDebounce)
}

func TestFromEnv_DebounceFloor(t *testing.T) {
	cfg, err := config.FromEnv(envMap(map[string]string{"FLOATCLOCK_GEOMETRY_DEBOUNCE": "10ms"}))
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.GeometryDebounce)
}

func TestFromEnv_Invalid(t *testing.T) {
	_, err := config.FromEnv(envMap(map[string]string{"FLOATCLOCK_GEOMETRY_DEBOUNCE": "soon"}))
	assert.Error(t, err)

	_, err = config.FromEnv(envMap(map[string]string{"FLOATCLOCK_LOG_LEVEL": "loud"}))
	assert.Error(t, err)
}
