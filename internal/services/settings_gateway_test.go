package services_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"floatclock/internal/database"
	"floatclock/internal/models"
	"floatclock/internal/repositories"
	"floatclock/internal/services"
	"floatclock/internal/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wailsapp/wails/v2/pkg/logger"
	gormlogger "gorm.io/gorm/logger"
)

func newSQLiteGateway(t *testing.T, path string) services.SettingsGateway {
	t.Helper()
	db, err := database.Init(database.Config{Path: path, LogLevel: gormlogger.Silent})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	gw := services.NewSettingsGateway(repositories.NewStoreEntryRepository(db), testStore, testKey, logger.NewDefaultLogger())
	t.Cleanup(func() {
		gw.Close()
		_ = sqlDB.Close()
	})
	return gw
}

func TestSettingsGateway_RoundTrip(t *testing.T) {
	gw := newSQLiteGateway(t, filepath.Join(t.TempDir(), "clock.db"))
	ctx := context.Background()

	assert.Equal(t, models.DefaultSettings(), gw.Load(ctx))

	s := models.DefaultSettings()
	s.TimeFormat = models.TimeFormat24h
	s.FontSize = models.FontSizeXLarge
	s.ActiveTheme = "light"
	s.TextColor = "#1a1a1a"
	s.BackgroundOpacity = 0.85
	s.WindowPosition = &models.WindowPosition{X: 100, Y: 40}
	s.WindowSize = &models.WindowSize{Width: 320, Height: 110}
	s.GlobalShortcut = "Ctrl+Alt+T"

	gw.Save(s)
	require.NoError(t, gw.Flush(ctx))

	assert.Equal(t, s, gw.Load(ctx))
}

func TestSettingsGateway_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clock.db")
	first := newSQLiteGateway(t, path)

	s := models.DefaultSettings()
	s.ShowSeconds = true
	first.Save(s)
	require.NoError(t, first.Flush(context.Background()))
	first.Close()

	second := newSQLiteGateway(t, path)
	assert.True(t, second.Load(context.Background()).ShowSeconds)
}

func TestSettingsGateway_CorruptRecordGivesDefaults(t *testing.T) {
	repo := &mocks.StoreEntryRepositoryMock{}
	require.NoError(t, repo.Put(context.Background(), testStore, testKey, []byte(`{"timeFormat":`)))

	gw := services.NewSettingsGateway(repo, testStore, testKey, logger.NewDefaultLogger())
	defer gw.Close()

	assert.Equal(t, models.DefaultSettings(), gw.Load(context.Background()))
}

func TestSettingsGateway_SavesAreSerialized(t *testing.T) {
	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0
	var written []float64

	repo := &mocks.StoreEntryRepositoryMock{
		PutFunc: func(ctx context.Context, store, key string, value []byte) error {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			mu.Unlock()

			time.Sleep(5 * time.Millisecond)
			s, _, err := models.DecodeSettings(value)
			assert.NoError(t, err)

			mu.Lock()
			written = append(written, s.TextOpacity)
			inFlight--
			mu.Unlock()
			return nil
		},
	}
	gw := services.NewSettingsGateway(repo, testStore, testKey, logger.NewDefaultLogger())
	defer gw.Close()

	for i := 1; i <= 10; i++ {
		s := models.DefaultSettings()
		s.TextOpacity = float64(i) / 10
		gw.Save(s)
	}
	require.NoError(t, gw.Flush(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, maxInFlight)
	require.NotEmpty(t, written)
	assert.Equal(t, 1.0, written[len(written)-1])
	for i := 1; i < len(written); i++ {
		assert.Greater(t, written[i], written[i-1], "an older record was written after a newer one")
	}
}

func TestSettingsGateway_SaveAfterCloseIsDropped(t *testing.T) {
	repo := &mocks.StoreEntryRepositoryMock{}
	gw := services.NewSettingsGateway(repo, testStore, testKey, logger.NewDefaultLogger())
	gw.Close()

	gw.Save(models.DefaultSettings())
	assert.NoError(t, gw.Flush(context.Background()))
	assert.Equal(t, 0, repo.Puts())
}
