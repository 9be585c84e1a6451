package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wailsapp/wails/v2/pkg/logger"

	"floatclock/internal/models"
	"floatclock/internal/services"
	"floatclock/internal/tests/mocks"
)

func newTestModel(t *testing.T, initialize bool) (Model, services.PreferencesService) {
	t.Helper()
	log := logger.NewDefaultLogger()
	prefs := services.NewPreferencesService(services.PreferencesDeps{
		Gateway: services.NewSettingsGateway(&mocks.StoreEntryRepositoryMock{}, "settings.json", "settings", log),
		Log:     log,
	})
	t.Cleanup(func() { prefs.Shutdown(context.Background()) })

	ready := make(chan struct{})
	if initialize {
		select {
		case <-prefs.Initialize(context.Background()):
		case <-time.After(2 * time.Second):
			t.Fatal("preferences never became ready")
		}
		close(ready)
	}

	m := New(prefs, ready)
	m.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 9, 0, time.UTC) }
	return m, prefs
}

func press(t *testing.T, m Model, r string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)})
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestModel_LoadingShowsPlaceholder(t *testing.T) {
	m, _ := newTestModel(t, false)

	assert.Contains(t, m.View(), "Loading...")

	m = press(t, m, "t")
	assert.Equal(t, "still loading settings", m.status)
	assert.Contains(t, m.View(), "still loading settings")
}

func TestModel_RendersTime(t *testing.T) {
	m, _ := newTestModel(t, true)

	assert.Contains(t, m.View(), "2:05 PM")
}

func TestModel_KeysEditPreferences(t *testing.T) {
	m, prefs := newTestModel(t, true)

	m = press(t, m, "t")
	assert.Equal(t, models.TimeFormat24h, prefs.Settings().TimeFormat)
	assert.Contains(t, m.View(), "14:05")

	m = press(t, m, "s")
	assert.True(t, prefs.Settings().ShowSeconds)
	assert.Contains(t, m.View(), "14:05:09")

	m = press(t, m, "d")
	assert.Equal(t, models.DateFormatShort, prefs.Settings().DateFormat)
	assert.Contains(t, m.View(), "3/9")

	m = press(t, m, "f")
	assert.Equal(t, models.FontSizeLarge, prefs.Settings().FontSize)

	m = press(t, m, "n")
	assert.Equal(t, "light", prefs.Settings().ActiveTheme)
	assert.Empty(t, m.status)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, true)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ReadyClearsStatus(t *testing.T) {
	m, _ := newTestModel(t, false)
	m = press(t, m, "s")
	require.NotEmpty(t, m.status)

	next, _ := m.Update(readyMsg{})
	assert.Empty(t, next.(Model).status)
}

func TestCycle(t *testing.T) {
	assert.Equal(t, models.TimeFormat24h, cycle(models.TimeFormats, models.TimeFormat12h))
	assert.Equal(t, models.TimeFormat12h, cycle(models.TimeFormats, models.TimeFormat24h))
	assert.Equal(t, models.FontSizeSmall, cycle(models.FontSizes, "unknown"))
}
