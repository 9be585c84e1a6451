package services

import (
	"time"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"gorm.io/gorm"

	"floatclock/internal/config"
	"floatclock/internal/platform"
	"floatclock/internal/repositories"
)

// Platform bundles the host collaborators. Any of them may be nil except
// Window; NewTray is called once with the tray menu actions.
type Platform struct {
	Window    platform.Window
	Hotkeys   platform.Hotkeys
	Autostart platform.Autostart
	NewTray   func(menu platform.TrayMenu) platform.Tray
}

// Services aggregates the clock's services.
type Services struct {
	Gateway     SettingsGateway
	Preferences PreferencesService
	Geometry    *GeometryService
	Chrome      *WindowChromeService
	Clock       *ClockService
}

// NewServices constructs the service container using repositories backed by db.
func NewServices(db *gorm.DB, cfg config.Config, p Platform, log logger.Logger) *Services {
	repo := repositories.NewStoreEntryRepository(db)
	gateway := NewSettingsGateway(repo, cfg.StoreName, cfg.SettingsKey, log)

	chrome := NewWindowChromeService(p.Window, nil, log)
	if p.NewTray != nil {
		chrome.SetTray(p.NewTray(chrome.TrayMenu()))
	}

	prefs := NewPreferencesService(PreferencesDeps{
		Gateway:      gateway,
		Autostart:    p.Autostart,
		Hotkeys:      p.Hotkeys,
		ToggleWindow: chrome.ToggleVisibility,
		Log:          log,
	})

	chrome.GateOn(func() bool { return prefs.State() == StateReady })

	return &Services{
		Gateway:     gateway,
		Preferences: prefs,
		Geometry:    NewGeometryService(p.Window, prefs, log, cfg.GeometryDebounce),
		Chrome:      chrome,
		Clock:       NewClockService(prefs, time.Second),
	}
}
