package main

import (
	"context"
	"fmt"
	"time"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"floatclock/internal/clock"
	"floatclock/internal/events"
	"floatclock/internal/models"
	"floatclock/internal/platform"
	"floatclock/internal/services"
)

const geometryPollInterval = 250 * time.Millisecond

// App struct
type App struct {
	ctx     context.Context
	log     logger.Logger
	svc     *services.Services
	window  *platform.WailsWindow
	hotkeys platform.Hotkeys
	tray    platform.Tray
	dbClose func() error
}

// NewApp creates a new App application struct
func NewApp(svc *services.Services, window *platform.WailsWindow, hotkeys platform.Hotkeys, tray platform.Tray, log logger.Logger) *App {
	return &App{svc: svc, window: window, hotkeys: hotkeys, tray: tray, log: log}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	events.EnableRuntimeEmitter()
	a.window.Startup(ctx)
	a.svc.Chrome.Startup(ctx)

	prefs := a.svc.Preferences
	prefs.Subscribe(func(c services.Change) {
		events.Emit(ctx, events.SettingsChanged, events.NewSettingsChanged(c.Next, c.Initial))
	})

	ready := prefs.Initialize(ctx)
	events.Emit(ctx, events.SettingsState, events.NewState(services.StateLoading.String()))
	a.svc.Clock.Startup(ctx)

	go func() {
		select {
		case <-ready:
		case <-ctx.Done():
			return
		}
		a.svc.Geometry.Restore(prefs.Settings())
		a.svc.Geometry.Watch(ctx, geometryPollInterval)
		events.Emit(ctx, events.SettingsState, events.NewState(services.StateReady.String()))
	}()
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	a.svc.Geometry.Stop()
	a.svc.Clock.Stop()

	if a.tray != nil {
		if err := a.tray.SetVisible(false); err != nil {
			a.log.Error(fmt.Sprintf("failed to remove tray icon: %v", err))
		}
	}

	flushCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	a.svc.Preferences.Shutdown(flushCtx)

	if a.hotkeys != nil {
		a.hotkeys.UnregisterAll()
	}

	// Close database connection pool
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			a.log.Error(fmt.Sprintf("failed to close database: %v", err))
		} else {
			a.log.Info("database closed")
		}
		a.dbClose = nil
	}
}

// GetState returns "uninitialized", "loading" or "ready"
func (a *App) GetState() string {
	return a.svc.Preferences.State().String()
}

// GetSettings returns the current settings
func (a *App) GetSettings() models.Settings {
	return a.svc.Preferences.Settings()
}

// UpdateSettings merges the given fields into the settings and returns the result
func (a *App) UpdateSettings(patch models.SettingsPatch) (models.Settings, error) {
	s, err := a.svc.Preferences.Update(patch)
	if err != nil {
		a.log.Warning(fmt.Sprintf("settings update rejected: %v", err))
	}
	return s, err
}

// ApplyTheme selects a theme by id
func (a *App) ApplyTheme(themeID string) (models.Settings, error) {
	s, err := a.svc.Preferences.ApplyTheme(themeID)
	if err != nil {
		a.log.Warning(fmt.Sprintf("theme %q rejected: %v", themeID, err))
	}
	return s, err
}

// GetThemes returns the theme catalog
func (a *App) GetThemes() []models.Theme {
	return a.svc.Preferences.Themes()
}

// GetView returns the rendered clock for the current instant
func (a *App) GetView() clock.View {
	return a.svc.Clock.Current()
}

// Pin keeps the clock on top and lets clicks pass through it. Refused until
// preferences are loaded.
func (a *App) Pin() error {
	return a.svc.Chrome.Pin()
}

// Unpin restores a normal, movable window
func (a *App) Unpin() error {
	return a.svc.Chrome.Unpin()
}

// IsPinned reports whether the window is pinned
func (a *App) IsPinned() bool {
	return a.svc.Chrome.IsPinned()
}

// Quit closes the application
func (a *App) Quit() {
	a.svc.Chrome.Quit()
}
