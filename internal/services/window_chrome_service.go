package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"floatclock/internal/events"
	"floatclock/internal/platform"
)

// WindowChromeService handles pinning, visibility and the tray menu actions.
// Pinned means always on top, fixed size, click-through, with the tray icon as
// the way back.
type WindowChromeService struct {
	window platform.Window
	tray   platform.Tray
	log    logger.Logger

	mu     sync.Mutex
	ctx    context.Context
	pinned bool
	ready  func() bool
}

func NewWindowChromeService(window platform.Window, tray platform.Tray, log logger.Logger) *WindowChromeService {
	return &WindowChromeService{window: window, tray: tray, log: log}
}

func (c *WindowChromeService) Startup(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctx = ctx
}

// SetTray attaches the tray after construction; the tray menu needs the
// service, so the two are built in two steps.
func (c *WindowChromeService) SetTray(tray platform.Tray) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tray = tray
}

// GateOn makes Pin fail with ErrNotReady while ready reports false.
func (c *WindowChromeService) GateOn(ready func() bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ready = ready
}

func (c *WindowChromeService) IsPinned() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pinned
}

func (c *WindowChromeService) Pin() error {
	c.mu.Lock()
	ready := c.ready
	c.mu.Unlock()
	if ready != nil && !ready() {
		return ErrNotReady
	}
	return c.setPinned(true)
}

func (c *WindowChromeService) Unpin() error {
	return c.setPinned(false)
}

func (c *WindowChromeService) setPinned(pinned bool) error {
	c.mu.Lock()
	ctx := c.ctx
	tray := c.tray
	c.pinned = pinned
	c.mu.Unlock()

	c.window.SetAlwaysOnTop(pinned)
	c.window.SetResizable(!pinned)
	c.window.SetIgnorePointerEvents(pinned)
	events.Emit(ctx, events.WindowPinned, pinned)

	if tray == nil {
		return nil
	}
	if err := tray.SetVisible(pinned); err != nil {
		c.log.Error(fmt.Sprintf("chrome: set tray visible=%v: %v", pinned, err))
		return fmt.Errorf("tray: %w", err)
	}
	return nil
}

// ToggleVisibility hides a visible window, or shows and focuses a hidden one.
func (c *WindowChromeService) ToggleVisibility() {
	if c.window.IsVisible() {
		c.window.Hide()
		return
	}
	c.ShowWindow()
}

func (c *WindowChromeService) ShowWindow() {
	c.window.Show()
	c.window.Focus()
}

// OpenSettings unpins (the panel needs pointer input) and asks the page to open the panel.
func (c *WindowChromeService) OpenSettings() {
	if err := c.Unpin(); err != nil {
		c.log.Warning(fmt.Sprintf("chrome: open settings: %v", err))
	}
	c.ShowWindow()

	c.mu.Lock()
	ctx := c.ctx
	c.mu.Unlock()
	events.Emit(ctx, events.SettingsPanelOpen, true)
}

func (c *WindowChromeService) Quit() {
	c.window.Close()
}

// TrayMenu returns the actions for the tray menu items.
func (c *WindowChromeService) TrayMenu() platform.TrayMenu {
	return platform.TrayMenu{
		OnShowWindow: c.ShowWindow,
		OnSettings:   c.OpenSettings,
		OnUnpin: func() {
			if err := c.Unpin(); err != nil {
				c.log.Warning(fmt.Sprintf("chrome: unpin: %v", err))
			}
		},
		OnQuit: c.Quit,
	}
}
