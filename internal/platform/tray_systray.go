package platform

import (
	_ "embed"
	"sync"

	"fyne.io/systray"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

//go:embed icon.png
var trayIcon []byte

// trayBackend is the slice of the systray package the tray drives.
type trayBackend interface {
	run(onReady func()) (start, end func())
	decorate()
	resetMenu()
	addItem(title, tooltip string) <-chan struct{}
	addSeparator()
}

type systrayBackend struct{}

func (systrayBackend) run(onReady func()) (func(), func()) {
	return systray.RunWithExternalLoop(onReady, func() {})
}

func (systrayBackend) decorate() {
	systray.SetIcon(trayIcon)
	systray.SetTitle("Clock")
	systray.SetTooltip("Floating clock")
}

func (systrayBackend) resetMenu() { systray.ResetMenu() }

func (systrayBackend) addItem(title, tooltip string) <-chan struct{} {
	return systray.AddMenuItem(title, tooltip).ClickedCh
}

func (systrayBackend) addSeparator() { systray.AddSeparator() }

// SystrayTray shows the tray icon while the clock is pinned. Hiding ends the
// tray loop; showing again starts a fresh one and rebuilds the menu.
//
// On Linux the systray package keeps its quit channel closed once a loop has
// ended, so after the first unpin the icon is not re-registered if the
// StatusNotifier watcher restarts while pinned.
type SystrayTray struct {
	mu      sync.Mutex
	menu    TrayMenu
	log     logger.Logger
	backend trayBackend
	running bool
	end     func()
	done    chan struct{}
}

func NewSystrayTray(menu TrayMenu, log logger.Logger) *SystrayTray {
	return &SystrayTray{menu: menu, log: log, backend: systrayBackend{}}
}

func (t *SystrayTray) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *SystrayTray) SetVisible(visible bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if visible == t.running {
		return nil
	}
	if visible {
		done := make(chan struct{})
		start, end := t.backend.run(func() { t.onReady(done) })
		start()
		t.end = end
		t.done = done
		t.running = true
		return nil
	}

	close(t.done)
	if t.end != nil {
		t.end()
	}
	t.end = nil
	t.running = false
	return nil
}

func (t *SystrayTray) onReady(done chan struct{}) {
	b := t.backend
	b.decorate()
	// Menu items outlive the loop that created them; drop the previous pin's
	// items so their unread click channels do not stay on the menu.
	b.resetMenu()

	show := b.addItem("Show Window", "Show the clock window")
	settings := b.addItem("Settings", "Unpin and open settings")
	unpin := b.addItem("Unpin", "Unpin the clock window")
	b.addSeparator()
	quit := b.addItem("Quit", "Quit the clock")

	go func() {
		for {
			select {
			case <-show:
				t.run("show window", t.menu.OnShowWindow)
			case <-settings:
				t.run("settings", t.menu.OnSettings)
			case <-unpin:
				t.run("unpin", t.menu.OnUnpin)
			case <-quit:
				t.run("quit", t.menu.OnQuit)
			case <-done:
				return
			}
		}
	}()
}

// run calls a menu action on its own goroutine; actions may call SetVisible,
// which would deadlock against the menu loop otherwise.
func (t *SystrayTray) run(name string, action func()) {
	if action == nil {
		return
	}
	if t.log != nil {
		t.log.Debug("tray: " + name)
	}
	go action()
}
