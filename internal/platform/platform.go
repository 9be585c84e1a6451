// Package platform holds the host-OS collaborators the clock drives: the
// window, the tray icon, global hotkeys and launch-on-startup registration.
// Services depend on the interfaces; main wires the real implementations.
package platform

// Window is the clock window as seen by the services.
type Window interface {
	Position() (x, y int)
	SetPosition(x, y int)
	Size() (width, height int)
	SetSize(width, height int)
	SetAlwaysOnTop(onTop bool)
	SetResizable(resizable bool)
	SetIgnorePointerEvents(ignore bool)
	IsVisible() bool
	Show()
	Hide()
	Focus()
	Close()
}

// TrayMenu holds the actions behind the tray menu items.
type TrayMenu struct {
	OnShowWindow func()
	OnSettings   func()
	OnUnpin      func()
	OnQuit       func()
}

// Tray is the system tray icon.
type Tray interface {
	SetVisible(visible bool) error
	Visible() bool
}

// Hotkeys registers OS-wide shortcuts. At most one registration exists per
// accelerator string.
type Hotkeys interface {
	Register(accelerator string, action func()) error
	Unregister(accelerator string) error
	UnregisterAll()
}

// Autostart controls launch-on-login registration of the running executable.
type Autostart interface {
	IsEnabled() (bool, error)
	Enable() error
	Disable() error
}
