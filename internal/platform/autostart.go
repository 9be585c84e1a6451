package platform

import (
	"fmt"
	"os"

	"github.com/emersion/go-autostart"
)

// LoginAutostart registers the current executable to run at login.
type LoginAutostart struct {
	app *autostart.App
}

func NewLoginAutostart(name, displayName string) (*LoginAutostart, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return &LoginAutostart{app: &autostart.App{
		Name:        name,
		DisplayName: displayName,
		Exec:        []string{exe},
	}}, nil
}

func (a *LoginAutostart) IsEnabled() (bool, error) {
	return a.app.IsEnabled(), nil
}

func (a *LoginAutostart) Enable() error {
	if err := a.app.Enable(); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (a *LoginAutostart) Disable() error {
	if err := a.app.Disable(); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}
