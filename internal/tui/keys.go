package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the terminal clock.
type KeyMap struct {
	TimeFormat key.Binding
	Seconds    key.Binding
	Date       key.Binding
	FontSize   key.Binding
	Theme      key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TimeFormat: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "12h/24h"),
		),
		Seconds: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "seconds"),
		),
		Date: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "date"),
		),
		FontSize: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "size"),
		),
		Theme: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{k.TimeFormat, k.Seconds, k.Date, k.FontSize, k.Theme, k.Quit}
}
