// Package tui is a terminal rendition of the floating clock. It reads and
// edits the same preferences record as the desktop window.
package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"floatclock/internal/clock"
	"floatclock/internal/models"
	"floatclock/internal/services"
)

type TickMsg time.Time

type readyMsg struct{}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	terminalBg  = colorful.Color{}
)

type Model struct {
	prefs  services.PreferencesService
	ready  <-chan struct{}
	keys   KeyMap
	now    func() time.Time
	status string
	width  int
	height int
}

// New builds the model. ready is the channel returned by Initialize.
func New(prefs services.PreferencesService, ready <-chan struct{}) Model {
	return Model{
		prefs: prefs,
		ready: ready,
		keys:  DefaultKeyMap(),
		now:   time.Now,
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func waitReady(ready <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ready
		return readyMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitReady(m.ready), tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case TickMsg:
		return m, tickCmd()
	case readyMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	s := m.prefs.Settings()
	var err error
	switch {
	case key.Matches(msg, m.keys.TimeFormat):
		v := cycle(models.TimeFormats, s.TimeFormat)
		_, err = m.prefs.Update(models.SettingsPatch{TimeFormat: &v})
	case key.Matches(msg, m.keys.Seconds):
		v := !s.ShowSeconds
		_, err = m.prefs.Update(models.SettingsPatch{ShowSeconds: &v})
	case key.Matches(msg, m.keys.Date):
		v := cycle(models.DateFormats, s.DateFormat)
		_, err = m.prefs.Update(models.SettingsPatch{DateFormat: &v})
	case key.Matches(msg, m.keys.FontSize):
		v := cycle(models.FontSizes, s.FontSize)
		_, err = m.prefs.Update(models.SettingsPatch{FontSize: &v})
	case key.Matches(msg, m.keys.Theme):
		ids := make([]string, 0, len(m.prefs.Themes()))
		for _, th := range m.prefs.Themes() {
			ids = append(ids, th.ID)
		}
		_, err = m.prefs.ApplyTheme(cycle(ids, s.ActiveTheme))
	default:
		return m, nil
	}

	switch {
	case errors.Is(err, services.ErrNotReady):
		m.status = "still loading settings"
	case err != nil:
		m.status = err.Error()
	default:
		m.status = ""
	}
	return m, nil
}

// cycle returns the element after cur, wrapping around. An unknown cur yields the first element.
func cycle[T comparable](values []T, cur T) T {
	for i, v := range values {
		if v == cur {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

func (m Model) View() string {
	var v clock.View
	var s models.Settings
	if m.prefs.State() == services.StateReady {
		s = m.prefs.Settings()
		v = clock.Render(m.now(), s)
	} else {
		v = clock.Placeholder()
	}

	face := m.faceStyle(v, s)
	lines := []string{lipgloss.NewStyle().Bold(true).Render(v.Time)}
	if v.ShowDate {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render(v.Date))
	}
	body := face.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	help := make([]string, 0, 6)
	for _, b := range m.keys.bindings() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}

	out := []string{body, helpStyle.Render(strings.Join(help, " • "))}
	if m.status != "" {
		out = append(out, statusStyle.Render(m.status))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, out...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// faceStyle approximates the translucent window: the background is blended
// over a black terminal, and the text over that background.
func (m Model) faceStyle(v clock.View, s models.Settings) lipgloss.Style {
	pad := int(v.Scale * 2)
	style := lipgloss.NewStyle().Padding(pad/2, pad)
	if v.Loading {
		return style.Foreground(lipgloss.Color(v.TextColor))
	}

	bg := blend(s.BackgroundColor, terminalBg, s.BackgroundOpacity)
	fg := blend(s.TextColor, bg, s.TextOpacity)
	return style.
		Background(lipgloss.Color(bg.Hex())).
		Foreground(lipgloss.Color(fg.Hex()))
}

func blend(hex string, under colorful.Color, alpha float64) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return under
	}
	return under.BlendRgb(c, alpha).Clamped()
}
