package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"floatclock/internal/models"
	"floatclock/internal/platform"
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var ErrNotReady = errors.New("preferences are not loaded yet")

// Change describes one transition of the settings record. Initial marks the
// transition from the defaults to the loaded record.
type Change struct {
	Prev    models.Settings
	Next    models.Settings
	Initial bool
}

// PreferencesService owns the settings record. It is the only writer; callers
// get copies.
type PreferencesService interface {
	// Initialize starts the one-shot load and returns a channel closed once the
	// service is Ready. Later calls return the same channel.
	Initialize(ctx context.Context) <-chan struct{}
	State() State
	Settings() models.Settings
	Themes() []models.Theme
	// Update merges patch over the current record. The new record is visible
	// to readers on return; persisting it happens in the background.
	Update(patch models.SettingsPatch) (models.Settings, error)
	// ApplyTheme selects a theme. Catalog themes other than custom overwrite the
	// colour fields; anything else only changes activeTheme.
	ApplyTheme(themeID string) (models.Settings, error)
	// Subscribe registers fn for every Change, including the initial load.
	// fn runs on the reaction goroutine, after the platform side effects.
	Subscribe(fn func(Change)) (unsubscribe func())
	// Flush waits until reactions and saves queued so far have completed.
	Flush(ctx context.Context) error
	Shutdown(ctx context.Context)
}

// PreferencesDeps are the collaborators the store reacts through. Nil
// collaborators disable the matching reaction.
type PreferencesDeps struct {
	Gateway   SettingsGateway
	Autostart platform.Autostart
	Hotkeys   platform.Hotkeys
	// ToggleWindow is bound to the global shortcut.
	ToggleWindow func()
	Log          logger.Logger
}

type preferencesService struct {
	deps PreferencesDeps

	mu          sync.Mutex
	state       State
	settings    models.Settings
	ready       chan struct{}
	subscribers map[int]func(Change)
	nextSubID   int

	reactions *serialQueue
	// activeShortcut is only touched on the reaction goroutine.
	activeShortcut string
}

func NewPreferencesService(deps PreferencesDeps) PreferencesService {
	if deps.Log == nil {
		deps.Log = logger.NewDefaultLogger()
	}
	return &preferencesService{
		deps:        deps,
		state:       StateUninitialized,
		settings:    models.DefaultSettings(),
		ready:       make(chan struct{}),
		subscribers: map[int]func(Change){},
		reactions:   newSerialQueue(),
	}
}

func (s *preferencesService) Initialize(ctx context.Context) <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateUninitialized {
		return s.ready
	}
	s.state = StateLoading

	go func() {
		loaded := s.deps.Gateway.Load(ctx)

		s.mu.Lock()
		change := Change{Prev: s.settings, Next: loaded.Clone(), Initial: true}
		s.settings = loaded
		s.state = StateReady
		s.schedule(change)
		s.mu.Unlock()

		close(s.ready)
		s.deps.Log.Info("preferences: ready")
	}()
	return s.ready
}

func (s *preferencesService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *preferencesService) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Clone()
}

func (s *preferencesService) Themes() []models.Theme {
	return models.Themes()
}

func (s *preferencesService) Update(patch models.SettingsPatch) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return s.settings.Clone(), ErrNotReady
	}

	next := s.settings.Merge(patch)
	if err := next.Validate(); err != nil {
		return s.settings.Clone(), err
	}

	change := Change{Prev: s.settings, Next: next.Clone()}
	s.settings = next
	// Saving under the lock keeps the save order identical to the update order.
	s.deps.Gateway.Save(next)
	s.schedule(change)

	return next.Clone(), nil
}

func (s *preferencesService) ApplyTheme(themeID string) (models.Settings, error) {
	patch := models.SettingsPatch{ActiveTheme: &themeID}
	if theme, ok := models.FindTheme(themeID); ok && theme.ID != models.CustomThemeID {
		patch.TextColor = &theme.TextColor
		patch.BackgroundColor = &theme.BackgroundColor
		patch.BackgroundOpacity = &theme.BackgroundOpacity
	}
	return s.Update(patch)
}

func (s *preferencesService) Subscribe(fn func(Change)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *preferencesService) Flush(ctx context.Context) error {
	if err := s.reactions.Flush(ctx); err != nil {
		return err
	}
	return s.deps.Gateway.Flush(ctx)
}

func (s *preferencesService) Shutdown(ctx context.Context) {
	if err := s.Flush(ctx); err != nil {
		s.deps.Log.Warning(fmt.Sprintf("preferences: shutdown before pending work finished: %v", err))
	}
	s.reactions.Enqueue(s.releaseShortcut)
	s.reactions.Close()
	s.deps.Gateway.Close()
}

// schedule queues the reactions for change. Callers hold s.mu.
func (s *preferencesService) schedule(change Change) {
	subs := make([]func(Change), 0, len(s.subscribers))
	for id := 0; id < s.nextSubID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			subs = append(subs, fn)
		}
	}
	s.reactions.Enqueue(func() {
		s.reactAutostart(change)
		s.reactShortcut(change)
		for _, fn := range subs {
			fn(change)
		}
	})
}

func (s *preferencesService) reactAutostart(change Change) {
	if s.deps.Autostart == nil {
		return
	}
	if !change.Initial && change.Prev.LaunchOnStartup == change.Next.LaunchOnStartup {
		return
	}

	want := change.Next.LaunchOnStartup
	enabled, err := s.deps.Autostart.IsEnabled()
	if err != nil {
		s.deps.Log.Error(fmt.Sprintf("preferences: query autostart: %v", err))
		return
	}
	switch {
	case want && !enabled:
		err = s.deps.Autostart.Enable()
	case !want && enabled:
		err = s.deps.Autostart.Disable()
	default:
		return
	}
	if err != nil {
		s.deps.Log.Error(fmt.Sprintf("preferences: set launch on startup to %v: %v", want, err))
	}
}

func (s *preferencesService) reactShortcut(change Change) {
	if s.deps.Hotkeys == nil {
		return
	}
	if !change.Initial && change.Prev.GlobalShortcut == change.Next.GlobalShortcut {
		return
	}
	next := change.Next.GlobalShortcut
	if next == s.activeShortcut {
		return
	}

	s.releaseShortcut()
	// An empty accelerator means no shortcut.
	if next == "" {
		return
	}

	toggle := s.deps.ToggleWindow
	if toggle == nil {
		toggle = func() {}
	}
	if err := s.deps.Hotkeys.Register(next, toggle); err != nil {
		s.deps.Log.Error(fmt.Sprintf("preferences: register shortcut %q: %v", next, err))
		return
	}
	s.activeShortcut = next
	s.deps.Log.Info(fmt.Sprintf("preferences: shortcut %q registered", next))
}

func (s *preferencesService) releaseShortcut() {
	if s.deps.Hotkeys == nil || s.activeShortcut == "" {
		return
	}
	if err := s.deps.Hotkeys.Unregister(s.activeShortcut); err != nil {
		s.deps.Log.Error(fmt.Sprintf("preferences: unregister shortcut %q: %v", s.activeShortcut, err))
	}
	s.activeShortcut = ""
}
