package events

import (
	"time"

	"github.com/google/uuid"

	"floatclock/internal/models"
)

const (
	SettingsChanged    = "settings:changed"
	SettingsState      = "settings:state"
	ClockTick          = "clock:tick"
	WindowPinned       = "window:pinned"
	WindowClickThrough = "window:clickthrough"
	SettingsPanelOpen  = "ui:settings:open"
)

// SettingsChangedEvent carries the full record after a change.
type SettingsChangedEvent struct {
	ID        string          `json:"id"`
	Settings  models.Settings `json:"settings"`
	Initial   bool            `json:"initial"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewSettingsChanged(s models.Settings, initial bool) SettingsChangedEvent {
	return SettingsChangedEvent{
		ID:        uuid.NewString(),
		Settings:  s,
		Initial:   initial,
		Timestamp: time.Now(),
	}
}

// StateEvent reports a preferences lifecycle transition.
type StateEvent struct {
	ID        string    `json:"id"`
	State     string    `json:"state"`
	Timestamp time.Time `json:"timestamp"`
}

func NewState(state string) StateEvent {
	return StateEvent{
		ID:        uuid.NewString(),
		State:     state,
		Timestamp: time.Now(),
	}
}
