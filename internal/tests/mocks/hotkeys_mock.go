package mocks

import (
	"fmt"
	"sync"
)

// HotkeysMock records registrations. RegisterFunc may reject a shortcut.
type HotkeysMock struct {
	RegisterFunc func(accelerator string) error

	mu      sync.Mutex
	active  map[string]func()
	history []string
}

func (m *HotkeysMock) Register(accelerator string, action func()) error {
	if m.RegisterFunc != nil {
		if err := m.RegisterFunc(accelerator); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		m.active = map[string]func(){}
	}
	if _, ok := m.active[accelerator]; ok {
		return fmt.Errorf("%s already registered", accelerator)
	}
	m.active[accelerator] = action
	m.history = append(m.history, "+"+accelerator)
	return nil
}

func (m *HotkeysMock) Unregister(accelerator string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.active[accelerator]; ok {
		delete(m.active, accelerator)
		m.history = append(m.history, "-"+accelerator)
	}
	return nil
}

func (m *HotkeysMock) UnregisterAll() {
	m.mu.Lock()
	keys := make([]string, 0, len(m.active))
	for k := range m.active {
		keys = append(keys, k)
	}
	m.mu.Unlock()
	for _, k := range keys {
		_ = m.Unregister(k)
	}
}

// Active lists the currently registered accelerators.
func (m *HotkeysMock) Active() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.active))
	for k := range m.active {
		out = append(out, k)
	}
	return out
}

// History lists registrations ("+acc") and unregistrations ("-acc") in order.
func (m *HotkeysMock) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.history...)
}

// Press fires the action bound to accelerator.
func (m *HotkeysMock) Press(accelerator string) bool {
	m.mu.Lock()
	action, ok := m.active[accelerator]
	m.mu.Unlock()
	if ok {
		action()
	}
	return ok
}
