package mocks

import "sync"

type AutostartMock struct {
	IsEnabledFunc func() (bool, error)
	EnableFunc    func() error
	DisableFunc   func() error

	mu       sync.Mutex
	enabled  bool
	enables  int
	disables int
}

func NewAutostartMock(enabled bool) *AutostartMock {
	return &AutostartMock{enabled: enabled}
}

func (m *AutostartMock) IsEnabled() (bool, error) {
	if m.IsEnabledFunc != nil {
		return m.IsEnabledFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled, nil
}

func (m *AutostartMock) Enable() error {
	m.mu.Lock()
	m.enables++
	m.mu.Unlock()
	if m.EnableFunc != nil {
		return m.EnableFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = true
	return nil
}

func (m *AutostartMock) Disable() error {
	m.mu.Lock()
	m.disables++
	m.mu.Unlock()
	if m.DisableFunc != nil {
		return m.DisableFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = false
	return nil
}

// Calls returns how many times Enable and Disable ran.
func (m *AutostartMock) Calls() (enables, disables int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enables, m.disables
}
