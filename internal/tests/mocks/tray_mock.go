package mocks

import "sync"

type TrayMock struct {
	SetVisibleFunc func(visible bool) error

	mu      sync.Mutex
	visible bool
}

func (m *TrayMock) SetVisible(visible bool) error {
	if m.SetVisibleFunc != nil {
		if err := m.SetVisibleFunc(visible); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible = visible
	return nil
}

func (m *TrayMock) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible
}
