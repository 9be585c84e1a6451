package mocks

import (
	"context"
	"sync"
)

// StoreEntryRepositoryMock is an in-memory store. GetFunc / PutFunc override
// the default behaviour.
type StoreEntryRepositoryMock struct {
	GetFunc func(ctx context.Context, store, key string) ([]byte, bool, error)
	PutFunc func(ctx context.Context, store, key string, value []byte) error

	mu      sync.Mutex
	entries map[string][]byte
	puts    int
}

func (m *StoreEntryRepositoryMock) Get(ctx context.Context, store, key string) ([]byte, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, store, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[store+"/"+key]
	return v, ok, nil
}

func (m *StoreEntryRepositoryMock) Put(ctx context.Context, store, key string, value []byte) error {
	m.mu.Lock()
	m.puts++
	m.mu.Unlock()
	if m.PutFunc != nil {
		return m.PutFunc(ctx, store, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = map[string][]byte{}
	}
	m.entries[store+"/"+key] = append([]byte(nil), value...)
	return nil
}

// Stored returns the raw value last written under store/key.
func (m *StoreEntryRepositoryMock) Stored(store, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.entries[store+"/"+key]
	return v, ok
}

// Puts counts Put calls, including ones served by PutFunc.
func (m *StoreEntryRepositoryMock) Puts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.puts
}
