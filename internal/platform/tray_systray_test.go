package platform

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

// fakeTrayBackend keeps a menu the way the systray package does: items stay
// until resetMenu is called.
type fakeTrayBackend struct {
	mu     sync.Mutex
	items  []string
	clicks map[string]chan struct{}
	ready  chan struct{}
	ends   int
}

func newFakeTrayBackend() *fakeTrayBackend {
	return &fakeTrayBackend{clicks: map[string]chan struct{}{}, ready: make(chan struct{}, 4)}
}

func (f *fakeTrayBackend) run(onReady func()) (func(), func()) {
	start := func() {
		onReady()
		f.ready <- struct{}{}
	}
	end := func() {
		f.mu.Lock()
		f.ends++
		f.mu.Unlock()
	}
	return start, end
}

func (f *fakeTrayBackend) decorate() {}

func (f *fakeTrayBackend) resetMenu() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = nil
	f.clicks = map[string]chan struct{}{}
}

func (f *fakeTrayBackend) addItem(title, _ string) <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.items = append(f.items, title)
	f.clicks[title] = ch
	return ch
}

func (f *fakeTrayBackend) addSeparator() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, "-")
}

func (f *fakeTrayBackend) menu() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.items...)
}

func (f *fakeTrayBackend) click(t *testing.T, title string) {
	t.Helper()
	f.mu.Lock()
	ch := f.clicks[title]
	f.mu.Unlock()
	require.NotNil(t, ch, title)
	select {
	case ch <- struct{}{}:
	case <-time.After(time.Second):
		t.Fatalf("nobody is reading %q", title)
	}
}

func TestSystrayTray_RepinRebuildsMenu(t *testing.T) {
	unpinned := make(chan struct{}, 2)
	backend := newFakeTrayBackend()
	tray := NewSystrayTray(TrayMenu{OnUnpin: func() { unpinned <- struct{}{} }}, logger.NewDefaultLogger())
	tray.backend = backend

	require.NoError(t, tray.SetVisible(true))
	<-backend.ready
	require.NoError(t, tray.SetVisible(false))
	require.NoError(t, tray.SetVisible(true))
	<-backend.ready
	assert.True(t, tray.Visible())

	assert.Equal(t, []string{"Show Window", "Settings", "Unpin", "-", "Quit"}, backend.menu())

	backend.click(t, "Unpin")
	select {
	case <-unpinned:
	case <-time.After(time.Second):
		t.Fatal("unpin action did not run")
	}

	require.NoError(t, tray.SetVisible(false))
	assert.False(t, tray.Visible())
	backend.mu.Lock()
	assert.Equal(t, 2, backend.ends)
	backend.mu.Unlock()
}

func TestSystrayTray_SetVisibleIsIdempotent(t *testing.T) {
	backend := newFakeTrayBackend()
	tray := NewSystrayTray(TrayMenu{}, nil)
	tray.backend = backend

	require.NoError(t, tray.SetVisible(false))
	require.NoError(t, tray.SetVisible(true))
	<-backend.ready
	require.NoError(t, tray.SetVisible(true))

	assert.Len(t, backend.ready, 0)
	assert.Equal(t, 5, len(backend.menu()))
}
