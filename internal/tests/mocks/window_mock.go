package mocks

import "sync"

// WindowState is what WindowMock has been asked to do.
type WindowState struct {
	X, Y          int
	Width, Height int
	OnTop         bool
	Resizable     bool
	IgnorePointer bool
	Hidden        bool
	Focused       int
	Closed        bool
}

// WindowMock is a fake window that remembers what was asked of it.
type WindowMock struct {
	mu sync.Mutex
	s  WindowState
}

func NewWindowMock() *WindowMock {
	return &WindowMock{s: WindowState{Width: 200, Height: 80, Resizable: true}}
}

func (w *WindowMock) State() WindowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.s
}

func (w *WindowMock) update(f func(s *WindowState)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	f(&w.s)
}

func (w *WindowMock) Position() (int, int) {
	s := w.State()
	return s.X, s.Y
}

func (w *WindowMock) SetPosition(x, y int) {
	w.update(func(s *WindowState) { s.X, s.Y = x, y })
}

func (w *WindowMock) Size() (int, int) {
	s := w.State()
	return s.Width, s.Height
}

func (w *WindowMock) SetSize(width, height int) {
	w.update(func(s *WindowState) { s.Width, s.Height = width, height })
}

func (w *WindowMock) SetAlwaysOnTop(onTop bool) {
	w.update(func(s *WindowState) { s.OnTop = onTop })
}

func (w *WindowMock) SetResizable(resizable bool) {
	w.update(func(s *WindowState) { s.Resizable = resizable })
}

func (w *WindowMock) SetIgnorePointerEvents(ignore bool) {
	w.update(func(s *WindowState) { s.IgnorePointer = ignore })
}

func (w *WindowMock) IsVisible() bool {
	return !w.State().Hidden
}

func (w *WindowMock) Show() {
	w.update(func(s *WindowState) { s.Hidden = false })
}

func (w *WindowMock) Hide() {
	w.update(func(s *WindowState) { s.Hidden = true })
}

func (w *WindowMock) Focus() {
	w.update(func(s *WindowState) { s.Focused++ })
}

func (w *WindowMock) Close() {
	w.update(func(s *WindowState) { s.Closed = true })
}
