package platform

import (
	"context"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"floatclock/internal/events"
)

// WailsWindow drives the main Wails window through the runtime package.
// Runtime calls need the context handed to OnStartup, so nothing here works
// before Startup.
//
// The v2 runtime has no resizable toggle and no native click-through. Fixed
// size is emulated by pinning min and max size. Click-through only makes the
// page ignore the pointer: the window still takes the clicks, they do not
// reach windows underneath.
type WailsWindow struct {
	mu        sync.Mutex
	ctx       context.Context
	visible   bool
	resizable bool
	minWidth  int
	minHeight int
}

func NewWailsWindow(minWidth, minHeight int) *WailsWindow {
	return &WailsWindow{visible: true, resizable: true, minWidth: minWidth, minHeight: minHeight}
}

func (w *WailsWindow) Startup(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ctx = ctx
}

func (w *WailsWindow) context() context.Context {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ctx
}

func (w *WailsWindow) Position() (int, int) {
	ctx := w.context()
	if ctx == nil {
		return 0, 0
	}
	return runtime.WindowGetPosition(ctx)
}

func (w *WailsWindow) SetPosition(x, y int) {
	if ctx := w.context(); ctx != nil {
		runtime.WindowSetPosition(ctx, x, y)
	}
}

func (w *WailsWindow) Size() (int, int) {
	ctx := w.context()
	if ctx == nil {
		return 0, 0
	}
	return runtime.WindowGetSize(ctx)
}

func (w *WailsWindow) SetSize(width, height int) {
	if ctx := w.context(); ctx != nil {
		runtime.WindowSetSize(ctx, width, height)
	}
}

func (w *WailsWindow) SetAlwaysOnTop(onTop bool) {
	if ctx := w.context(); ctx != nil {
		runtime.WindowSetAlwaysOnTop(ctx, onTop)
	}
}

// SetResizable pins min and max size to the current size; Wails v2 has no
// runtime toggle for resizability.
func (w *WailsWindow) SetResizable(resizable bool) {
	ctx := w.context()
	if ctx == nil {
		return
	}
	w.mu.Lock()
	w.resizable = resizable
	w.mu.Unlock()

	if resizable {
		runtime.WindowSetMinSize(ctx, w.minWidth, w.minHeight)
		runtime.WindowSetMaxSize(ctx, 0, 0)
		return
	}
	width, height := runtime.WindowGetSize(ctx)
	runtime.WindowSetMinSize(ctx, width, height)
	runtime.WindowSetMaxSize(ctx, width, height)
}

// SetIgnorePointerEvents is forwarded to the page, which turns off pointer
// events on the whole document. Clicks are swallowed, not passed through.
func (w *WailsWindow) SetIgnorePointerEvents(ignore bool) {
	if ctx := w.context(); ctx != nil {
		events.Emit(ctx, events.WindowClickThrough, ignore)
	}
}

func (w *WailsWindow) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

func (w *WailsWindow) Show() {
	ctx := w.context()
	if ctx == nil {
		return
	}
	runtime.WindowShow(ctx)
	w.mu.Lock()
	w.visible = true
	w.mu.Unlock()
}

func (w *WailsWindow) Hide() {
	ctx := w.context()
	if ctx == nil {
		return
	}
	runtime.WindowHide(ctx)
	w.mu.Lock()
	w.visible = false
	w.mu.Unlock()
}

func (w *WailsWindow) Focus() {
	if ctx := w.context(); ctx != nil {
		runtime.WindowUnminimise(ctx)
		runtime.WindowShow(ctx)
	}
}

func (w *WailsWindow) Close() {
	if ctx := w.context(); ctx != nil {
		runtime.Quit(ctx)
	}
}
