package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit delivers an event to the frontend. It is a no-op until
// EnableRuntimeEmitter or SetCustomEmitter is called.
var Emit = func(ctx context.Context, name string, payload any) {}

// EnableRuntimeEmitter routes events through the Wails runtime. Only valid
// with the context handed to OnStartup.
func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, payload any) {
		if ctx == nil {
			return
		}
		runtime.EventsEmit(ctx, name, payload)
	}
}

// SetCustomEmitter replaces the emitter; nil restores the no-op.
func SetCustomEmitter(f func(ctx context.Context, name string, payload any)) {
	if f == nil {
		Emit = func(context.Context, string, any) {}
		return
	}
	Emit = f
}
