package hotkeys

import (
	"errors"
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"floatclock/internal/platform/accelerator"
)

var ErrShortcutInUse = errors.New("shortcut already registered")

var keys = map[string]hotkey.Key{
	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD,
	"E": hotkey.KeyE, "F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH,
	"I": hotkey.KeyI, "J": hotkey.KeyJ, "K": hotkey.KeyK, "L": hotkey.KeyL,
	"M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO, "P": hotkey.KeyP,
	"Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX,
	"Y": hotkey.KeyY, "Z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"F1": hotkey.KeyF1, "F2": hotkey.KeyF2, "F3": hotkey.KeyF3, "F4": hotkey.KeyF4,
	"F5": hotkey.KeyF5, "F6": hotkey.KeyF6, "F7": hotkey.KeyF7, "F8": hotkey.KeyF8,
	"F9": hotkey.KeyF9, "F10": hotkey.KeyF10, "F11": hotkey.KeyF11, "F12": hotkey.KeyF12,
	"Space":  hotkey.KeySpace,
	"Return": hotkey.KeyReturn,
	"Escape": hotkey.KeyEscape,
	"Tab":    hotkey.KeyTab,
	"Delete": hotkey.KeyDelete,
	"Up":     hotkey.KeyUp,
	"Down":   hotkey.KeyDown,
	"Left":   hotkey.KeyLeft,
	"Right":  hotkey.KeyRight,
}

type binding struct {
	hk   *hotkey.Hotkey
	done chan struct{}
}

// Registry registers global shortcuts with golang.design/x/hotkey.
// golang.design/x/hotkey needs an X11 display at init on Linux, so only the
// desktop binary may import this package.
type Registry struct {
	mu       sync.Mutex
	bindings map[string]*binding
}

func New() *Registry {
	return &Registry{bindings: map[string]*binding{}}
}

func (h *Registry) Register(accel string, action func()) error {
	acc, err := accelerator.Parse(accel)
	if err != nil {
		return err
	}
	key, ok := keys[acc.Key]
	if !ok {
		return fmt.Errorf("%w: unsupported key %q", accelerator.ErrInvalid, acc.Key)
	}
	mods := make([]hotkey.Modifier, 0, len(acc.Modifiers))
	for _, m := range acc.Modifiers {
		mod, ok := nativeModifier(m)
		if !ok {
			return fmt.Errorf("%w: modifier %s is not available on this platform", accelerator.ErrInvalid, m)
		}
		mods = append(mods, mod)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.bindings[accel]; exists {
		return fmt.Errorf("%w: %s", ErrShortcutInUse, accel)
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register %s: %w", accel, err)
	}
	b := &binding{hk: hk, done: make(chan struct{})}
	h.bindings[accel] = b

	go func() {
		for {
			select {
			case <-hk.Keydown():
				action()
			case <-b.done:
				return
			}
		}
	}()
	return nil
}

func (h *Registry) Unregister(accel string) error {
	h.mu.Lock()
	b, ok := h.bindings[accel]
	delete(h.bindings, accel)
	h.mu.Unlock()
	if !ok {
		return nil
	}
	close(b.done)
	if err := b.hk.Unregister(); err != nil {
		return fmt.Errorf("unregister %s: %w", accel, err)
	}
	return nil
}

func (h *Registry) UnregisterAll() {
	h.mu.Lock()
	accels := make([]string, 0, len(h.bindings))
	for accel := range h.bindings {
		accels = append(accels, accel)
	}
	h.mu.Unlock()
	for _, accel := range accels {
		_ = h.Unregister(accel)
	}
}
