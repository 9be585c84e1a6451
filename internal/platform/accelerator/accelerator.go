// Package accelerator parses Electron/Tauri style shortcut strings such as
// "CommandOrControl+Shift+C" into a platform-neutral form.
package accelerator

import (
	"errors"
	"fmt"
	"strings"
)

type Modifier int

const (
	// CommandOrControl is Command on macOS and Control elsewhere.
	CommandOrControl Modifier = iota
	Command
	Control
	Alt
	Shift
	Super
)

func (m Modifier) String() string {
	switch m {
	case CommandOrControl:
		return "CommandOrControl"
	case Command:
		return "Command"
	case Control:
		return "Control"
	case Alt:
		return "Alt"
	case Shift:
		return "Shift"
	case Super:
		return "Super"
	}
	return fmt.Sprintf("Modifier(%d)", int(m))
}

var modifierNames = map[string]Modifier{
	"commandorcontrol": CommandOrControl,
	"cmdorctrl":        CommandOrControl,
	"command":          Command,
	"cmd":              Command,
	"control":          Control,
	"ctrl":             Control,
	"alt":              Alt,
	"option":           Alt,
	"shift":            Shift,
	"super":            Super,
	"meta":             Super,
}

var namedKeys = map[string]string{
	"space":  "Space",
	"enter":  "Return",
	"return": "Return",
	"esc":    "Escape",
	"escape": "Escape",
	"tab":    "Tab",
	"delete": "Delete",
	"up":     "Up",
	"down":   "Down",
	"left":   "Left",
	"right":  "Right",
}

var ErrInvalid = errors.New("invalid accelerator")

// Accelerator is a parsed shortcut: zero or more modifiers plus exactly one key.
// Key is canonical: "A".."Z", "0".."9", "F1".."F12" or one of the named keys
// ("Space", "Return", "Escape", "Tab", "Delete", "Up", "Down", "Left", "Right").
type Accelerator struct {
	Modifiers []Modifier
	Key       string
}

func (a Accelerator) String() string {
	parts := make([]string, 0, len(a.Modifiers)+1)
	for _, m := range a.Modifiers {
		parts = append(parts, m.String())
	}
	return strings.Join(append(parts, a.Key), "+")
}

// Parse reads an accelerator. Tokens are case-insensitive; a modifier may appear once.
func Parse(s string) (Accelerator, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Accelerator{}, fmt.Errorf("%w: empty", ErrInvalid)
	}

	var acc Accelerator
	seen := map[Modifier]bool{}
	tokens := strings.Split(s, "+")
	for i, raw := range tokens {
		tok := strings.TrimSpace(raw)
		if tok == "" {
			return Accelerator{}, fmt.Errorf("%w: empty token in %q", ErrInvalid, s)
		}
		last := i == len(tokens)-1
		if m, ok := modifierNames[strings.ToLower(tok)]; ok {
			if last {
				return Accelerator{}, fmt.Errorf("%w: %q has no key", ErrInvalid, s)
			}
			if seen[m] {
				return Accelerator{}, fmt.Errorf("%w: duplicate modifier %s", ErrInvalid, m)
			}
			seen[m] = true
			acc.Modifiers = append(acc.Modifiers, m)
			continue
		}
		if !last {
			return Accelerator{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalid, tok)
		}
		key, ok := canonicalKey(tok)
		if !ok {
			return Accelerator{}, fmt.Errorf("%w: unsupported key %q", ErrInvalid, tok)
		}
		acc.Key = key
	}
	return acc, nil
}

func canonicalKey(tok string) (string, bool) {
	if len(tok) == 1 {
		c := strings.ToUpper(tok)[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return string(c), true
		}
		return "", false
	}
	lower := strings.ToLower(tok)
	if name, ok := namedKeys[lower]; ok {
		return name, true
	}
	if lower[0] == 'f' {
		var n int
		if _, err := fmt.Sscanf(lower[1:], "%d", &n); err == nil && n >= 1 && n <= 12 && fmt.Sprint(n) == lower[1:] {
			return "F" + lower[1:], true
		}
	}
	return "", false
}
