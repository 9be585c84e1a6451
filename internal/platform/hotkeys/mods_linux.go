package hotkeys

import (
	"golang.design/x/hotkey"

	"floatclock/internal/platform/accelerator"
)

// Alt and Super sit on X11 Mod1 and Mod4 in the common keymaps.
func nativeModifier(m accelerator.Modifier) (hotkey.Modifier, bool) {
	switch m {
	case accelerator.CommandOrControl, accelerator.Control:
		return hotkey.ModCtrl, true
	case accelerator.Alt:
		return hotkey.Mod1, true
	case accelerator.Shift:
		return hotkey.ModShift, true
	case accelerator.Super, accelerator.Command:
		return hotkey.Mod4, true
	}
	return 0, false
}
