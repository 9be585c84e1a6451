package hotkeys

import (
	"golang.design/x/hotkey"

	"floatclock/internal/platform/accelerator"
)

func nativeModifier(m accelerator.Modifier) (hotkey.Modifier, bool) {
	switch m {
	case accelerator.CommandOrControl, accelerator.Control:
		return hotkey.ModCtrl, true
	case accelerator.Alt:
		return hotkey.ModAlt, true
	case accelerator.Shift:
		return hotkey.ModShift, true
	case accelerator.Super, accelerator.Command:
		return hotkey.ModWin, true
	}
	return 0, false
}
