package hotkeys

import (
	"golang.design/x/hotkey"

	"floatclock/internal/platform/accelerator"
)

func nativeModifier(m accelerator.Modifier) (hotkey.Modifier, bool) {
	switch m {
	case accelerator.CommandOrControl, accelerator.Command, accelerator.Super:
		return hotkey.ModCmd, true
	case accelerator.Control:
		return hotkey.ModCtrl, true
	case accelerator.Alt:
		return hotkey.ModOption, true
	case accelerator.Shift:
		return hotkey.ModShift, true
	}
	return 0, false
}
