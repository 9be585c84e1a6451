// Package clock renders the clock face from the current settings. Everything
// here is a pure function of a Settings value and an instant.
package clock

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"floatclock/internal/models"
)

// FormatTime renders t as "14:05:09" / "14:05" for 24h, "2:05:09 PM" / "2:05 PM" for 12h.
func FormatTime(t time.Time, format models.TimeFormat, showSeconds bool) string {
	var layout string
	switch format {
	case models.TimeFormat24h:
		layout = "15:04"
		if showSeconds {
			layout = "15:04:05"
		}
	default:
		layout = "3:04 PM"
		if showSeconds {
			layout = "3:04:05 PM"
		}
	}
	return t.Format(layout)
}

// FormatDate renders the date line; ok is false for DateFormatNone.
func FormatDate(t time.Time, format models.DateFormat) (text string, ok bool) {
	switch format {
	case models.DateFormatShort:
		return t.Format("1/2"), true
	case models.DateFormatLong:
		return t.Format("Jan 2, 2006"), true
	case models.DateFormatFull:
		return t.Format("Monday, January 2"), true
	}
	return "", false
}

var fontScale = map[models.FontSize]float64{
	models.FontSizeSmall:  1,
	models.FontSizeMedium: 1.25,
	models.FontSizeLarge:  1.75,
	models.FontSizeXLarge: 2.5,
}

// FontScale maps a font size to rem; unknown sizes render as medium.
func FontScale(size models.FontSize) float64 {
	if v, ok := fontScale[size]; ok {
		return v
	}
	return fontScale[models.FontSizeMedium]
}

func rem(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "rem"
}

// RGBA renders a #RRGGBB colour with an alpha as a CSS rgba() value.
// Unparseable colours render black.
func RGBA(hex string, alpha float64) string {
	var r, g, b uint8
	if c, err := colorful.Hex(hex); err == nil {
		r, g, b = c.RGB255()
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(clamp01(alpha), 'f', -1, 64))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
