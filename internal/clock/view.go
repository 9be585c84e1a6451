package clock

import (
	"time"

	"floatclock/internal/models"
)

// dateScale and dateFade size and dim the date line relative to the time line.
const (
	dateScale = 0.5
	dateFade  = 0.8
)

// View is everything a front-end needs to draw one frame.
type View struct {
	Loading      bool    `json:"loading"`
	Time         string  `json:"time"`
	Date         string  `json:"date,omitempty"`
	ShowDate     bool    `json:"showDate"`
	FontSize     string  `json:"fontSize"`
	DateFontSize string  `json:"dateFontSize"`
	Scale        float64 `json:"scale"`
	TextColor    string  `json:"textColor"`
	TextOpacity  float64 `json:"textOpacity"`
	DateOpacity  float64 `json:"dateOpacity"`
	Background   string  `json:"background"`
}

// Placeholder is drawn while preferences are still loading.
func Placeholder() View {
	return View{
		Loading:      true,
		Time:         "Loading...",
		FontSize:     rem(1),
		DateFontSize: rem(dateScale),
		Scale:        1,
		TextColor:    "#9ca3af",
		TextOpacity:  1,
		DateOpacity:  dateFade,
		Background:   RGBA("#000000", 0),
	}
}

// Render builds the view of s at now. Background alpha and text alpha are
// separate layers: the background colour carries backgroundOpacity, the
// text carries textOpacity.
func Render(now time.Time, s models.Settings) View {
	scale := FontScale(s.FontSize)
	date, ok := FormatDate(now, s.DateFormat)
	textOpacity := clamp01(s.TextOpacity)
	return View{
		Time:         FormatTime(now, s.TimeFormat, s.ShowSeconds),
		Date:         date,
		ShowDate:     ok,
		FontSize:     rem(scale),
		DateFontSize: rem(scale * dateScale),
		Scale:        scale,
		TextColor:    s.TextColor,
		TextOpacity:  textOpacity,
		DateOpacity:  textOpacity * dateFade,
		Background:   RGBA(s.BackgroundColor, s.BackgroundOpacity),
	}
}
