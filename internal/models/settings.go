package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type TimeFormat string

const (
	TimeFormat12h TimeFormat = "12h"
	TimeFormat24h TimeFormat = "24h"
)

type DateFormat string

const (
	DateFormatNone  DateFormat = "none"
	DateFormatShort DateFormat = "short"
	DateFormatLong  DateFormat = "long"
	DateFormatFull  DateFormat = "full"
)

type FontSize string

const (
	FontSizeSmall  FontSize = "small"
	FontSizeMedium FontSize = "medium"
	FontSizeLarge  FontSize = "large"
	FontSizeXLarge FontSize = "xlarge"
)

// TimeFormats, DateFormats and FontSizes list the accepted enum values in display order.
var (
	TimeFormats = []TimeFormat{TimeFormat12h, TimeFormat24h}
	DateFormats = []DateFormat{DateFormatNone, DateFormatShort, DateFormatLong, DateFormatFull}
	FontSizes   = []FontSize{FontSizeSmall, FontSizeMedium, FontSizeLarge, FontSizeXLarge}
)

// WindowPosition is the top-left corner of the clock window in physical pixels.
type WindowPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// WindowSize is the clock window's inner size in physical pixels.
type WindowSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Settings is the single preferences record of the running process.
type Settings struct {
	TimeFormat        TimeFormat      `json:"timeFormat"`
	ShowSeconds       bool            `json:"showSeconds"`
	DateFormat        DateFormat      `json:"dateFormat"`
	FontSize          FontSize        `json:"fontSize"`
	TextColor         string          `json:"textColor"`
	BackgroundColor   string          `json:"backgroundColor"`
	BackgroundOpacity float64         `json:"backgroundOpacity"`
	TextOpacity       float64         `json:"textOpacity"`
	ActiveTheme       string          `json:"activeTheme"`
	WindowPosition    *WindowPosition `json:"windowPosition"`
	WindowSize        *WindowSize     `json:"windowSize"`
	GlobalShortcut    string          `json:"globalShortcut"`
	LaunchOnStartup   bool            `json:"launchOnStartup"`
}

const DefaultGlobalShortcut = "CommandOrControl+Shift+C"

// DefaultSettings returns the settings used before anything has been persisted.
func DefaultSettings() Settings {
	return Settings{
		TimeFormat:        TimeFormat12h,
		ShowSeconds:       false,
		DateFormat:        DateFormatNone,
		FontSize:          FontSizeMedium,
		TextColor:         "#fefefe",
		BackgroundColor:   "#ffffff",
		BackgroundOpacity: 0.25,
		TextOpacity:       1,
		ActiveTheme:       "dark",
		WindowPosition:    nil,
		WindowSize:        nil,
		GlobalShortcut:    DefaultGlobalShortcut,
		LaunchOnStartup:   false,
	}
}

// Clone returns a copy that shares no pointers with s.
func (s Settings) Clone() Settings {
	out := s
	if s.WindowPosition != nil {
		p := *s.WindowPosition
		out.WindowPosition = &p
	}
	if s.WindowSize != nil {
		sz := *s.WindowSize
		out.WindowSize = &sz
	}
	return out
}

// SettingsPatch is a partial update. Nil fields are left untouched.
type SettingsPatch struct {
	TimeFormat        *TimeFormat     `json:"timeFormat,omitempty"`
	ShowSeconds       *bool           `json:"showSeconds,omitempty"`
	DateFormat        *DateFormat     `json:"dateFormat,omitempty"`
	FontSize          *FontSize       `json:"fontSize,omitempty"`
	TextColor         *string         `json:"textColor,omitempty"`
	BackgroundColor   *string         `json:"backgroundColor,omitempty"`
	BackgroundOpacity *float64        `json:"backgroundOpacity,omitempty"`
	TextOpacity       *float64        `json:"textOpacity,omitempty"`
	ActiveTheme       *string         `json:"activeTheme,omitempty"`
	WindowPosition    *WindowPosition `json:"windowPosition,omitempty"`
	WindowSize        *WindowSize     `json:"windowSize,omitempty"`
	GlobalShortcut    *string         `json:"globalShortcut,omitempty"`
	LaunchOnStartup   *bool           `json:"launchOnStartup,omitempty"`
}

// Merge returns s with every non-nil field of p replacing the matching field.
func (s Settings) Merge(p SettingsPatch) Settings {
	out := s.Clone()
	if p.TimeFormat != nil {
		out.TimeFormat = *p.TimeFormat
	}
	if p.ShowSeconds != nil {
		out.ShowSeconds = *p.ShowSeconds
	}
	if p.DateFormat != nil {
		out.DateFormat = *p.DateFormat
	}
	if p.FontSize != nil {
		out.FontSize = *p.FontSize
	}
	if p.TextColor != nil {
		out.TextColor = *p.TextColor
	}
	if p.BackgroundColor != nil {
		out.BackgroundColor = *p.BackgroundColor
	}
	if p.BackgroundOpacity != nil {
		out.BackgroundOpacity = *p.BackgroundOpacity
	}
	if p.TextOpacity != nil {
		out.TextOpacity = *p.TextOpacity
	}
	if p.ActiveTheme != nil {
		out.ActiveTheme = *p.ActiveTheme
	}
	if p.WindowPosition != nil {
		pos := *p.WindowPosition
		out.WindowPosition = &pos
	}
	if p.WindowSize != nil {
		size := *p.WindowSize
		out.WindowSize = &size
	}
	if p.GlobalShortcut != nil {
		out.GlobalShortcut = *p.GlobalShortcut
	}
	if p.LaunchOnStartup != nil {
		out.LaunchOnStartup = *p.LaunchOnStartup
	}
	return out
}

var ErrInvalidSettings = errors.New("invalid settings")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidSettings}, args...)...)
}

// Validate reports the first field of s that holds a value outside its domain.
func (s Settings) Validate() error {
	if !validTimeFormat(s.TimeFormat) {
		return invalid("timeFormat must be '12h' or '24h', got %q", s.TimeFormat)
	}
	if !validDateFormat(s.DateFormat) {
		return invalid("dateFormat must be one of none, short, long, full, got %q", s.DateFormat)
	}
	if !validFontSize(s.FontSize) {
		return invalid("fontSize must be one of small, medium, large, xlarge, got %q", s.FontSize)
	}
	if !ValidHexColor(s.TextColor) {
		return invalid("textColor must be #RRGGBB, got %q", s.TextColor)
	}
	if !ValidHexColor(s.BackgroundColor) {
		return invalid("backgroundColor must be #RRGGBB, got %q", s.BackgroundColor)
	}
	if !validOpacity(s.BackgroundOpacity) {
		return invalid("backgroundOpacity must be within [0,1], got %v", s.BackgroundOpacity)
	}
	if !validOpacity(s.TextOpacity) {
		return invalid("textOpacity must be within [0,1], got %v", s.TextOpacity)
	}
	if strings.TrimSpace(s.ActiveTheme) == "" {
		return invalid("activeTheme is required")
	}
	return nil
}

// ValidHexColor reports whether c is a six digit #RRGGBB colour.
func ValidHexColor(c string) bool {
	if len(c) != 7 || c[0] != '#' {
		return false
	}
	_, err := colorful.Hex(c)
	return err == nil
}

func validTimeFormat(f TimeFormat) bool {
	for _, v := range TimeFormats {
		if v == f {
			return true
		}
	}
	return false
}

func validDateFormat(f DateFormat) bool {
	for _, v := range DateFormats {
		if v == f {
			return true
		}
	}
	return false
}

func validFontSize(f FontSize) bool {
	for _, v := range FontSizes {
		if v == f {
			return true
		}
	}
	return false
}

func validOpacity(v float64) bool {
	return v >= 0 && v <= 1
}
