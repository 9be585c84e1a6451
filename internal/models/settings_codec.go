package models

import (
	"encoding/json"
	"fmt"
)

// DecodeSettings overlays a persisted (possibly partial) record onto the defaults.
//
// Keys that are absent keep their default. A key whose value does not decode or
// falls outside its domain also keeps its default and is reported in rejected,
// so a single bad field never discards the rest of the record. A null or
// half-populated geometry pair decodes to absent.
func DecodeSettings(data []byte) (s Settings, rejected []string, err error) {
	s = DefaultSettings()
	if len(data) == 0 {
		return s, nil, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return DefaultSettings(), nil, fmt.Errorf("decode settings: %w", err)
	}
	if raw == nil {
		return s, nil, nil
	}

	reject := func(key string) { rejected = append(rejected, key) }

	for key, value := range raw {
		switch key {
		case "timeFormat":
			var v TimeFormat
			if json.Unmarshal(value, &v) != nil || !validTimeFormat(v) {
				reject(key)
				continue
			}
			s.TimeFormat = v
		case "showSeconds":
			if json.Unmarshal(value, &s.ShowSeconds) != nil {
				s.ShowSeconds = DefaultSettings().ShowSeconds
				reject(key)
			}
		case "dateFormat":
			var v DateFormat
			if json.Unmarshal(value, &v) != nil || !validDateFormat(v) {
				reject(key)
				continue
			}
			s.DateFormat = v
		case "fontSize":
			var v FontSize
			if json.Unmarshal(value, &v) != nil || !validFontSize(v) {
				reject(key)
				continue
			}
			s.FontSize = v
		case "textColor":
			var v string
			if json.Unmarshal(value, &v) != nil || !ValidHexColor(v) {
				reject(key)
				continue
			}
			s.TextColor = v
		case "backgroundColor":
			var v string
			if json.Unmarshal(value, &v) != nil || !ValidHexColor(v) {
				reject(key)
				continue
			}
			s.BackgroundColor = v
		case "backgroundOpacity":
			var v float64
			if json.Unmarshal(value, &v) != nil || !validOpacity(v) {
				reject(key)
				continue
			}
			s.BackgroundOpacity = v
		case "textOpacity":
			var v float64
			if json.Unmarshal(value, &v) != nil || !validOpacity(v) {
				reject(key)
				continue
			}
			s.TextOpacity = v
		case "activeTheme":
			var v string
			if json.Unmarshal(value, &v) != nil || v == "" {
				reject(key)
				continue
			}
			s.ActiveTheme = v
		case "windowPosition":
			var v struct {
				X *int `json:"x"`
				Y *int `json:"y"`
			}
			if string(value) == "null" {
				s.WindowPosition = nil
				continue
			}
			if json.Unmarshal(value, &v) != nil || v.X == nil || v.Y == nil {
				reject(key)
				continue
			}
			s.WindowPosition = &WindowPosition{X: *v.X, Y: *v.Y}
		case "windowSize":
			var v struct {
				Width  *int `json:"width"`
				Height *int `json:"height"`
			}
			if string(value) == "null" {
				s.WindowSize = nil
				continue
			}
			if json.Unmarshal(value, &v) != nil || v.Width == nil || v.Height == nil {
				reject(key)
				continue
			}
			s.WindowSize = &WindowSize{Width: *v.Width, Height: *v.Height}
		case "globalShortcut":
			var v string
			if json.Unmarshal(value, &v) != nil {
				reject(key)
				continue
			}
			s.GlobalShortcut = v
		case "launchOnStartup":
			if json.Unmarshal(value, &s.LaunchOnStartup) != nil {
				s.LaunchOnStartup = DefaultSettings().LaunchOnStartup
				reject(key)
			}
		}
	}

	return s, rejected, nil
}

// EncodeSettings serializes the full record.
func EncodeSettings(s Settings) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	return data, nil
}
