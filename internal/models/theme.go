package models

// CustomThemeID selects free editing of the colour fields.
const CustomThemeID = "custom"

// Theme is a preset bundle of text colour, background colour and background opacity.
type Theme struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	TextColor         string  `json:"textColor"`
	BackgroundColor   string  `json:"backgroundColor"`
	BackgroundOpacity float64 `json:"backgroundOpacity"`
}

var themes = []Theme{
	{ID: "dark", Name: "Dark", TextColor: "#fefefe", BackgroundColor: "#000000", BackgroundOpacity: 0.25},
	{ID: "light", Name: "Light", TextColor: "#1a1a1a", BackgroundColor: "#ffffff", BackgroundOpacity: 0.85},
	{ID: "neon", Name: "Neon", TextColor: "#00ff88", BackgroundColor: "#0a0a0a", BackgroundOpacity: 0.3},
	{ID: "minimal", Name: "Minimal", TextColor: "#ffffff", BackgroundColor: "#000000", BackgroundOpacity: 0},
	{ID: CustomThemeID, Name: "Custom", TextColor: "#fefefe", BackgroundColor: "#ffffff", BackgroundOpacity: 0.25},
}

// Themes returns a copy of the theme catalog.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

// FindTheme looks up a catalog entry by id.
func FindTheme(id string) (Theme, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}
