// Package panel hosts the WebView2 control panel: settings, theme selection
// and a large rate readout.
package panel

// Theme holds the panel's palette. Values are CSS hex colors.
type Theme struct {
	Background string `json:"bg"`
	Foreground string `json:"fg"`
	Accent     string `json:"accent"`
	Control    string `json:"control"`
	Divider    string `json:"divider"`
}

// DefaultTheme is applied when the configured theme is missing or unknown.
const DefaultTheme = "modern_light_gray"

// ThemeOrder fixes the picker ordering.
var ThemeOrder = []string{
	"modern_light_gray",
	"sky_blue",
	"ivory_minimal",
	"mint_fresh",
	"morning_orange",
}

var themes = map[string]Theme{
	"modern_light_gray": {
		Background: "#F7F7F7",
		Foreground: "#2E2E2E",
		Accent:     "#357C55",
		Control:    "#EDEDED",
		Divider:    "#DFDFDF",
	},
	"sky_blue": {
		Background: "#F5F9FF",
		Foreground: "#333333",
		Accent:     "#007ACC",
		Control:    "#E0ECF8",
		Divider:    "#D5E2EE",
	},
	"ivory_minimal": {
		Background: "#FAF9F6",
		Foreground: "#4B4B4B",
		Accent:     "#C27C0E",
		Control:    "#EDE9E3",
		Divider:    "#E2DDD5",
	},
	"mint_fresh": {
		Background: "#F2FFF8",
		Foreground: "#444444",
		Accent:     "#2BAE66",
		Control:    "#DFF5E1",
		Divider:    "#D0E8D2",
	},
	"morning_orange": {
		Background: "#FFF8F2",
		Foreground: "#3D3D3D",
		Accent:     "#FF6F00",
		Control:    "#FFE0CC",
		Divider:    "#FFD0B2",
	},
}

// ThemeFor returns the palette for a theme name, falling back to the default
// for unknown names.
func ThemeFor(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}

	return themes[DefaultTheme]
}

// ValidTheme reports whether name is a known theme.
func ValidTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// Themes returns the full palette table, keyed by theme name.
func Themes() map[string]Theme {
	out := make(map[string]Theme, len(themes))
	for name, t := range themes {
		out[name] = t
	}

	return out
}
