package style

import (
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
	Prompt  string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{"default", "mono", "contrast"}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",  // bright green
		Warning: "11",  // bright yellow
		Error:   "9",   // bright red
		Info:    "14",  // bright cyan
		Muted:   "245", // medium gray
		Header:  "bold",
		Prompt:  "12", // bright blue
	},
	"default-light": {
		Success: "28",  // dark green
		Warning: "130", // dark orange
		Error:   "124", // dark red
		Info:    "27",  // dark blue
		Muted:   "243", // medium-dark gray
		Header:  "bold",
		Prompt:  "19", // navy
	},

	// Grayscale only; failures stay distinguishable by weight.
	"mono-dark": {
		Success: "255",
		Warning: "250",
		Error:   "bold",
		Info:    "252",
		Muted:   "242",
		Header:  "bold",
		Prompt:  "255",
	},
	"mono-light": {
		Success: "232",
		Warning: "238",
		Error:   "bold",
		Info:    "235",
		Muted:   "246",
		Header:  "bold",
		Prompt:  "232",
	},

	"contrast-dark": {
		Success: "46",  // pure bright green
		Warning: "226", // pure bright yellow
		Error:   "196", // pure bright red
		Info:    "51",  // pure bright cyan
		Muted:   "250", // bright gray
		Header:  "bold",
		Prompt:  "231", // white
	},
	"contrast-light": {
		Success: "22",  // dark green
		Warning: "130", // dark orange (yellow is hard to read on white)
		Error:   "124", // dark red
		Info:    "21",  // dark blue
		Muted:   "240", // dark gray
		Header:  "bold",
		Prompt:  "232", // near black
	},
}

// IsDarkBackground returns true if the terminal has a dark background.
// Uses termenv to query the terminal. Returns true if detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name based on
// the terminal background. Names that already carry a suffix are kept.
func ResolveThemeName(name string) string {
	if name == "" {
		name = "default"
	}
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}

	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig returns the colors of theme, falling back to
// default-dark when the theme is unknown.
func LoadColorConfig(theme string) ColorConfig {
	if c, ok := Themes[ResolveThemeName(theme)]; ok {
		return c
	}
	return Themes["default-dark"]
}
