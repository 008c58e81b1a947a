// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. Styling is
// semantic (Success, Warning, Error, ...) and never visual.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	promptStyle  lipgloss.Style
)

// Init sets whether output is styled and which theme is used.
// NO_COLOR and CMDSH_NO_COLOR disable styling regardless of enable.
//
// Call it once from main before any output.
func Init(enable bool, theme string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CMDSH_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		colors = LoadColorConfig(theme)
		initStyles(colors)
	}
}

// GetColors returns the current color configuration.
// Returns empty config if styling is not enabled.
func GetColors() ColorConfig {
	return colors
}

func initStyles(colors ColorConfig) {
	// Forced so output piped through the shell keeps its colors.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
	promptStyle = makeStyle(colors.Prompt).Bold(true)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles the reply of a command that ran.
func Success(text string) string { return render(successStyle, text) }

// Warning styles usage problems: unknown commands, missing arguments,
// rejected tokens.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles refusals and failures.
func Error(text string) string { return render(errorStyle, text) }

// Info styles informational messages.
func Info(text string) string { return render(infoStyle, text) }

// Header styles section headers or titles.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles secondary information such as suggestions.
func Muted(text string) string { return render(mutedStyle, text) }

// Prompt styles the interactive shell prompt.
func Prompt(text string) string { return render(promptStyle, text) }
