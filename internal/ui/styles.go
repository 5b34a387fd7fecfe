package ui

import "github.com/charmbracelet/lipgloss"

// Diagnostic styles, applied only to stderr. They never touch stdout, so a
// command's byte-exact output is never affected by styling.
var (
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
)

// enabled gates whether Render applies any styling at all. Set it once,
// from the resolved config.Color mode, at shell startup.
var enabled = true

// SetEnabled toggles whether Render emits ANSI codes.
func SetEnabled(v bool) {
	enabled = v
}

// Render applies style to s, unless styling has been disabled.
func Render(style lipgloss.Style, s string) string {
	if !enabled {
		return s
	}
	return style.Render(s)
}
