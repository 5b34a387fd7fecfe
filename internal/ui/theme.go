package ui

import (
	"os"

	"golang.org/x/term"
)

// ColorMode selects when diagnostic output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ColorEnabled reports whether diagnostic output should be styled, given the
// configured color mode. In ColorAuto mode color is enabled only when
// stderr is attached to a terminal.
func ColorEnabled(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}
