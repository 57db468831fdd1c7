// Package tui holds terminal presentation helpers shared by the mantra
// commands.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// InitializeColor forces a color profile when the environment asks for it.
// CLICOLOR_FORCE=1 or COLORTERM=truecolor select true color, NO_COLOR
// disables styling entirely. Without these variables lipgloss detects the
// profile from the terminal.
//
// Call it at the start of main, before any output is rendered.
func InitializeColor() {
	switch {
	case os.Getenv("NO_COLOR") != "":
		lipgloss.SetColorProfile(termenv.Ascii)
	case os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor":
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
