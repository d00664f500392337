package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorHeader  = lipgloss.Color("12") // bright blue
	colorMuted   = lipgloss.Color("8")  // dim
	colorWarn    = lipgloss.Color("3")  // yellow
	colorPaused  = lipgloss.Color("6")  // cyan
	colorBuiltin = lipgloss.Color("1")  // red

	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHeader)

	subheaderStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarn).
			Italic(true)

	pausedStyle = lipgloss.NewStyle().
			Foreground(colorPaused).
			Bold(true)

	builtinStyle = lipgloss.NewStyle().
			Foreground(colorBuiltin).
			Bold(true)
)
