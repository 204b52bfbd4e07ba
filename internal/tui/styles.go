// Package tui renders the dashboard in the terminal.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText   = lipgloss.Color("#222222")
	colorMuted  = lipgloss.Color("#6F6E69")
	colorAccent = lipgloss.Color("#4BC0C0")
	colorBorder = lipgloss.Color("#575653")
	colorRed    = lipgloss.Color("#D14D41")
	colorGreen  = lipgloss.Color("#879A39")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	okStyle = lipgloss.NewStyle().
		Foreground(colorGreen)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)
