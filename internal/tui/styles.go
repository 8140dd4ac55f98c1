package tui

import "github.com/charmbracelet/lipgloss"

var (
	successColor   = lipgloss.Color("#7fd88f")
	warningColor   = lipgloss.Color("#f5a742")
	errorColor     = lipgloss.Color("#e06c75")
	textColor      = lipgloss.Color("#eeeeee")
	textMutedColor = lipgloss.Color("#808080")
	accentColor    = lipgloss.Color("#56b6c2")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(textColor)

	disabledRowStyle = lipgloss.NewStyle().
				Foreground(textMutedColor)

	dueStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	sentStyle = lipgloss.NewStyle().
			Foreground(successColor)

	failedStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)
)
