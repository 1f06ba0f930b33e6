package tui

import "github.com/charmbracelet/lipgloss/v2"

// Color palette — aviation console, dark with high-contrast accents
var (
	primary = lipgloss.Color("#38BDF8") // Sky Blue
	accent  = lipgloss.Color("#F97316") // Orange
	success = lipgloss.Color("#22C55E") // Green
	failure = lipgloss.Color("#F43F5E") // Rose
	text    = lipgloss.Color("#F8FAFC") // White
	textDim = lipgloss.Color("#94A3B8") // Slate
	border  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	hintStyle = lipgloss.NewStyle().
			Foreground(textDim).
			Italic(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(text)

	errStyle = lipgloss.NewStyle().
			Foreground(failure).
			Bold(true)

	okStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(accent)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2)
)
