package fieldui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#8B5CF6")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			MarginBottom(1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	valueStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	revertStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	clearedStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	helpStyle    = lipgloss.NewStyle().Foreground(colorMuted)
)
