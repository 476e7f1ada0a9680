package screen

import "github.com/charmbracelet/lipgloss"

var (
	// Night-sky palette
	accentColor  = lipgloss.Color("#38BDF8") // Sky
	textColor    = lipgloss.Color("#F9FAFB")
	mutedColor   = lipgloss.Color("#9CA3AF")
	errorColor   = lipgloss.Color("#F87171")
	borderColor  = lipgloss.Color("#475569")
	overlayColor = lipgloss.Color("#1E293B")

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle = lipgloss.NewStyle().Foreground(errorColor)

	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	candidateListStyle = lipgloss.NewStyle().
				Background(overlayColor).
				Padding(0, 1)

	candidateStyle = lipgloss.NewStyle().
			Foreground(textColor)

	candidateSelectedStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	cityStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	countryStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	tempStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true).
			MarginTop(1)

	conditionStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Italic(true)

	statStyle = lipgloss.NewStyle().
			Foreground(textColor).
			MarginRight(3)

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				MarginTop(1)

	dayCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Width(dayCardInnerWidth).
			Align(lipgloss.Center)

	errorPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)

const (
	dayCardInnerWidth = 11
	// dayCardWidth includes the two border columns.
	dayCardWidth = dayCardInnerWidth + 2
)
