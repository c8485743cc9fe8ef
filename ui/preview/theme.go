package preview

import (
	"github.com/charmbracelet/lipgloss"

	"benchkit/internal/chart"
)

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	SeriesAStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(chart.Hex(chart.ColorA)))
	SeriesBStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(chart.Hex(chart.ColorB)))

	TitleStyle = lipgloss.NewStyle().Bold(true)

	NoteStyle = lipgloss.NewStyle().Foreground(Subtle)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(1, 2).
			Margin(1, 1)
)
