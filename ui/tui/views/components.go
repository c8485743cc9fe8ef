package views

import (
	"github.com/charmbracelet/lipgloss"
)

var StatusStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FFF"))

// ColorForResult styles a step outcome: red on failure, green otherwise.
func ColorForResult(err error) lipgloss.Style {
	if err != nil {
		return StatusStyle.Foreground(lipgloss.Color("196")) // Red
	}
	return StatusStyle.Foreground(lipgloss.Color("46")) // Green
}
