package views

import (
	"fmt"
	"strings"
	"time"

	"benchkit/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

type ResultView struct{}

func (v ResultView) Render(s state.AppState, props ViewProps) string {
	if s.Last == nil {
		return lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render("Nothing run yet\n\nPress 'b' to go back"),
		)
	}
	r := s.Last

	header := MenuHeaderStyle.Width(props.Width).Render(strings.ToUpper(r.Step.String()))

	status := ColorForResult(r.Err).Render(strings.ToUpper(outcome(r.Err)))
	elapsed := r.Finished.Sub(r.Started).Round(time.Millisecond)
	summary := fmt.Sprintf("%s in %s", status, elapsed)

	body := []string{summary, ""}
	body = append(body, r.Lines...)
	if r.Err != nil {
		body = append(body, "", ColorForResult(r.Err).Render(r.Err.Error()))
	}

	parts := []string{
		header,
		lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(body, "\n")),
	}
	if r.Chart && props.ChartView != "" {
		parts = append(parts, props.ChartView)
	}
	parts = append(parts, lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#555")).Render("Press 'b' to go back"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

type LogView struct{}

// LogLines flattens the run history into display lines.
func LogLines(s state.AppState) []string {
	var lines []string
	for _, r := range s.History {
		lines = append(lines, fmt.Sprintf("[%s] %s %s",
			r.Finished.Format("15:04:05"), r.Step, ColorForResult(r.Err).Render(outcome(r.Err))))
		for _, l := range r.Lines {
			lines = append(lines, "    "+l)
		}
	}
	if len(lines) == 0 {
		lines = []string{"No steps run yet."}
	}
	return lines
}

func logHeader(width int) string {
	return MenuHeaderStyle.Width(width).Render("Run Log")
}

func logBodyHeight(header string, height int) int {
	if h := height - lipgloss.Height(header) - 4; h > 0 {
		return h
	}
	return 1
}

// MaxLogScroll is the largest useful scroll offset of the log page.
func MaxLogScroll(s state.AppState, width, height int) int {
	n := len(LogLines(s)) - logBodyHeight(logHeader(width), height)
	if n < 0 {
		return 0
	}
	return n
}

func (v LogView) Render(s state.AppState, props ViewProps) string {
	header := logHeader(props.Width)
	availableHeight := logBodyHeight(header, props.Height)

	lines := LogLines(s)
	totalLines := len(lines)

	scrollY := props.ScrollY
	if maxY := MaxLogScroll(s, props.Width, props.Height); scrollY > maxY {
		scrollY = maxY
	}
	if scrollY < 0 {
		scrollY = 0
	}

	end := scrollY + availableHeight
	if end > totalLines {
		end = totalLines
	}

	box := lipgloss.NewStyle().
		Width(props.Width-4).
		Height(availableHeight).
		Padding(0, 1).
		Render(strings.Join(lines[scrollY:end], "\n"))

	footerText := fmt.Sprintf("Scroll: %d/%d • Press 'b' to go back", scrollY, totalLines)
	if totalLines > availableHeight {
		footerText += " • Use ↑/↓ to scroll"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Padding(1, 2).Render(box),
		lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#555")).Render(footerText),
	)
}
