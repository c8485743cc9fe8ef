package views

import (
	"benchkit/ui/tui/state"
)

// ViewProps carries the controller's widget state into a page render.
type ViewProps struct {
	Width, Height int
	// Pointer row, used by the menu hover highlight.
	MouseY int

	MenuCursor int
	// Spring-animated cursor position trailing MenuCursor.
	AnimCursor float64
	// Spinner frame shown next to the running step.
	SpinnerView string
	// Rendered chart preview, set once the chart step has run.
	ChartView string
	// First visible run log line.
	ScrollY int
}

// View renders one page of the step runner.
type View interface {
	Render(s state.AppState, props ViewProps) string
}

var (
	_ View = MenuView{}
	_ View = ResultView{}
	_ View = LogView{}
)
