package views

import (
	"benchkit/ui/tui/state"
)

func RenderMenu(s state.AppState, width, height, cursor int, animCursor float64, mouseY int, spinnerView string) string {
	v := MenuView{}
	return v.Render(s, ViewProps{
		Width:       width,
		Height:      height,
		MenuCursor:  cursor,
		AnimCursor:  animCursor,
		MouseY:      mouseY,
		SpinnerView: spinnerView,
	})
}

func RenderResult(s state.AppState, chartView string, width, height int) string {
	v := ResultView{}
	return v.Render(s, ViewProps{
		Width:     width,
		Height:    height,
		ChartView: chartView,
	})
}

func RenderLog(s state.AppState, width, height, scrollY int) string {
	v := LogView{}
	return v.Render(s, ViewProps{
		Width:   width,
		Height:  height,
		ScrollY: scrollY,
	})
}
