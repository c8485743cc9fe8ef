// Package preview draws a benchmark chart in the terminal.
package preview

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"benchkit/internal/chart"
)

type BenchmarkWidget struct {
	Chart     linechart.Model
	Benchmark chart.Benchmark
	Width     int
	Height    int
}

// NewBenchmarkWidget sizes a braille line chart to the benchmark's fixed ranges.
func NewBenchmarkWidget(b chart.Benchmark, width, height int) (*BenchmarkWidget, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	l := b.Layout
	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(width, height, l.XMin, l.XMax, l.YMin, l.YMax)
	return &BenchmarkWidget{
		Chart:     lc,
		Benchmark: b,
		Width:     width,
		Height:    height,
	}, nil
}

func (w *BenchmarkWidget) Resize(width, height int) {
	w.Width = width
	w.Height = height
	w.Chart.Resize(width, height)
}

func (w *BenchmarkWidget) View() string {
	b := w.Benchmark
	w.Chart.Clear()
	w.drawSeries(b.A.Values, SeriesAStyle)
	w.drawSeries(b.B.Values, SeriesBStyle)
	w.Chart.DrawXYAxisAndLabel()

	legend := lipgloss.JoinHorizontal(lipgloss.Top,
		SeriesAStyle.Render("━ "+b.A.Name),
		"   ",
		SeriesBStyle.Render("━ "+b.B.Name),
	)

	return CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			TitleStyle.Render(b.Title),
			w.Chart.View(),
			legend,
			w.table(),
		),
	)
}

func (w *BenchmarkWidget) drawSeries(values []float64, style lipgloss.Style) {
	xs := w.Benchmark.X
	for i := 0; i < len(values)-1; i++ {
		w.Chart.DrawBrailleLineWithStyle(
			canvas.Float64Point{X: xs[i], Y: values[i]},
			canvas.Float64Point{X: xs[i+1], Y: values[i+1]},
			style,
		)
	}
}

// table lists every point with its annotation, since braille cells have no room for text.
func (w *BenchmarkWidget) table() string {
	b := w.Benchmark
	var sb strings.Builder
	for i, x := range b.X {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%4g  %-24s %s %s",
			x,
			b.Annotations[i],
			SeriesAStyle.Render(fmt.Sprintf("%9.3f", b.A.Values[i])),
			SeriesBStyle.Render(fmt.Sprintf("%9.3f", b.B.Values[i])),
		)
	}
	return NoteStyle.Render(b.YLabel) + "\n" + sb.String()
}
