package chart

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// pixelsPerInch converts the figure size into canvas pixels.
const pixelsPerInch = 96

// EChart builds an interactive line chart of the benchmark. Annotations are
// mark points on the first series, placed at the same heights as in the PNG.
func (b Benchmark) EChart() (*charts.Line, error) {
	lx, ly, err := b.annotationPoints()
	if err != nil {
		return nil, err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: b.Title,
			Width:     fmt.Sprintf("%dpx", int(b.Layout.WidthIn*pixelsPerInch)),
			Height:    fmt.Sprintf("%dpx", int(b.Layout.HeightIn*pixelsPerInch)),
		}),
		charts.WithTitleOpts(opts.Title{Title: b.Title}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Left: "right",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: b.XLabel,
			Type: "value",
			Min:  b.Layout.XMin,
			Max:  b.Layout.XMax,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: b.YLabel,
			Type: "value",
			Min:  b.Layout.YMin,
			Max:  b.Layout.YMax,
		}),
	)

	marks := make([]opts.MarkPointNameCoordItem, len(b.Annotations))
	for i, text := range b.Annotations {
		marks[i] = opts.MarkPointNameCoordItem{
			Name:       text,
			Coordinate: []interface{}{lx[i], ly[i]},
			Symbol:     "none",
		}
	}

	line.AddSeries(b.A.Name, lineData(b.X, b.A.Values, b.Annotations),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: Hex(ColorA)}),
		charts.WithMarkPointNameCoordItemOpts(marks...),
		charts.WithMarkPointStyleOpts(opts.MarkPointStyle{
			Label: &opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}",
				Position:  "right",
				Color:     "black",
			},
		}),
	)
	line.AddSeries(b.B.Name, lineData(b.X, b.B.Values, b.Annotations),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: Hex(ColorB)}),
	)

	return line, nil
}

// EncodeHTML renders the interactive chart page to w.
func (b Benchmark) EncodeHTML(w io.Writer) error {
	line, err := b.EChart()
	if err != nil {
		return err
	}
	page := components.NewPage()
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// RenderHTML writes the interactive chart page to path.
func (b Benchmark) RenderHTML(path string) error {
	var buf bytes.Buffer
	if err := b.EncodeHTML(&buf); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

func lineData(xs, ys []float64, names []string) []opts.LineData {
	data := make([]opts.LineData, len(xs))
	for i := range xs {
		data[i] = opts.LineData{
			Name:  names[i],
			Value: []float64{xs[i], ys[i]},
		}
	}
	return data
}
