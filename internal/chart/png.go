package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Plot builds the gonum plot of the benchmark.
func (b Benchmark) Plot() (*plot.Plot, error) {
	lx, ly, err := b.annotationPoints()
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = b.Title
	p.X.Label.Text = b.XLabel
	p.Y.Label.Text = b.YLabel
	p.Legend.Top = true
	p.Legend.Left = true

	for _, s := range []struct {
		series Series
		color  color.Color
	}{
		{b.A, ColorA},
		{b.B, ColorB},
	} {
		line, points, err := plotter.NewLinePoints(xys(b.X, s.series.Values))
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.series.Name, err)
		}
		line.Color = s.color
		points.Color = s.color
		points.Shape = draw.CircleGlyph{}
		points.Radius = vg.Points(3)
		p.Add(line, points)
		p.Legend.Add(s.series.Name, line, points)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    xys(lx, ly),
		Labels: b.Annotations,
	})
	if err != nil {
		return nil, fmt.Errorf("annotations: %w", err)
	}
	p.Add(labels)

	// Add widens the axes to fit the data; the figure uses fixed ranges.
	p.X.Min, p.X.Max = b.Layout.XMin, b.Layout.XMax
	p.Y.Min, p.Y.Max = b.Layout.YMin, b.Layout.YMax

	return p, nil
}

// EncodePNG renders the benchmark as a PNG image to w.
func (b Benchmark) EncodePNG(w io.Writer) error {
	p, err := b.Plot()
	if err != nil {
		return err
	}
	c := vgimg.New(vg.Length(b.Layout.WidthIn)*vg.Inch, vg.Length(b.Layout.HeightIn)*vg.Inch)
	p.Draw(draw.New(c))
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// RenderPNG writes the benchmark image to path. The file is only replaced once
// the image has been fully encoded.
func (b Benchmark) RenderPNG(path string) error {
	var buf bytes.Buffer
	if err := b.EncodePNG(&buf); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
