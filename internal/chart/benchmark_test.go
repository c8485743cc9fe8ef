package chart

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallBenchmark() Benchmark {
	b := DefaultBenchmark()
	b.X = []float64{1, 2, 3}
	b.A = Series{Name: "A", Values: []float64{1, 2, 3}}
	b.B = Series{Name: "B", Values: []float64{1, 1, 1}}
	b.Annotations = []string{"p1", "p2", "p3"}
	return b
}

func TestAnnotationHeightsRatchet(t *testing.T) {
	heights, err := smallBenchmark().AnnotationHeights()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5, 7}, heights)
}

func TestAnnotationHeightsNeverDrop(t *testing.T) {
	b := DefaultBenchmark()
	heights, err := b.AnnotationHeights()
	require.NoError(t, err)
	require.Len(t, heights, b.Len())

	for i := range heights {
		top := b.A.Values[i]
		if b.B.Values[i] > top {
			top = b.B.Values[i]
		}
		assert.GreaterOrEqual(t, heights[i], top+b.Layout.Margin, "label %d overlaps its data", i)
		if i > 0 {
			assert.GreaterOrEqual(t, heights[i], heights[i-1]+b.Layout.Margin, "label %d below label %d", i, i-1)
		}
	}
	assert.InDelta(t, 79.835+2, heights[len(heights)-1], 1e-9)
}

func TestAnnotationHeightsFallingData(t *testing.T) {
	b := smallBenchmark()
	b.A.Values = []float64{10, 1, 1}
	b.B.Values = []float64{0, 0, 20}
	heights, err := b.AnnotationHeights()
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 14, 22}, heights)
}

func TestValidateRejectsMismatchedLengths(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Benchmark)
		want   error
	}{
		{"series b short", func(b *Benchmark) { b.B.Values = b.B.Values[:2] }, ErrLengthMismatch},
		{"series a long", func(b *Benchmark) { b.A.Values = append(b.A.Values, 4) }, ErrLengthMismatch},
		{"annotations short", func(b *Benchmark) { b.Annotations = b.Annotations[:1] }, ErrLengthMismatch},
		{"x long", func(b *Benchmark) { b.X = append(b.X, 4) }, ErrLengthMismatch},
		{"empty", func(b *Benchmark) {
			b.X, b.A.Values, b.B.Values, b.Annotations = nil, nil, nil, nil
		}, ErrEmptySeries},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := smallBenchmark()
			tt.mutate(&b)
			assert.ErrorIs(t, b.Validate(), tt.want)

			_, err := b.AnnotationHeights()
			assert.ErrorIs(t, err, tt.want)

			path := filepath.Join(t.TempDir(), "benchmark.png")
			assert.ErrorIs(t, b.RenderPNG(path), tt.want)
			_, statErr := os.Stat(path)
			assert.True(t, errors.Is(statErr, os.ErrNotExist), "no image expected on precondition failure")
		})
	}
}

func TestLayoutValidate(t *testing.T) {
	assert.NoError(t, DefaultLayout().Validate())

	bad := []func(*Layout){
		func(l *Layout) { l.WidthIn = 0 },
		func(l *Layout) { l.XMax = l.XMin },
		func(l *Layout) { l.YMin = 100 },
		func(l *Layout) { l.Margin = -1 },
	}
	for i, mutate := range bad {
		l := DefaultLayout()
		mutate(&l)
		assert.Error(t, l.Validate(), "case %d", i)
	}
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "benchmark.png")
	require.NoError(t, smallBenchmark().RenderPNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 960, cfg.Width)
	assert.Equal(t, 864, cfg.Height)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files left behind")
}

func TestRenderPNGReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchmark.png")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, smallBenchmark().RenderPNG(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files left behind")
}

func TestPlotUsesFixedRanges(t *testing.T) {
	b := DefaultBenchmark()
	p, err := b.Plot()
	require.NoError(t, err)
	assert.Equal(t, "Benchmark", p.Title.Text)
	assert.Equal(t, "Index", p.X.Label.Text)
	assert.Equal(t, "Time (second)", p.Y.Label.Text)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 6.5, p.X.Max)
	assert.Equal(t, 0.0, p.Y.Min)
	assert.Equal(t, 85.0, p.Y.Max)
}

func TestEncodeHTML(t *testing.T) {
	var buf bytes.Buffer
	b := DefaultBenchmark()
	require.NoError(t, b.EncodeHTML(&buf))

	html := buf.String()
	for _, want := range append([]string{b.A.Name, b.B.Name, b.Title}, b.Annotations...) {
		assert.True(t, strings.Contains(html, want), "html missing %q", want)
	}

	path := filepath.Join(t.TempDir(), "benchmark.html")
	require.NoError(t, b.RenderHTML(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestParamsString(t *testing.T) {
	assert.Equal(t, "(100, 1000, ~38000)", Params{Nodes: 100, Edges: 1000, Pairs: 38000}.String())
	assert.Equal(t, []string{"(1, 2, ~3)", "(4, 5, ~6)"}, Annotations(Params{1, 2, 3}, Params{4, 5, 6}))
	assert.Equal(t, "(500, 10000, ~1250000)", DefaultBenchmark().Annotations[5])
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#1f77b4", Hex(ColorA))
	assert.Equal(t, "#ff7f0e", Hex(ColorB))
	assert.Equal(t, "#000000", Hex(color.RGBA{A: 0xff}))
	assert.Equal(t, "#123456", Hex(color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}))
}
