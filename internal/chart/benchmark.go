// Package chart renders runtime comparisons of two systems over a shared set of
// problem sizes, annotating every size with the parameters behind it.
package chart

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrLengthMismatch is returned when X, both series and the annotations differ in length.
	ErrLengthMismatch = errors.New("series and annotation lengths differ")
	// ErrEmptySeries is returned when there is nothing to plot.
	ErrEmptySeries = errors.New("no data points")
)

// Series is one system's measurements, aligned with Benchmark.X.
type Series struct {
	Name   string
	Values []float64
}

// Params are the problem parameters behind one benchmark point.
type Params struct {
	Nodes int
	Edges int
	Pairs int // approximate number of derived pairs
}

// String formats params as "(nodes, edges, ~pairs)".
func (p Params) String() string {
	return fmt.Sprintf("(%d, %d, ~%d)", p.Nodes, p.Edges, p.Pairs)
}

// Annotations formats a list of params.
func Annotations(params ...Params) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.String()
	}
	return out
}

// Benchmark is a two-series comparison chart.
type Benchmark struct {
	Title       string
	XLabel      string
	YLabel      string
	X           []float64
	A           Series
	B           Series
	Annotations []string
	Layout      Layout
}

// DefaultBenchmark returns the closure benchmark results.
func DefaultBenchmark() Benchmark {
	return Benchmark{
		Title:  "Benchmark",
		XLabel: "Index",
		YLabel: "Time (second)",
		X:      []float64{1, 2, 3, 4, 5, 6},
		A: Series{
			Name:   "Amoeba",
			Values: []float64{0.695, 1.358, 3.232, 8.873, 24.295, 79.835},
		},
		B: Series{
			Name:   "Crepe",
			Values: []float64{0.109, 0.294, 0.042, 1.207, 2.896, 4.527},
		},
		Annotations: Annotations(
			Params{Nodes: 100, Edges: 1000, Pairs: 38000},
			Params{Nodes: 200, Edges: 1000, Pairs: 120000},
			Params{Nodes: 500, Edges: 1000, Pairs: 250000},
			Params{Nodes: 500, Edges: 2000, Pairs: 650000},
			Params{Nodes: 500, Edges: 5000, Pairs: 1000000},
			Params{Nodes: 500, Edges: 10000, Pairs: 1250000},
		),
		Layout: DefaultLayout(),
	}
}

// Len returns the number of x positions.
func (b Benchmark) Len() int {
	return len(b.X)
}

// Validate checks that every per-point slice has one entry per x position.
func (b Benchmark) Validate() error {
	n := len(b.X)
	if len(b.A.Values) != n || len(b.B.Values) != n || len(b.Annotations) != n {
		return fmt.Errorf("%w: x=%d %s=%d %s=%d annotations=%d", ErrLengthMismatch,
			n, b.A.Name, len(b.A.Values), b.B.Name, len(b.B.Values), len(b.Annotations))
	}
	if n == 0 {
		return ErrEmptySeries
	}
	return b.Layout.Validate()
}

// AnnotationHeights returns the y position of every annotation. Each label sits
// Margin above the taller value at its x, and never below the previous label,
// so labels climb monotonically even when the data does not.
func (b Benchmark) AnnotationHeights() ([]float64, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	heights := make([]float64, b.Len())
	last := 0.0
	for i := range heights {
		last = math.Max(math.Max(b.A.Values[i], b.B.Values[i]), last) + b.Layout.Margin
		heights[i] = last
	}
	return heights, nil
}

// annotationPoints returns where each annotation is anchored.
func (b Benchmark) annotationPoints() ([]float64, []float64, error) {
	ys, err := b.AnnotationHeights()
	if err != nil {
		return nil, nil, err
	}
	xs := make([]float64, len(ys))
	for i, x := range b.X {
		xs[i] = x + b.Layout.LabelShift
	}
	return xs, ys, nil
}
