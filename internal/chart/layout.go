package chart

import "fmt"

// Layout holds the fixed geometry of a benchmark figure.
type Layout struct {
	WidthIn  float64 // Figure width in inches (default: 10)
	HeightIn float64 // Figure height in inches (default: 9)

	XMin, XMax float64 // Visible x range (default: 0..6.5)
	YMin, YMax float64 // Visible y range (default: 0..85)

	Margin     float64 // Gap between a label and the data below it (default: 2)
	LabelShift float64 // Horizontal offset of a label from its x position (default: -1)
}

// DefaultLayout returns the geometry used for the closure benchmark figure.
func DefaultLayout() Layout {
	return Layout{
		WidthIn:    10,
		HeightIn:   9,
		XMin:       0,
		XMax:       6.5,
		YMin:       0,
		YMax:       85,
		Margin:     2,
		LabelShift: -1,
	}
}

// Validate checks that the layout describes a drawable figure.
func (l Layout) Validate() error {
	if l.WidthIn <= 0 || l.HeightIn <= 0 {
		return fmt.Errorf("invalid figure size %gx%g", l.WidthIn, l.HeightIn)
	}
	if l.XMax <= l.XMin {
		return fmt.Errorf("invalid x range [%g, %g]", l.XMin, l.XMax)
	}
	if l.YMax <= l.YMin {
		return fmt.Errorf("invalid y range [%g, %g]", l.YMin, l.YMax)
	}
	if l.Margin < 0 {
		return fmt.Errorf("negative label margin %g", l.Margin)
	}
	return nil
}
