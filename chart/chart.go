// Package chart assembles layout data, drawing strategies and decoration
// into charts that render themselves onto a canvas.Canvas.
//
// A render pass validates the data, computes the layout for the given
// size and then draws labels, the plot and the legend in that order.
// Nothing is drawn when validation fails.
package chart

import (
	"errors"

	"github.com/susji/lilchart/canvas"
	"github.com/susji/lilchart/layout"
)

var ErrCanvasTooSmall = errors.New("canvas too small")

// Renderer is implemented by every chart. Each call to Render is an
// independent pass that recomputes all positions for size.
type Renderer interface {
	Render(c canvas.Canvas, size layout.Size) error
}

// Padding is the room left free around the chart area.
type Padding struct {
	Left, Top, Right, Bottom float64
}

// DefaultLinearPadding makes room for the Y label column, which sits
// left of the chart area.
func DefaultLinearPadding() Padding {
	return Padding{Left: 32, Top: 8, Right: 16, Bottom: 8}
}

func DefaultCircularPadding() Padding {
	return Padding{Left: 8, Top: 8, Right: 8, Bottom: 8}
}

// inner is the size left of outer after padding and extra room at the
// bottom.
func (p Padding) inner(outer layout.Size, bottom float64) (layout.Size, error) {
	in := layout.Size{
		Width:  outer.Width - p.Left - p.Right,
		Height: outer.Height - p.Top - p.Bottom - bottom,
	}
	if in.Width <= 0 || in.Height <= 0 {
		return in, ErrCanvasTooSmall
	}
	return in, nil
}
