// Package canvas defines the drawing surface charts are rendered on.
//
// Coordinates are pixels with the origin in the top left corner and Y
// growing downwards. Angles are degrees, measured clockwise from 3 o'clock.
package canvas

import (
	"image/color"
)

type Point struct {
	X, Y float64
}

type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Width() float64 {
	return r.Right - r.Left
}

func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

// Square returns the largest square centered in r.
func (r Rect) Square() Rect {
	side := r.Width()
	if r.Height() < side {
		side = r.Height()
	}
	c := r.Center()
	return Rect{Left: c.X - side/2, Top: c.Y - side/2, Right: c.X + side/2, Bottom: c.Y + side/2}
}

type Stroke struct {
	Width float64
	// Dashes alternates dash and gap lengths. Empty means solid.
	Dashes []float64
	// RoundCap ends open strokes with a half circle.
	RoundCap bool
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type TextStyle struct {
	Color color.Color
	Size  float64
	Align Align
}

// TextMeasurer reports how wide a string renders at the given text size.
type TextMeasurer interface {
	MeasureText(s string, size float64) float64
}

// Canvas is the set of primitives a host has to provide.
type Canvas interface {
	TextMeasurer

	// DrawArc strokes the arc of the ellipse inscribed in r.
	DrawArc(r Rect, startAngle, sweepAngle float64, clr color.Color, s Stroke)
	// DrawPath strokes p when s is non-nil, using the brush's start color,
	// and fills it with b otherwise.
	DrawPath(p *Path, b Brush, s *Stroke)
	DrawRoundRect(r Rect, radius float64, b Brush)
	DrawCircle(center Point, radius float64, b Brush)
	DrawLine(from, to Point, clr color.Color, s Stroke)
	// DrawText draws txt with its baseline at at.Y.
	DrawText(txt string, at Point, st TextStyle)
}
