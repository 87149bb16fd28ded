package chart

import (
	"github.com/susji/lilchart/canvas"
	"github.com/susji/lilchart/layout"
)

const (
	DefaultStrokeWidth  = 3.0
	DefaultMarkerRadius = 4.0
	DefaultBarWidth     = 30.0
	DefaultBarRadius    = 6.0
	// BarInset keeps bars off the X label row.
	BarInset = 12.0
	// EmojiLabelHeight is the room kept free for emoji X labels under a
	// gradient fill.
	EmojiLabelHeight = 28.0
)

// Plot draws the data of a linear chart. Plots only read positions, so
// they have to run after the layout pass.
type Plot interface {
	Draw(c canvas.Canvas, d *layout.LinearData, dec LinearDecoration)
	// RequiredColors is the number of primary colors the plot needs.
	RequiredColors(d *layout.LinearData) int
}

// splinePath joins the markers with cubic segments whose control points
// sit halfway between neighbours at the height of either end.
func splinePath(ms []*layout.Coordinate[float64]) *canvas.Path {
	p := &canvas.Path{}
	for i, m := range ms {
		x, y := m.Position()
		if i == 0 {
			p.MoveTo(canvas.Point{X: x, Y: y})
			continue
		}
		px, py := ms[i-1].Position()
		mid := (px + x) / 2
		p.CubicTo(
			canvas.Point{X: mid, Y: py},
			canvas.Point{X: mid, Y: y},
			canvas.Point{X: x, Y: y})
	}
	return p
}

type LinePlot struct {
	StrokeWidth  float64
	MarkerRadius float64
}

func (l LinePlot) RequiredColors(d *layout.LinearData) int {
	return len(d.Series)
}

func (l LinePlot) Draw(c canvas.Canvas, d *layout.LinearData, dec LinearDecoration) {
	for i, s := range d.Series {
		clr := dec.Primary[i]
		c.DrawPath(splinePath(s.Markers), canvas.Solid(clr), &canvas.Stroke{Width: l.StrokeWidth})
		for _, m := range s.Markers {
			x, y := m.Position()
			c.DrawCircle(canvas.Point{X: x, Y: y}, l.MarkerRadius, canvas.Solid(clr))
		}
	}
}

// GradientPlot is a LinePlot with the area under each curve filled by a
// gradient from the series' primary to its secondary color.
type GradientPlot struct {
	StrokeWidth float64
	// EmojiLabels lowers the fill baseline so that it ends above taller
	// emoji X labels instead of at the lowest gridline.
	EmojiLabels bool
}

func (g GradientPlot) RequiredColors(d *layout.LinearData) int {
	return len(d.Series)
}

func (g GradientPlot) baseline(d *layout.LinearData) float64 {
	if g.EmojiLabels {
		return d.Size.Height - EmojiLabelHeight
	}
	return d.AxisY()
}

func (g GradientPlot) Draw(c canvas.Canvas, d *layout.LinearData, dec LinearDecoration) {
	base := g.baseline(d)
	for i, s := range d.Series {
		line := splinePath(s.Markers)

		top := base
		for _, m := range s.Markers {
			if m.Y() < top {
				top = m.Y()
			}
		}
		first := s.Markers[0]
		last := s.Markers[len(s.Markers)-1]
		fill := line.Clone()
		fill.LineTo(canvas.Point{X: last.X(), Y: base})
		fill.LineTo(canvas.Point{X: first.X(), Y: base})
		fill.Close()
		c.DrawPath(fill, canvas.VerticalGradient(dec.Primary[i], dec.secondary(i), top, base), nil)

		c.DrawPath(line, canvas.Solid(dec.Primary[i]), &canvas.Stroke{Width: g.StrokeWidth})
	}
}

// BarPlot draws one rounded bar per point. All bars may share a single
// color, so it needs only one.
type BarPlot struct {
	Width        float64
	CornerRadius float64
}

func (b BarPlot) RequiredColors(d *layout.LinearData) int {
	return 1
}

func (b BarPlot) Draw(c canvas.Canvas, d *layout.LinearData, dec LinearDecoration) {
	bottom := d.Size.Height - BarInset
	for i, s := range d.Series {
		ci := i % len(dec.Primary)
		brush := canvas.Solid(dec.Primary[ci])
		if ci < len(dec.Secondary) {
			brush = canvas.VerticalGradient(dec.Primary[ci], dec.Secondary[ci], 0, bottom)
		}
		for _, m := range s.Markers {
			x, y := m.Position()
			if y > bottom {
				y = bottom
			}
			r := canvas.Rect{Left: x - b.Width/2, Top: y, Right: x + b.Width/2, Bottom: bottom}
			c.DrawRoundRect(r, b.CornerRadius, brush)
		}
	}
}
