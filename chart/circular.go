package chart

import (
	"image/color"
	"strconv"

	"github.com/susji/lilchart/canvas"
	"github.com/susji/lilchart/layout"
)

const (
	DefaultDonutStroke  = 28.0
	DefaultRingStroke   = 14.0
	DefaultTargetStroke = 18.0
)

// Foreground draws the arcs of a circular chart inside area, which is
// square. Sweep angles must have been computed before.
type Foreground interface {
	Draw(c canvas.Canvas, d layout.CircularData, dec CircularDecoration, area canvas.Rect)
	// RequiredColors is the number of decoration colors the data needs.
	RequiredColors(d layout.CircularData) int
}

// arcRect is the rectangle whose inscribed circle runs through the middle
// of a stroke of width w drawn inside area.
func arcRect(area canvas.Rect, w float64) canvas.Rect {
	return area.Inset(w / 2)
}

// DonutForeground draws the slices one after another, leaving a gap of
// layout.GapAngle after each.
type DonutForeground struct {
	StrokeWidth float64
	StartAngle  float64
}

func (f DonutForeground) RequiredColors(d layout.CircularData) int {
	return len(d.Items())
}

func (f DonutForeground) Draw(c canvas.Canvas, d layout.CircularData, dec CircularDecoration, area canvas.Rect) {
	r := arcRect(area, f.StrokeWidth)
	start := f.StartAngle
	for i, sweep := range d.SweepAngles() {
		c.DrawArc(r, start, sweep, dec.Colors[i], canvas.Stroke{Width: f.StrokeWidth})
		start += sweep + layout.GapAngle
	}
}

// RingForeground is a thinner donut on top of a full track, with rounded
// slice ends.
type RingForeground struct {
	StrokeWidth float64
	StartAngle  float64
	TrackColor  color.Color
}

func (f RingForeground) RequiredColors(d layout.CircularData) int {
	return len(d.Items())
}

func (f RingForeground) Draw(c canvas.Canvas, d layout.CircularData, dec CircularDecoration, area canvas.Rect) {
	r := arcRect(area, f.StrokeWidth)
	c.DrawArc(r, 0, layout.FullCircle, f.TrackColor, canvas.Stroke{Width: f.StrokeWidth})
	start := f.StartAngle
	for i, sweep := range d.SweepAngles() {
		if sweep > 0 {
			c.DrawArc(r, start, sweep, dec.Colors[i], canvas.Stroke{Width: f.StrokeWidth, RoundCap: true})
		}
		start += sweep + layout.GapAngle
	}
}

// TargetForeground draws the target as a full track in the second color
// and the achieved part on top of it in the first.
type TargetForeground struct {
	StrokeWidth float64
	StartAngle  float64
}

func (f TargetForeground) RequiredColors(d layout.CircularData) int {
	return 2
}

func (f TargetForeground) Draw(c canvas.Canvas, d layout.CircularData, dec CircularDecoration, area canvas.Rect) {
	r := arcRect(area, f.StrokeWidth)
	c.DrawArc(r, 0, layout.FullCircle, dec.Colors[1], canvas.Stroke{Width: f.StrokeWidth})
	sweeps := d.SweepAngles()
	if len(sweeps) == 0 || sweeps[0] == 0 {
		return
	}
	c.DrawArc(r, f.StartAngle, sweeps[0], dec.Colors[0], canvas.Stroke{Width: f.StrokeWidth, RoundCap: true})
}

// Center draws inside the hole of a circular chart.
type Center interface {
	Draw(c canvas.Canvas, d layout.CircularData, dec CircularDecoration, area canvas.Rect)
}

type NoCenter struct{}

func (NoCenter) Draw(canvas.Canvas, layout.CircularData, CircularDecoration, canvas.Rect) {}

const (
	centerTextSize = 22.0
	centerUnitSize = 12.0
)

func drawCenter(c canvas.Canvas, main, sub string, clr color.Color, area canvas.Rect) {
	mid := area.Center()
	c.DrawText(main, canvas.Point{X: mid.X, Y: mid.Y + centerTextSize/3},
		canvas.TextStyle{Color: clr, Size: centerTextSize, Align: canvas.AlignCenter})
	if sub != "" {
		c.DrawText(sub, canvas.Point{X: mid.X, Y: mid.Y + centerTextSize/3 + centerUnitSize + 4},
			canvas.TextStyle{Color: clr, Size: centerUnitSize, Align: canvas.AlignCenter})
	}
}

// TotalCenter shows the sum of all item values with the unit under it.
type TotalCenter struct{}

func (TotalCenter) Draw(c canvas.Canvas, d layout.CircularData, dec CircularDecoration, area canvas.Rect) {
	sum := 0.0
	for _, it := range d.Items() {
		sum += it.Value
	}
	if t, ok := d.(*layout.TargetData); ok {
		sum = t.Achieved
	}
	drawCenter(c, strconv.FormatFloat(sum, 'f', -1, 64), d.Unit(), dec.TextColor, area)
}

// PercentCenter shows how much of the target has been achieved. For list
// data it shows the share of the first item.
type PercentCenter struct{}

func (PercentCenter) Draw(c canvas.Canvas, d layout.CircularData, dec CircularDecoration, area canvas.Rect) {
	var p float64
	switch v := d.(type) {
	case *layout.TargetData:
		p = v.Percentage()
	case *layout.ListData:
		if total := v.Total(); total > 0 && len(v.Items()) > 0 {
			p = v.Items()[0].Value / total
		}
	}
	drawCenter(c, strconv.Itoa(int(p*100+0.5))+"%", "", dec.TextColor, area)
}
