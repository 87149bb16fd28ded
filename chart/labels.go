package chart

import (
	"github.com/susji/lilchart/canvas"
	"github.com/susji/lilchart/layout"
)

// Labels draws the axes of a linear chart at the positions computed by
// the layout pass.
type Labels interface {
	Draw(c canvas.Canvas, d *layout.LinearData, dec LinearDecoration)
}

type NoLabels struct{}

func (NoLabels) Draw(canvas.Canvas, *layout.LinearData, LinearDecoration) {}

// AxisLabels writes the Y tick labels into the left column and the X
// labels centered under their points. With Gridlines, a dashed line is
// drawn at the height of every Y tick.
type AxisLabels struct {
	TextSize  float64
	Gridlines bool
}

func (a AxisLabels) Draw(c canvas.Canvas, d *layout.LinearData, dec LinearDecoration) {
	size := a.TextSize
	if size == 0 {
		size = layout.LabelTextSize
	}
	if a.Gridlines {
		grid := canvas.Stroke{Width: 1, Dashes: []float64{4, 4}}
		left := layout.YLabelX + d.YLabelMaxWidth + 8
		for i := range d.YAxisLabels {
			y := d.GridY(i)
			c.DrawLine(
				canvas.Point{X: left, Y: y},
				canvas.Point{X: d.Size.Width, Y: y},
				dec.GridColor, grid)
		}
	}

	st := canvas.TextStyle{Color: dec.TextColor, Size: size, Align: canvas.AlignLeft}
	for _, l := range d.YAxisLabels {
		x, y := l.Position()
		c.DrawText(l.Value().Text, canvas.Point{X: x, Y: y}, st)
	}

	st.Align = canvas.AlignCenter
	for _, l := range d.XAxisLabels {
		x, y := l.Position()
		c.DrawText(l.Value(), canvas.Point{X: x, Y: y}, st)
	}
}
