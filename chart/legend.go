package chart

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/susji/lilchart/canvas"
	"github.com/susji/lilchart/layout"
)

const (
	// LegendHeight is the room reserved under a chart for one legend row.
	LegendHeight = 28.0

	legendTextSize = 12.0
	legendSwatch   = 5.0
	legendSpacing  = 20.0
)

// Legend draws the key of a linear chart. at is the left end of the
// legend's baseline.
type Legend interface {
	Draw(c canvas.Canvas, d *layout.LinearData, dec LinearDecoration, at canvas.Point)
}

// ItemLegend draws the key of a circular chart.
type ItemLegend interface {
	Draw(c canvas.Canvas, d layout.CircularData, dec CircularDecoration, at canvas.Point)
}

// NoLegend is the default legend of every chart. The render pass skips
// it entirely.
type NoLegend struct{}

func (NoLegend) Draw(canvas.Canvas, *layout.LinearData, LinearDecoration, canvas.Point) {}

type NoItemLegend struct{}

func (NoItemLegend) Draw(canvas.Canvas, layout.CircularData, CircularDecoration, canvas.Point) {}

type entry struct {
	text string
	clr  int
}

// drawRow lays out swatch and text pairs left to right starting at at.
func drawRow(c canvas.Canvas, entries []entry, colors func(int) canvas.Brush, textColor color.Color, at canvas.Point) {
	x := at.X
	st := canvas.TextStyle{Color: textColor, Size: legendTextSize}
	for _, e := range entries {
		c.DrawCircle(canvas.Point{X: x + legendSwatch, Y: at.Y - legendSwatch}, legendSwatch, colors(e.clr))
		x += 3 * legendSwatch
		c.DrawText(e.text, canvas.Point{X: x, Y: at.Y}, st)
		x += c.MeasureText(e.text, legendTextSize) + legendSpacing
	}
}

// SeriesLegend lists every series title next to its color.
type SeriesLegend struct{}

func (SeriesLegend) Draw(c canvas.Canvas, d *layout.LinearData, dec LinearDecoration, at canvas.Point) {
	entries := make([]entry, len(d.Series))
	for i, s := range d.Series {
		entries[i] = entry{text: s.Title, clr: i}
	}
	drawRow(c, entries, func(i int) canvas.Brush {
		return canvas.Solid(dec.Primary[i%len(dec.Primary)])
	}, dec.TextColor, at)
}

// ValueLegend lists every item as "label value unit".
type ValueLegend struct{}

func (ValueLegend) Draw(c canvas.Canvas, d layout.CircularData, dec CircularDecoration, at canvas.Point) {
	items := d.Items()
	entries := make([]entry, len(items))
	for i, it := range items {
		entries[i] = entry{text: itemText(it, d.Unit()), clr: i}
	}
	drawRow(c, entries, func(i int) canvas.Brush {
		return canvas.Solid(dec.Colors[i])
	}, dec.TextColor, at)
}

func itemText(it layout.Item, unit string) string {
	v := strconv.FormatFloat(it.Value, 'f', -1, 64)
	if unit == "" {
		return fmt.Sprintf("%s %s", it.Label, v)
	}
	return fmt.Sprintf("%s %s %s", it.Label, v, unit)
}
