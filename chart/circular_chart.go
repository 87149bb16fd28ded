package chart

import (
	"fmt"
	"log/slog"

	"github.com/susji/lilchart/canvas"
	"github.com/susji/lilchart/layout"
)

// CircularChart is a donut, ring or target chart. The circle takes the
// largest square that fits the padded canvas above the legend.
type CircularChart struct {
	Name       string
	Data       layout.CircularData
	Foreground Foreground
	Center     Center
	Legend     ItemLegend
	Decoration CircularDecoration
	Padding    Padding
	Logger     *slog.Logger
}

func NewDonutChart(name string, d *layout.ListData) *CircularChart {
	return &CircularChart{
		Name: name,
		Data: d,
		Foreground: DonutForeground{
			StrokeWidth: DefaultDonutStroke,
			StartAngle:  layout.DefaultStartAngle,
		},
		Center:     TotalCenter{},
		Legend:     NoItemLegend{},
		Decoration: DefaultCircularDecoration(),
		Padding:    DefaultCircularPadding(),
	}
}

func NewRingChart(name string, d *layout.ListData) *CircularChart {
	return &CircularChart{
		Name: name,
		Data: d,
		Foreground: RingForeground{
			StrokeWidth: DefaultRingStroke,
			StartAngle:  layout.DefaultStartAngle,
			TrackColor:  ColorTrack,
		},
		Center:     NoCenter{},
		Legend:     NoItemLegend{},
		Decoration: DefaultCircularDecoration(),
		Padding:    DefaultCircularPadding(),
	}
}

func NewTargetChart(name string, d *layout.TargetData) *CircularChart {
	return &CircularChart{
		Name: name,
		Data: d,
		Foreground: TargetForeground{
			StrokeWidth: DefaultTargetStroke,
			StartAngle:  layout.DefaultStartAngle,
		},
		Center:     PercentCenter{},
		Legend:     NoItemLegend{},
		Decoration: DefaultTargetDecoration(),
		Padding:    DefaultCircularPadding(),
	}
}

func (ch *CircularChart) hasLegend() bool {
	switch ch.Legend.(type) {
	case nil, NoItemLegend, *NoItemLegend:
		return false
	}
	return true
}

func (ch *CircularChart) Render(c canvas.Canvas, size layout.Size) error {
	p, err := startPass(ch.Name, ch.Logger)
	if err != nil {
		return err
	}
	if ch.Data == nil || ch.Foreground == nil {
		return p.fail(fmt.Errorf("%s: chart needs data and a foreground", ch.Name))
	}
	if err := ValidateCircular(ch.Data, ch.Foreground, ch.Decoration); err != nil {
		return p.fail(fmt.Errorf("%s: %w", ch.Name, err))
	}
	reserve := 0.0
	if ch.hasLegend() {
		reserve = LegendHeight
	}
	inner, err := ch.Padding.inner(size, reserve)
	if err != nil {
		return p.fail(fmt.Errorf("%s: %w: %vx%v", ch.Name, err, size.Width, size.Height))
	}
	if err := p.advance(eventValidated, nil); err != nil {
		return err
	}

	ch.Data.DoCalculations()
	if err := p.advance(eventLaidOut, nil); err != nil {
		return err
	}

	oc := canvas.Offset(c, ch.Padding.Left, ch.Padding.Top)
	area := canvas.Rect{Right: inner.Width, Bottom: inner.Height}.Square()
	if ch.Center != nil {
		ch.Center.Draw(oc, ch.Data, ch.Decoration, area)
	}
	if err := p.advance(eventLabelsDrawn, nil); err != nil {
		return err
	}

	ch.Foreground.Draw(oc, ch.Data, ch.Decoration, area)
	if err := p.advance(eventPlotDrawn, nil); err != nil {
		return err
	}

	if !ch.hasLegend() {
		return p.advance(eventLegendDrawn, true)
	}
	ch.Legend.Draw(oc, ch.Data, ch.Decoration, canvas.Point{Y: inner.Height + LegendHeight - 6})
	return p.advance(eventLegendDrawn, false)
}
