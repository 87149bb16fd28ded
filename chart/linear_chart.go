package chart

import (
	"fmt"
	"log/slog"

	"github.com/susji/lilchart/canvas"
	"github.com/susji/lilchart/layout"
)

// LinearChart is a line, gradient or bar chart. Any strategy left nil
// draws nothing.
type LinearChart struct {
	Name       string
	Data       *layout.LinearData
	Plot       Plot
	Labels     Labels
	Legend     Legend
	Decoration LinearDecoration
	Padding    Padding
	Logger     *slog.Logger
}

func newLinearChart(name string, d *layout.LinearData, p Plot) *LinearChart {
	return &LinearChart{
		Name:       name,
		Data:       d,
		Plot:       p,
		Labels:     AxisLabels{},
		Legend:     NoLegend{},
		Decoration: DefaultLinearDecoration(),
		Padding:    DefaultLinearPadding(),
	}
}

func NewLineChart(name string, d *layout.LinearData) *LinearChart {
	return newLinearChart(name, d, LinePlot{
		StrokeWidth:  DefaultStrokeWidth,
		MarkerRadius: DefaultMarkerRadius,
	})
}

func NewGradientChart(name string, d *layout.LinearData) *LinearChart {
	return newLinearChart(name, d, GradientPlot{StrokeWidth: DefaultStrokeWidth})
}

func NewBarChart(name string, d *layout.LinearData) *LinearChart {
	return newLinearChart(name, d, BarPlot{
		Width:        DefaultBarWidth,
		CornerRadius: DefaultBarRadius,
	})
}

func (ch *LinearChart) hasLegend() bool {
	switch ch.Legend.(type) {
	case nil, NoLegend, *NoLegend:
		return false
	}
	return true
}

func (ch *LinearChart) Render(c canvas.Canvas, size layout.Size) error {
	p, err := startPass(ch.Name, ch.Logger)
	if err != nil {
		return err
	}
	if ch.Data == nil || ch.Plot == nil {
		return p.fail(fmt.Errorf("%s: chart needs data and a plot", ch.Name))
	}
	if err := ValidateLinear(ch.Data, ch.Plot, ch.Decoration); err != nil {
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

	if err := ch.Data.DoCalculations(inner, c); err != nil {
		return p.fail(fmt.Errorf("%s: %w", ch.Name, err))
	}
	if err := p.advance(eventLaidOut, nil); err != nil {
		return err
	}

	oc := canvas.Offset(c, ch.Padding.Left, ch.Padding.Top)
	if ch.Labels != nil {
		ch.Labels.Draw(oc, ch.Data, ch.Decoration)
	}
	if err := p.advance(eventLabelsDrawn, nil); err != nil {
		return err
	}

	ch.Plot.Draw(oc, ch.Data, ch.Decoration)
	if err := p.advance(eventPlotDrawn, nil); err != nil {
		return err
	}

	if !ch.hasLegend() {
		return p.advance(eventLegendDrawn, true)
	}
	at := canvas.Point{X: layout.YLabelX, Y: inner.Height + LegendHeight - 6}
	ch.Legend.Draw(oc, ch.Data, ch.Decoration, at)
	return p.advance(eventLegendDrawn, false)
}
