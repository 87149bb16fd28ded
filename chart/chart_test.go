package chart

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/susji/lilchart/canvas"
	"github.com/susji/lilchart/layout"
)

func assert(t *testing.T, cond bool, msg ...interface{}) {
	t.Helper()
	if cond {
		return
	}
	t.Error(msg...)
}

func assertf(t *testing.T, cond bool, format string, msg ...interface{}) {
	t.Helper()
	if cond {
		return
	}
	t.Errorf(format, msg...)
}

func almost_equals(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

var (
	weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	size     = layout.Size{Width: 300, Height: 140}
)

func threeSeries() *layout.LinearData {
	return layout.NewLinearData(weekdays,
		layout.MustSeries("Steps", 6, 5, 4, 6, 7.5, 7, 6),
		layout.MustSeries("Sleep", 7, 8, 6, 7, 7, 9, 8),
		layout.MustSeries("Coffee", 2, 3, 3, 1, 4, 0, 1))
}

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestDecorationMismatch(t *testing.T) {
	var buf bytes.Buffer
	ch := NewLineChart("three", threeSeries())
	ch.Decoration.Primary = []color.Color{ColorPurple, ColorTeal}
	ch.Logger = debugLogger(&buf)
	rec := &canvas.Recorder{}

	err := ch.Render(rec, size)
	assert(t, errors.Is(err, ErrDecorationMismatch), "wanted decoration mismatch, got", err)
	var dm *DecorationMismatchError
	assert(t, errors.As(err, &dm), "not a DecorationMismatchError:", err)
	assert(t, dm.Colors == 2 && dm.Required == 3, "wrong counts:", dm.Colors, dm.Required)
	assert(t, strings.Contains(err.Error(), "1 missing"), "missing count not in message:", err)
	assert(t, len(rec.Ops) == 0, "drew after failed validation:", len(rec.Ops))

	x, y := ch.Data.Series[0].Markers[0].Position()
	assert(t, x == 0 && y == 0, "positions computed after failed validation")
	assert(t, strings.Contains(buf.String(), "state=failed"), "pass did not fail:", buf.String())
	assert(t, !strings.Contains(buf.String(), "state=layout_computed"), "layout ran:", buf.String())
}

func TestDataMismatch(t *testing.T) {
	d := layout.NewLinearData(weekdays[:5], layout.MustSeries("Steps", 6, 5, 4, 6, 7.5, 7, 6))
	for _, ch := range []*LinearChart{
		NewLineChart("line", d),
		NewGradientChart("gradient", d),
		NewBarChart("bar", d),
	} {
		rec := &canvas.Recorder{}
		err := ch.Render(rec, size)
		assert(t, errors.Is(err, ErrDataMismatch), ch.Name, "wanted data mismatch, got", err)
		assert(t, strings.Contains(err.Error(), "2 missing"), ch.Name, "missing count not in message:", err)
		assert(t, len(rec.Ops) == 0, ch.Name, "drew after failed validation")
	}
}

func TestBarNeedsOneColor(t *testing.T) {
	ch := NewBarChart("bars", threeSeries())
	ch.Decoration.Primary = []color.Color{ColorOrange}
	ch.Decoration.Secondary = nil
	rec := &canvas.Recorder{}
	err := ch.Render(rec, size)
	assert(t, err == nil, "unexpected error:", err)
	bars := rec.Filter(canvas.OpRoundRect)
	assert(t, len(bars) == 21, "wrong number of bars:", len(bars))
	for _, b := range bars {
		assert(t, b.Brush.From == ColorOrange && !b.Brush.IsGradient(), "wrong bar brush:", b.Brush)
		assertf(t, almost_equals(b.Rect.Width(), DefaultBarWidth), "bar width %f", b.Rect.Width())
	}

	ch.Decoration.Primary = nil
	err = ch.Render(&canvas.Recorder{}, size)
	assert(t, errors.Is(err, ErrDecorationMismatch), "bar chart without colors accepted:", err)
}

func TestBarGeometry(t *testing.T) {
	d := layout.NewLinearData(weekdays[:3], layout.MustSeries("a", 8, 4, 6))
	ch := NewBarChart("bars", d)
	rec := &canvas.Recorder{}
	assert(t, ch.Render(rec, size) == nil, "render failed")

	pad := ch.Padding
	bottom := d.Size.Height - BarInset + pad.Top
	for i, b := range rec.Filter(canvas.OpRoundRect) {
		m := d.Series[0].Markers[i]
		assertf(t, almost_equals(b.Rect.Top, m.Y()+pad.Top), "bar %d top at %f", i, b.Rect.Top)
		assertf(t, almost_equals(b.Rect.Bottom, bottom), "bar %d bottom at %f", i, b.Rect.Bottom)
		assertf(t, almost_equals(b.Rect.Center().X, m.X()+pad.Left), "bar %d centered at %f", i, b.Rect.Center().X)
		assert(t, b.Radius == DefaultBarRadius, "wrong radius:", b.Radius)
	}
}

func TestRenderOrder(t *testing.T) {
	ch := NewLineChart("ordered", threeSeries())
	ch.Labels = AxisLabels{Gridlines: true}
	ch.Legend = SeriesLegend{}
	rec := &canvas.Recorder{}
	assert(t, ch.Render(rec, size) == nil, "render failed")

	firstPath := rec.Index(canvas.OpPath)
	assert(t, firstPath > 0, "no plot drawn")
	for i, op := range rec.Ops[:firstPath] {
		assertf(t, op.Kind == canvas.OpLine || op.Kind == canvas.OpText, "op %d before plot is %s", i, op.Kind)
	}
	lines := rec.Filter(canvas.OpLine)
	assert(t, len(lines) == 5, "wrong number of gridlines:", len(lines))
	assert(t, len(lines[0].Stroke.Dashes) > 0, "gridline not dashed")

	texts := rec.Filter(canvas.OpText)
	last := texts[len(texts)-3:]
	for i, s := range ch.Data.Series {
		assertf(t, last[i].Text == s.Title, "legend entry %d is %q", i, last[i].Text)
	}
	lastText := rec.Ops[len(rec.Ops)-1]
	assert(t, lastText.Kind == canvas.OpText && lastText.Text == "Coffee", "legend not drawn last:", lastText)
}

func TestLegendSkippedByDefault(t *testing.T) {
	var buf bytes.Buffer
	ch := NewLineChart("quiet", threeSeries())
	ch.Logger = debugLogger(&buf)
	rec := &canvas.Recorder{}
	assert(t, ch.Render(rec, size) == nil, "render failed")

	texts := rec.Filter(canvas.OpText)
	assert(t, len(texts) == 5+7, "wrong number of texts:", len(texts))
	assert(t, strings.Contains(buf.String(), "state=legend_drawn skipped=true"), "legend not skipped:", buf.String())
}

func TestLinePositions(t *testing.T) {
	d := layout.NewLinearData(weekdays, layout.MustSeries("Steps", 6, 5, 4, 6, 7.5, 7, 6))
	ch := NewLineChart("weekly", d)
	rec := &canvas.Recorder{}
	assert(t, ch.Render(rec, size) == nil, "render failed")

	pad := ch.Padding
	inner := layout.Size{Width: 300 - pad.Left - pad.Right, Height: 140 - pad.Top - pad.Bottom}
	assert(t, d.Size == inner, "layout ran for the wrong size:", d.Size)

	markers := rec.Filter(canvas.OpCircle)
	assert(t, len(markers) == 7, "wrong number of markers:", len(markers))
	for i, m := range d.Series[0].Markers {
		got := markers[i].Points[0]
		assertf(t, almost_equals(got.X, m.X()+pad.Left) && almost_equals(got.Y, m.Y()+pad.Top),
			"marker %d drawn at %v, laid out at (%f, %f)", i, got, m.X(), m.Y())
	}
}

func TestSplinePath(t *testing.T) {
	d := layout.NewLinearData(weekdays[:3], layout.MustSeries("a", 4, 8, 6))
	assert(t, d.DoCalculations(size, &canvas.Recorder{}) == nil, "layout failed")
	ms := d.Series[0].Markers
	p := splinePath(ms)
	assert(t, len(p.Segments) == 3, "wrong number of segments:", len(p.Segments))
	assert(t, p.Segments[0].Op == canvas.MoveOp, "path does not start with a move")
	for i := 1; i < len(ms); i++ {
		s := p.Segments[i]
		x1, y1 := ms[i-1].Position()
		x2, y2 := ms[i].Position()
		mid := (x1 + x2) / 2
		assert(t, s.Op == canvas.CubicOp, "segment is not cubic:", i)
		assertf(t, s.Pts[0] == canvas.Point{X: mid, Y: y1}, "segment %d first control %v", i, s.Pts[0])
		assertf(t, s.Pts[1] == canvas.Point{X: mid, Y: y2}, "segment %d second control %v", i, s.Pts[1])
		assertf(t, s.Pts[2] == canvas.Point{X: x2, Y: y2}, "segment %d ends at %v", i, s.Pts[2])
	}
}

func TestGradientFill(t *testing.T) {
	d := layout.NewLinearData(weekdays, layout.MustSeries("Steps", 6, 5, 4, 6, 7.5, 7, 6))
	ch := NewGradientChart("gradient", d)
	rec := &canvas.Recorder{}
	assert(t, ch.Render(rec, size) == nil, "render failed")

	paths := rec.Filter(canvas.OpPath)
	assert(t, len(paths) == 2, "wrong number of paths:", len(paths))
	fill, line := paths[0], paths[1]
	assert(t, fill.Stroke == nil && fill.Brush.IsGradient(), "fill is not a gradient fill")
	assert(t, line.Stroke != nil, "curve not stroked")
	assertf(t, almost_equals(fill.Brush.EndY, d.AxisY()+ch.Padding.Top), "gradient ends at %f", fill.Brush.EndY)
	segs := fill.Path.Segments
	assert(t, segs[len(segs)-1].Op == canvas.CloseOp, "fill not closed")
	base := segs[len(segs)-2].End()
	assertf(t, almost_equals(base.Y, d.AxisY()+ch.Padding.Top), "fill closes at y=%f", base.Y)

	ch.Plot = GradientPlot{StrokeWidth: 2, EmojiLabels: true}
	rec = &canvas.Recorder{}
	assert(t, ch.Render(rec, size) == nil, "render failed")
	segs = rec.Filter(canvas.OpPath)[0].Path.Segments
	base = segs[len(segs)-2].End()
	want := d.Size.Height - EmojiLabelHeight + ch.Padding.Top
	assertf(t, almost_equals(base.Y, want), "emoji fill closes at y=%f, wanted %f", base.Y, want)
}

func TestCanvasTooSmall(t *testing.T) {
	ch := NewLineChart("tiny", threeSeries())
	err := ch.Render(&canvas.Recorder{}, layout.Size{Width: 20, Height: 10})
	assert(t, errors.Is(err, ErrCanvasTooSmall), "wanted ErrCanvasTooSmall, got", err)
}

func TestInvalidSeries(t *testing.T) {
	tests := []struct {
		name   string
		series *layout.Series
		want   error
	}{
		{"empty", &layout.Series{Title: "empty"}, layout.ErrEmptySeries},
		{"nan", layout.MustSeries("nan", 1, math.NaN()), layout.ErrValueRange},
		{"inf", layout.MustSeries("inf", math.Inf(1), 1), layout.ErrValueRange},
	}
	for n, test := range tests {
		t.Run(fmt.Sprintf("%d_%s", n, test.name), func(t *testing.T) {
			d := layout.NewLinearData(weekdays, layout.MustSeries("Steps", 1, 2), test.series)
			for _, ch := range []*LinearChart{
				NewLineChart("line", d),
				NewGradientChart("gradient", d),
				NewBarChart("bar", d),
			} {
				rec := &canvas.Recorder{}
				err := ch.Render(rec, size)
				assertf(t, errors.Is(err, test.want), "%s: wanted %v, got %v", ch.Name, test.want, err)
				assertf(t, len(rec.Ops) == 0, "%s: drew %d ops", ch.Name, len(rec.Ops))
			}
		})
	}
}

func TestRenderTwice(t *testing.T) {
	ch := NewGradientChart("twice", threeSeries())
	a, b := &canvas.Recorder{}, &canvas.Recorder{}
	assert(t, ch.Render(a, size) == nil, "first render failed")
	assert(t, ch.Render(b, size) == nil, "second render failed")
	assert(t, len(a.Ops) == len(b.Ops), "different number of ops:", len(a.Ops), len(b.Ops))
	for i := range a.Ops {
		if a.Ops[i].Kind == canvas.OpText {
			assert(t, a.Ops[i].Points[0] == b.Ops[i].Points[0], "text moved between passes:", i)
		}
	}
}
