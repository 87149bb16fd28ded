package layout

import (
	"errors"
	"fmt"

	"github.com/susji/lilchart/canvas"
)

const (
	DefaultNumOfYLabels = 5

	// XAxisOffset is the gap between the Y label column and the first
	// X position.
	XAxisOffset = 48.0
	// YLabelBaselineOffset moves Y label text below its gridline.
	YLabelBaselineOffset = 12.0
	// YLabelX is the fixed left overhang of the Y label column. Hosts
	// are expected to pad the canvas so that it becomes visible.
	YLabelX = -24.0
	// LabelTextSize is the text size used for measuring axis labels.
	LabelTextSize = 12.0
)

var (
	ErrTooFewYLabels = errors.New("numeric y-axis needs at least two labels")
	ErrNoXAxisLabels = errors.New("no x-axis labels")
)

type Size struct {
	Width, Height float64
}

// LinearData is the dataset of a line, gradient or bar chart together with
// the state derived from it during a layout pass.
type LinearData struct {
	Series      []*Series
	XAxisLabels []*Coordinate[string]

	// YCategories, when non-empty, replaces the numeric Y-axis with these
	// labels from top to bottom. Series values are then category indices
	// counted from the bottom.
	YCategories []string
	// NumOfYLabels is the tick count of a numeric Y-axis. Zero means
	// DefaultNumOfYLabels.
	NumOfYLabels int
	// Format renders numeric tick values. Nil means PlainTicks.
	Format TickFormatter

	// Everything below is written by DoCalculations.
	YAxisLabels      []*Coordinate[Tick]
	MaxYLabel        float64
	MinYLabel        float64
	YLabelDifference float64
	XScale, YScale   float64
	YLabelMaxWidth   float64
	Size             Size
}

func NewLinearData(xLabels []string, series ...*Series) *LinearData {
	return &LinearData{
		Series:       series,
		XAxisLabels:  NewXAxis(xLabels...),
		NumOfYLabels: DefaultNumOfYLabels,
	}
}

func NewXAxis(labels ...string) []*Coordinate[string] {
	ret := make([]*Coordinate[string], len(labels))
	for i, l := range labels {
		ret[i] = NewCoordinate(l)
	}
	return ret
}

// MaxSeriesSize is the length of the longest series, which is also the
// minimum number of X-axis labels the data needs.
func (d *LinearData) MaxSeriesSize() int {
	n := 0
	for _, s := range d.Series {
		if s.Size() > n {
			n = s.Size()
		}
	}
	return n
}

func (d *LinearData) IsCategoryAxis() bool {
	return len(d.YCategories) > 0
}

func (d *LinearData) numOfYLabels() int {
	if d.IsCategoryAxis() {
		return len(d.YCategories)
	}
	if d.NumOfYLabels == 0 {
		return DefaultNumOfYLabels
	}
	return d.NumOfYLabels
}

// Validate reports configuration the engine cannot lay out. It does not
// compare series lengths with the X-axis; that is up to the caller.
func (d *LinearData) Validate() error {
	if len(d.XAxisLabels) == 0 {
		return ErrNoXAxisLabels
	}
	if !d.IsCategoryAxis() && d.numOfYLabels() < 2 {
		return fmt.Errorf("%w, got %d", ErrTooFewYLabels, d.numOfYLabels())
	}
	for _, s := range d.Series {
		if err := s.validate(); err != nil {
			return err
		}
	}
	return nil
}

// GridY is the pixel Y of the gridline belonging to the Y label at index i.
// A value equal to that label's tick value is placed exactly here.
func (d *LinearData) GridY(i int) float64 {
	return d.YScale * float64(i)
}

// AxisY is the pixel Y of the lowest tick's gridline.
func (d *LinearData) AxisY() float64 {
	return d.GridY(len(d.YAxisLabels) - 1)
}

// PlotLeft is the pixel X of the first marker column.
func (d *LinearData) PlotLeft() float64 {
	return XAxisOffset + d.YLabelMaxWidth
}

// DoCalculations runs one layout pass for the given canvas size: it picks
// the Y-axis ticks, computes the scales and positions every marker and
// axis label. Text widths come from m. Nothing is modified when the data
// does not validate.
func (d *LinearData) DoCalculations(size Size, m canvas.TextMeasurer) error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.Size = size
	d.calculateYTicks()

	n := len(d.YAxisLabels)
	d.YScale = size.Height / float64(n)

	// The X origin has to clear the widest Y label, so the labels are
	// measured before anything is placed horizontally.
	d.YLabelMaxWidth = 0
	for i, l := range d.YAxisLabels {
		l.place(YLabelX, d.GridY(i)+YLabelBaselineOffset)
		if w := m.MeasureText(l.Value().Text, LabelTextSize); w > d.YLabelMaxWidth {
			d.YLabelMaxWidth = w
		}
	}

	d.XScale = (size.Width - d.YLabelMaxWidth) / float64(len(d.XAxisLabels))

	for _, s := range d.Series {
		for i, p := range s.Markers {
			p.place(
				d.PlotLeft()+float64(i)*d.XScale,
				(d.MaxYLabel-p.Value())*d.YScale/d.YLabelDifference)
		}
	}
	for i, l := range d.XAxisLabels {
		l.place(float64(i)*d.XScale+d.PlotLeft(), size.Height)
	}
	return nil
}

func (d *LinearData) calculateYTicks() {
	if d.IsCategoryAxis() {
		n := len(d.YCategories)
		d.NumOfYLabels = n
		d.MinYLabel = 0
		d.MaxYLabel = float64(n - 1)
		d.YLabelDifference = 1
		d.YAxisLabels = make([]*Coordinate[Tick], n)
		for i, text := range d.YCategories {
			d.YAxisLabels[i] = NewCoordinate(Tick{
				Value: d.MaxYLabel - float64(i),
				Text:  text,
			})
		}
		return
	}

	n := d.numOfYLabels()
	step := n - 1
	yMax, yMin := d.valueRange()

	// Ticks are whole numbers: the bounds are truncated before rounding
	// them out to a multiple of the tick count.
	maxY := roundUp(int(yMax), step)
	minY := roundDown(int(yMin), step)
	if maxY == minY {
		maxY += step
	}

	d.NumOfYLabels = n
	d.MaxYLabel = float64(maxY)
	d.MinYLabel = float64(minY)
	d.YLabelDifference = float64((maxY - minY) / step)

	format := d.Format
	if format == nil {
		format = PlainTicks
	}
	d.YAxisLabels = make([]*Coordinate[Tick], n)
	for i := 0; i < n; i++ {
		v := d.MaxYLabel - float64(i)*d.YLabelDifference
		d.YAxisLabels[i] = NewCoordinate(Tick{Value: v, Text: format(v)})
	}
}

func (d *LinearData) valueRange() (yMax, yMin float64) {
	for i, s := range d.Series {
		if i == 0 || s.Max > yMax {
			yMax = s.Max
		}
		if i == 0 || s.Min < yMin {
			yMin = s.Min
		}
	}
	return yMax, yMin
}

// roundUp returns the smallest multiple of step that is >= v.
func roundUp(v, step int) int {
	r := v % step
	switch {
	case r == 0:
		return v
	case r > 0:
		return v + step - r
	default:
		return v - r
	}
}

// roundDown returns the largest multiple of step that is <= v.
func roundDown(v, step int) int {
	r := v % step
	switch {
	case r == 0:
		return v
	case r > 0:
		return v - r
	default:
		return v - step - r
	}
}
