package layout

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func weekly() *LinearData {
	return NewLinearData(weekdays, MustSeries("Steps", 6, 5, 4, 6, 7.5, 7, 6))
}

func TestLinearScenario(t *testing.T) {
	d := weekly()
	err := d.DoCalculations(Size{Width: 300, Height: 140}, fixedWidth{})
	assert(t, err == nil, "unexpected error:", err)

	assert(t, d.MaxYLabel == 8, "wrong max label:", d.MaxYLabel)
	assert(t, d.MinYLabel == 4, "wrong min label:", d.MinYLabel)
	assert(t, d.YLabelDifference == 1, "wrong difference:", d.YLabelDifference)
	assert(t, almost_equals(d.YScale, 28), "wrong y scale:", d.YScale)

	// Every Y label is a single digit at size 12.
	assert(t, almost_equals(d.YLabelMaxWidth, 7.2), "wrong label width:", d.YLabelMaxWidth)
	wantXScale := (300 - 7.2) / 7
	assert(t, almost_equals(d.XScale, wantXScale), "wrong x scale:", d.XScale)

	first := d.Series[0].Markers[0]
	assertf(t, almost_equals(first.X(), 55.2) && almost_equals(first.Y(), 56),
		"first point at (%f, %f)", first.X(), first.Y())

	peak := d.Series[0].Markers[4]
	assertf(t, almost_equals(peak.X(), 55.2+4*wantXScale) && almost_equals(peak.Y(), 14),
		"peak at (%f, %f)", peak.X(), peak.Y())

	wantTicks := []string{"8", "7", "6", "5", "4"}
	for i, l := range d.YAxisLabels {
		assertf(t, l.Value().Text == wantTicks[i], "tick %d is %q", i, l.Value().Text)
		assertf(t, l.X() == YLabelX && almost_equals(l.Y(), 28*float64(i)+12),
			"tick %d at (%f, %f)", i, l.X(), l.Y())
	}
	for i, l := range d.XAxisLabels {
		assertf(t, almost_equals(l.X(), float64(i)*wantXScale+55.2) && l.Y() == 140,
			"x label %d at (%f, %f)", i, l.X(), l.Y())
	}
}

func TestLinearTicks(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		n        int
		max, min float64
		diff     float64
	}{
		{"divisible", []float64{8, 4}, 5, 8, 4, 1},
		{"round_up", []float64{9, 0}, 5, 12, 0, 3},
		{"negative", []float64{5, -3}, 5, 8, -4, 3},
		{"flat", []float64{4, 4, 4}, 5, 8, 4, 1},
		{"zero", []float64{0, 0}, 3, 2, 0, 1},
		{"truncated", []float64{8.9, 0.5}, 5, 8, 0, 2},
		{"two_labels", []float64{3, 1}, 2, 3, 1, 2},
	}
	for n, test := range tests {
		t.Run(fmt.Sprintf("%d_%s", n, test.name), func(t *testing.T) {
			x := make([]string, len(test.values))
			d := NewLinearData(x, MustSeries(test.name, test.values...))
			d.NumOfYLabels = test.n
			err := d.DoCalculations(Size{Width: 200, Height: 100}, fixedWidth{})
			assert(t, err == nil, "unexpected error:", err)
			assertf(t, d.MaxYLabel == test.max, "max %f, wanted %f", d.MaxYLabel, test.max)
			assertf(t, d.MinYLabel == test.min, "min %f, wanted %f", d.MinYLabel, test.min)
			assertf(t, d.YLabelDifference == test.diff, "diff %f, wanted %f", d.YLabelDifference, test.diff)
			assert(t, len(d.YAxisLabels) == test.n, "wrong number of ticks:", len(d.YAxisLabels))
			for i := 0; i+1 < len(d.YAxisLabels); i++ {
				step := d.YAxisLabels[i].Value().Value - d.YAxisLabels[i+1].Value().Value
				assertf(t, step == d.YLabelDifference, "ticks %d and %d are %f apart", i, i+1, step)
			}
		})
	}
}

func TestLinearTickRoundTrip(t *testing.T) {
	d := NewLinearData([]string{"a", "b", "c", "d", "e"},
		MustSeries("a", 8, 7, 6, 5, 4),
		MustSeries("b", 4, 5, 6, 7, 8))
	err := d.DoCalculations(Size{Width: 300, Height: 140}, fixedWidth{})
	assert(t, err == nil, "unexpected error:", err)
	for _, s := range d.Series {
		for _, m := range s.Markers {
			for i, l := range d.YAxisLabels {
				if l.Value().Value != m.Value() {
					continue
				}
				assertf(t, almost_equals(m.Y(), d.GridY(i)),
					"%s: value %f at y=%f, its tick at %f", s.Title, m.Value(), m.Y(), d.GridY(i))
			}
		}
	}
	assert(t, almost_equals(d.AxisY(), 4*28), "wrong axis:", d.AxisY())
}

func TestLinearIdempotent(t *testing.T) {
	d := weekly()
	size := Size{Width: 300, Height: 140}
	assert(t, d.DoCalculations(size, fixedWidth{}) == nil, "first pass failed")
	var first [][2]float64
	for _, m := range d.Series[0].Markers {
		first = append(first, [2]float64{m.X(), m.Y()})
	}
	assert(t, d.DoCalculations(size, fixedWidth{}) == nil, "second pass failed")
	for i, m := range d.Series[0].Markers {
		assertf(t, m.X() == first[i][0] && m.Y() == first[i][1],
			"point %d moved from %v to (%f, %f)", i, first[i], m.X(), m.Y())
	}
	assert(t, len(d.YAxisLabels) == 5, "ticks accumulated:", len(d.YAxisLabels))
}

func TestLinearResize(t *testing.T) {
	d := weekly()
	assert(t, d.DoCalculations(Size{Width: 300, Height: 140}, fixedWidth{}) == nil, "first pass failed")
	assert(t, d.DoCalculations(Size{Width: 600, Height: 280}, fixedWidth{}) == nil, "second pass failed")
	first := d.Series[0].Markers[0]
	assertf(t, almost_equals(first.Y(), 112), "first point at y=%f after resize", first.Y())
}

func TestLinearCategoryAxis(t *testing.T) {
	d := NewLinearData([]string{"Mon", "Tue", "Wed"}, MustSeries("Mood", 0, 2, 1))
	d.YCategories = []string{"great", "ok", "bad"}
	size := Size{Width: 300, Height: 150}
	for pass := 0; pass < 2; pass++ {
		err := d.DoCalculations(size, fixedWidth{})
		assert(t, err == nil, "unexpected error:", err)
		assert(t, d.NumOfYLabels == 3, "wrong label count:", d.NumOfYLabels)
		assert(t, d.MaxYLabel == 2 && d.MinYLabel == 0, "wrong bounds:", d.MaxYLabel, d.MinYLabel)
		assert(t, d.YLabelDifference == 1, "wrong difference:", d.YLabelDifference)
		assert(t, d.YAxisLabels[0].Value().Text == "great", "wrong top label:", d.YAxisLabels[0].Value())

		ms := d.Series[0].Markers
		assertf(t, almost_equals(ms[0].Y(), 100), "bottom category at y=%f", ms[0].Y())
		assertf(t, almost_equals(ms[1].Y(), 0), "top category at y=%f", ms[1].Y())
		assertf(t, almost_equals(ms[2].Y(), 50), "middle category at y=%f", ms[2].Y())
	}
}

func TestLinearFormat(t *testing.T) {
	d := NewLinearData([]string{"a", "b"}, MustSeries("bytes", 0, 8192))
	d.Format = KibiTicks
	assert(t, d.DoCalculations(Size{Width: 300, Height: 100}, fixedWidth{}) == nil, "pass failed")
	assert(t, d.YAxisLabels[0].Value().Text == "8 Ki", "wrong top tick:", d.YAxisLabels[0].Value().Text)
	assert(t, d.YAxisLabels[4].Value().Text == "0", "wrong bottom tick:", d.YAxisLabels[4].Value().Text)
}

func TestLinearInvalid(t *testing.T) {
	d := weekly()
	d.NumOfYLabels = 1
	err := d.DoCalculations(Size{Width: 300, Height: 140}, fixedWidth{})
	assert(t, errors.Is(err, ErrTooFewYLabels), "wanted ErrTooFewYLabels, got", err)
	x, y := d.Series[0].Markers[0].Position()
	assert(t, x == 0 && y == 0, "position changed on invalid data:", x, y)
	assert(t, d.YAxisLabels == nil, "ticks generated on invalid data")

	d = NewLinearData(nil, MustSeries("a", 1))
	err = d.DoCalculations(Size{Width: 300, Height: 140}, fixedWidth{})
	assert(t, errors.Is(err, ErrNoXAxisLabels), "wanted ErrNoXAxisLabels, got", err)

	tests := []struct {
		name   string
		series *Series
		want   error
	}{
		{"nan", MustSeries("a", math.NaN(), 1), ErrValueRange},
		{"inf", MustSeries("a", 1, math.Inf(1)), ErrValueRange},
		{"negative_inf", MustSeries("a", math.Inf(-1), 1), ErrValueRange},
		{"huge", MustSeries("a", 1e19, 0), ErrValueRange},
		{"huge_negative", MustSeries("a", 0, -1e19), ErrValueRange},
		{"empty", &Series{Title: "a"}, ErrEmptySeries},
	}
	for n, test := range tests {
		t.Run(fmt.Sprintf("%d_%s", n, test.name), func(t *testing.T) {
			d := NewLinearData(weekdays, MustSeries("ok", 1, 2), test.series)
			err := d.DoCalculations(Size{Width: 300, Height: 140}, fixedWidth{})
			assertf(t, errors.Is(err, test.want), "wanted %v, got %v", test.want, err)
			assert(t, d.YAxisLabels == nil, "ticks generated on invalid data")
			assert(t, d.MaxYLabel == 0 && d.MinYLabel == 0, "bounds changed on invalid data")
			for _, m := range d.Series[0].Markers {
				x, y := m.Position()
				assert(t, x == 0 && y == 0, "position changed on invalid data:", x, y)
			}
		})
	}

	d = NewLinearData(weekdays, MustSeries("a", MaxValue, -MaxValue))
	err = d.DoCalculations(Size{Width: 300, Height: 140}, fixedWidth{})
	assert(t, err == nil, "largest values should lay out:", err)
	assert(t, d.YLabelDifference > 0, "difference is not positive:", d.YLabelDifference)
}

func TestMaxSeriesSize(t *testing.T) {
	d := NewLinearData(weekdays,
		MustSeries("a", 1, 2, 3),
		MustSeries("b", 1, 2, 3, 4, 5),
		MustSeries("c", 1))
	assert(t, d.MaxSeriesSize() == 5, "wrong max series size:", d.MaxSeriesSize())
}
