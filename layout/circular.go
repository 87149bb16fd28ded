package layout

import (
	"errors"
	"fmt"
	"math"
)

const (
	FullCircle = 360.0
	// GapAngle is left empty after every slice of list data.
	GapAngle = 4.0
	// DefaultStartAngle is 12 o'clock, angles grow clockwise from 3 o'clock.
	DefaultStartAngle = 270.0
)

var ErrNegativeValue = errors.New("negative value")

type Item struct {
	Label string
	Value float64
}

// CircularData is the dataset of a donut, ring or target chart. After
// DoCalculations, SweepAngles holds the angular extent in degrees of
// every arc to draw.
type CircularData interface {
	Items() []Item
	Unit() string
	Validate() error
	DoCalculations()
	SweepAngles() []float64
}

// ListData divides the circle between an arbitrary number of categories.
type ListData struct {
	items  []Item
	unit   string
	sweeps []float64
}

func NewListData(unit string, items ...Item) *ListData {
	return &ListData{items: items, unit: unit}
}

func (d *ListData) Items() []Item {
	return d.items
}

func (d *ListData) Unit() string {
	return d.unit
}

func (d *ListData) SweepAngles() []float64 {
	return d.sweeps
}

func (d *ListData) Total() float64 {
	sum := 0.0
	for _, it := range d.items {
		sum += it.Value
	}
	return sum
}

func (d *ListData) Validate() error {
	for _, it := range d.items {
		if it.Value < 0 {
			return fmt.Errorf("%q: %w: %v", it.Label, ErrNegativeValue, it.Value)
		}
		if err := checkValue(it.Value); err != nil {
			return fmt.Errorf("%q: %w", it.Label, err)
		}
	}
	return nil
}

// DoCalculations splits 360 degrees minus one gap per item between the
// items proportionally to their values. When all values are zero every
// sweep is zero.
func (d *ListData) DoCalculations() {
	d.sweeps = make([]float64, len(d.items))
	sum := d.Total()
	if sum == 0 {
		return
	}
	available := FullCircle - GapAngle*float64(len(d.items))
	for i, it := range d.items {
		d.sweeps[i] = it.Value / sum * available
	}
}

// TargetData shows how far Achieved has come towards Target as a single
// arc.
type TargetData struct {
	Target, Achieved float64

	// AchievedLabel and TargetLabel name the two items.
	AchievedLabel, TargetLabel string

	unit       string
	percentage float64
	sweeps     []float64
}

func NewTargetData(target, achieved float64, unit string) *TargetData {
	return &TargetData{
		Target:        target,
		Achieved:      achieved,
		AchievedLabel: "Achieved",
		TargetLabel:   "Target",
		unit:          unit,
	}
}

// Items returns the achieved item first, then the target.
func (d *TargetData) Items() []Item {
	return []Item{
		{Label: d.AchievedLabel, Value: d.Achieved},
		{Label: d.TargetLabel, Value: d.Target},
	}
}

func (d *TargetData) Unit() string {
	return d.unit
}

func (d *TargetData) SweepAngles() []float64 {
	return d.sweeps
}

func (d *TargetData) Validate() error {
	return nil
}

// Percentage is Achieved/Target clamped to [0, 1], as of the last
// DoCalculations.
func (d *TargetData) Percentage() float64 {
	return d.percentage
}

func (d *TargetData) DoCalculations() {
	d.percentage = clampPercentage(d.Achieved / d.Target)
	d.sweeps = []float64{d.percentage * FullCircle}
}

func clampPercentage(p float64) float64 {
	switch {
	case math.IsNaN(p):
		return 0
	case p > 1:
		return 1
	case p < 0:
		return 0
	}
	return p
}
