package layout

import (
	"errors"
	"fmt"
	"math"
)

// MaxValue bounds the magnitude of every value the layout engines accept.
// Beyond it float64 no longer holds every whole number and tick rounding
// breaks down.
const MaxValue = 1 << 53

var (
	ErrEmptySeries = errors.New("series has no values")
	ErrValueRange  = errors.New("value out of range")
)

func checkValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxValue {
		return fmt.Errorf("%w: %v", ErrValueRange, v)
	}
	return nil
}

// Series is one named, ordered sequence of observations.
type Series struct {
	Title   string
	Markers []*Coordinate[float64]

	// Max and Min are taken from the values at construction. Markers are
	// not supposed to change afterwards.
	Max, Min float64
}

func NewSeries(title string, values ...float64) (*Series, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%q: %w", title, ErrEmptySeries)
	}
	s := &Series{
		Title:   title,
		Markers: make([]*Coordinate[float64], len(values)),
		Max:     values[0],
		Min:     values[0],
	}
	for i, v := range values {
		s.Markers[i] = NewCoordinate(v)
		if v > s.Max {
			s.Max = v
		}
		if v < s.Min {
			s.Min = v
		}
	}
	return s, nil
}

// MustSeries is like NewSeries but panics on an empty value list.
func MustSeries(title string, values ...float64) *Series {
	s, err := NewSeries(title, values...)
	if err != nil {
		panic(err)
	}
	return s
}

// validate checks the markers and the cached bounds of s. A Series built
// by hand may have either out of step with the other.
func (s *Series) validate() error {
	if s.Size() == 0 {
		return fmt.Errorf("%q: %w", s.Title, ErrEmptySeries)
	}
	for _, v := range []float64{s.Max, s.Min} {
		if err := checkValue(v); err != nil {
			return fmt.Errorf("%q: %w", s.Title, err)
		}
	}
	for i, m := range s.Markers {
		if err := checkValue(m.Value()); err != nil {
			return fmt.Errorf("%q[%d]: %w", s.Title, i, err)
		}
	}
	return nil
}

func (s *Series) Size() int {
	return len(s.Markers)
}

func (s *Series) Values() []float64 {
	ret := make([]float64, len(s.Markers))
	for i, m := range s.Markers {
		ret[i] = m.Value()
	}
	return ret
}
