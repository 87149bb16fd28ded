package chart

import (
	"errors"
	"fmt"
)

var (
	ErrDataMismatch       = errors.New("data mismatch")
	ErrDecorationMismatch = errors.New("decoration mismatch")
)

// DataMismatchError means there are fewer X-axis labels than the longest
// series has points.
type DataMismatchError struct {
	Labels   int
	Required int
}

func (e *DataMismatchError) Error() string {
	return fmt.Sprintf(
		"%v: %d x-axis labels for %d data points, %d missing",
		ErrDataMismatch, e.Labels, e.Required, e.Required-e.Labels)
}

func (e *DataMismatchError) Is(target error) bool {
	return target == ErrDataMismatch
}

// DecorationMismatchError means a color list is shorter than the data
// needs.
type DecorationMismatchError struct {
	What     string
	Colors   int
	Required int
}

func (e *DecorationMismatchError) Error() string {
	return fmt.Sprintf(
		"%v: %d %s for %d required, %d missing",
		ErrDecorationMismatch, e.Colors, e.What, e.Required, e.Required-e.Colors)
}

func (e *DecorationMismatchError) Is(target error) bool {
	return target == ErrDecorationMismatch
}
