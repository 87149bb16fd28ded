package chart

import (
	"github.com/susji/lilchart/layout"
)

// ValidateLinear checks everything a linear render pass needs before it
// touches any position or draws anything.
func ValidateLinear(d *layout.LinearData, p Plot, dec LinearDecoration) error {
	if need := d.MaxSeriesSize(); len(d.XAxisLabels) < need {
		return &DataMismatchError{Labels: len(d.XAxisLabels), Required: need}
	}
	if need := p.RequiredColors(d); len(dec.Primary) < need {
		return &DecorationMismatchError{What: "primary colors", Colors: len(dec.Primary), Required: need}
	}
	return d.Validate()
}

// ValidateCircular is ValidateLinear for circular charts.
func ValidateCircular(d layout.CircularData, f Foreground, dec CircularDecoration) error {
	if need := f.RequiredColors(d); len(dec.Colors) < need {
		return &DecorationMismatchError{What: "colors", Colors: len(dec.Colors), Required: need}
	}
	return d.Validate()
}
