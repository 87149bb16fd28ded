package chart

import "image/color"

// LinearDecoration colors a line, gradient or bar chart. Primary[i]
// belongs to series i, Secondary[i] is its gradient end.
type LinearDecoration struct {
	TextColor color.Color
	GridColor color.Color
	Primary   []color.Color
	Secondary []color.Color
}

func DefaultLinearDecoration() LinearDecoration {
	return LinearDecoration{
		TextColor: ColorText,
		GridColor: ColorGrid,
		Primary:   DefaultPalette(),
		Secondary: DefaultSecondaryPalette(),
	}
}

// secondary returns the gradient end for series i, or transparent when
// there is none.
func (d LinearDecoration) secondary(i int) color.Color {
	if i < len(d.Secondary) {
		return d.Secondary[i]
	}
	return transparent
}

// CircularDecoration colors a donut, ring or target chart. Colors[i]
// belongs to item i; for target charts that is the achieved arc first and
// the target track second.
type CircularDecoration struct {
	TextColor color.Color
	Colors    []color.Color
}

func DefaultCircularDecoration() CircularDecoration {
	return CircularDecoration{
		TextColor: ColorText,
		Colors:    DefaultPalette(),
	}
}

// DefaultTargetDecoration pairs the first palette color with a light
// track.
func DefaultTargetDecoration() CircularDecoration {
	return CircularDecoration{
		TextColor: ColorText,
		Colors:    []color.Color{ColorPurple, ColorTrack},
	}
}

var transparent color.Color = ColorTransparent
