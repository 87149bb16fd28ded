package canvas

import (
	"image/color"
)

// Brush paints a solid color or, when To is set, a vertical gradient from
// From at StartY to To at EndY.
type Brush struct {
	From, To     color.Color
	StartY, EndY float64
}

func Solid(c color.Color) Brush {
	return Brush{From: c}
}

func VerticalGradient(from, to color.Color, startY, endY float64) Brush {
	if startY > endY {
		from, to = to, from
		startY, endY = endY, startY
	}
	return Brush{From: from, To: to, StartY: startY, EndY: endY}
}

func (b Brush) IsGradient() bool {
	return b.To != nil
}

// At returns the brush color at pixel row y.
func (b Brush) At(y float64) color.Color {
	if !b.IsGradient() || b.EndY <= b.StartY {
		return b.From
	}
	t := (y - b.StartY) / (b.EndY - b.StartY)
	switch {
	case t <= 0:
		return b.From
	case t >= 1:
		return b.To
	}
	return lerp(b.From, b.To, t)
}

func lerp(a, b color.Color, t float64) color.Color {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	mix := func(x, y uint32) uint16 {
		return uint16(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA64{R: mix(ar, br), G: mix(ag, bg), B: mix(ab, bb), A: mix(aa, ba)}
}

// WithAlpha returns c with its opacity scaled by a in [0, 1].
func WithAlpha(c color.Color, a float64) color.Color {
	r, g, b, al := c.RGBA()
	scale := func(x uint32) uint16 {
		return uint16(float64(x) * a)
	}
	return color.RGBA64{R: scale(r), G: scale(g), B: scale(b), A: scale(al)}
}
