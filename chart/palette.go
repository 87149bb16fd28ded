package chart

import "image/color"

var (
	ColorText        = color.RGBA{60, 60, 67, 255}
	ColorGrid        = color.RGBA{200, 200, 205, 255}
	ColorTrack       = color.RGBA{230, 230, 235, 255}
	ColorPurple      = color.RGBA{103, 80, 164, 255}
	ColorLavender    = color.RGBA{208, 188, 255, 255}
	ColorTeal        = color.RGBA{0, 150, 136, 255}
	ColorMint        = color.RGBA{178, 223, 219, 255}
	ColorOrange      = color.RGBA{255, 152, 0, 255}
	ColorPeach       = color.RGBA{255, 224, 178, 255}
	ColorPink        = color.RGBA{233, 30, 99, 255}
	ColorRose        = color.RGBA{248, 187, 208, 255}
	ColorBlue        = color.RGBA{33, 150, 243, 255}
	ColorSky         = color.RGBA{187, 222, 251, 255}
	ColorBG          = color.RGBA{255, 255, 255, 255}
	ColorTransparent = color.RGBA{}
)

// DefaultPalette returns the strong colors, one per series or slice.
func DefaultPalette() []color.Color {
	return []color.Color{ColorPurple, ColorTeal, ColorOrange, ColorPink, ColorBlue}
}

// DefaultSecondaryPalette returns the light counterparts of
// DefaultPalette, used as gradient ends.
func DefaultSecondaryPalette() []color.Color {
	return []color.Color{ColorLavender, ColorMint, ColorPeach, ColorRose, ColorSky}
}
