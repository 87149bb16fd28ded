package canvas

import (
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

const (
	// DefaultGradientBands is how many solid bands approximate a gradient.
	DefaultGradientBands = 32

	curveSteps = 16
)

// VG draws on a gonum vg.Canvas. One pixel is one vg point. vg has its
// origin in the bottom left corner, so every Y is flipped on the way.
type VG struct {
	c    vg.Canvas
	w, h vg.Length

	// Bands is the number of solid bands a gradient fill is split into.
	Bands int
	Font  font.Font
}

func NewVG(c vg.CanvasSizer) *VG {
	w, h := c.Size()
	return &VG{
		c:     c,
		w:     w,
		h:     h,
		Bands: DefaultGradientBands,
		Font:  plot.DefaultFont,
	}
}

// Formatted is a VG canvas that can be written out as an image file.
type Formatted struct {
	*VG
	wt vg.CanvasWriterTo
}

// NewFormatted creates a canvas of the given pixel size. The format is
// one of the names registered with gonum, e.g. "svg" or "png".
func NewFormatted(width, height float64, format string) (*Formatted, error) {
	wt, err := draw.NewFormattedCanvas(vg.Length(width), vg.Length(height), format)
	if err != nil {
		return nil, err
	}
	return &Formatted{VG: NewVG(wt), wt: wt}, nil
}

func (f *Formatted) WriteTo(w io.Writer) (int64, error) {
	return f.wt.WriteTo(w)
}

func (v *VG) pt(p Point) vg.Point {
	return vg.Point{X: vg.Length(p.X), Y: v.h - vg.Length(p.Y)}
}

func (v *VG) face(size float64) font.Face {
	return font.DefaultCache.Lookup(v.Font, vg.Length(size))
}

func (v *VG) MeasureText(s string, size float64) float64 {
	f := v.face(size)
	return f.Width(s).Points()
}

func (v *VG) setStroke(clr color.Color, s Stroke) {
	v.c.SetColor(clr)
	v.c.SetLineWidth(vg.Length(s.Width))
	dashes := make([]vg.Length, len(s.Dashes))
	for i, d := range s.Dashes {
		dashes[i] = vg.Length(d)
	}
	v.c.SetLineDash(dashes, 0)
}

func polar(c vg.Point, r vg.Length, a float64) vg.Point {
	sin, cos := math.Sincos(a)
	return vg.Point{X: c.X + r*vg.Length(cos), Y: c.Y + r*vg.Length(sin)}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (v *VG) DrawArc(r Rect, startAngle, sweepAngle float64, clr color.Color, s Stroke) {
	if sweepAngle == 0 || s.Width <= 0 {
		return
	}
	c := v.pt(r.Center())
	rad := vg.Length(math.Min(r.Width(), r.Height()) / 2)
	// Clockwise with Y down is counter-clockwise with Y up.
	start := -radians(startAngle)
	sweep := -radians(sweepAngle)

	var p vg.Path
	p.Move(polar(c, rad, start))
	p.Arc(c, rad, start, sweep)

	v.c.Push()
	v.setStroke(clr, s)
	v.c.Stroke(p)
	v.c.Pop()

	if s.RoundCap && math.Abs(sweepAngle) < 360 {
		v.fillCircle(polar(c, rad, start), vg.Length(s.Width/2), clr)
		v.fillCircle(polar(c, rad, start+sweep), vg.Length(s.Width/2), clr)
	}
}

func (v *VG) path(p *Path) vg.Path {
	var ret vg.Path
	for _, s := range p.Segments {
		switch s.Op {
		case MoveOp:
			ret.Move(v.pt(s.End()))
		case LineOp:
			ret.Line(v.pt(s.End()))
		case CubicOp:
			ret.CubeTo(v.pt(s.Pts[0]), v.pt(s.Pts[1]), v.pt(s.Pts[2]))
		case CloseOp:
			ret.Close()
		}
	}
	return ret
}

func (v *VG) DrawPath(p *Path, b Brush, s *Stroke) {
	if s != nil {
		v.c.Push()
		v.setStroke(b.From, *s)
		v.c.Stroke(v.path(p))
		v.c.Pop()
		return
	}
	if b.IsGradient() && b.EndY > b.StartY {
		v.fillGradient(p, b)
		return
	}
	v.c.SetColor(b.From)
	v.c.Fill(v.path(p))
}

// fillGradient fills the flattened path band by band, each band clipped
// to its rows and painted with the brush color at its middle. Rows above
// and below the gradient take its end colors.
func (v *VG) fillGradient(p *Path, b Brush) {
	poly := p.Flatten(curveSteps)
	if len(poly) < 3 {
		return
	}
	pts := make([]vg.Point, len(poly))
	for i, pt := range poly {
		pts[i] = v.pt(pt)
	}

	bands := v.Bands
	if bands < 1 {
		bands = 1
	}
	step := (b.EndY - b.StartY) / float64(bands)
	for k := 0; k < bands; k++ {
		top := b.StartY + float64(k)*step
		bottom := top + step
		clr := b.At((top + bottom) / 2)
		if k == 0 {
			top = math.Min(top, 0)
		}
		if k == bands-1 {
			bottom = math.Max(bottom, v.h.Points())
		}
		band := draw.Canvas{
			Canvas: v.c,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: 0, Y: v.h - vg.Length(bottom)},
				Max: vg.Point{X: v.w, Y: v.h - vg.Length(top)},
			},
		}
		band.FillPolygon(clr, band.ClipPolygonY(pts))
	}
}

func (v *VG) DrawRoundRect(r Rect, radius float64, b Brush) {
	if r.Width() <= 0 || r.Height() <= 0 {
		return
	}
	v.DrawPath(RoundRectPath(r, radius), b, nil)
}

func (v *VG) fillCircle(c vg.Point, r vg.Length, clr color.Color) {
	var p vg.Path
	p.Move(polar(c, r, 0))
	p.Arc(c, r, 0, 2*math.Pi)
	p.Close()
	v.c.SetColor(clr)
	v.c.Fill(p)
}

func (v *VG) DrawCircle(center Point, radius float64, b Brush) {
	if radius <= 0 {
		return
	}
	v.fillCircle(v.pt(center), vg.Length(radius), b.At(center.Y))
}

func (v *VG) DrawLine(from, to Point, clr color.Color, s Stroke) {
	var p vg.Path
	p.Move(v.pt(from))
	p.Line(v.pt(to))
	v.c.Push()
	v.setStroke(clr, s)
	v.c.Stroke(p)
	v.c.Pop()
}

func (v *VG) DrawText(txt string, at Point, st TextStyle) {
	if st.Size <= 0 || txt == "" {
		return
	}
	f := v.face(st.Size)
	x := at.X
	switch st.Align {
	case AlignCenter:
		x -= f.Width(txt).Points() / 2
	case AlignRight:
		x -= f.Width(txt).Points()
	}
	v.c.SetColor(st.Color)
	v.c.FillString(f, v.pt(Point{X: x, Y: at.Y}), txt)
}

// Fill paints the whole canvas, typically as a background.
func (v *VG) Fill(clr color.Color) {
	var p vg.Path
	p.Move(vg.Point{})
	p.Line(vg.Point{X: v.w})
	p.Line(vg.Point{X: v.w, Y: v.h})
	p.Line(vg.Point{Y: v.h})
	p.Close()
	v.c.SetColor(clr)
	v.c.Fill(p)
}
