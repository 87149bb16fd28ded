package canvas

import "image/color"

type offset struct {
	c      Canvas
	dx, dy float64
}

// Offset returns a Canvas that moves everything drawn on it by (dx, dy)
// before passing it on to c.
func Offset(c Canvas, dx, dy float64) Canvas {
	if o, ok := c.(*offset); ok {
		return &offset{c: o.c, dx: o.dx + dx, dy: o.dy + dy}
	}
	return &offset{c: c, dx: dx, dy: dy}
}

func (o *offset) pt(p Point) Point {
	return Point{X: p.X + o.dx, Y: p.Y + o.dy}
}

func (o *offset) rect(r Rect) Rect {
	return Rect{Left: r.Left + o.dx, Top: r.Top + o.dy, Right: r.Right + o.dx, Bottom: r.Bottom + o.dy}
}

func (o *offset) brush(b Brush) Brush {
	b.StartY += o.dy
	b.EndY += o.dy
	return b
}

func (o *offset) MeasureText(s string, size float64) float64 {
	return o.c.MeasureText(s, size)
}

func (o *offset) DrawArc(r Rect, startAngle, sweepAngle float64, clr color.Color, s Stroke) {
	o.c.DrawArc(o.rect(r), startAngle, sweepAngle, clr, s)
}

func (o *offset) DrawPath(p *Path, b Brush, s *Stroke) {
	o.c.DrawPath(p.Translate(o.dx, o.dy), o.brush(b), s)
}

func (o *offset) DrawRoundRect(r Rect, radius float64, b Brush) {
	o.c.DrawRoundRect(o.rect(r), radius, o.brush(b))
}

func (o *offset) DrawCircle(center Point, radius float64, b Brush) {
	o.c.DrawCircle(o.pt(center), radius, o.brush(b))
}

func (o *offset) DrawLine(from, to Point, clr color.Color, s Stroke) {
	o.c.DrawLine(o.pt(from), o.pt(to), clr, s)
}

func (o *offset) DrawText(txt string, at Point, st TextStyle) {
	o.c.DrawText(txt, o.pt(at), st)
}
