package canvas

import "math"

type PathOp int

const (
	MoveOp PathOp = iota
	LineOp
	CubicOp
	CloseOp
)

// Segment is one path element. Cubic segments carry the two control
// points before the end point in Pts.
type Segment struct {
	Op  PathOp
	Pts []Point
}

func (s Segment) End() Point {
	if len(s.Pts) == 0 {
		return Point{}
	}
	return s.Pts[len(s.Pts)-1]
}

type Path struct {
	Segments []Segment
}

func (p *Path) MoveTo(pt Point) {
	p.Segments = append(p.Segments, Segment{Op: MoveOp, Pts: []Point{pt}})
}

func (p *Path) LineTo(pt Point) {
	p.Segments = append(p.Segments, Segment{Op: LineOp, Pts: []Point{pt}})
}

func (p *Path) CubicTo(c1, c2, pt Point) {
	p.Segments = append(p.Segments, Segment{Op: CubicOp, Pts: []Point{c1, c2, pt}})
}

func (p *Path) Close() {
	p.Segments = append(p.Segments, Segment{Op: CloseOp})
}

func (p *Path) Clone() *Path {
	ret := &Path{Segments: make([]Segment, len(p.Segments))}
	for i, s := range p.Segments {
		ret.Segments[i] = Segment{Op: s.Op, Pts: append([]Point(nil), s.Pts...)}
	}
	return ret
}

// Translate returns a copy of p moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	ret := p.Clone()
	for _, s := range ret.Segments {
		for i := range s.Pts {
			s.Pts[i].X += dx
			s.Pts[i].Y += dy
		}
	}
	return ret
}

// Flatten approximates the first subpath of p with a polygon, sampling
// every cubic segment at the given number of steps.
func (p *Path) Flatten(steps int) []Point {
	var pts []Point
	var cur Point
	for i, s := range p.Segments {
		switch s.Op {
		case MoveOp:
			if i > 0 {
				return pts
			}
			cur = s.End()
			pts = append(pts, cur)
		case LineOp:
			cur = s.End()
			pts = append(pts, cur)
		case CubicOp:
			for k := 1; k <= steps; k++ {
				pts = append(pts, cubicAt(cur, s.Pts[0], s.Pts[1], s.Pts[2], float64(k)/float64(steps)))
			}
			cur = s.End()
		case CloseOp:
			return pts
		}
	}
	return pts
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// kappa places cubic control points so that a quarter circle is
// approximated within 0.03%.
var kappa = 4 * (math.Sqrt2 - 1) / 3

// RoundRectPath returns a closed path around r with corners of the given
// radius, clamped to half the shorter side.
func RoundRectPath(r Rect, radius float64) *Path {
	if m := math.Min(r.Width(), r.Height()) / 2; radius > m {
		radius = m
	}
	if radius < 0 {
		radius = 0
	}
	k := radius * kappa
	p := &Path{}
	p.MoveTo(Point{r.Left + radius, r.Top})
	p.LineTo(Point{r.Right - radius, r.Top})
	p.CubicTo(
		Point{r.Right - radius + k, r.Top},
		Point{r.Right, r.Top + radius - k},
		Point{r.Right, r.Top + radius})
	p.LineTo(Point{r.Right, r.Bottom - radius})
	p.CubicTo(
		Point{r.Right, r.Bottom - radius + k},
		Point{r.Right - radius + k, r.Bottom},
		Point{r.Right - radius, r.Bottom})
	p.LineTo(Point{r.Left + radius, r.Bottom})
	p.CubicTo(
		Point{r.Left + radius - k, r.Bottom},
		Point{r.Left, r.Bottom - radius + k},
		Point{r.Left, r.Bottom - radius})
	p.LineTo(Point{r.Left, r.Top + radius})
	p.CubicTo(
		Point{r.Left, r.Top + radius - k},
		Point{r.Left + radius - k, r.Top},
		Point{r.Left + radius, r.Top})
	p.Close()
	return p
}
