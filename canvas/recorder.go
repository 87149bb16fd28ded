package canvas

import (
	"image/color"
	"unicode/utf8"
)

type OpKind string

const (
	OpArc       OpKind = "arc"
	OpPath      OpKind = "path"
	OpRoundRect OpKind = "roundrect"
	OpCircle    OpKind = "circle"
	OpLine      OpKind = "line"
	OpText      OpKind = "text"
)

// Op is one recorded drawing call. Only the fields relevant to Kind are
// set.
type Op struct {
	Kind OpKind

	Rect   Rect
	Points []Point
	Path   *Path
	Brush  Brush
	Stroke *Stroke
	Color  color.Color

	StartAngle, SweepAngle float64
	Radius                 float64

	Text  string
	Style TextStyle
}

// Recorder is a Canvas that draws nothing and remembers every call.
// Text is measured with a fixed advance per rune.
type Recorder struct {
	Ops []Op
	// Advance is the width of one rune at text size 1. Zero means 0.6.
	Advance float64
}

func (r *Recorder) MeasureText(s string, size float64) float64 {
	adv := r.Advance
	if adv == 0 {
		adv = 0.6
	}
	return float64(utf8.RuneCountInString(s)) * adv * size
}

func (r *Recorder) DrawArc(rect Rect, startAngle, sweepAngle float64, clr color.Color, s Stroke) {
	r.Ops = append(r.Ops, Op{
		Kind: OpArc, Rect: rect, StartAngle: startAngle, SweepAngle: sweepAngle,
		Color: clr, Stroke: &s,
	})
}

func (r *Recorder) DrawPath(p *Path, b Brush, s *Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpPath, Path: p.Clone(), Brush: b, Stroke: s})
}

func (r *Recorder) DrawRoundRect(rect Rect, radius float64, b Brush) {
	r.Ops = append(r.Ops, Op{Kind: OpRoundRect, Rect: rect, Radius: radius, Brush: b})
}

func (r *Recorder) DrawCircle(center Point, radius float64, b Brush) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Points: []Point{center}, Radius: radius, Brush: b})
}

func (r *Recorder) DrawLine(from, to Point, clr color.Color, s Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []Point{from, to}, Color: clr, Stroke: &s})
}

func (r *Recorder) DrawText(txt string, at Point, st TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Points: []Point{at}, Text: txt, Style: st})
}

// Filter returns the recorded ops of the given kind in drawing order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ret []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ret = append(ret, op)
		}
	}
	return ret
}

// Index returns the position of the first op of the given kind, or -1.
func (r *Recorder) Index(kind OpKind) int {
	for i, op := range r.Ops {
		if op.Kind == kind {
			return i
		}
	}
	return -1
}
