package shapes

import (
	"fmt"

	"github.com/gogpu/handanim"
)

// Curve is a hand-drawn smooth curve through a sequence of points.
type Curve struct {
	handanim.Base
	Points []handanim.Point
}

// NewCurve creates a curve through the given points, in order.
func NewCurve(points ...handanim.Point) (*Curve, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("handanim: curve needs at least 2 points, got %d", len(points))
	}
	return &Curve{Base: handanim.NewBase(), Points: points}, nil
}

// Draw implements handanim.Drawable.
func (c *Curve) Draw() *handanim.OpSet {
	out := handanim.NewOpSet(handanim.SetPen(c.Stroke.Pen()))
	newSketcher(c.Sketch).strokedCurve(out, c.Points)
	return out
}

// Bezier is a single cubic Bezier segment with hand-drawn jitter on its
// endpoints and control points.
type Bezier struct {
	handanim.Base
	P0, C1, C2, P1 handanim.Point
}

// NewBezier creates a cubic Bezier from p0 to p1 with control points c1
// and c2.
func NewBezier(p0, c1, c2, p1 handanim.Point) *Bezier {
	return &Bezier{Base: handanim.NewBase(), P0: p0, C1: c1, C2: c2, P1: p1}
}

// Draw implements handanim.Drawable.
func (b *Bezier) Draw() *handanim.OpSet {
	out := handanim.NewOpSet(handanim.SetPen(b.Stroke.Pen()))
	sk := newSketcher(b.Sketch)

	pass := func(scale float64) {
		j := func(p handanim.Point) handanim.Point {
			return p.Add(sk.jitter(sk.style.MaxRandomOffset * scale))
		}
		out.Add(handanim.MoveTo(j(b.P0)))
		out.Add(handanim.CurveTo(j(b.C1), j(b.C2), j(b.P1)))
	}
	pass(1)
	if !b.Sketch.DisableMultiStroke {
		pass(0.5)
	}
	return out
}
