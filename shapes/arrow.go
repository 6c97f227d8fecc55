package shapes

import (
	"math"

	"github.com/gogpu/handanim"
)

// HeadStyle selects the arrowhead variant.
type HeadStyle uint8

const (
	// HeadSimple is a plain two-stroke open head.
	HeadSimple HeadStyle = iota
	// HeadDouble draws a second head behind the first.
	HeadDouble
	// HeadClosed draws a second head flush with the tip.
	HeadClosed
)

// Arrow is a hand-drawn straight arrow from Start to End.
type Arrow struct {
	handanim.Base
	Start, End handanim.Point
	Head       HeadStyle
	// HeadSize is the arrowhead stroke length in canvas units.
	HeadSize float64
	// HeadAngle is the half-opening angle of the head in degrees.
	HeadAngle float64
}

// NewArrow creates an arrow with the default head.
func NewArrow(start, end handanim.Point) *Arrow {
	return &Arrow{
		Base:      handanim.NewBase(),
		Start:     start,
		End:       end,
		Head:      HeadSimple,
		HeadSize:  10,
		HeadAngle: 45,
	}
}

// Draw implements handanim.Drawable. The arrow is drawn horizontally
// from the origin, then rotated and translated into place, so the head
// geometry is independent of the arrow's direction.
func (a *Arrow) Draw() *handanim.OpSet {
	d := a.End.Sub(a.Start)
	length := d.Length()
	angle := math.Atan2(d.Y, d.X)
	headAngle := a.HeadAngle * math.Pi / 180

	out := handanim.NewOpSet(handanim.SetPen(a.Stroke.Pen()))
	sk := newSketcher(a.Sketch)

	sk.strokedLine(out, handanim.Pt(0, 0), handanim.Pt(length, 0))
	a.drawHead(out, sk, length, headAngle, 0)

	switch a.Head {
	case HeadDouble:
		a.drawHead(out, sk, length-a.HeadSize/2, headAngle, 0)
	case HeadClosed:
		// Barbs start half a head back but still meet the tip.
		a.drawHead(out, sk, length, headAngle, a.HeadSize/2)
	}

	out.RotateAbout(angle, handanim.Pt(0, 0))
	out.Translate(a.Start.X, a.Start.Y)
	return out
}

// drawHead appends one open arrowhead whose tip sits at (tip, 0); back
// shifts the barb roots toward the tail.
func (a *Arrow) drawHead(out *handanim.OpSet, sk *sketcher, tip, headAngle, back float64) {
	dx := math.Cos(headAngle) * a.HeadSize
	dy := math.Sin(headAngle) * a.HeadSize
	sk.linearPath(out, []handanim.Point{
		handanim.Pt(tip-back-dx, -dy),
		handanim.Pt(tip, 0),
		handanim.Pt(tip-back-dx, dy),
	}, false)
}
