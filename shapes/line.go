package shapes

import (
	"fmt"

	"github.com/gogpu/handanim"
)

// Line is a hand-drawn straight segment.
type Line struct {
	handanim.Base
	Start, End handanim.Point
}

// NewLine creates a line from start to end.
func NewLine(start, end handanim.Point) *Line {
	return &Line{Base: handanim.NewBase(), Start: start, End: end}
}

// Draw implements handanim.Drawable.
func (l *Line) Draw() *handanim.OpSet {
	out := handanim.NewOpSet(handanim.SetPen(l.Stroke.Pen()))
	newSketcher(l.Sketch).strokedLine(out, l.Start, l.End)
	return out
}

// Polyline is an open path of consecutive hand-drawn segments.
type Polyline struct {
	handanim.Base
	Points []handanim.Point
}

// NewPolyline creates a path through the given points, in order.
func NewPolyline(points ...handanim.Point) (*Polyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("handanim: polyline needs at least 2 points, got %d", len(points))
	}
	return &Polyline{Base: handanim.NewBase(), Points: points}, nil
}

// Draw implements handanim.Drawable.
func (p *Polyline) Draw() *handanim.OpSet {
	out := handanim.NewOpSet(handanim.SetPen(p.Stroke.Pen()))
	newSketcher(p.Sketch).linearPath(out, p.Points, false)
	return out
}

// Polygon is a closed path of hand-drawn segments with an optional
// solid fill.
type Polygon struct {
	handanim.Base
	Points []handanim.Point
}

// NewPolygon creates a closed polygon over the given vertices.
func NewPolygon(points ...handanim.Point) (*Polygon, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("handanim: polygon needs at least 3 points, got %d", len(points))
	}
	return &Polygon{Base: handanim.NewBase(), Points: points}, nil
}

// Draw implements handanim.Drawable.
func (p *Polygon) Draw() *handanim.OpSet {
	out := handanim.NewOpSet()
	if p.Fill != nil {
		fillPath(out, p.Fill.Pen(), p.Points)
	}
	out.Add(handanim.SetPen(p.Stroke.Pen()))
	newSketcher(p.Sketch).linearPath(out, p.Points, true)
	return out
}

// fillPath appends a clean closed path under a fill pen. The fill goes
// first so the hand-drawn outline stays on top.
func fillPath(out *handanim.OpSet, pen handanim.PenStyle, points []handanim.Point) {
	out.Add(handanim.SetPen(pen))
	out.Add(handanim.MoveTo(points[0]))
	for _, p := range points[1:] {
		out.Add(handanim.LineTo(p))
	}
	out.Add(handanim.ClosePath())
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Polygon
	TopLeft       handanim.Point
	Width, Height float64
}

// NewRectangle creates a rectangle from its top-left corner and size.
func NewRectangle(topLeft handanim.Point, width, height float64) *Rectangle {
	x, y := topLeft.X, topLeft.Y
	return &Rectangle{
		Polygon: Polygon{
			Base: handanim.NewBase(),
			Points: []handanim.Point{
				handanim.Pt(x, y),
				handanim.Pt(x+width, y),
				handanim.Pt(x+width, y+height),
				handanim.Pt(x, y+height),
			},
		},
		TopLeft: topLeft,
		Width:   width,
		Height:  height,
	}
}

// NewSquare creates a square from its top-left corner and side length.
func NewSquare(topLeft handanim.Point, side float64) *Rectangle {
	return NewRectangle(topLeft, side, side)
}
