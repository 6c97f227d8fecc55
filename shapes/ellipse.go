package shapes

import "github.com/gogpu/handanim"

// Ellipse is a hand-drawn ellipse with an optional solid fill. The
// outline is a smooth curve fitted through points sampled around the
// ideal ellipse; with non-zero roughness the samples wander and the
// stroke is doubled.
type Ellipse struct {
	handanim.Base
	Center        handanim.Point
	Width, Height float64
}

// NewEllipse creates an ellipse from its center and full width/height.
func NewEllipse(center handanim.Point, width, height float64) *Ellipse {
	return &Ellipse{Base: handanim.NewBase(), Center: center, Width: width, Height: height}
}

// NewCircle creates a circle from its center and radius.
func NewCircle(center handanim.Point, radius float64) *Ellipse {
	return NewEllipse(center, 2*radius, 2*radius)
}

// Draw implements handanim.Drawable.
func (e *Ellipse) Draw() *handanim.OpSet {
	out := handanim.NewOpSet()
	sk := newSketcher(e.Sketch)
	rx, ry, increment := sk.ellipseParams(e.Width, e.Height)

	if e.Fill != nil {
		// Fill under the outline, from clean on-ellipse samples.
		clean := *sk
		clean.style.Roughness = 0
		fillPath(out, e.Fill.Pen(), clean.ellipsePoints(e.Center, e.Width/2, e.Height/2, increment, 0, 0))
	}

	out.Add(handanim.SetPen(e.Stroke.Pen()))
	overlap := increment + (0.1+sk.rng.Float64()*0.9)*sk.style.Roughness
	sk.curvePath(out, sk.ellipsePoints(e.Center, rx, ry, increment, 1, overlap))

	if !e.Sketch.DisableMultiStroke && e.Sketch.Roughness > 0 {
		sk.curvePath(out, sk.ellipsePoints(e.Center, rx, ry, increment, 1.5, 0))
	}
	return out
}
