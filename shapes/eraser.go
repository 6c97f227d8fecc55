package shapes

import "github.com/gogpu/handanim"

// Eraser sweeps a wide flat stroke back and forth over the union
// bounding box of its targets. Drawn in the background color and
// sketched over the targets, it reads as rubbing them out; pair it with
// a fade-out of the targets to remove them for good.
type Eraser struct {
	handanim.Base
	Targets []handanim.Drawable
}

// NewEraser creates an eraser covering the given drawables. The stroke
// defaults to white.
func NewEraser(targets ...handanim.Drawable) *Eraser {
	e := &Eraser{Base: handanim.NewBase(), Targets: targets}
	e.Stroke.Color = handanim.Color{R: 1, G: 1, B: 1}
	return e
}

// Draw implements handanim.Drawable. The pen is ten times the stroke
// width, giving a pastel-blend wipe; rows are spaced one pen width
// apart so consecutive sweeps overlap.
func (e *Eraser) Draw() *handanim.OpSet {
	pen := e.Stroke.Pen()
	pen.Width = e.Stroke.Width * 10
	out := handanim.NewOpSet(handanim.SetPen(pen))
	if len(e.Targets) == 0 {
		return out
	}

	bbox := e.Targets[0].Draw().BoundingBox()
	for _, t := range e.Targets[1:] {
		bbox = bbox.Union(t.Draw().BoundingBox())
	}

	spacing := pen.Width
	if spacing <= 0 {
		spacing = 10
	}
	y := bbox.Min.Y
	out.Add(handanim.MoveTo(handanim.Pt(bbox.Min.X, y)))
	for y <= bbox.Max.Y {
		out.Add(handanim.LineTo(handanim.Pt(bbox.Max.X, y)))
		y += spacing
		if y <= bbox.Max.Y {
			out.Add(handanim.LineTo(handanim.Pt(bbox.Min.X, y)))
		}
	}
	return out
}
