// Package render rasterizes per-frame drawing operations onto a
// github.com/gogpu/gg context. It is the bridge between the scheduler's
// OpSet output and pixels: pen changes flush the pending path, partial
// terminal segments are cut exactly (linear interpolation for lines, De
// Casteljau subdivision for curves), and dots become filled circles.
package render

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/handanim"
)

// Renderer rasterizes OpSets at a fixed canvas size and background.
type Renderer struct {
	width, height int
	background    handanim.Color
}

// NewRenderer creates a renderer with the given canvas size and
// background color.
func NewRenderer(width, height int, background handanim.Color) *Renderer {
	return &Renderer{width: width, height: height, background: background}
}

// NewForScene creates a renderer matching the scene's canvas.
func NewForScene(s *handanim.Scene) *Renderer {
	return &Renderer{width: s.Width, height: s.Height, background: s.Background}
}

// Frame rasterizes one frame's operations onto a fresh context.
func (r *Renderer) Frame(ops *handanim.OpSet) (*gg.Context, error) {
	dc := gg.NewContext(r.width, r.height)
	bg := r.background
	dc.ClearWithColor(gg.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 1})
	if err := r.Draw(dc, ops); err != nil {
		return nil, err
	}
	return dc, nil
}

// Snapshot renders the scene at time t and writes it as a PNG, for
// single-frame debugging.
func (r *Renderer) Snapshot(s *handanim.Scene, t float64, path string) error {
	ops, err := s.FrameAt(t)
	if err != nil {
		return err
	}
	dc, err := r.Frame(ops)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// Draw walks the operations onto the context. The pen starts as a black
// 1px stroke; every SET_PEN flushes the path built so far under the
// previous pen and installs the next one.
func (r *Renderer) Draw(dc *gg.Context, ops *handanim.OpSet) error {
	pen := handanim.DefaultStrokeStyle().Pen()
	applyPen(dc, pen)

	var cur, start handanim.Point
	hasPath := false

	flush := func() error {
		if !hasPath {
			return nil
		}
		hasPath = false
		if pen.Mode == handanim.PenFill {
			return dc.Fill()
		}
		return dc.Stroke()
	}

	for _, op := range ops.Ops() {
		switch op.Kind {
		case handanim.OpMoveTo:
			cur = op.Points[0]
			start = cur
			dc.MoveTo(cur.X, cur.Y)

		case handanim.OpLineTo:
			hasPath = true
			p := op.Points[0]
			if op.Partial < 1 {
				p = cur.Lerp(p, op.Partial)
			}
			dc.LineTo(p.X, p.Y)
			cur = op.Points[0]

		case handanim.OpCurveTo:
			hasPath = true
			b := handanim.CubicBez{P0: cur, P1: op.Points[0], P2: op.Points[1], P3: op.Points[2]}
			if op.Partial < 1 {
				b = b.Subsegment(0, op.Partial)
			}
			dc.CubicTo(b.P1.X, b.P1.Y, b.P2.X, b.P2.Y, b.P3.X, b.P3.Y)
			cur = op.Points[2]

		case handanim.OpQuadCurveTo:
			hasPath = true
			q := handanim.QuadBez{P0: cur, P1: op.Points[0], P2: op.Points[1]}
			if op.Partial < 1 {
				q = q.Subsegment(0, op.Partial)
			}
			dc.QuadraticTo(q.P1.X, q.P1.Y, q.P2.X, q.P2.Y)
			cur = op.Points[1]

		case handanim.OpClosePath:
			hasPath = true
			dc.ClosePath()
			cur = start

		case handanim.OpSetPen:
			if err := flush(); err != nil {
				return err
			}
			pen = op.Pen
			applyPen(dc, pen)

		case handanim.OpDot:
			if err := flush(); err != nil {
				return err
			}
			dc.SetRGBA(op.Dot.Color.R, op.Dot.Color.G, op.Dot.Color.B, op.Dot.Opacity)
			dc.DrawCircle(op.Dot.Center.X, op.Dot.Center.Y, op.Dot.Radius)
			if err := dc.Fill(); err != nil {
				return err
			}
			applyPen(dc, pen)

		case handanim.OpMetadata:
			// Carries tags only; draws nothing.

		default:
			return fmt.Errorf("%w: %v", handanim.ErrUnknownOpKind, op.Kind)
		}
	}
	return flush()
}

func applyPen(dc *gg.Context, pen handanim.PenStyle) {
	dc.SetRGBA(pen.Color.R, pen.Color.G, pen.Color.B, pen.Opacity)
	if pen.Width > 0 {
		dc.SetLineWidth(pen.Width)
	}
}
