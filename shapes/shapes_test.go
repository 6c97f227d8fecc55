package shapes

import (
	"math"
	"testing"

	"github.com/gogpu/handanim"
)

// clean disables all jitter so geometry is exact.
var clean = handanim.SketchStyle{}

func countKind(s *handanim.OpSet, k handanim.OpKind) int {
	n := 0
	for _, op := range s.Ops() {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func TestLine_DrawClean(t *testing.T) {
	l := NewLine(handanim.Pt(0, 0), handanim.Pt(10, 0))
	l.Sketch = clean

	ops := l.Draw().Ops()
	if ops[0].Kind != handanim.OpSetPen {
		t.Fatalf("first op = %v, want SetPen", ops[0].Kind)
	}
	// Doubled stroke: two move+curve passes.
	if len(ops) != 5 {
		t.Fatalf("op count = %d, want 5", len(ops))
	}
	for _, pass := range [][2]int{{1, 2}, {3, 4}} {
		start := ops[pass[0]].Points[0]
		end := ops[pass[1]].Points[2]
		if start.Distance(handanim.Pt(0, 0)) > 1e-9 {
			t.Errorf("pass start = %v, want (0, 0)", start)
		}
		if end.Distance(handanim.Pt(10, 0)) > 1e-9 {
			t.Errorf("pass end = %v, want (10, 0)", end)
		}
	}
}

func TestLine_DrawJitterBounded(t *testing.T) {
	l := NewLine(handanim.Pt(0, 0), handanim.Pt(100, 0))
	l.Sketch.Seed = 7

	bbox := l.Draw().BoundingBox()
	// Endpoint jitter is bounded by MaxRandomOffset and bowing is a few
	// units at this length; the stroke must stay near the ideal segment.
	if bbox.Min.X < -5 || bbox.Max.X > 105 || bbox.Min.Y < -10 || bbox.Max.Y > 10 {
		t.Errorf("jittered line strayed too far: bbox %v", bbox)
	}
}

func TestLine_SeededDrawIsDeterministic(t *testing.T) {
	mk := func() *handanim.OpSet {
		l := NewLine(handanim.Pt(0, 0), handanim.Pt(100, 50))
		l.Sketch.Seed = 42
		return l.Draw()
	}
	a, b := mk(), mk()
	if a.Len() != b.Len() {
		t.Fatalf("op counts differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Ops() {
		for j := range a.Ops()[i].Points {
			if a.Ops()[i].Points[j] != b.Ops()[i].Points[j] {
				t.Fatalf("op %d point %d differs: %v vs %v",
					i, j, a.Ops()[i].Points[j], b.Ops()[i].Points[j])
			}
		}
	}
}

func TestPolyline_Validation(t *testing.T) {
	if _, err := NewPolyline(handanim.Pt(0, 0)); err == nil {
		t.Error("single-point polyline accepted")
	}
	if _, err := NewPolyline(handanim.Pt(0, 0), handanim.Pt(1, 1)); err != nil {
		t.Errorf("two-point polyline rejected: %v", err)
	}
}

func TestPolygon_Validation(t *testing.T) {
	if _, err := NewPolygon(handanim.Pt(0, 0), handanim.Pt(1, 0)); err == nil {
		t.Error("two-point polygon accepted")
	}
	p, err := NewPolygon(handanim.Pt(0, 0), handanim.Pt(10, 0), handanim.Pt(5, 10))
	if err != nil {
		t.Fatalf("triangle rejected: %v", err)
	}
	p.Sketch = clean
	// Closed path: three sides, each a doubled stroke.
	if got := countKind(p.Draw(), handanim.OpCurveTo); got != 6 {
		t.Errorf("triangle curve count = %d, want 6", got)
	}
}

func TestPolygon_FillComesFirst(t *testing.T) {
	p, err := NewPolygon(handanim.Pt(0, 0), handanim.Pt(10, 0), handanim.Pt(5, 10))
	if err != nil {
		t.Fatal(err)
	}
	fill := handanim.DefaultFillStyle()
	p.Fill = &fill
	p.Sketch = clean

	ops := p.Draw().Ops()
	if ops[0].Kind != handanim.OpSetPen || ops[0].Pen.Mode != handanim.PenFill {
		t.Fatalf("first op = %v/%v, want fill SetPen", ops[0].Kind, ops[0].Pen.Mode)
	}
	if countKind(p.Draw(), handanim.OpClosePath) != 1 {
		t.Errorf("fill path not closed")
	}
}

func TestRectangle_DrawClean(t *testing.T) {
	r := NewRectangle(handanim.Pt(10, 20), 30, 40)
	r.Sketch = clean

	bbox := r.Draw().BoundingBox()
	want := handanim.NewRect(handanim.Pt(10, 20), handanim.Pt(40, 60))
	if bbox.Min.Distance(want.Min) > 1e-9 || bbox.Max.Distance(want.Max) > 1e-9 {
		t.Errorf("bbox = %v, want %v", bbox, want)
	}
}

func TestEllipse_DrawClean(t *testing.T) {
	e := NewEllipse(handanim.Pt(50, 50), 40, 20)
	e.Sketch = clean

	ops := e.Draw()
	if ops.Ops()[0].Kind != handanim.OpSetPen {
		t.Fatalf("first op = %v, want SetPen", ops.Ops()[0].Kind)
	}
	bbox := ops.BoundingBox()
	// Clean samples sit on the ellipse; the fitted curve may overshoot a
	// whisker past the ideal bounds.
	if bbox.Min.X < 30-1 || bbox.Max.X > 70+1 || bbox.Min.Y < 40-1 || bbox.Max.Y > 60+1 {
		t.Errorf("ellipse bbox = %v, want about [30,40]-[70,60]", bbox)
	}
	if bbox.Width() < 35 || bbox.Height() < 15 {
		t.Errorf("ellipse bbox = %v, too small for a 40x20 ellipse", bbox)
	}
}

func TestCircle_IsRoundEllipse(t *testing.T) {
	c := NewCircle(handanim.Pt(0, 0), 10)
	if c.Width != 20 || c.Height != 20 {
		t.Errorf("circle size = %vx%v, want 20x20", c.Width, c.Height)
	}
}

func TestCurve_Validation(t *testing.T) {
	if _, err := NewCurve(handanim.Pt(0, 0)); err == nil {
		t.Error("single-point curve accepted")
	}
	c, err := NewCurve(handanim.Pt(0, 0), handanim.Pt(10, 10), handanim.Pt(20, 0), handanim.Pt(30, 10))
	if err != nil {
		t.Fatal(err)
	}
	c.Sketch.Seed = 3
	ops := c.Draw()
	if countKind(ops, handanim.OpCurveTo) == 0 {
		t.Error("curve produced no curve segments")
	}
}

func TestBezier_DrawClean(t *testing.T) {
	b := NewBezier(handanim.Pt(0, 0), handanim.Pt(0, 10), handanim.Pt(10, 10), handanim.Pt(10, 0))
	b.Sketch = clean

	ops := b.Draw().Ops()
	// SetPen plus two identical move+curve passes.
	if len(ops) != 5 {
		t.Fatalf("op count = %d, want 5", len(ops))
	}
	if ops[2].Points[2].Distance(handanim.Pt(10, 0)) > 1e-9 {
		t.Errorf("curve endpoint = %v, want (10, 0)", ops[2].Points[2])
	}
}

func TestArrow_Draw(t *testing.T) {
	a := NewArrow(handanim.Pt(0, 0), handanim.Pt(0, 100))
	a.Sketch = clean

	ops := a.Draw()
	bbox := ops.BoundingBox()
	// A downward arrow: shaft along Y, head near the tip.
	if bbox.Max.Y < 99 || bbox.Min.Y > 1 {
		t.Errorf("arrow bbox = %v, want to span y 0..100", bbox)
	}
	if math.Abs(bbox.Min.X) > 20 || math.Abs(bbox.Max.X) > 20 {
		t.Errorf("arrow bbox = %v, too wide for a vertical arrow", bbox)
	}
	if countKind(ops, handanim.OpCurveTo) < 6 {
		t.Errorf("arrow has %d curve segments, want shaft plus two barbs doubled", countKind(ops, handanim.OpCurveTo))
	}
}

func TestDot_Draw(t *testing.T) {
	d := NewDot(handanim.Pt(5, 6), 3)
	ops := d.Draw().Ops()
	if len(ops) != 1 || ops[0].Kind != handanim.OpDot {
		t.Fatalf("ops = %v, want a single Dot", ops)
	}
	if ops[0].Dot.Center != handanim.Pt(5, 6) || ops[0].Dot.Radius != 3 {
		t.Errorf("dot = %+v, want center (5, 6) radius 3", ops[0].Dot)
	}
}

func TestGlowDot_Draw(t *testing.T) {
	g := NewGlowDot(handanim.Pt(1, 2))
	ops := g.Draw().Ops()
	if len(ops) != 1 || ops[0].Kind != handanim.OpDot {
		t.Fatalf("ops = %v, want a single Dot", ops)
	}
	if ops[0].Dot.Radius != handanim.DefaultGlowDotStyle().Radius {
		t.Errorf("glow radius = %v, want default", ops[0].Dot.Radius)
	}
}

func TestEraser_Draw(t *testing.T) {
	r1 := NewRectangle(handanim.Pt(0, 0), 30, 10)
	r1.Sketch = clean
	r2 := NewRectangle(handanim.Pt(50, 40), 10, 10)
	r2.Sketch = clean

	e := NewEraser(r1, r2)
	ops := e.Draw().Ops()

	pen := ops[0]
	if pen.Kind != handanim.OpSetPen {
		t.Fatalf("first op = %v, want SetPen", pen.Kind)
	}
	if pen.Pen.Color != (handanim.Color{R: 1, G: 1, B: 1}) {
		t.Errorf("eraser pen color = %+v, want white", pen.Pen.Color)
	}
	if pen.Pen.Width != 10 {
		t.Errorf("eraser pen width = %v, want 10x the stroke", pen.Pen.Width)
	}

	// The zigzag starts at the union's top-left and sweeps its full width.
	if ops[1].Kind != handanim.OpMoveTo || ops[1].Points[0].Distance(handanim.Pt(0, 0)) > 1e-9 {
		t.Errorf("zigzag start = %+v, want MoveTo (0, 0)", ops[1])
	}
	bbox := e.Draw().BoundingBox()
	want := handanim.NewRect(handanim.Pt(0, 0), handanim.Pt(60, 50))
	if bbox.Min.Distance(want.Min) > 1e-9 || bbox.Max.Distance(want.Max) > 1e-9 {
		t.Errorf("eraser bbox = %v, want the targets' union %v", bbox, want)
	}
}

func TestEraser_NoTargets(t *testing.T) {
	if got := NewEraser().Draw().Len(); got != 1 {
		t.Errorf("empty eraser produced %d ops, want just the pen", got)
	}
}

func TestText_Draw(t *testing.T) {
	txt := NewText("Hi", handanim.Pt(100, 200), 24)
	txt.Sketch = clean

	ops := txt.Draw()
	if ops.Ops()[0].Kind != handanim.OpSetPen {
		t.Fatalf("first op = %v, want SetPen", ops.Ops()[0].Kind)
	}
	if ops.DrawingLen() == 0 {
		t.Fatal("text produced no glyph geometry")
	}
	if countKind(ops, handanim.OpClosePath) == 0 {
		t.Error("glyph contours not closed")
	}
	bbox := ops.BoundingBox()
	if bbox.Min.X < 99 {
		t.Errorf("glyphs start at %v, want at or after the position x", bbox.Min.X)
	}
	if bbox.Max.X <= bbox.Min.X {
		t.Errorf("text bbox %v has no width", bbox)
	}
}

func TestText_EmptyContent(t *testing.T) {
	txt := NewText("", handanim.Pt(0, 0), 12)
	if got := txt.Draw().Len(); got != 1 {
		t.Errorf("empty text produced %d ops, want just the pen", got)
	}
}

func TestText_AdvancesBetweenGlyphs(t *testing.T) {
	one := NewText("l", handanim.Pt(0, 0), 24)
	one.Sketch = clean
	two := NewText("ll", handanim.Pt(0, 0), 24)
	two.Sketch = clean

	w1 := one.Draw().BoundingBox().Width()
	b2 := two.Draw().BoundingBox()
	if b2.Width() <= w1 {
		t.Errorf("two glyphs no wider than one: %v vs %v", b2.Width(), w1)
	}
}
