package handanim

import (
	"math"
	"testing"
)

// penLines builds a pen setup followed by four unit line segments: the
// canonical shape for partial-progress tests (DrawingLen 5).
func penLines() *OpSet {
	return NewOpSet(
		SetPen(DefaultStrokeStyle().Pen()),
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 0)),
		LineTo(Pt(2, 0)),
		LineTo(Pt(3, 0)),
		LineTo(Pt(4, 0)),
	)
}

func countKind(s *OpSet, k OpKind) int {
	n := 0
	for _, op := range s.Ops() {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func TestOpSet_DrawingLen(t *testing.T) {
	s := penLines()
	if got := s.Len(); got != 6 {
		t.Errorf("Len = %d, want 6", got)
	}
	if got := s.DrawingLen(); got != 5 {
		t.Errorf("DrawingLen = %d, want 5", got)
	}

	s.Add(Metadata(map[string]any{"layer": "ink"}))
	if got := s.DrawingLen(); got != 5 {
		t.Errorf("DrawingLen after metadata = %d, want 5", got)
	}
}

func TestOpSet_Partial(t *testing.T) {
	// Pen + move + 4 lines: 5 drawing ops. Progress counts operations,
	// not arc length.
	src := penLines()

	tests := []struct {
		name        string
		p           float64
		wantLines   int
		wantPartial float64 // Partial of the terminal op, 0 if none expected
	}{
		{"zero", 0, 0, 0},
		{"negative", -0.5, 0, 0},
		{"two fifths", 0.4, 1, 0},  // 0.4*5 = 2: move + 1 line, no remainder
		{"half", 0.5, 1, 0.5},      // 0.5*5 = 2.5: move + 1 line + half line
		{"four fifths", 0.8, 3, 0}, // 0.8*5 = 4: move + 3 lines
		{"full", 1, 4, 0},
		{"overshoot", 1.5, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := src.Partial(tt.p)
			if tt.p <= 0 {
				if got.Len() != 0 {
					t.Fatalf("Partial(%v).Len = %d, want 0", tt.p, got.Len())
				}
				return
			}
			partials := 0
			lines := 0
			for _, op := range got.Ops() {
				if op.Kind == OpLineTo {
					if op.Partial < 1 {
						partials++
						if math.Abs(op.Partial-tt.wantPartial) > epsilon {
							t.Errorf("terminal Partial = %v, want %v", op.Partial, tt.wantPartial)
						}
					} else {
						lines++
					}
				}
			}
			if lines != tt.wantLines {
				t.Errorf("full lines = %d, want %d", lines, tt.wantLines)
			}
			if tt.wantPartial == 0 && partials != 0 {
				t.Errorf("unexpected partial op (Partial=%v)", tt.wantPartial)
			}
			if tt.wantPartial > 0 && partials != 1 {
				t.Errorf("partial ops = %d, want 1", partials)
			}
		})
	}
}

func TestOpSet_PartialCarriesSetupForward(t *testing.T) {
	// Setup ops between the last full op and the partial op must still be
	// emitted, or the partial segment renders with a stale pen.
	red := StrokeStyle{Color: Color{R: 1}, Opacity: 1, Width: 2}
	src := NewOpSet(
		SetPen(DefaultStrokeStyle().Pen()),
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 0)),
		SetPen(red.Pen()),
		LineTo(Pt(2, 0)),
	)
	// DrawingLen 3; p=0.9 -> 2 full ops + partial third, crossing the
	// second SetPen.
	got := src.Partial(0.9)
	if n := countKind(got, OpSetPen); n != 2 {
		t.Errorf("SetPen count = %d, want 2", n)
	}
	last := got.Ops()[got.Len()-1]
	if last.Kind != OpLineTo || last.Partial >= 1 {
		t.Errorf("terminal op = %v (Partial %v), want partial LineTo", last.Kind, last.Partial)
	}
}

func TestOpSet_PartialDoesNotMutateSource(t *testing.T) {
	src := penLines()
	before := src.Len()
	_ = src.Partial(0.3)
	if src.Len() != before {
		t.Fatalf("source mutated: Len %d -> %d", before, src.Len())
	}
	for _, op := range src.Ops() {
		if op.Partial != 1 {
			t.Fatalf("source op Partial mutated to %v", op.Partial)
		}
	}
}

func TestOpSet_Translate(t *testing.T) {
	s := penLines()
	s.Translate(10, -5)
	ops := s.Ops()
	if !pointsEqual(ops[1].Points[0], Pt(10, -5), epsilon) {
		t.Errorf("MoveTo translated to %v, want (10, -5)", ops[1].Points[0])
	}
	if !pointsEqual(ops[5].Points[0], Pt(14, -5), epsilon) {
		t.Errorf("last LineTo translated to %v, want (14, -5)", ops[5].Points[0])
	}
}

func TestOpSet_TranslateRoundTrip(t *testing.T) {
	s := penLines()
	want := s.Clone()
	s.Translate(13.5, -7.25)
	s.Translate(-13.5, 7.25)
	for i, op := range s.Ops() {
		for j, p := range op.Points {
			if !pointsEqual(p, want.Ops()[i].Points[j], epsilon) {
				t.Errorf("op %d point %d = %v, want %v", i, j, p, want.Ops()[i].Points[j])
			}
		}
	}
}

func TestOpSet_ScaleAboutCenter(t *testing.T) {
	// A 0..4 segment has center (2, 0); doubling keeps the center fixed.
	s := penLines()
	s.Scale(2, 2)
	if !pointsEqual(s.CenterOfGravity(), Pt(2, 0), epsilon) {
		t.Errorf("center moved to %v, want (2, 0)", s.CenterOfGravity())
	}
	bbox := s.BoundingBox()
	if math.Abs(bbox.Min.X-(-2)) > epsilon || math.Abs(bbox.Max.X-6) > epsilon {
		t.Errorf("scaled bbox X = [%v, %v], want [-2, 6]", bbox.Min.X, bbox.Max.X)
	}
}

func TestOpSet_Rotate(t *testing.T) {
	s := NewOpSet(MoveTo(Pt(0, 0)), LineTo(Pt(2, 0)))
	s.Rotate(math.Pi) // about center (1, 0)
	ops := s.Ops()
	if !pointsEqual(ops[0].Points[0], Pt(2, 0), epsilon) {
		t.Errorf("rotated start = %v, want (2, 0)", ops[0].Points[0])
	}
	if !pointsEqual(ops[1].Points[0], Pt(0, 0), epsilon) {
		t.Errorf("rotated end = %v, want (0, 0)", ops[1].Points[0])
	}
}

func TestOpSet_BoundingBoxCurveExtrema(t *testing.T) {
	// The arch's apex (y=7.5) lies between the endpoints; control points
	// at y=10 must not inflate the box.
	s := NewOpSet(
		MoveTo(Pt(0, 0)),
		CurveTo(Pt(0, 10), Pt(10, 10), Pt(10, 0)),
	)
	bbox := s.BoundingBox()
	if math.Abs(bbox.Max.Y-7.5) > epsilon {
		t.Errorf("bbox Max.Y = %v, want 7.5", bbox.Max.Y)
	}
}

func TestOpSet_BoundingBoxIgnoresStyleOps(t *testing.T) {
	s := NewOpSet(
		SetPen(DefaultStrokeStyle().Pen()),
		Dot(DotStyle{Center: Pt(100, 100), Radius: 3, Opacity: 1}),
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 1)),
	)
	bbox := s.BoundingBox()
	if bbox.Max.X > 1+epsilon || bbox.Max.Y > 1+epsilon {
		t.Errorf("bbox %v includes non-geometric ops", bbox)
	}
}

func TestOpSet_CurrentPoint(t *testing.T) {
	tests := []struct {
		name string
		ops  *OpSet
		want Point
	}{
		{
			"after lines",
			penLines(),
			Pt(4, 0),
		},
		{
			"partial line",
			func() *OpSet {
				s := NewOpSet(MoveTo(Pt(0, 0)))
				op := LineTo(Pt(10, 0))
				op.Partial = 0.25
				s.Add(op)
				return s
			}(),
			Pt(2.5, 0),
		},
		{
			"close returns to start",
			NewOpSet(MoveTo(Pt(3, 4)), LineTo(Pt(8, 9)), ClosePath()),
			Pt(3, 4),
		},
		{
			"partial cubic",
			func() *OpSet {
				s := NewOpSet(MoveTo(Pt(0, 0)))
				op := CurveTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))
				op.Partial = 0.5
				s.Add(op)
				return s
			}(),
			Pt(5, 7.5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ops.CurrentPoint(); !pointsEqual(got, tt.want, epsilon) {
				t.Errorf("CurrentPoint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpSet_CloneIsDeep(t *testing.T) {
	src := penLines()
	cp := src.Clone()
	cp.Translate(100, 100)
	if !pointsEqual(src.Ops()[1].Points[0], Pt(0, 0), epsilon) {
		t.Errorf("clone shares point storage with source")
	}
}

func TestOpSet_OwnedBy(t *testing.T) {
	a := NewOpSet(MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)))
	a.setOwner("a")
	b := NewOpSet(MoveTo(Pt(5, 5)), LineTo(Pt(6, 5)))
	b.setOwner("b")

	union := NewOpSet()
	union.Extend(a)
	union.Extend(b)

	onlyB := union.OwnedBy("b")
	if onlyB.Len() != 2 {
		t.Fatalf("OwnedBy(b).Len = %d, want 2", onlyB.Len())
	}
	if !pointsEqual(onlyB.Ops()[0].Points[0], Pt(5, 5), epsilon) {
		t.Errorf("filtered ops = %v, want b's geometry", onlyB.Ops()[0].Points[0])
	}
	if union.OwnedBy("nobody").Len() != 0 {
		t.Errorf("OwnedBy on unknown owner is non-empty")
	}
}

func TestOpKind_String(t *testing.T) {
	if got := OpCurveTo.String(); got != "CurveTo" {
		t.Errorf("OpCurveTo.String() = %q, want %q", got, "CurveTo")
	}
	if got := OpKind(200).String(); got != "Unknown" {
		t.Errorf("OpKind(200).String() = %q, want %q", got, "Unknown")
	}
}
