package handanim

// OpKind identifies the type of a drawing operation.
type OpKind uint8

const (
	// OpMoveTo starts a new subpath at a point.
	OpMoveTo OpKind = iota
	// OpLineTo draws a line segment to a point.
	OpLineTo
	// OpCurveTo draws a cubic Bezier segment (two controls, endpoint).
	OpCurveTo
	// OpQuadCurveTo draws a quadratic Bezier segment (control, endpoint).
	OpQuadCurveTo
	// OpClosePath closes the current subpath.
	OpClosePath
	// OpSetPen flushes the pending path and installs a new pen state.
	OpSetPen
	// OpDot draws a standalone filled marker dot.
	OpDot
	// OpMetadata carries free-form tags and draws nothing.
	OpMetadata
)

// opKindNames maps OpKind values to their string representation.
var opKindNames = [...]string{
	OpMoveTo:      "MoveTo",
	OpLineTo:      "LineTo",
	OpCurveTo:     "CurveTo",
	OpQuadCurveTo: "QuadCurveTo",
	OpClosePath:   "ClosePath",
	OpSetPen:      "SetPen",
	OpDot:         "Dot",
	OpMetadata:    "Metadata",
}

// String returns the string representation of an OpKind.
func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// IsGeometric reports whether the kind carries point geometry that
// transforms rewrite. Style and metadata kinds pass through transforms
// untouched.
func (k OpKind) IsGeometric() bool {
	return k <= OpClosePath
}

// IsSetup reports whether the kind is a setup operation. Setup
// operations are excluded from the partial-progress count: revealing a
// fraction of a drawable never withholds pen state.
func (k OpKind) IsSetup() bool {
	return k == OpSetPen || k == OpMetadata
}

// Op is a single drawing operation. Geometric kinds carry Points
// (control points last-to-endpoint order as produced by the
// constructors); OpSetPen carries Pen; OpDot carries Dot; OpMetadata
// carries Meta.
//
// Partial is the fraction of this single segment to render, in (0, 1].
// It is only meaningful on the terminal geometric operation of a
// rendered prefix. Construct ops through the constructors, which set
// Partial to 1.
//
// Owner tags the op with the drawable id it belongs to when operating on
// a group union; it is empty otherwise.
type Op struct {
	Kind    OpKind
	Points  []Point
	Pen     PenStyle
	Dot     DotStyle
	Meta    map[string]any
	Partial float64
	Owner   string
}

// MoveTo returns an op starting a new subpath at p.
func MoveTo(p Point) Op {
	return Op{Kind: OpMoveTo, Points: []Point{p}, Partial: 1}
}

// LineTo returns an op drawing a line segment to p.
func LineTo(p Point) Op {
	return Op{Kind: OpLineTo, Points: []Point{p}, Partial: 1}
}

// CurveTo returns an op drawing a cubic Bezier segment through control
// points c1, c2 to end.
func CurveTo(c1, c2, end Point) Op {
	return Op{Kind: OpCurveTo, Points: []Point{c1, c2, end}, Partial: 1}
}

// QuadCurveTo returns an op drawing a quadratic Bezier segment through
// control point c to end.
func QuadCurveTo(c, end Point) Op {
	return Op{Kind: OpQuadCurveTo, Points: []Point{c, end}, Partial: 1}
}

// ClosePath returns an op closing the current subpath.
func ClosePath() Op {
	return Op{Kind: OpClosePath, Partial: 1}
}

// SetPen returns an op installing a new pen state.
func SetPen(pen PenStyle) Op {
	return Op{Kind: OpSetPen, Pen: pen, Partial: 1}
}

// Dot returns an op drawing a standalone marker dot.
func Dot(dot DotStyle) Op {
	return Op{Kind: OpDot, Dot: dot, Partial: 1}
}

// Metadata returns a non-drawing op carrying free-form tags.
func Metadata(meta map[string]any) Op {
	return Op{Kind: OpMetadata, Meta: meta, Partial: 1}
}

// clone returns a deep copy of the op (points are copied; metadata maps
// are shared, they are treated as immutable once constructed).
func (o Op) clone() Op {
	c := o
	if o.Points != nil {
		c.Points = make([]Point, len(o.Points))
		copy(c.Points, o.Points)
	}
	return c
}

// OpSet is an ordered sequence of drawing operations: the intermediate
// representation exchanged between drawables, animation events and
// rendering backends.
type OpSet struct {
	ops []Op
}

// NewOpSet creates an OpSet from the given operations.
func NewOpSet(ops ...Op) *OpSet {
	return &OpSet{ops: ops}
}

// Add appends a single operation.
func (s *OpSet) Add(op Op) {
	s.ops = append(s.ops, op)
}

// Extend appends every operation of other. A nil other is a no-op.
func (s *OpSet) Extend(other *OpSet) {
	if other == nil {
		return
	}
	s.ops = append(s.ops, other.ops...)
}

// Len returns the number of operations.
func (s *OpSet) Len() int {
	return len(s.ops)
}

// Ops returns the backing operation slice. Callers must not modify it.
func (s *OpSet) Ops() []Op {
	return s.ops
}

// DrawingLen returns the number of non-setup operations: the denominator
// of partial-progress interpolation.
func (s *OpSet) DrawingLen() int {
	n := 0
	for _, op := range s.ops {
		if !op.Kind.IsSetup() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the set.
func (s *OpSet) Clone() *OpSet {
	ops := make([]Op, len(s.ops))
	for i, op := range s.ops {
		ops[i] = op.clone()
	}
	return &OpSet{ops: ops}
}

// Translate adds (dx, dy) to every point of every geometric operation.
// Style and metadata operations are untouched.
func (s *OpSet) Translate(dx, dy float64) {
	d := Pt(dx, dy)
	s.mapPoints(func(p Point) Point { return p.Add(d) })
}

// Scale scales all geometric points by (sx, sy) about the current center
// of gravity. The center is recomputed on every call: sequential scales
// compound on the content as it stands, not on a cached origin.
func (s *OpSet) Scale(sx, sy float64) {
	c := s.CenterOfGravity()
	s.mapPoints(func(p Point) Point {
		return Point{X: c.X + (p.X-c.X)*sx, Y: c.Y + (p.Y-c.Y)*sy}
	})
}

// Rotate rotates all geometric points by angle radians about the current
// center of gravity.
func (s *OpSet) Rotate(angle float64) {
	s.RotateAbout(angle, s.CenterOfGravity())
}

// RotateAbout rotates all geometric points by angle radians about center.
func (s *OpSet) RotateAbout(angle float64, center Point) {
	s.mapPoints(func(p Point) Point { return p.RotateAbout(angle, center) })
}

// mapPoints rewrites the point payloads of geometric operations in place.
func (s *OpSet) mapPoints(f func(Point) Point) {
	for i := range s.ops {
		if !s.ops[i].Kind.IsGeometric() {
			continue
		}
		pts := s.ops[i].Points
		for j := range pts {
			pts[j] = f(pts[j])
		}
	}
}

// BoundingBox returns the axis-aligned bounding box of all geometric
// operations. Curve segments contribute their analytic extrema, not just
// their control points. An OpSet without geometry returns the zero Rect.
func (s *OpSet) BoundingBox() Rect {
	var bbox Rect
	var cur, start Point
	seen := false

	include := func(r Rect) {
		if !seen {
			bbox = r
			seen = true
			return
		}
		bbox = bbox.Union(r)
	}

	for _, op := range s.ops {
		switch op.Kind {
		case OpMoveTo:
			cur = op.Points[0]
			start = cur
			include(NewRect(cur, cur))
		case OpLineTo:
			p := op.Points[0]
			include(NewRect(cur, p))
			cur = p
		case OpCurveTo:
			b := CubicBez{P0: cur, P1: op.Points[0], P2: op.Points[1], P3: op.Points[2]}
			include(b.BoundingBox())
			cur = b.P3
		case OpQuadCurveTo:
			q := QuadBez{P0: cur, P1: op.Points[0], P2: op.Points[1]}
			include(q.BoundingBox())
			cur = q.P2
		case OpClosePath:
			cur = start
		}
	}
	return bbox
}

// CenterOfGravity returns the midpoint of the bounding box. This is an
// approximation of the visual center, not an area centroid.
func (s *OpSet) CenterOfGravity() Point {
	return s.BoundingBox().Center()
}

// CurrentPoint returns the pen position after the last geometric
// operation, honoring a partial terminal segment: a partial line is
// interpolated linearly, a partial curve is evaluated with de Casteljau
// at its Partial parameter.
func (s *OpSet) CurrentPoint() Point {
	var cur, start Point
	for _, op := range s.ops {
		switch op.Kind {
		case OpMoveTo:
			cur = op.Points[0]
			start = cur
		case OpLineTo:
			if op.Partial < 1 {
				cur = cur.Lerp(op.Points[0], op.Partial)
			} else {
				cur = op.Points[0]
			}
		case OpCurveTo:
			b := CubicBez{P0: cur, P1: op.Points[0], P2: op.Points[1], P3: op.Points[2]}
			if op.Partial < 1 {
				cur = b.Eval(op.Partial)
			} else {
				cur = b.P3
			}
		case OpQuadCurveTo:
			q := QuadBez{P0: cur, P1: op.Points[0], P2: op.Points[1]}
			if op.Partial < 1 {
				cur = q.Eval(op.Partial)
			} else {
				cur = q.P2
			}
		case OpClosePath:
			cur = start
		}
	}
	return cur
}

// Partial returns the prefix of the set that represents progress
// fraction p of the drawing. The interpolation is over operation count,
// not arc length: with N non-setup operations, the first floor(p*N)
// eligible operations are emitted verbatim (setup operations encountered
// along the way are always emitted), and a positive remainder appends one
// copy of the next eligible operation with its Partial set to the
// remainder. Segments of very different lengths therefore receive equal
// reveal time; this is the specified sketching behavior.
func (s *OpSet) Partial(p float64) *OpSet {
	out := NewOpSet()
	if p <= 0 {
		return out
	}
	if p >= 1 {
		return s.Clone()
	}

	n := s.DrawingLen()
	active := int(p * float64(n))
	remainder := p*float64(n) - float64(active)

	emitted := 0
	i := 0
	for ; i < len(s.ops) && emitted < active; i++ {
		out.Add(s.ops[i].clone())
		if !s.ops[i].Kind.IsSetup() {
			emitted++
		}
	}

	if remainder > 0 {
		// Carry setup ops forward so the partial segment renders with
		// the pen state it would have had.
		for ; i < len(s.ops); i++ {
			op := s.ops[i].clone()
			if op.Kind.IsSetup() {
				out.Add(op)
				continue
			}
			op.Partial = remainder
			out.Add(op)
			break
		}
	}
	return out
}

// setOwner tags every operation with the given drawable id.
func (s *OpSet) setOwner(id string) {
	for i := range s.ops {
		s.ops[i].Owner = id
	}
}

// OwnedBy returns a new set holding only the operations tagged with the
// given drawable id.
func (s *OpSet) OwnedBy(id string) *OpSet {
	out := NewOpSet()
	for _, op := range s.ops {
		if op.Owner == id {
			out.Add(op.clone())
		}
	}
	return out
}
