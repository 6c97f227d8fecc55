package shapes

import (
	"math"
	"math/rand"

	"github.com/gogpu/handanim"
)

// sketcher turns ideal geometry into hand-drawn strokes: bowed lines,
// jittered endpoints, doubled passes. One sketcher is created per Draw
// call; a non-zero SketchStyle.Seed makes its output deterministic.
type sketcher struct {
	style handanim.SketchStyle
	rng   *rand.Rand
}

func newSketcher(style handanim.SketchStyle) *sketcher {
	seed := style.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	return &sketcher{style: style, rng: rand.New(rand.NewSource(seed))}
}

// uniform returns a random value in [-scale, scale].
func (s *sketcher) uniform(scale float64) float64 {
	return (s.rng.Float64()*2 - 1) * scale
}

// jitter returns a random displacement vector scaled by the style's
// roughness.
func (s *sketcher) jitter(scale float64) handanim.Point {
	r := scale * s.style.Roughness
	return handanim.Pt(s.uniform(r), s.uniform(r))
}

// line appends one hand-drawn pass of the segment a-b. Long segments
// get proportionally less jitter; the bowing displaces the two interior
// control points normal to the segment. The overlay pass halves the
// jitter so the retrace hugs the first stroke.
func (s *sketcher) line(out *handanim.OpSet, a, b handanim.Point, move, overlay bool) {
	d := b.Sub(a)
	length := d.Length()
	gain := math.Min(1, math.Max(0.4, -0.0016668*length+1.233334))
	offset := math.Min(length/10, s.style.MaxRandomOffset)

	diverge := 0.2 + s.rng.Float64()*0.2
	bow := handanim.Pt(d.Y, d.X).Mul(s.style.Bowing * offset / 200)

	scale := gain
	if overlay {
		scale *= 0.5
	}
	j := func() handanim.Point { return s.jitter(offset * scale) }

	if move {
		out.Add(handanim.MoveTo(a.Add(j())))
	}
	c1 := a.Add(bow).Add(d.Mul(diverge)).Add(j())
	c2 := a.Add(bow).Add(d.Mul(2 * diverge)).Add(j())
	out.Add(handanim.CurveTo(c1, c2, b.Add(j())))
}

// strokedLine appends the full doubled stroke of the segment a-b.
func (s *sketcher) strokedLine(out *handanim.OpSet, a, b handanim.Point) {
	s.line(out, a, b, true, false)
	if !s.style.DisableMultiStroke {
		s.line(out, a, b, true, true)
	}
}

// linearPath appends doubled strokes along consecutive points,
// optionally closing back to the first point.
func (s *sketcher) linearPath(out *handanim.OpSet, points []handanim.Point, close bool) {
	for i := 0; i+1 < len(points); i++ {
		s.strokedLine(out, points[i], points[i+1])
	}
	if close && len(points) > 2 {
		s.strokedLine(out, points[len(points)-1], points[0])
	}
}

// curvePath appends one pass of a smooth curve through the points,
// using neighbor differences to place the cubic control points.
func (s *sketcher) curvePath(out *handanim.OpSet, points []handanim.Point) {
	switch {
	case len(points) < 2:
		return
	case len(points) == 2:
		s.line(out, points[0], points[1], true, false)
	case len(points) == 3:
		out.Add(handanim.MoveTo(points[0]))
		out.Add(handanim.CurveTo(points[1], points[2], points[2]))
	default:
		t := 1 - s.style.CurveTightness
		out.Add(handanim.MoveTo(points[0]))
		for i := 1; i+2 < len(points); i++ {
			c1 := points[i].Add(points[i+1].Sub(points[i-1]).Mul(t / 6))
			c2 := points[i+1].Add(points[i].Sub(points[i+2]).Mul(t / 6))
			out.Add(handanim.CurveTo(c1, c2, points[i+1]))
		}
	}
}

// wobblyCurve appends one pass of the curve with every point displaced,
// including doubled first and last points so the ends stay anchored.
func (s *sketcher) wobblyCurve(out *handanim.OpSet, points []handanim.Point, offset float64) {
	if len(points) == 0 {
		return
	}
	wobbled := make([]handanim.Point, 0, len(points)+2)
	wobbled = append(wobbled, points[0].Add(s.jitter(offset)))
	for _, p := range points {
		wobbled = append(wobbled, p.Add(s.jitter(offset)))
	}
	wobbled = append(wobbled, points[len(points)-1].Add(s.jitter(offset)))
	s.curvePath(out, wobbled)
}

// strokedCurve appends the full doubled stroke of a curve through the
// points.
func (s *sketcher) strokedCurve(out *handanim.OpSet, points []handanim.Point) {
	s.wobblyCurve(out, points, 1+s.style.Roughness*0.2)
	if !s.style.DisableMultiStroke {
		s.wobblyCurve(out, points, 1.5*(1+s.style.Roughness*0.22))
	}
}

// ellipseParams picks the sampling increment and the randomized radii
// for one ellipse pass.
func (s *sketcher) ellipseParams(width, height float64) (rx, ry, increment float64) {
	perimeter := math.Sqrt(2 * math.Pi * math.Hypot(width/2, height/2))
	steps := math.Ceil(math.Max(float64(s.style.CurveStepCount), float64(s.style.CurveStepCount)*perimeter/math.Sqrt(200)))
	if steps < 4 {
		steps = 4
	}
	increment = 2 * math.Pi / steps
	rx = width / 2
	ry = height / 2
	fit := 1 - s.style.CurveFitting
	rx += s.uniform(rx * fit * s.style.Roughness)
	ry += s.uniform(ry * fit * s.style.Roughness)
	return rx, ry, increment
}

// ellipsePoints samples one pass around the ellipse. With zero
// roughness the samples sit exactly on the ellipse and close on
// themselves; otherwise the start angle is randomized, each sample is
// displaced, and extra overlapping points past the full turn hide the
// seam.
func (s *sketcher) ellipsePoints(center handanim.Point, rx, ry, increment, offset, overlap float64) []handanim.Point {
	arc := func(a float64) handanim.Point {
		return handanim.Pt(center.X+rx*math.Cos(a), center.Y+ry*math.Sin(a))
	}

	var points []handanim.Point
	if s.style.Roughness == 0 {
		increment /= 4
		points = append(points, arc(-increment))
		for a := 0.0; a <= 2*math.Pi+increment; a += increment {
			points = append(points, arc(a))
		}
		points = append(points, arc(increment))
		return points
	}

	start := s.uniform(s.style.Roughness) - math.Pi/2
	points = append(points, arc(start-increment).Sub(center).Mul(0.9).Add(center).Add(s.jitter(offset)))
	end := start + 2*math.Pi - 0.01
	for a := start; a < end; a += increment {
		points = append(points, arc(a).Add(s.jitter(offset)))
	}
	points = append(points,
		arc(start+2*math.Pi+overlap*0.5).Add(s.jitter(offset)),
		arc(start+overlap).Sub(center).Mul(0.98).Add(center).Add(s.jitter(offset)),
		arc(start+overlap*0.5).Sub(center).Mul(0.9).Add(center).Add(s.jitter(offset)),
	)
	return points
}
