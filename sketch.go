package handanim

import "math"

// applySketch reveals the prefix of the drawing that corresponds to
// progress, optionally topped with a glowing pen-tip dot whose radius
// breathes over time.
func applySketch(e *Event, src *OpSet, progress float64) *OpSet {
	if progress <= 0 {
		return NewOpSet()
	}
	out := src.Partial(progress)
	if e.Data.Glow == nil {
		return out
	}

	g := *e.Data.Glow
	if g.Radius == 0 {
		g = DefaultGlowDotStyle()
	}
	breathing := 1 + 0.05*math.Sin(2*math.Pi*progress*g.Frequency)
	out.Add(Dot(DotStyle{
		Center:  out.CurrentPoint(),
		Radius:  g.Radius * breathing,
		Color:   g.Color,
		Opacity: 1,
	}))
	return out
}
