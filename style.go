package handanim

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Gray returns a neutral gray of the given intensity.
func Gray(v float64) Color {
	return Color{R: v, G: v, B: v}
}

// PenMode selects how a path flushed by the next SET_PEN (or end of set)
// is realized.
type PenMode uint8

const (
	// PenStroke outlines the path.
	PenStroke PenMode = iota
	// PenFill fills the path.
	PenFill
)

// PenStyle is the payload of a SET_PEN operation: the complete pen state
// for the operations that follow it.
type PenStyle struct {
	Color   Color
	Opacity float64
	Width   float64
	Mode    PenMode
}

// DotStyle is the payload of a DOT operation: a filled marker dot, used
// for the glowing pen-tip effect during sketching.
type DotStyle struct {
	Center  Point
	Radius  float64
	Color   Color
	Opacity float64
}

// StrokePressure selects how stroke width varies along a hand-drawn
// stroke.
type StrokePressure uint8

const (
	// PressureConstant keeps the width uniform.
	PressureConstant StrokePressure = iota
	// PressureProportional widens the stroke with progress.
	PressureProportional
	// PressureInverse narrows the stroke with progress.
	PressureInverse
)

// StrokeStyle configures the outline pen of a drawable.
type StrokeStyle struct {
	Color    Color
	Width    float64
	Opacity  float64
	Pressure StrokePressure
}

// DefaultStrokeStyle returns the standard black 1px stroke.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{Color: Color{}, Width: 1, Opacity: 1}
}

// Pen converts the stroke style to a SET_PEN payload.
func (s StrokeStyle) Pen() PenStyle {
	return PenStyle{Color: s.Color, Opacity: s.Opacity, Width: s.Width, Mode: PenStroke}
}

// FillStyle configures the interior fill of a drawable. A nil FillStyle
// on a drawable means no fill.
type FillStyle struct {
	Color   Color
	Opacity float64
}

// DefaultFillStyle returns an opaque black fill.
func DefaultFillStyle() FillStyle {
	return FillStyle{Color: Color{}, Opacity: 1}
}

// Pen converts the fill style to a SET_PEN payload.
func (f FillStyle) Pen() PenStyle {
	return PenStyle{Color: f.Color, Opacity: f.Opacity, Mode: PenFill}
}

// SketchStyle configures the hand-drawn jitter applied by shape
// constructors. The zero value draws clean, un-jittered geometry.
type SketchStyle struct {
	// Roughness scales all random offsets.
	Roughness float64
	// Bowing bends nominally straight lines.
	Bowing float64
	// MaxRandomOffset caps the endpoint displacement in canvas units.
	MaxRandomOffset float64
	// CurveTightness adjusts interpolated curve control points.
	CurveTightness float64
	// CurveFitting is how closely sampled curves track the ideal shape,
	// in [0, 1]; lower values let radii wander more.
	CurveFitting float64
	// CurveStepCount is the sampling density for interpolated curves.
	CurveStepCount int
	// DisableMultiStroke draws a single pass instead of the doubled
	// stroke that mimics pen retracing.
	DisableMultiStroke bool
	// Seed makes the jitter deterministic; 0 picks a random seed.
	Seed int64
}

// DefaultSketchStyle returns the jitter configuration of the classic
// whiteboard look.
func DefaultSketchStyle() SketchStyle {
	return SketchStyle{
		Roughness:       1,
		Bowing:          1,
		MaxRandomOffset: 2,
		CurveFitting:    0.95,
		CurveStepCount:  9,
	}
}

// GlowDotStyle is the hint for the glowing pen tip drawn while a sketch
// event is in flight. Radius breathes around its base value with the
// configured frequency.
type GlowDotStyle struct {
	Radius    float64
	Frequency float64
	Color     Color
}

// DefaultGlowDotStyle returns the standard soft gray glow.
func DefaultGlowDotStyle() GlowDotStyle {
	return GlowDotStyle{Radius: 5, Frequency: 5, Color: Gray(0.5)}
}
