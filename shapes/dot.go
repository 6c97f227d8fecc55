package shapes

import "github.com/gogpu/handanim"

// Dot is a single filled marker dot.
type Dot struct {
	handanim.Base
	Center handanim.Point
	Radius float64
}

// NewDot creates a dot at center with the given radius.
func NewDot(center handanim.Point, radius float64) *Dot {
	return &Dot{Base: handanim.NewBase(), Center: center, Radius: radius}
}

// Draw implements handanim.Drawable.
func (d *Dot) Draw() *handanim.OpSet {
	return handanim.NewOpSet(handanim.Dot(handanim.DotStyle{
		Center:  d.Center,
		Radius:  d.Radius,
		Color:   d.Stroke.Color,
		Opacity: d.Stroke.Opacity,
	}))
}

// GlowDot is a soft marker dot styled like the glowing pen tip used
// during sketch animations.
type GlowDot struct {
	handanim.Base
	Center handanim.Point
	Style  handanim.GlowDotStyle
}

// NewGlowDot creates a glow dot at center with the default glow style.
func NewGlowDot(center handanim.Point) *GlowDot {
	return &GlowDot{Base: handanim.NewBase(), Center: center, Style: handanim.DefaultGlowDotStyle()}
}

// Draw implements handanim.Drawable.
func (g *GlowDot) Draw() *handanim.OpSet {
	style := g.Style
	if style.Radius == 0 {
		style = handanim.DefaultGlowDotStyle()
	}
	return handanim.NewOpSet(handanim.Dot(handanim.DotStyle{
		Center:  g.Center,
		Radius:  style.Radius,
		Color:   style.Color,
		Opacity: 1,
	}))
}
