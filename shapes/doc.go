// Package shapes provides the built-in drawable primitives: lines,
// polygons, ellipses, curves, arrows, dots and text. Every shape
// produces its base drawing operations once, in a hand-drawn style
// controlled by its SketchStyle: nominally straight lines are drawn as
// slightly bowed cubics, strokes are doubled to mimic pen retracing, and
// endpoints jitter within a bounded random offset. A zero-value
// SketchStyle disables the jitter and draws clean geometry.
//
// The randomness is seeded per shape, so a shape with a fixed seed
// always draws the same wobble.
package shapes
