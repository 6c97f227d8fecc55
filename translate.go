package handanim

// applyTranslateTo moves the drawing so its center of gravity lands at
// the linear interpolation between its current position and the target.
// The persist variant shares this function; persistence itself is the
// scheduler's job (the completed offset is replayed into the drawable's
// cached state by the arena, keeping application pure).
func applyTranslateTo(e *Event, src *OpSet, progress float64) *OpSet {
	c := src.CenterOfGravity()
	d := e.Data.Target.Sub(c).Mul(progress)
	out := src.Clone()
	out.Translate(d.X, d.Y)
	return out
}

// applyTranslateFrom runs the translation in reverse: at progress 0 the
// drawing sits at the origin point, at 1 it rests at its own center.
func applyTranslateFrom(e *Event, src *OpSet, progress float64) *OpSet {
	return applyTranslateTo(e, src, 1-progress)
}
