package handanim

// applyFadeIn rewrites the opacity of every pen to the progress value.
// All other operations pass through unchanged.
func applyFadeIn(_ *Event, src *OpSet, progress float64) *OpSet {
	out := src.Clone()
	for i, op := range out.ops {
		if op.Kind == OpSetPen {
			out.ops[i].Pen.Opacity = progress
		}
	}
	return out
}

// applyFadeOut is the complement of applyFadeIn: opacity 1-progress.
func applyFadeOut(e *Event, src *OpSet, progress float64) *OpSet {
	return applyFadeIn(e, src, 1-progress)
}
