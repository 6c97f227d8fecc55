package handanim

// applyZoomIn scales the drawing by progress about its own center of
// gravity, growing it from a point.
func applyZoomIn(_ *Event, src *OpSet, progress float64) *OpSet {
	out := src.Clone()
	out.Scale(progress, progress)
	return out
}

// applyZoomOut is the complement of applyZoomIn: scale 1-progress.
func applyZoomOut(e *Event, src *OpSet, progress float64) *OpSet {
	return applyZoomIn(e, src, 1-progress)
}
