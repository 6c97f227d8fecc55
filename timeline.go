package handanim

import "math"

// progressOf returns the clamped progress of an event at time t.
// Zero-duration events are instantly complete.
func progressOf(ev *Event, t float64) float64 {
	if ev.Duration <= 0 {
		return 1
	}
	p := (t - ev.Start) / ev.Duration
	return math.Min(1, math.Max(0, p))
}

// applyOnGroup applies a group-tagged event for one member: the whole
// group's combined state as of just before the event start is
// reconstructed (each member's own persisted history replayed), every
// operation is tagged with its owning member, the event is applied once
// over the union, and the result is filtered back to the member being
// rendered. Shared group animations therefore act on the true union
// geometry.
func (s *Scene) applyOnGroup(ev *Event, memberID string, progress float64) (*OpSet, error) {
	union := NewOpSet()
	for _, m := range s.groups[ev.Data.GroupID] {
		st := s.arena.stateBefore(m, ev.Start)
		st.setOwner(m)
		union.Extend(st)
	}
	applied, err := ev.Apply(union, progress)
	if err != nil {
		return nil, err
	}
	return applied.OwnedBy(memberID), nil
}

// frameOps computes the combined drawing operations of all active
// drawables at time t. Per drawable, events overlapping t are applied in
// registration order, threading each event's output into the next;
// group-tagged events substitute their union-derived, owner-filtered
// result for that step.
func (s *Scene) frameOps(t float64, active []string) (*OpSet, error) {
	frame := NewOpSet()
	for _, id := range active {
		cur := s.arena.stateBefore(id, t)
		for _, ev := range s.events[id] {
			if t < ev.Start || t > ev.End() {
				continue
			}
			p := progressOf(ev, t)
			var err error
			if ev.Data.GroupID != "" {
				cur, err = s.applyOnGroup(ev, id, p)
			} else {
				cur, err = ev.Apply(cur, p)
			}
			if err != nil {
				return nil, err
			}
		}

		frame.Extend(cur)
	}
	return frame, nil
}

// FrameAt computes the complete drawing operations for a single point in
// time. It is the entry point for snapshot/debug rendering.
func (s *Scene) FrameAt(t float64) (*OpSet, error) {
	if err := s.buildSnapshots(); err != nil {
		return nil, err
	}
	return s.frameOps(t, s.ActiveObjects(t))
}

// Timeline computes one OpSet per frame at the given frame rate.
// maxLength is the total length in seconds; when it is zero or negative
// the timeline runs to the last keyframe. The active-object set is
// recomputed only at keyframes and held constant in between. The
// returned slice has one entry per frame from frame 0 through the final
// frame, inclusive.
func (s *Scene) Timeline(fps int, maxLength float64) ([]*OpSet, error) {
	if err := s.buildSnapshots(); err != nil {
		return nil, err
	}

	if maxLength <= 0 {
		keys := s.KeyFrames(0)
		maxLength = keys[len(keys)-1]
	}
	keys := s.KeyFrames(maxLength)

	keyFrameIdx := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		keyFrameIdx[int(math.Round(k*float64(fps)))] = struct{}{}
	}

	maxFrame := int(math.Round(maxLength * float64(fps)))
	frames := make([]*OpSet, 0, maxFrame+1)
	var active []string
	for f := 0; f <= maxFrame; f++ {
		t := float64(f) / float64(fps)
		if _, ok := keyFrameIdx[f]; ok {
			active = s.ActiveObjects(t)
		}
		frame, err := s.frameOps(t, active)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	Logger().Debug("timeline computed",
		"frames", len(frames),
		"keyframes", len(keys),
		"objects", len(s.order),
		"fps", fps,
	)
	return frames, nil
}
