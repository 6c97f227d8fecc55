package handanim

import "sort"

// Scene owns the drawable cache, the per-object visibility timelines and
// the registered (event, drawable) pairs, and computes per-frame drawing
// operations. A Scene is not safe for concurrent mutation; compute
// timelines after all Add calls.
type Scene struct {
	// Width and Height are the canvas dimensions in pixels.
	Width, Height int
	// Background is the canvas clear color.
	Background Color

	arena     stateArena
	events    map[string][]*Event // per drawable id, in registration order
	order     []string            // drawable ids in first-registration order
	timelines map[string][]float64
	groups    map[string][]string // parallel group id -> leaf member ids
}

// NewScene creates an empty scene with a white background.
func NewScene(width, height int) *Scene {
	return &Scene{
		Width:      width,
		Height:     height,
		Background: Color{R: 1, G: 1, B: 1},
		arena:      newStateArena(),
		events:     make(map[string][]*Event),
		timelines:  make(map[string][]float64),
		groups:     make(map[string][]string),
	}
}

// workItem is one pending (event, drawable) pair during Add expansion.
type workItem struct {
	event    *Event
	drawable Drawable
}

// Add schedules an event against a drawable. Composites expand into
// their children, series groups split the event into consecutive slices
// per member, parallel groups tag the event and fan it out to every
// member. Atomic registrations cache the drawable's base operations
// (first time only) and update its visibility timeline.
//
// A nil event schedules an instant default sketch; a nil drawable with a
// non-nil event is an error, as is a nil/nil call.
//
// Expansion runs over an explicit work list, so arbitrarily nested
// composites and groups cannot exhaust the stack.
func (s *Scene) Add(event *Event, d Drawable) error {
	if event == nil && d == nil {
		return ErrNoEventOrDrawable
	}
	if d == nil {
		return ErrNilDrawable
	}
	if event == nil {
		event = NewSketch(0, 0)
	}

	work := []workItem{{event: event, drawable: d}}
	for len(work) > 0 {
		item := work[0]
		work = work[1:]

		ev, dr := item.event, item.drawable

		if ev.Type == CompositeEvent {
			// Children expand in order, depth-first: prepend.
			expanded := make([]workItem, 0, len(ev.Children)+len(work))
			for _, c := range ev.Children {
				expanded = append(expanded, workItem{event: c, drawable: dr})
			}
			work = append(expanded, work...)
			continue
		}

		if g, ok := dr.(*Group); ok {
			switch g.Method() {
			case GroupSeries:
				expanded, err := subdivideSeries(ev, g.Members())
				if err != nil {
					return err
				}
				work = append(expanded, work...)
			case GroupParallel:
				// Only the outermost group tags the shared event; its leaf
				// set already covers nested members, and retagging would
				// filter outer members against the inner group's leaves.
				if ev.Data.GroupID == "" {
					ev.Data.GroupID = g.ID()
					s.groups[g.ID()] = leafIDs(g)
				}
				expanded := make([]workItem, 0, len(g.Members())+len(work))
				for _, m := range g.Members() {
					expanded = append(expanded, workItem{event: ev, drawable: m})
				}
				work = append(expanded, work...)
			default:
				return ErrUnknownGrouping
			}
			continue
		}

		s.register(ev, dr)
	}
	return nil
}

// subdivideSeries splits an event into len(members) equal, back-to-back
// slices. Slice starts are Start + i*D/N; the final slice ends exactly
// at the original end time, absorbing any floating-point shortfall.
func subdivideSeries(ev *Event, members []Drawable) ([]workItem, error) {
	n := len(members)
	if n == 0 {
		return nil, nil
	}
	slice := ev.Duration / float64(n)
	items := make([]workItem, 0, n)
	for i, m := range members {
		start := ev.Start + float64(i)*slice
		duration := slice
		if i == n-1 {
			duration = ev.End() - start
		}
		sub := &Event{
			Type:     ev.Type,
			Start:    start,
			Duration: duration,
			Easing:   ev.Easing,
			Data:     ev.Data,
			Children: ev.Children,
		}
		items = append(items, workItem{event: sub, drawable: m})
	}
	return items, nil
}

// leafIDs flattens a group to the ids of its atomic drawables, in order.
func leafIDs(g *Group) []string {
	var ids []string
	stack := []Drawable{g}
	for len(stack) > 0 {
		d := stack[0]
		stack = stack[1:]
		if sub, ok := d.(*Group); ok {
			stack = append(append([]Drawable{}, sub.Members()...), stack...)
			continue
		}
		ids = append(ids, d.ID())
	}
	return ids
}

// register records one atomic (event, drawable) pair: caches the base
// drawing on first sight, stores the event, and updates the visibility
// toggle timeline.
func (s *Scene) register(ev *Event, d Drawable) {
	id := d.ID()
	if !s.arena.has(id) {
		s.arena.put(id, d.Draw())
		s.order = append(s.order, id)
	}
	s.events[id] = append(s.events[id], ev)
	s.arena.invalidate()

	switch ev.Kind() {
	case EventCreation:
		s.toggle(id, ev.Start)
	case EventDeletion:
		if len(s.timelines[id]) == 0 {
			// Deleting something never created: synthesize the implicit
			// creation at the deletion's own start.
			s.toggle(id, ev.Start)
		}
		s.toggle(id, ev.End())
	}
}

// toggle records a visibility flip for the drawable at time t, keeping
// the timeline sorted.
func (s *Scene) toggle(id string, t float64) {
	tl := append(s.timelines[id], t)
	sort.Float64s(tl)
	s.timelines[id] = tl
}

// ActiveObjects returns the ids of drawables visible at time t, in
// first-registration order. A drawable is visible iff an odd number of
// its toggle timestamps are <= t.
func (s *Scene) ActiveObjects(t float64) []string {
	var active []string
	for _, id := range s.order {
		on := false
		for _, ts := range s.timelines[id] {
			if ts > t {
				break
			}
			on = !on
		}
		if on {
			active = append(active, id)
		}
	}
	return active
}

// KeyFrames returns the sorted distinct timestamps at which any event
// starts or ends, plus maxLength. Between consecutive keyframes the
// active-object set is constant, so the scheduler recomputes it only at
// these boundaries.
func (s *Scene) KeyFrames(maxLength float64) []float64 {
	set := map[float64]struct{}{maxLength: {}}
	for _, evs := range s.events {
		for _, ev := range evs {
			set[ev.Start] = struct{}{}
			set[ev.End()] = struct{}{}
		}
	}
	keys := make([]float64, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	return keys
}
