package handanim

import "sort"

// stateArena caches each drawable's base operations and the snapshots of
// its state after every persisted mutation. Snapshots are append-only,
// ordered by effective timestamp, and derived purely from the registered
// event history: queries are deterministic regardless of order, so
// per-frame computation may proceed in parallel once the arena is built.
type stateArena struct {
	base  map[string]*OpSet
	snaps map[string][]stateSnapshot
	built bool
}

// stateSnapshot is the full state of a drawable as of the moment a
// persisted mutation completed.
type stateSnapshot struct {
	at    float64
	state *OpSet
}

func newStateArena() stateArena {
	return stateArena{
		base:  make(map[string]*OpSet),
		snaps: make(map[string][]stateSnapshot),
	}
}

func (a *stateArena) has(id string) bool {
	_, ok := a.base[id]
	return ok
}

// put caches the base operations for a drawable. The base is computed
// once, at first registration, and never recomputed.
func (a *stateArena) put(id string, ops *OpSet) {
	a.base[id] = ops
}

// invalidate discards snapshots; they are rebuilt lazily on next query.
func (a *stateArena) invalidate() {
	a.built = false
	for id := range a.snaps {
		delete(a.snaps, id)
	}
}

// stateBefore returns a copy of the drawable's state strictly before
// time t: the latest snapshot with timestamp < t, or the base. Unknown
// ids yield an empty set rather than an error, so scenes under iterative
// authoring keep rendering.
func (a *stateArena) stateBefore(id string, t float64) *OpSet {
	base, ok := a.base[id]
	if !ok {
		return NewOpSet()
	}
	snaps := a.snaps[id]
	// Latest snapshot strictly before t.
	i := sort.Search(len(snaps), func(i int) bool { return snaps[i].at >= t }) - 1
	if i >= 0 {
		return snaps[i].state.Clone()
	}
	return base.Clone()
}

// record appends a snapshot for the drawable. Callers append in
// non-decreasing timestamp order (the build walks events by end time).
func (a *stateArena) record(id string, at float64, state *OpSet) {
	a.snaps[id] = append(a.snaps[id], stateSnapshot{at: at, state: state})
}

// buildSnapshots replays every persisting event, in end-time order,
// into the snapshot history. Registration order breaks ties. Group-wide
// persisted mutations are reconstructed over the member union and
// filtered back per member, so all members share one relative offset.
func (s *Scene) buildSnapshots() error {
	if s.arena.built {
		return nil
	}
	s.arena.invalidate()

	type pending struct {
		id  string
		ev  *Event
		seq int
	}
	var all []pending
	seq := 0
	for _, id := range s.order {
		for _, ev := range s.events[id] {
			if ev.persists() {
				all = append(all, pending{id: id, ev: ev, seq: seq})
			}
			seq++
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].ev.End() != all[j].ev.End() {
			return all[i].ev.End() < all[j].ev.End()
		}
		return all[i].seq < all[j].seq
	})

	for _, p := range all {
		var next *OpSet
		var err error
		if p.ev.Data.GroupID != "" {
			next, err = s.applyOnGroup(p.ev, p.id, 1.0)
		} else {
			next, err = p.ev.Apply(s.arena.stateBefore(p.id, p.ev.End()), 1.0)
		}
		if err != nil {
			return err
		}
		s.arena.record(p.id, p.ev.End(), next)
	}
	s.arena.built = true
	return nil
}

// StateAt returns the drawable's persisted state at time t: the cached
// base with every persisting event that ended strictly before t
// replayed, in end-time order. Unknown ids yield an empty set.
func (s *Scene) StateAt(id string, t float64) (*OpSet, error) {
	if err := s.buildSnapshots(); err != nil {
		return nil, err
	}
	return s.arena.stateBefore(id, t), nil
}
