package handanim

// EventKind classifies what an animation event does to its drawable's
// visibility: creations toggle it on, deletions toggle it off, mutations
// leave it unchanged, and composites only exist to be expanded.
type EventKind uint8

const (
	// EventCreation makes the drawable appear.
	EventCreation EventKind = iota
	// EventMutation changes the drawable without toggling visibility.
	EventMutation
	// EventDeletion makes the drawable disappear.
	EventDeletion
	// EventComposite groups child events; it is never applied directly.
	EventComposite
)

// EventType identifies a concrete animation variant.
type EventType uint8

const (
	// SketchEvent reveals the drawing progressively, like a hand
	// tracing it.
	SketchEvent EventType = iota
	// FadeInEvent raises opacity from 0 to 1.
	FadeInEvent
	// FadeOutEvent lowers opacity from 1 to 0.
	FadeOutEvent
	// ZoomInEvent grows the drawable from a point.
	ZoomInEvent
	// ZoomOutEvent shrinks the drawable into a point.
	ZoomOutEvent
	// TranslateToEvent moves the center of gravity toward a target.
	TranslateToEvent
	// TranslateFromEvent moves the center of gravity from an origin.
	TranslateFromEvent
	// TranslateToPersistEvent moves toward a target and persists the
	// final position into the drawable's cached state.
	TranslateToPersistEvent
	// CompositeEvent is an ordered bundle of child events.
	CompositeEvent
)

// eventTypeNames maps EventType values to their string representation.
var eventTypeNames = [...]string{
	SketchEvent:             "Sketch",
	FadeInEvent:             "FadeIn",
	FadeOutEvent:            "FadeOut",
	ZoomInEvent:             "ZoomIn",
	ZoomOutEvent:            "ZoomOut",
	TranslateToEvent:        "TranslateTo",
	TranslateFromEvent:      "TranslateFrom",
	TranslateToPersistEvent: "TranslateToPersist",
	CompositeEvent:          "Composite",
}

// String returns the string representation of an EventType.
func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// eventTypeKinds maps each variant to its visibility kind.
var eventTypeKinds = [...]EventKind{
	SketchEvent:             EventCreation,
	FadeInEvent:             EventCreation,
	FadeOutEvent:            EventDeletion,
	ZoomInEvent:             EventCreation,
	ZoomOutEvent:            EventDeletion,
	TranslateToEvent:        EventMutation,
	TranslateFromEvent:      EventMutation,
	TranslateToPersistEvent: EventMutation,
	CompositeEvent:          EventComposite,
}

// Kind returns the visibility kind of the variant.
func (t EventType) Kind() EventKind {
	if int(t) < len(eventTypeKinds) {
		return eventTypeKinds[t]
	}
	return EventMutation
}

// EventData carries per-variant parameters. The scheduler mutates it in
// place at registration time to inject group context.
type EventData struct {
	// Target is the translate destination (TranslateTo, persist) or
	// origin (TranslateFrom).
	Target Point
	// Glow, when set on a sketch, draws a breathing pen-tip dot at the
	// current drawing position.
	Glow *GlowDotStyle
	// GroupID is filled by the scheduler when the event was registered
	// through a parallel group; application then operates on the group
	// union and is filtered back per member.
	GroupID string
}

// Event is a timed animation unit. Events are immutable after
// registration except for the scheduler's in-place Data updates.
type Event struct {
	Type     EventType
	Start    float64
	Duration float64
	Easing   EasingFunc
	Data     EventData
	Children []*Event
}

// End returns Start + Duration.
func (e *Event) End() float64 {
	return e.Start + e.Duration
}

// Kind returns the visibility kind of the event.
func (e *Event) Kind() EventKind {
	return e.Type.Kind()
}

// persists reports whether completing the event writes a lasting change
// into the drawable's cached state.
func (e *Event) persists() bool {
	return e.Type == TranslateToPersistEvent
}

// applyFunc computes the animated operations for one progress value.
// Implementations are pure: they never modify src.
type applyFunc func(e *Event, src *OpSet, progress float64) *OpSet

// applyFuncs dispatches each concrete variant to its application
// function. CompositeEvent deliberately has no entry: composites are
// expanded at registration, never applied.
var applyFuncs = [...]applyFunc{
	SketchEvent:             applySketch,
	FadeInEvent:             applyFadeIn,
	FadeOutEvent:            applyFadeOut,
	ZoomInEvent:             applyZoomIn,
	ZoomOutEvent:            applyZoomOut,
	TranslateToEvent:        applyTranslateTo,
	TranslateFromEvent:      applyTranslateFrom,
	TranslateToPersistEvent: applyTranslateTo,
}

// Apply computes the animated operations for the given source set at the
// given progress. Progress must already be clamped to [0, 1] by the
// caller; the event's easing, if any, reshapes it before dispatch.
func (e *Event) Apply(src *OpSet, progress float64) (*OpSet, error) {
	var fn applyFunc
	if int(e.Type) < len(applyFuncs) {
		fn = applyFuncs[e.Type]
	}
	if fn == nil {
		return nil, ErrUnknownEventType
	}
	if e.Easing != nil {
		progress = e.Easing(progress)
	}
	return fn(e, src, progress), nil
}

// WithEasing sets the easing function and returns the event.
func (e *Event) WithEasing(fn EasingFunc) *Event {
	e.Easing = fn
	return e
}

// WithGlow enables the glowing pen-tip dot on a sketch event and returns
// the event.
func (e *Event) WithGlow(g GlowDotStyle) *Event {
	e.Data.Glow = &g
	return e
}

// NewSketch returns a progressive-reveal creation event.
func NewSketch(start, duration float64) *Event {
	return &Event{Type: SketchEvent, Start: start, Duration: duration}
}

// NewFadeIn returns a fade-in creation event.
func NewFadeIn(start, duration float64) *Event {
	return &Event{Type: FadeInEvent, Start: start, Duration: duration}
}

// NewFadeOut returns a fade-out deletion event.
func NewFadeOut(start, duration float64) *Event {
	return &Event{Type: FadeOutEvent, Start: start, Duration: duration}
}

// NewZoomIn returns a zoom-in creation event.
func NewZoomIn(start, duration float64) *Event {
	return &Event{Type: ZoomInEvent, Start: start, Duration: duration}
}

// NewZoomOut returns a zoom-out deletion event.
func NewZoomOut(start, duration float64) *Event {
	return &Event{Type: ZoomOutEvent, Start: start, Duration: duration}
}

// NewTranslateTo returns a mutation event moving the drawable's center
// of gravity to target.
func NewTranslateTo(start, duration float64, target Point) *Event {
	return &Event{Type: TranslateToEvent, Start: start, Duration: duration, Data: EventData{Target: target}}
}

// NewTranslateFrom returns a mutation event moving the drawable's center
// of gravity from origin to its resting position.
func NewTranslateFrom(start, duration float64, origin Point) *Event {
	return &Event{Type: TranslateFromEvent, Start: start, Duration: duration, Data: EventData{Target: origin}}
}

// NewTranslateToPersist returns a translate-to event whose final
// position persists in the drawable's cached state once progress reaches
// 1, so later events and idle frames start from the new resting place.
func NewTranslateToPersist(start, duration float64, target Point) *Event {
	return &Event{Type: TranslateToPersistEvent, Start: start, Duration: duration, Data: EventData{Target: target}}
}

// NewComposite bundles child events into one schedulable unit. Its span
// covers all children: Start is the earliest child start and End the
// latest child end. The scheduler expands composites into independent
// registrations of each child; a composite is never applied itself.
func NewComposite(children ...*Event) *Event {
	e := &Event{Type: CompositeEvent, Children: children}
	if len(children) == 0 {
		return e
	}
	start := children[0].Start
	end := children[0].End()
	for _, c := range children[1:] {
		if c.Start < start {
			start = c.Start
		}
		if c.End() > end {
			end = c.End()
		}
	}
	e.Start = start
	e.Duration = end - start
	return e
}
