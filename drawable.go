package handanim

import "github.com/google/uuid"

// Drawable is anything that can be placed on a scene: it has a stable
// identity and can produce the drawing operations of its resting shape.
// Draw is called once per drawable, at first registration; the result is
// cached and all animation applies to the cached state.
type Drawable interface {
	// ID returns the immutable identity of the drawable.
	ID() string
	// Draw produces the base drawing operations.
	Draw() *OpSet
}

// Base provides the identity and styling shared by concrete shapes.
// Embed it and implement Draw.
type Base struct {
	id     string
	Stroke StrokeStyle
	Sketch SketchStyle
	Fill   *FillStyle
	Glow   *GlowDotStyle
}

// NewBase returns a Base with a fresh unique id and default styles.
func NewBase() Base {
	return Base{
		id:     uuid.NewString(),
		Stroke: DefaultStrokeStyle(),
		Sketch: DefaultSketchStyle(),
	}
}

// ID returns the immutable identity of the drawable.
func (b *Base) ID() string {
	return b.id
}

// GroupingMethod selects how a group distributes one event over its
// members.
type GroupingMethod uint8

const (
	// GroupParallel applies the same event to every member at once; the
	// event operates on the union geometry of the whole group.
	GroupParallel GroupingMethod = iota
	// GroupSeries splits the event into equal consecutive time slices,
	// one per member, in member order.
	GroupSeries
)

// groupingNames maps GroupingMethod values to their string form.
var groupingNames = [...]string{
	GroupParallel: "parallel",
	GroupSeries:   "series",
}

// String returns the string form of the grouping method.
func (m GroupingMethod) String() string {
	if int(m) < len(groupingNames) {
		return groupingNames[m]
	}
	return "unknown"
}

// Group is a drawable composed of ordered members. Scheduling an event
// against a group expands it per the grouping method; the group itself
// is never registered.
type Group struct {
	id      string
	method  GroupingMethod
	members []Drawable
}

// NewGroup creates a group over the given members.
func NewGroup(method GroupingMethod, members ...Drawable) *Group {
	return &Group{id: uuid.NewString(), method: method, members: members}
}

// ID returns the immutable identity of the group.
func (g *Group) ID() string {
	return g.id
}

// Method returns the grouping method.
func (g *Group) Method() GroupingMethod {
	return g.method
}

// Members returns the ordered member drawables.
func (g *Group) Members() []Drawable {
	return g.members
}

// Draw returns the union of all member drawings, in member order.
func (g *Group) Draw() *OpSet {
	out := NewOpSet()
	for _, m := range g.members {
		out.Extend(m.Draw())
	}
	return out
}
