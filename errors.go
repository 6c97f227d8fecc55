package handanim

import "errors"

// ErrNoEventOrDrawable is returned by Scene.Add when both arguments are
// nil: there is nothing to schedule.
var ErrNoEventOrDrawable = errors.New("handanim: add requires an event or a drawable")

// ErrNilDrawable is returned by Scene.Add when an event has no drawable
// to attach to.
var ErrNilDrawable = errors.New("handanim: event has no drawable to attach to")

// ErrUnknownEventType is returned when an event type without a
// registered application function reaches the scheduler.
var ErrUnknownEventType = errors.New("handanim: unknown animation event type")

// ErrUnknownOpKind is returned by consumers of the operation IR when
// they meet a kind they do not understand.
var ErrUnknownOpKind = errors.New("handanim: unknown drawing operation kind")

// ErrUnknownGrouping is returned when a group carries an unsupported
// grouping method.
var ErrUnknownGrouping = errors.New("handanim: unknown grouping method")
