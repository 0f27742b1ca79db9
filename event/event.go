// Package event implements the listener-storage and dispatch primitives
// shared by every EventTarget in domkit: tree nodes (via the dom package)
// and AbortSignal (via the abort package) both hold a ListenerSet value and
// drive it through Invoke (directly, or through Fire).
package event

// EventTarget is the public contract every dispatchable object satisfies.
// *dom.Node and *abort.Signal both implement it by forwarding these three
// methods to a ListenerSet they hold (Node additionally builds a capture/
// bubble path before calling Invoke; Signal dispatches only to itself).
type EventTarget interface {
	AddEventListener(typ string, l Listener, opts AddOptions)
	RemoveEventListener(typ string, l Listener, capture bool)
	DispatchEvent(e *Event) bool
}

// Listener receives dispatched events. Implementations are typically
// registered by pointer so that interface equality (used by
// RemoveEventListener and duplicate-registration suppression) reflects the
// identity of the original registration, mirroring how JavaScript compares
// function identity.
type Listener interface {
	HandleEvent(e *Event)
}

// ListenerFunc adapts a plain function to Listener. Callers that need to
// remove a listener later must keep the same *ListenerFunc they registered;
// taking the address of a fresh ListenerFunc value on every call is the Go
// analogue of the JS pitfall of passing an inline closure you can never
// removeEventListener again.
type ListenerFunc func(e *Event)

// HandleEvent implements Listener.
func (f *ListenerFunc) HandleEvent(e *Event) { (*f)(e) }

// Event is the dispatchable event object.
type Event struct {
	Type          string
	Target        EventTarget
	CurrentTarget EventTarget
	EventPhase    Phase
	Bubbles       bool
	Cancelable    bool
	Composed      bool
	IsTrusted     bool
	TimestampMS   float64

	defaultPrevented bool
	stopPropagation  bool
	stopImmediate    bool
	dispatching      bool
}

// Phase mirrors Event.eventPhase.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseCapturing
	PhaseAtTarget
	PhaseBubbling
)

// NewEvent constructs an untrusted event (IsTrusted is always false for
// user-constructed events ).
func NewEvent(typ string, bubbles, cancelable, composed bool) *Event {
	return &Event{
		Type:       typ,
		Bubbles:    bubbles,
		Cancelable: cancelable,
		Composed:   composed,
	}
}

// PreventDefault sets DefaultPrevented iff the event is cancelable.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault has taken effect.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation sets only the propagation flag: listeners still to run on
// the current target finish, but no further target in the path is visited.
func (e *Event) StopPropagation() { e.stopPropagation = true }

// StopImmediatePropagation sets both flags: no further listener runs at
// all, not even another one registered on the current target.
func (e *Event) StopImmediatePropagation() {
	e.stopPropagation = true
	e.stopImmediate = true
}

func (e *Event) propagationStopped() bool { return e.stopPropagation }
func (e *Event) immediateStopped() bool   { return e.stopImmediate }

// PropagationStopped and ImmediateStopped are the exported forms used by
// callers (such as the dom package) that drive a multi-target capture/
// bubble path themselves instead of going through Fire.
func (e *Event) PropagationStopped() bool { return e.propagationStopped() }
func (e *Event) ImmediateStopped() bool   { return e.immediateStopped() }

// IsDispatching reports whether the event is currently mid-dispatch.
func (e *Event) IsDispatching() bool { return e.dispatching }

// BeginDispatch marks the event as dispatching and sets its target,
// for callers that build their own capture/target/bubble path rather than using Fire's target-only dispatch.
func (e *Event) BeginDispatch(target EventTarget) {
	e.dispatching = true
	e.Target = target
}

// EndDispatch is the path-dispatch counterpart to resetDispatchState.
func (e *Event) EndDispatch() { e.resetDispatchState() }

// CancelBubble is the legacy alias for the stop-propagation flag.
func (e *Event) CancelBubble() bool { return e.stopPropagation }

// SetCancelBubble is the legacy alias: setting it true calls StopPropagation.
func (e *Event) SetCancelBubble(v bool) {
	if v {
		e.StopPropagation()
	}
}

// ReturnValue is the legacy inverse of DefaultPrevented.
func (e *Event) ReturnValue() bool { return !e.defaultPrevented }

// SetReturnValue(false) is the legacy alias for PreventDefault.
func (e *Event) SetReturnValue(v bool) {
	if !v {
		e.PreventDefault()
	}
}

// resetDispatchState clears per-dispatch fields so the Event can be
// inspected afterward or (for non-tree targets) redispatched.
func (e *Event) resetDispatchState() {
	e.CurrentTarget = nil
	e.EventPhase = PhaseNone
	e.dispatching = false
}
