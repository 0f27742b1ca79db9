package event

import "github.com/oxhq/domkit/domerr"

// AddOptions mirrors the options bag of addEventListener.
type AddOptions struct {
	Capture bool
	Once    bool
	Passive bool
	Signal  Abortable
}

// Abortable is the minimal contract AddOptions.Signal must satisfy. It is
// structural (not imported from the abort package) so that event has no
// dependency on abort; *abort.Signal implements it.
type Abortable interface {
	IsAborted() bool
	AddAlgorithm(cb func()) any
	RemoveAlgorithm(token any)
}

type record struct {
	typ      string
	listener Listener
	capture  bool
	passive  bool
	once     bool
	removed  bool

	signal     Abortable
	abortToken any
}

func (r *record) key() (string, Listener, bool) { return r.typ, r.listener, r.capture }

// ListenerSet is the lazily-meaningful listener table embedded by every
// EventTarget. Its zero value is
// ready to use; it allocates on first Add, matching the rare-data lazy
// allocation rule.
type ListenerSet struct {
	byType map[string][]*record
}

// Add appends a new listener registration, or does nothing if an equal
// record (same type, listener, capture) is already registered, or if the
// supplied signal is already aborted.
func (s *ListenerSet) Add(typ string, l Listener, opts AddOptions) {
	if opts.Signal != nil && opts.Signal.IsAborted() {
		return
	}
	if s.find(typ, l, opts.Capture) != nil {
		return
	}
	rec := &record{typ: typ, listener: l, capture: opts.Capture, passive: opts.Passive, once: opts.Once}
	if opts.Signal != nil {
		rec.signal = opts.Signal
		rec.abortToken = opts.Signal.AddAlgorithm(func() {
			s.Remove(typ, l, opts.Capture)
		})
	}
	if s.byType == nil {
		s.byType = make(map[string][]*record)
	}
	s.byType[typ] = append(s.byType[typ], rec)
}

// Remove marks the matching record removed. Actual slice compaction is
// deferred to the next snapshot taken by Invoke, so a dispatch already in
// progress that captured an earlier snapshot still observes the removal
// via the record's removed flag.
func (s *ListenerSet) Remove(typ string, l Listener, capture bool) {
	rec := s.find(typ, l, capture)
	if rec == nil {
		return
	}
	rec.removed = true
	if rec.signal != nil {
		rec.signal.RemoveAlgorithm(rec.abortToken)
	}
	s.compact(typ)
}

func (s *ListenerSet) find(typ string, l Listener, capture bool) *record {
	for _, r := range s.byType[typ] {
		if !r.removed && r.listener == l && r.capture == capture {
			return r
		}
	}
	return nil
}

func (s *ListenerSet) compact(typ string) {
	recs := s.byType[typ]
	kept := recs[:0]
	for _, r := range recs {
		if !r.removed {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		delete(s.byType, typ)
		return
	}
	s.byType[typ] = kept
}

// snapshot returns the listeners currently registered for typ and phase,
// taken once per (target, phase) at the moment dispatch reaches that
// target, so listeners added mid-dispatch to this same target do not run
// for the in-progress pass.
func (s *ListenerSet) snapshot(typ string, wantCapture *bool) []*record {
	src := s.byType[typ]
	out := make([]*record, 0, len(src))
	for _, r := range src {
		if wantCapture != nil && r.capture != *wantCapture {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Invoke runs every non-removed listener in snapshot order for one target
// during one phase, implementing  steps 4-8's per-target loop.
// phase is written onto ev.EventPhase/CurrentTarget before each call so
// handlers observe correct state. It returns true if StopPropagation (or
// StopImmediatePropagation) was requested while running this target's
// listeners.
func (s *ListenerSet) Invoke(ev *Event, current EventTarget, phase Phase, capture *bool) (stopPropagation bool) {
	ev.CurrentTarget = current
	ev.EventPhase = phase

	for _, rec := range s.snapshot(ev.Type, capture) {
		if rec.removed {
			continue
		}
		if rec.once {
			s.Remove(rec.typ, rec.listener, rec.capture)
		}
		invokeListenerSafely(rec.listener, ev)
		if ev.immediateStopped() {
			return true
		}
	}
	return ev.propagationStopped()
}

// invokeListenerSafely runs a listener, structurally forbidding a panic
// from unwinding past the dispatch loop. A panicking listener is treated as having
// returned normally; the dispatch loop continues to the next listener.
func invokeListenerSafely(l Listener, ev *Event) {
	defer func() {
		_ = recover()
	}()
	l.HandleEvent(ev)
}

// Fire dispatches ev to a target with no ancestor path: target-phase
// listeners only, used by non-tree EventTargets such as AbortSignal to
// dispatch a non-bubbling, non-cancelable event.
func (s *ListenerSet) Fire(ev *Event, self EventTarget) (bool, error) {
	if ev.dispatching {
		return false, domerr.New(domerr.InvalidStateError, "event %q is already being dispatched", ev.Type)
	}
	ev.dispatching = true
	ev.Target = self
	s.Invoke(ev, self, PhaseAtTarget, nil)
	ev.resetDispatchState()
	return !ev.DefaultPrevented(), nil
}
