// Package abort implements AbortController and AbortSignal,
// including AbortSignal.Any's dependent-signal flattening.
package abort

import (
	"github.com/oxhq/domkit/domerr"
	"github.com/oxhq/domkit/event"
)

// algorithm is one entry of a signal's ordered abort-algorithm list.
type algorithm struct {
	cb      func()
	removed bool
}

// Signal is an AbortSignal. The zero value is not valid; use NewSignal or
// Any.
type Signal struct {
	events event.ListenerSet

	aborted bool
	reason  any

	algorithms []*algorithm

	// dependent is true for signals created by Any; sources holds the
	// already-flattened set of non-dependent signals driving this one.
	dependent bool
	sources   []*Signal
	// dependents holds every signal that named this one as a (flattened)
	// source, so SignalAbort can propagate to them in order.
	dependents []*Signal
}

// NewSignal returns a fresh, non-aborted, non-dependent signal. Most
// callers get a signal from a Controller rather than constructing one
// directly.
func NewSignal() *Signal {
	return &Signal{}
}

// IsAborted reports whether the signal has fired.
func (s *Signal) IsAborted() bool { return s.aborted }

// Reason returns the abort reason, or nil if not yet aborted.
func (s *Signal) Reason() any { return s.reason }

// ThrowIfAborted returns a domerr.AbortError carrying Reason if the signal
// has fired, or nil otherwise.
func (s *Signal) ThrowIfAborted() error {
	if !s.aborted {
		return nil
	}
	return domerr.New(domerr.AbortError, "signal aborted: %v", s.reason)
}

// AddAlgorithm appends cb to the abort-algorithm list, returning a token
// RemoveAlgorithm accepts. A no-op (returning a nil token) if the signal is
// already aborted.
func (s *Signal) AddAlgorithm(cb func()) any {
	if s.aborted {
		return nil
	}
	a := &algorithm{cb: cb}
	s.algorithms = append(s.algorithms, a)
	return a
}

// RemoveAlgorithm removes the algorithm identified by a token previously
// returned from AddAlgorithm, by identity.
func (s *Signal) RemoveAlgorithm(token any) {
	a, ok := token.(*algorithm)
	if !ok || a == nil {
		return
	}
	a.removed = true
}

// SignalAbort aborts the signal with the given reason (defaulting to a
// generic AbortError if reason is nil), runs its algorithms, dispatches a
// non-bubbling non-cancelable "abort" event, then propagates to every
// dependent signal in registration order. A second call is a
// no-op, so aborting twice has the same observable effect as once.
func (s *Signal) SignalAbort(reason any) {
	if s.aborted {
		return
	}
	if reason == nil {
		reason = domerr.New(domerr.AbortError, "signal aborted")
	}
	s.aborted = true
	s.reason = reason

	algos := s.algorithms
	s.algorithms = nil
	for _, a := range algos {
		if !a.removed {
			a.cb()
		}
	}

	s.DispatchEvent(event.NewEvent("abort", false, false, false))

	for _, dep := range s.dependents {
		if !dep.aborted {
			dep.SignalAbort(s.reason)
		}
	}
}

// AddEventListener registers l for typ, honoring opts.Signal per the
// generic EventTarget contract.
func (s *Signal) AddEventListener(typ string, l event.Listener, opts event.AddOptions) {
	s.events.Add(typ, l, opts)
}

// RemoveEventListener removes a previously registered listener.
func (s *Signal) RemoveEventListener(typ string, l event.Listener, capture bool) {
	s.events.Remove(typ, l, capture)
}

// DispatchEvent dispatches ev to this signal with no ancestor path: target
// phase only.
func (s *Signal) DispatchEvent(ev *event.Event) bool {
	ok, err := s.events.Fire(ev, s)
	if err != nil {
		return false
	}
	return ok
}

// Any returns a dependent signal whose abort state is driven by sources.
// If any source is already aborted, the returned signal is immediately
// aborted with that source's reason (not dependent; it has nothing left to
// propagate). Otherwise dependent-signal flattening replaces
// any source that is itself dependent with its own already-flattened
// source set, so that no returned signal ever names another dependent
// signal as a source.
func Any(sources []*Signal) *Signal {
	for _, src := range sources {
		if src.aborted {
			out := &Signal{aborted: true, reason: src.reason}
			return out
		}
	}

	out := &Signal{dependent: true}
	seen := make(map[*Signal]bool)
	for _, src := range sources {
		flattenInto(out, src, seen)
	}
	return out
}

func flattenInto(out *Signal, src *Signal, seen map[*Signal]bool) {
	if src.dependent {
		for _, ultimate := range src.sources {
			flattenInto(out, ultimate, seen)
		}
		return
	}
	if seen[src] {
		return
	}
	seen[src] = true
	out.sources = append(out.sources, src)
	src.dependents = append(src.dependents, out)
}

// Unlink detaches a dependent signal from every source's dependents list.
// Go's garbage collector makes this optional for memory safety (unlike the
// reference design's manual refcounting), but callers that hold long-lived
// source signals and short-lived Any() results may call it to drop the
// back-reference promptly.
func (s *Signal) Unlink() {
	if !s.dependent {
		return
	}
	for _, src := range s.sources {
		filtered := src.dependents[:0]
		for _, d := range src.dependents {
			if d != s {
				filtered = append(filtered, d)
			}
		}
		src.dependents = filtered
	}
	s.sources = nil
}
