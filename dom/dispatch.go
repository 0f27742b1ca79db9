package dom

import (
	"github.com/oxhq/domkit/domerr"
	"github.com/oxhq/domkit/event"
)

// dispatch implements full capture/target/bubble algorithm over
// target's ancestor chain. Shadow-boundary crossing (composed) does not
// need special handling: domkit's shadow trees are not attached to a light
// tree via a parent link, so the ancestor walk already stops at whichever
// root the caller built, light or shadow.
func dispatch(target *Node, ev *event.Event) (bool, error) {
	if ev.IsDispatching() {
		return false, domerr.New(domerr.InvalidStateError, "event %q is already being dispatched", ev.Type)
	}
	ev.BeginDispatch(target)

	var path []*Node
	for anc := target.parent; anc != nil; anc = anc.parent {
		path = append(path, anc)
	}

	stopped := false

	// Capture phase: root toward target.
	for i := len(path) - 1; i >= 0 && !stopped; i-- {
		anc := path[i]
		if anc.rare != nil {
			capture := true
			if anc.rare.listeners.Invoke(ev, anc, event.PhaseCapturing, &capture) {
				stopped = true
			}
		}
		if ev.ImmediateStopped() {
			stopped = true
		}
	}

	// Target phase.
	if !stopped && !ev.ImmediateStopped() {
		if target.rare != nil {
			target.rare.listeners.Invoke(ev, target, event.PhaseAtTarget, nil)
		}
		if ev.PropagationStopped() {
			stopped = true
		}
	}

	// Bubble phase: target toward root.
	if ev.Bubbles && !stopped && !ev.ImmediateStopped() {
		for _, anc := range path {
			if ev.PropagationStopped() {
				break
			}
			if anc.rare != nil {
				bubble := false
				anc.rare.listeners.Invoke(ev, anc, event.PhaseBubbling, &bubble)
			}
			if ev.ImmediateStopped() {
				break
			}
		}
	}

	ev.EndDispatch()
	return !ev.DefaultPrevented(), nil
}

// ComposedPath returns the ordered list of targets ev will visit from
// target to the root, matching composed_path() for a dispatch
// that has not yet crossed any shadow boundary (domkit's shadow trees are
// not nested under a light-tree parent, so no hop is ever hidden).
func ComposedPath(target *Node) []*Node {
	path := []*Node{target}
	for anc := target.parent; anc != nil; anc = anc.parent {
		path = append(path, anc)
	}
	return path
}
