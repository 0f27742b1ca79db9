package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/domkit/abort"
	"github.com/oxhq/domkit/event"
)

func TestDispatchRunsCaptureTargetBubbleInOrder(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	mid := doc.CreateElement("mid")
	leaf := doc.CreateElement("leaf")
	require.NoError(t, Append(root, mid))
	require.NoError(t, Append(mid, leaf))

	var order []string
	record := func(tag string) *event.ListenerFunc {
		var f event.ListenerFunc = func(e *event.Event) { order = append(order, tag) }
		return &f
	}

	root.AddEventListener("click", record("root-capture"), event.AddOptions{Capture: true})
	mid.AddEventListener("click", record("mid-capture"), event.AddOptions{Capture: true})
	leaf.AddEventListener("click", record("leaf-target"), event.AddOptions{})
	mid.AddEventListener("click", record("mid-bubble"), event.AddOptions{})
	root.AddEventListener("click", record("root-bubble"), event.AddOptions{})

	ev := event.NewEvent("click", true, true, false)
	ok := leaf.DispatchEvent(ev)

	assert.True(t, ok)
	assert.Equal(t, []string{"root-capture", "mid-capture", "leaf-target", "mid-bubble", "root-bubble"}, order)
}

func TestDispatchWithoutBubblesSkipsBubblePhase(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	leaf := doc.CreateElement("leaf")
	require.NoError(t, Append(root, leaf))

	called := false
	var l event.ListenerFunc = func(e *event.Event) { called = true }
	root.AddEventListener("click", &l, event.AddOptions{})

	ev := event.NewEvent("click", false, true, false)
	leaf.DispatchEvent(ev)

	assert.False(t, called, "a non-bubbling event must not reach ancestor listeners")
}

func TestStopPropagationStopsFurtherTargetsButFinishesCurrent(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	leaf := doc.CreateElement("leaf")
	require.NoError(t, Append(root, leaf))

	var order []string
	var first event.ListenerFunc = func(e *event.Event) {
		order = append(order, "first")
		e.StopPropagation()
	}
	var second event.ListenerFunc = func(e *event.Event) { order = append(order, "second-same-target") }
	var rootListener event.ListenerFunc = func(e *event.Event) { order = append(order, "root") }

	leaf.AddEventListener("click", &first, event.AddOptions{})
	leaf.AddEventListener("click", &second, event.AddOptions{})
	root.AddEventListener("click", &rootListener, event.AddOptions{})

	leaf.DispatchEvent(event.NewEvent("click", true, true, false))

	assert.Equal(t, []string{"first", "second-same-target"}, order, "stopPropagation does not cut off listeners already queued on the current target")
}

func TestStopImmediatePropagationStopsEverythingOnCurrentTarget(t *testing.T) {
	doc := NewDocument()
	leaf := doc.CreateElement("leaf")

	var order []string
	var first event.ListenerFunc = func(e *event.Event) {
		order = append(order, "first")
		e.StopImmediatePropagation()
	}
	var second event.ListenerFunc = func(e *event.Event) { order = append(order, "second") }

	leaf.AddEventListener("click", &first, event.AddOptions{})
	leaf.AddEventListener("click", &second, event.AddOptions{})

	leaf.DispatchEvent(event.NewEvent("click", false, true, false))

	assert.Equal(t, []string{"first"}, order)
}

func TestOnceListenerRunsExactlyOnce(t *testing.T) {
	doc := NewDocument()
	leaf := doc.CreateElement("leaf")

	calls := 0
	var l event.ListenerFunc = func(e *event.Event) { calls++ }
	leaf.AddEventListener("click", &l, event.AddOptions{Once: true})

	leaf.DispatchEvent(event.NewEvent("click", false, true, false))
	leaf.DispatchEvent(event.NewEvent("click", false, true, false))

	assert.Equal(t, 1, calls)
}

func TestAbortSignalRemovesListenerBeforeItFires(t *testing.T) {
	doc := NewDocument()
	leaf := doc.CreateElement("leaf")
	ctrl := abort.NewController()

	calls := 0
	var l event.ListenerFunc = func(e *event.Event) { calls++ }
	leaf.AddEventListener("click", &l, event.AddOptions{Signal: ctrl.Signal()})

	ctrl.Abort("cancelled")
	leaf.DispatchEvent(event.NewEvent("click", false, true, false))

	assert.Equal(t, 0, calls, "aborting the signal must deregister the listener before dispatch")
}

func TestListenerRemovedDuringDispatchDoesNotRunForInFlightPass(t *testing.T) {
	doc := NewDocument()
	leaf := doc.CreateElement("leaf")

	var secondRan bool
	var second event.ListenerFunc = func(e *event.Event) { secondRan = true }
	var first event.ListenerFunc = func(e *event.Event) {
		leaf.RemoveEventListener("click", &second, false)
	}

	leaf.AddEventListener("click", &first, event.AddOptions{})
	leaf.AddEventListener("click", &second, event.AddOptions{})

	leaf.DispatchEvent(event.NewEvent("click", false, true, false))

	assert.False(t, secondRan, "a listener removed by an earlier listener in the same snapshot pass must not run")
}

func TestPreventDefaultOnlyTakesEffectWhenCancelable(t *testing.T) {
	doc := NewDocument()
	leaf := doc.CreateElement("leaf")

	var l event.ListenerFunc = func(e *event.Event) { e.PreventDefault() }
	leaf.AddEventListener("click", &l, event.AddOptions{})

	notCancelled := event.NewEvent("click", false, false, false)
	ok := leaf.DispatchEvent(notCancelled)
	assert.True(t, ok, "preventDefault on a non-cancelable event has no effect")

	cancelled := event.NewEvent("click", false, true, false)
	ok = leaf.DispatchEvent(cancelled)
	assert.False(t, ok)
}
