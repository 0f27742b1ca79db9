package abort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxhq/domkit/event"
)

func TestAbortInvokesAlgorithmsThenEvent(t *testing.T) {
	c := NewController()
	var order []string
	c.Signal().AddAlgorithm(func() { order = append(order, "algo") })
	var l event.ListenerFunc = func(e *event.Event) { order = append(order, "event") }
	c.Signal().AddEventListener("abort", &l, event.AddOptions{})

	c.Abort("reason")

	assert.Equal(t, []string{"algo", "event"}, order)
	assert.True(t, c.Signal().IsAborted())
	assert.Equal(t, "reason", c.Signal().Reason())
}

func TestAbortIsIdempotent(t *testing.T) {
	c := NewController()
	calls := 0
	c.Signal().AddAlgorithm(func() { calls++ })
	c.Abort("first")
	c.Abort("second")
	assert.Equal(t, 1, calls)
	assert.Equal(t, "first", c.Signal().Reason())
}

func TestAnyFlattensDependentSources(t *testing.T) {
	c1 := NewController()
	c2 := NewController()
	inner := Any([]*Signal{c1.Signal(), c2.Signal()})
	outer := Any([]*Signal{inner})

	for _, s := range outer.sources {
		assert.False(t, s.dependent, "flattened source must not itself be dependent")
	}
	assert.ElementsMatch(t, []*Signal{c1.Signal(), c2.Signal()}, outer.sources)
}

func TestAnyAlreadyAbortedSourceReturnsAbortedSignal(t *testing.T) {
	c1 := NewController()
	c1.Abort("boom")
	c2 := NewController()

	s := Any([]*Signal{c1.Signal(), c2.Signal()})
	assert.True(t, s.IsAborted())
	assert.Equal(t, "boom", s.Reason())
}

func TestAnyPropagatesOnAbortWithDiamondDependency(t *testing.T) {
	c1 := NewController()
	c2 := NewController()
	leaf := Any([]*Signal{c1.Signal(), c2.Signal()})

	fired := 0
	var l event.ListenerFunc = func(e *event.Event) { fired++ }
	leaf.AddEventListener("abort", &l, event.AddOptions{})

	c1.Abort("r")
	assert.Equal(t, 1, fired)
	require.True(t, leaf.IsAborted())
	assert.Equal(t, "r", leaf.Reason())

	// A second source firing after the dependent is already aborted must
	// not re-fire it.
	c2.Abort("r2")
	assert.Equal(t, 1, fired)
}

func TestThrowIfAborted(t *testing.T) {
	c := NewController()
	assert.NoError(t, c.Signal().ThrowIfAborted())
	c.Abort(nil)
	assert.Error(t, c.Signal().ThrowIfAborted())
}
