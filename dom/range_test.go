package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeSelectNodeContents(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("p")
	require.NoError(t, Append(parent, doc.CreateTextNode("a")))
	require.NoError(t, Append(parent, doc.CreateTextNode("b")))

	r := doc.CreateRange()
	r.SelectNodeContents(parent)

	assert.Same(t, parent, r.StartContainer())
	assert.Equal(t, 0, r.StartOffset())
	assert.Same(t, parent, r.EndContainer())
	assert.Equal(t, 2, r.EndOffset())
	assert.False(t, r.Collapsed())
}

func TestRangeCollapseToStart(t *testing.T) {
	doc := NewDocument()
	text := doc.CreateTextNode("hello world")

	r := doc.CreateRange()
	require.NoError(t, r.SetStart(text, 2))
	require.NoError(t, r.SetEnd(text, 8))
	require.False(t, r.Collapsed())

	r.Collapse(true)
	assert.True(t, r.Collapsed())
	assert.Equal(t, 2, r.StartOffset())
	assert.Equal(t, 2, r.EndOffset())
}

func TestRangeSetStartAfterEndPullsEndForward(t *testing.T) {
	doc := NewDocument()
	text := doc.CreateTextNode("hello world")

	r := doc.CreateRange()
	require.NoError(t, r.SetStart(text, 2))
	require.NoError(t, r.SetEnd(text, 4))

	require.NoError(t, r.SetStart(text, 9))
	assert.Equal(t, 9, r.StartOffset())
	assert.Equal(t, 9, r.EndOffset())
}

func TestRangeSetStartOutOfRangeOffset(t *testing.T) {
	doc := NewDocument()
	text := doc.CreateTextNode("hi")

	r := doc.CreateRange()
	err := r.SetStart(text, 10)
	require.Error(t, err)
	assertKind(t, err, "IndexSizeError")
}

func TestRangeSelectNode(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("ul")
	a := doc.CreateElement("li")
	b := doc.CreateElement("li")
	c := doc.CreateElement("li")
	require.NoError(t, Append(parent, a))
	require.NoError(t, Append(parent, b))
	require.NoError(t, Append(parent, c))

	r := doc.CreateRange()
	require.NoError(t, r.SelectNode(b))

	assert.Same(t, parent, r.StartContainer())
	assert.Equal(t, 1, r.StartOffset())
	assert.Same(t, parent, r.EndContainer())
	assert.Equal(t, 2, r.EndOffset())
}

func TestRangeCloneRangeIsIndependent(t *testing.T) {
	doc := NewDocument()
	text := doc.CreateTextNode("hello world")

	r := doc.CreateRange()
	require.NoError(t, r.SetStart(text, 1))
	require.NoError(t, r.SetEnd(text, 5))

	clone := r.CloneRange()
	require.NoError(t, clone.SetStart(text, 0))

	assert.Equal(t, 1, r.StartOffset())
	assert.Equal(t, 0, clone.StartOffset())
}
