package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDOMTokenListAddIsIdempotentAndOrdered(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	cl := el.ClassList()

	require.NoError(t, cl.Add("foo", "bar"))
	require.NoError(t, cl.Add("foo", "baz"))

	assert.Equal(t, 3, cl.Length())
	assert.Equal(t, "foo", cl.Item(0))
	assert.Equal(t, "bar", cl.Item(1))
	assert.Equal(t, "baz", cl.Item(2))
	assert.True(t, cl.Contains("bar"))
}

func TestDOMTokenListRemove(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	cl := el.ClassList()
	require.NoError(t, cl.Add("a", "b", "c"))

	require.NoError(t, cl.Remove("b"))
	assert.Equal(t, 2, cl.Length())
	assert.False(t, cl.Contains("b"))
}

func TestDOMTokenListToggle(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	cl := el.ClassList()

	present, err := cl.Toggle("x", nil)
	require.NoError(t, err)
	assert.True(t, present)

	present, err = cl.Toggle("x", nil)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestDOMTokenListToggleWithForce(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	cl := el.ClassList()
	force := true

	present, err := cl.Toggle("x", &force)
	require.NoError(t, err)
	assert.True(t, present)

	present, err = cl.Toggle("x", &force)
	require.NoError(t, err, "toggling to an already-present forced state is a no-op")
	assert.True(t, present)
}

func TestDOMTokenListRejectsInvalidTokens(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	cl := el.ClassList()

	err := cl.Add("has space")
	require.Error(t, err)
	assertKind(t, err, "InvalidCharacterError")

	err = cl.Add("")
	require.Error(t, err)
	assertKind(t, err, "InvalidCharacterError")
}

func TestDOMTokenListMirrorsClassAttribute(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	require.NoError(t, el.SetAttribute("class", "one two"))

	cl := el.ClassList()
	assert.Equal(t, 2, cl.Length())
	assert.ElementsMatch(t, []string{"one", "two"}, el.ClassNames())
}
