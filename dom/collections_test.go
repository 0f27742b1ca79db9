package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildNodeListIsLive(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("p")
	list := parent.ChildNodes()
	assert.Equal(t, 0, list.Length())

	require.NoError(t, Append(parent, doc.CreateElement("a")))
	assert.Equal(t, 1, list.Length(), "ChildNodeList must observe the tree directly")

	require.NoError(t, Append(parent, doc.CreateElement("b")))
	assert.Equal(t, 2, list.Length())
	assert.Equal(t, "a", list.Item(0).TagName())
	assert.Equal(t, "b", list.Item(1).TagName())
	assert.Nil(t, list.Item(2))
}

func TestHTMLCollectionFiltersElementsOnly(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("p")
	require.NoError(t, Append(parent, doc.CreateTextNode("text")))
	require.NoError(t, Append(parent, doc.CreateElement("a")))
	require.NoError(t, Append(parent, doc.CreateComment("c")))
	require.NoError(t, Append(parent, doc.CreateElement("b")))

	children := parent.Children()
	assert.Equal(t, 2, children.Length())
	assert.Equal(t, "a", children.Item(0).TagName())
	assert.Equal(t, "b", children.Item(1).TagName())
}

func TestHTMLCollectionIsLiveAndConsistent(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("p")
	children := parent.Children()
	require.NoError(t, Append(parent, doc.CreateElement("a")))
	assert.Equal(t, 1, children.Length())
	require.NoError(t, RemoveChild(parent, parent.FirstChild()))
	assert.Equal(t, 0, children.Length())
}

func TestGetElementsByTagNameIsLiveAcrossDescendants(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	inner := doc.CreateElement("div")
	require.NoError(t, Append(root, inner))
	leaf := doc.CreateElement("div")
	require.NoError(t, Append(inner, leaf))

	divs := doc.GetElementsByTagName("div")
	// Note: scoped to the whole document's tree, not just root's subtree,
	// since GetElementsByTagName is a Document method in this test.
	require.NoError(t, Append(doc.Node, root))
	assert.Equal(t, 2, divs.Length())

	require.NoError(t, Append(inner, doc.CreateElement("div")))
	assert.Equal(t, 3, divs.Length())
}

func TestGetElementsByClassNameRequiresAllClasses(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	require.NoError(t, Append(doc.Node, root))
	a := doc.CreateElement("a")
	require.NoError(t, a.SetAttribute("class", "foo bar"))
	b := doc.CreateElement("b")
	require.NoError(t, b.SetAttribute("class", "foo"))
	require.NoError(t, Append(root, a))
	require.NoError(t, Append(root, b))

	matches := doc.GetElementsByClassName("foo bar")
	assert.Equal(t, 1, matches.Length())
	assert.Same(t, a, matches.Item(0))
}
