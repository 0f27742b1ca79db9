package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendMaintainsSiblingInvariants(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("parent")
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	c := doc.CreateElement("c")

	require.NoError(t, Append(parent, a))
	require.NoError(t, Append(parent, b))
	require.NoError(t, Append(parent, c))

	assert.Same(t, a, parent.FirstChild())
	assert.Same(t, c, parent.LastChild())
	assert.Same(t, parent, a.Parent())

	var forward []*Node
	for cur := parent.FirstChild(); cur != nil; cur = cur.NextSibling() {
		forward = append(forward, cur)
	}
	assert.Equal(t, []*Node{a, b, c}, forward)

	var backward []*Node
	for cur := parent.LastChild(); cur != nil; cur = cur.PreviousSibling() {
		backward = append(backward, cur)
	}
	assert.Equal(t, []*Node{c, b, a}, backward)

	assert.Same(t, a, b.PreviousSibling())
	assert.Same(t, b, a.NextSibling())
}

func TestInsertBeforeSplicesAtPosition(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("parent")
	a := doc.CreateElement("a")
	c := doc.CreateElement("c")
	require.NoError(t, Append(parent, a))
	require.NoError(t, Append(parent, c))

	b := doc.CreateElement("b")
	require.NoError(t, InsertBefore(parent, b, c))

	assert.Same(t, b, a.NextSibling())
	assert.Same(t, c, b.NextSibling())
	assert.Same(t, b, c.PreviousSibling())
}

func TestInsertingFragmentFlattensChildren(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("parent")
	frag := doc.CreateDocumentFragment()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	require.NoError(t, Append(frag, a))
	require.NoError(t, Append(frag, b))

	require.NoError(t, Append(parent, frag))

	assert.Equal(t, 2, parent.ChildElementCount())
	assert.Same(t, a, parent.FirstChild())
	assert.Same(t, b, parent.LastChild())
	assert.False(t, frag.HasChildNodes(), "fragment must have zero children after insertion")
}

func TestRemoveChildClearsParentAndSiblingLinks(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("parent")
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	require.NoError(t, Append(parent, a))
	require.NoError(t, Append(parent, b))

	require.NoError(t, RemoveChild(parent, a))

	assert.Nil(t, a.Parent())
	assert.Nil(t, a.NextSibling())
	assert.Same(t, b, parent.FirstChild())
	assert.Same(t, b, parent.LastChild())
}

func TestReplaceChildKeepsPosition(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("parent")
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	c := doc.CreateElement("c")
	require.NoError(t, Append(parent, a))
	require.NoError(t, Append(parent, b))
	require.NoError(t, Append(parent, c))

	x := doc.CreateElement("x")
	require.NoError(t, ReplaceChild(parent, x, b))

	assert.Same(t, x, a.NextSibling())
	assert.Same(t, c, x.NextSibling())
	assert.Nil(t, b.Parent())
}

func TestPreInsertRejectsSelfAncestor(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	child := doc.CreateElement("child")
	require.NoError(t, Append(root, child))

	err := Append(child, root)
	require.Error(t, err)
	assertKind(t, err, "HierarchyRequestError")
}

func TestPreInsertRejectsSecondElementIntoDocument(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, Append(doc.Node, doc.CreateElement("html")))

	err := Append(doc.Node, doc.CreateElement("second"))
	require.Error(t, err)
	assertKind(t, err, "HierarchyRequestError")
}

func TestPreInsertRejectsTextIntoDocument(t *testing.T) {
	doc := NewDocument()
	err := Append(doc.Node, doc.CreateTextNode("hi"))
	require.Error(t, err)
	assertKind(t, err, "HierarchyRequestError")
}

func TestPreInsertRejectsDocTypeAfterElement(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, Append(doc.Node, doc.CreateElement("html")))

	dt := NewDocumentType(doc, "html", "", "")
	err := Append(doc.Node, dt)
	require.Error(t, err)
	assertKind(t, err, "HierarchyRequestError")
}

func TestRemoveChildRejectsNonChild(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	err := RemoveChild(a, b)
	require.Error(t, err)
	assertKind(t, err, "NotFoundError")
}

func TestOrphanRemoveIsANoop(t *testing.T) {
	doc := NewDocument()
	n := doc.CreateElement("n")
	n.Remove()
	assert.Nil(t, n.Parent())
}

func TestReplaceChildrenScenario(t *testing.T) {
	doc := NewDocument()
	parent := doc.CreateElement("parent")
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	c := doc.CreateElement("c")
	require.NoError(t, Append(parent, a))
	require.NoError(t, Append(parent, b))
	require.NoError(t, Append(parent, c))

	x := doc.CreateElement("x")
	y := doc.CreateElement("y")
	require.NoError(t, parent.ReplaceChildren(Of(x), Str("text"), Of(y)))

	kids := parent.ChildNodes().All()
	require.Len(t, kids, 3)
	assert.Same(t, x, kids[0])
	assert.Equal(t, "text", kids[1].NodeValue())
	assert.Same(t, y, kids[2])

	assert.Nil(t, a.Parent())
	assert.Nil(t, b.Parent())
	assert.Nil(t, c.Parent())
}

func TestMoveBeforeRelocatesWithoutRemoveInsertSideEffects(t *testing.T) {
	doc := NewDocument()
	parentA := doc.CreateElement("parentA")
	parentB := doc.CreateElement("parentB")
	node := doc.CreateElement("node")
	require.NoError(t, Append(parentA, node))

	require.NoError(t, MoveBefore(parentB, node, nil))

	assert.Same(t, parentB, node.Parent())
	assert.Nil(t, parentA.FirstChild())
}

func TestMoveBeforeRejectsMovingIntoOwnDescendant(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	child := doc.CreateElement("child")
	require.NoError(t, Append(root, child))

	err := MoveBefore(child, root, nil)
	require.Error(t, err)
	assertKind(t, err, "HierarchyRequestError")
}

func assertKind(t *testing.T, err error, kind string) {
	t.Helper()
	assert.Contains(t, err.Error(), kind)
}
