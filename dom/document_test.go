package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentElementHeadBodyDocType(t *testing.T) {
	doc := NewDocument()
	dt := NewDocumentType(doc, "html", "", "")
	require.NoError(t, Append(doc.Node, dt))

	html := doc.CreateElement("html")
	require.NoError(t, Append(doc.Node, html))

	head := doc.CreateElement("head")
	body := doc.CreateElement("body")
	require.NoError(t, Append(html, head))
	require.NoError(t, Append(html, body))

	assert.Same(t, html, doc.DocumentElement())
	assert.Same(t, head, doc.Head())
	assert.Same(t, body, doc.Body())
	assert.Same(t, dt, doc.DocType())
}

func TestCreateElementNSValidatesQualifiedName(t *testing.T) {
	doc := NewDocument()
	el, err := doc.CreateElementNS("http://www.w3.org/2000/svg", "svg:rect")
	require.NoError(t, err)
	assert.Equal(t, "rect", el.LocalName())
	assert.Equal(t, "svg", el.Prefix())
	assert.Equal(t, "http://www.w3.org/2000/svg", el.NamespaceURI())
}

func TestGetElementByIDFindsFirstMatchInTreeOrder(t *testing.T) {
	doc := NewDocument()
	root := doc.CreateElement("root")
	require.NoError(t, Append(doc.Node, root))

	a := doc.CreateElement("a")
	require.NoError(t, a.SetAttribute("id", "target"))
	b := doc.CreateElement("b")
	require.NoError(t, b.SetAttribute("id", "target"))
	require.NoError(t, Append(root, a))
	require.NoError(t, Append(root, b))

	assert.Same(t, a, doc.GetElementByID("target"))
	assert.Nil(t, doc.GetElementByID("missing"))
}

func TestRetainReleaseExternalLifecycle(t *testing.T) {
	doc := NewDocument()
	doc.RetainExternal()
	doc.ReleaseExternal()
	// Document still has the refcount set by NewDocument, so this must not
	// have released the underlying node graph.
	assert.NotNil(t, doc.Node)
	doc.ReleaseExternal()
}

func TestAdoptNodeRejectsAdoptingADocument(t *testing.T) {
	src := NewDocument()
	dst := NewDocument()
	_, err := dst.AdoptNode(src.Node)
	require.Error(t, err)
	assertKind(t, err, "NotSupportedError")
}
