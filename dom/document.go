package dom

import (
	"github.com/google/uuid"

	"github.com/oxhq/domkit/domerr"
	"github.com/oxhq/domkit/internal/strpool"
)

// Document is the root of a tree. It embeds *Node so the full
// Node surface (child links, EventTarget, mutation entry points) is
// available directly on a *Document, while adding the document-only state:
// the string pool, the external-reference count, and diagnostic metadata.
type Document struct {
	*Node

	pool *strpool.Pool

	// debugID is assigned at construction for diagnostics: it has no bearing on equality or identity,
	// only on String() output and cmd/domkit-watch's record tagging.
	debugID uuid.UUID

	url         string
	contentType string
	compatMode  string

	// externalRefCount tracks user-facing references separate from the
	// node refcount, so a Document with live external handles
	// is not freed purely because its node graph shrinks to zero.
	externalRefCount int
}

// NewDocument creates a fresh, empty Document with its own string pool.
func NewDocument() *Document {
	d := &Document{pool: strpool.New(), debugID: uuid.New(), contentType: "application/xml"}
	n := newBaseNode(DocumentKind, nil)
	d.Node = n
	n.ownerDocument = d
	n.doc = d
	d.externalRefCount = 1
	return d
}

// DebugID is a diagnostic-only identifier.
func (d *Document) DebugID() string { return d.debugID.String() }

func (d *Document) URL() string         { return d.url }
func (d *Document) SetURL(u string)     { d.url = u }
func (d *Document) ContentType() string { return d.contentType }
func (d *Document) CompatMode() string  { return d.compatMode }

func (d *Document) intern(s string) string {
	if s == "" {
		return s
	}
	return d.pool.Intern(s)
}

// DocumentElement is the Document's single Element child, if any.
func (d *Document) DocumentElement() *Node {
	for c := d.firstChild; c != nil; c = c.nextSibling {
		if c.kind == ElementKind {
			return c
		}
	}
	return nil
}

// Head returns the first child of the document element named "head", the
// conventional HTML document-structure accessor Document payload
// description reserves a field for.
func (d *Document) Head() *Node { return d.namedChildOfRoot("head") }

// Body returns the first child of the document element named "body".
func (d *Document) Body() *Node { return d.namedChildOfRoot("body") }

func (d *Document) namedChildOfRoot(name string) *Node {
	root := d.DocumentElement()
	if root == nil {
		return nil
	}
	for c := root.firstChild; c != nil; c = c.nextSibling {
		if c.kind == ElementKind && c.localName == name {
			return c
		}
	}
	return nil
}

// DocType returns the Document's DocumentType child, if any.
func (d *Document) DocType() *Node {
	for c := d.firstChild; c != nil; c = c.nextSibling {
		if c.kind == DocumentTypeKind {
			return c
		}
	}
	return nil
}

// RetainExternal/ReleaseExternal track the user-facing reference count
// described separately from the node refcount.
func (d *Document) RetainExternal() { d.externalRefCount++ }

func (d *Document) ReleaseExternal() {
	d.externalRefCount--
	if d.externalRefCount <= 0 {
		d.Release()
	}
}

// CreateElement, CreateElementNS, CreateTextNode, CreateComment,
// CreateCDATASection, CreateProcessingInstruction, CreateDocumentFragment,
// CreateAttribute are the Document factory methods; each simply
// forwards to the kind-specific constructor with d as owner.
func (d *Document) CreateElement(name string) *Node { return NewElement(d, name) }

func (d *Document) CreateElementNS(namespaceURI, qualifiedName string) (*Node, error) {
	return NewElementNS(d, namespaceURI, qualifiedName)
}

func (d *Document) CreateTextNode(data string) *Node { return NewText(d, data) }

func (d *Document) CreateComment(data string) *Node { return NewComment(d, data) }

func (d *Document) CreateCDATASection(data string) *Node { return NewCDATASection(d, data) }

func (d *Document) CreateProcessingInstruction(target, data string) *Node {
	return NewProcessingInstruction(d, target, data)
}

func (d *Document) CreateDocumentFragment() *Node { return NewDocumentFragment(d) }

func (d *Document) CreateAttribute(name string) *Attr {
	return &Attr{localName: d.intern(name)}
}

// CreateRange returns a new Range collapsed at the start of d.
func (d *Document) CreateRange() *Range { return NewRange(d) }

// GetElementByID walks the document tree in tree order for the first
// Element whose id matches.
func (d *Document) GetElementByID(id string) *Node {
	var found *Node
	walkTreeOrder(d.Node, func(n *Node) bool {
		if n.kind == ElementKind && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// GetElementsByTagName returns a live collection of descendant elements
// whose TagName matches name, or any element if name is "*".
func (d *Document) GetElementsByTagName(name string) *HTMLCollection {
	return newDescendantCollection(d.Node, func(n *Node) bool {
		return name == "*" || n.TagName() == name
	})
}

// GetElementsByClassName returns a live collection of descendant elements
// carrying every class in the whitespace-separated className.
func (d *Document) GetElementsByClassName(className string) *HTMLCollection {
	wanted := splitClassNames(className)
	return newDescendantCollection(d.Node, func(n *Node) bool {
		return hasAllClasses(n.ClassNames(), wanted)
	})
}

func splitClassNames(s string) []string {
	var out []string
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != ' ' && s[i] != '\t' && s[i] != '\n' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, s[start:i])
			start = -1
		}
	}
	return out
}

func hasAllClasses(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// ImportNode implements import_node: clone(external, deep) into
// d, then adopt.
func (d *Document) ImportNode(external *Node, deep bool) (*Node, error) {
	clone := cloneNode(external, d, deep)
	adopt(clone, d)
	return clone, nil
}

// AdoptNode re-parents node into d.
func (d *Document) AdoptNode(node *Node) (*Node, error) {
	if node.kind == DocumentKind {
		return nil, domerr.New(domerr.NotSupportedError, "a Document cannot adopt another Document")
	}
	adopt(node, d)
	return node, nil
}
