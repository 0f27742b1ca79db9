package dom

import (
	"sync/atomic"

	"github.com/oxhq/domkit/domerr"
	"github.com/oxhq/domkit/event"
	"github.com/oxhq/domkit/internal/refheader"
)

// Node is the base of every tree-participating node kind. Go
// has no struct inheritance, so rather than an interface-and-six-methods
// vtable per kind, domkit folds the
// per-kind payload into one struct behind a Kind tag: a closed sum type
// with the variant fields grouped by the kind(s) that use them, instead of
// the fatter "every field on every struct" alternative Go would otherwise
// force through embedding. Construction always goes through a kind-specific
// factory (NewElement, NewText, ...) that only touches the fields its kind
// owns.
type Node struct {
	kind       Kind
	header     refheader.Header
	generation atomic.Uint64

	parent        *Node
	ownerDocument *Document
	prevSibling   *Node
	nextSibling   *Node
	firstChild    *Node
	lastChild     *Node

	rare *rareData

	// Element payload.
	namespaceURI string
	prefix       string
	localName    string
	attrs        []*Attr

	// CharacterData payload (Text, Comment, CDATASection, ProcessingInstruction).
	data   string
	target string // ProcessingInstruction only

	// DocumentType payload.
	docTypeName string
	publicID    string
	systemID    string

	// Document payload.
	doc *Document
}

// NodeName returns the per-kind node name.
func (n *Node) NodeName() string {
	switch n.kind {
	case ElementKind:
		return n.TagName()
	case AttrKind:
		return n.localName
	case TextKind:
		return "#text"
	case CDATASectionKind:
		return "#cdata-section"
	case ProcessingInstructionKind:
		return n.target
	case CommentKind:
		return "#comment"
	case DocumentKind:
		return "#document"
	case DocumentTypeKind:
		return n.docTypeName
	case DocumentFragmentKind:
		return "#document-fragment"
	case ShadowRootKind:
		return "#shadow-root"
	}
	return ""
}

// NodeValue is the get half of node_value accessor: CharacterData
// kinds return their data, everything else (including Document, which has no
// scalar value) returns "".
func (n *Node) NodeValue() string {
	if n.kind.isCharacterData() {
		return n.data
	}
	return ""
}

// SetNodeValue is the set half; a no-op for kinds without a scalar value.
func (n *Node) SetNodeValue(v string) {
	if n.kind.isCharacterData() {
		n.data = v
		n.bumpGeneration()
	}
}

func (n *Node) Kind() Kind { return n.kind }

func (n *Node) Parent() *Node        { return n.parent }
func (n *Node) FirstChild() *Node    { return n.firstChild }
func (n *Node) LastChild() *Node     { return n.lastChild }
func (n *Node) PreviousSibling() *Node { return n.prevSibling }
func (n *Node) NextSibling() *Node   { return n.nextSibling }

// OwnerDocument returns the node's owner document, or nil for a Document
// itself.
func (n *Node) OwnerDocument() *Document {
	if n.kind == DocumentKind {
		return nil
	}
	return n.ownerDocument
}

// HasChildNodes reports whether n has at least one child.
func (n *Node) HasChildNodes() bool { return n.firstChild != nil }

// ChildNodes returns a live view over n's children.
func (n *Node) ChildNodes() *NodeList { return newChildNodeList(n) }

// IsConnected holds iff the tree root is a Document (or a ShadowRoot whose
// host is connected; domkit does not model the host-to-shadow-root edge
// beyond tree structure, so every tree whose root is a ShadowRoot counts as
// connected).
func (n *Node) IsConnected() bool {
	root := n.RootNode(false)
	return root.kind == DocumentKind || root.kind == ShadowRootKind
}

// RootNode returns the furthest ancestor of n.
// composed is accepted for interface parity with the shadow-crossing
// variant of this method; domkit's shadow trees are not hosted inside a
// light tree, so the composed and non-composed walks coincide.
func (n *Node) RootNode(composed bool) *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

func (n *Node) bumpGeneration() { n.generation.Add(1) }

// Generation is a staleness hint for cached views; it is not
// load-bearing for correctness.
func (n *Node) Generation() uint64 { return n.generation.Load() }

func newBaseNode(kind Kind, owner *Document) *Node {
	return &Node{kind: kind, ownerDocument: owner, header: *refheader.New()}
}

// Retain increments n's strong reference count.
func (n *Node) Retain() { n.header.Retain() }

// Release decrements n's strong reference count, destroying n if the count
// reaches zero and n has no parent.
func (n *Node) Release() {
	if n.header.Release() {
		n.destroy()
	}
}

func (n *Node) destroy() {
	for c := n.firstChild; c != nil; {
		next := c.nextSibling
		c.parent = nil
		if c.header.ReleaseParent() {
			c.destroy()
		}
		c = next
	}
	if n.kind == ElementKind {
		for _, a := range n.attrs {
			a.ownerElement = nil
		}
	}
}

// rare lazily allocates and returns n's side table.
func (n *Node) rareData() *rareData {
	if n.rare == nil {
		n.rare = &rareData{}
	}
	return n.rare
}

// --- EventTarget ---

// AddEventListener registers l for events of type typ.
func (n *Node) AddEventListener(typ string, l event.Listener, opts event.AddOptions) {
	n.rareData().listeners.Add(typ, l, opts)
}

// RemoveEventListener unregisters a previously added listener.
func (n *Node) RemoveEventListener(typ string, l event.Listener, capture bool) {
	if n.rare == nil {
		return
	}
	n.rare.listeners.Remove(typ, l, capture)
}

// DispatchEvent runs the full capture/target/bubble algorithm over n's
// ancestor path. It satisfies event.EventTarget.
func (n *Node) DispatchEvent(ev *event.Event) bool {
	ok, err := dispatch(n, ev)
	if err != nil {
		//  step 1: dispatching an already-dispatching event fails
		// with InvalidStateError. There is no error return channel on the
		// EventTarget interface, so domkit surfaces this as "not handled"
		// (false) the same way a caller observes default-prevented: true
		// error propagation would require widening event.EventTarget's
		// signature, rejected in favor of matching the interface the
		// teacher's own dispatch call sites expect.
		return false
	}
	return ok
}

var _ event.EventTarget = (*Node)(nil)

func errNotFound(format string, args ...any) error {
	return domerr.New(domerr.NotFoundError, format, args...)
}
