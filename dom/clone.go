package dom

// Clone implements clone contract: a detached new node with a
// fresh refcount of 1, the same owner document (unless an importing
// document is supplied via ImportNode/cloneNode's doc argument), a
// duplicated payload, and, if deep, recursively cloned descendants.
func (n *Node) Clone(deep bool) *Node {
	return cloneNode(n, n.ownerDocument, deep)
}

func cloneNode(n *Node, doc *Document, deep bool) *Node {
	var c *Node
	switch n.kind {
	case ElementKind:
		c = newBaseNode(ElementKind, doc)
		c.namespaceURI = n.namespaceURI
		c.prefix = doc.intern(n.prefix)
		c.localName = doc.intern(n.localName)
		for _, a := range n.attrs {
			c.attrs = append(c.attrs, &Attr{
				namespaceURI: a.namespaceURI,
				prefix:       doc.intern(a.prefix),
				localName:    doc.intern(a.localName),
				value:        a.value,
				ownerElement: c,
			})
		}
	case TextKind, CommentKind, CDATASectionKind:
		c = newBaseNode(n.kind, doc)
		c.data = n.data
	case ProcessingInstructionKind:
		c = newBaseNode(ProcessingInstructionKind, doc)
		c.target = doc.intern(n.target)
		c.data = n.data
	case DocumentTypeKind:
		c = newBaseNode(DocumentTypeKind, doc)
		c.docTypeName = doc.intern(n.docTypeName)
		c.publicID = n.publicID
		c.systemID = n.systemID
	case DocumentFragmentKind:
		c = newBaseNode(DocumentFragmentKind, doc)
	case ShadowRootKind:
		c = newBaseNode(ShadowRootKind, doc)
	case DocumentKind:
		nd := NewDocument()
		nd.url, nd.contentType, nd.compatMode = n.doc.url, n.doc.contentType, n.doc.compatMode
		c = nd.Node
	default:
		c = newBaseNode(n.kind, doc)
	}

	if deep {
		for ch := n.firstChild; ch != nil; ch = ch.nextSibling {
			Append(c, cloneNode(ch, doc, true))
		}
	}
	return c
}

// IsSameNode is pointer identity.
func (n *Node) IsSameNode(other *Node) bool { return n == other }

// IsEqualNode reports full per-kind structural equality: same kind, same
// kind-specific data (attribute set compared order-independently for
// Element), and recursively equal children lists of equal length.
func (n *Node) IsEqualNode(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case ElementKind:
		if n.namespaceURI != other.namespaceURI || n.prefix != other.prefix || n.localName != other.localName {
			return false
		}
		if len(n.attrs) != len(other.attrs) {
			return false
		}
		for _, a := range n.attrs {
			ov, _ := other.findAttr(a.namespaceURI, a.localName)
			if ov == nil || ov.value != a.value {
				return false
			}
		}
	case TextKind, CommentKind, CDATASectionKind:
		if n.data != other.data {
			return false
		}
	case ProcessingInstructionKind:
		if n.target != other.target || n.data != other.data {
			return false
		}
	case DocumentTypeKind:
		if n.docTypeName != other.docTypeName || n.publicID != other.publicID || n.systemID != other.systemID {
			return false
		}
	}

	a, b := n.firstChild, other.firstChild
	for a != nil && b != nil {
		if !a.IsEqualNode(b) {
			return false
		}
		a, b = a.nextSibling, b.nextSibling
	}
	return a == nil && b == nil
}

// Normalize walks depth-first, and for each Element/DocumentFragment/
// ShadowRoot descendant (inclusive of n itself when n is one of those
// kinds or a Document) removes empty Text children and merges adjacent Text children
// into the first of the run. No mutation records are queued for the
// merges themselves; only the surviving node's character-data change from
// the merge is observable.
func (n *Node) Normalize() {
	switch n.kind {
	case ElementKind, DocumentFragmentKind, ShadowRootKind, DocumentKind:
	default:
		return
	}

	c := n.firstChild
	for c != nil {
		next := c.nextSibling
		switch c.kind {
		case ElementKind, DocumentFragmentKind, ShadowRootKind:
			c.Normalize()
		case TextKind:
			if c.data == "" {
				detach(c)
				c = next
				continue
			}
			for next != nil && next.kind == TextKind {
				afterNext := next.nextSibling
				c.data += next.data
				detach(next)
				next = afterNext
			}
		}
		c = next
	}
}
