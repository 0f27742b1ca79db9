package dom

// NewDocumentType creates a detached DocumentType node.
func NewDocumentType(doc *Document, name, publicID, systemID string) *Node {
	n := newBaseNode(DocumentTypeKind, doc)
	n.docTypeName = doc.intern(name)
	n.publicID = publicID
	n.systemID = systemID
	return n
}

func (n *Node) PublicID() string { return n.publicID }
func (n *Node) SystemID() string { return n.systemID }
