package dom

import (
	"strings"

	"github.com/oxhq/domkit/domerr"
)

// isNameStartChar/isNameChar are a pragmatic ASCII-plus-non-ASCII
// approximation of the XML NCName production: letters, digits, '_', '-', '.', and any byte
// outside ASCII are permitted; ':' is never permitted inside a local name
// since it is the qualified-name separator handled by validateAndExtract.
func isNameStartChar(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r > 0x7F
}

func isNameChar(r rune) bool {
	return isNameStartChar(r) || r == '-' || r == '.' || (r >= '0' && r <= '9')
}

func isValidNCName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isNameStartChar(r) {
				return false
			}
			continue
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

// validateAndExtract implements qualified-name validator,
// unifying what the design notes describe as two
// near-identical validation modules in the source: it parses
// (namespace?, prefix?, local_name) out of a qualified name and enforces
// the xml/xmlns cross-constraints.
func validateAndExtract(namespaceURI, qualifiedName string) (ns, prefix, local string, err error) {
	prefix, local, ok := splitQualifiedName(qualifiedName)
	if !ok {
		return "", "", "", domerr.New(domerr.InvalidCharacterError, "invalid qualified name %q", qualifiedName)
	}
	if prefix != "" && namespaceURI == "" {
		return "", "", "", domerr.New(domerr.NamespaceError, "prefix %q requires a namespace", prefix)
	}
	if prefix == "xml" && namespaceURI != xmlNamespace {
		return "", "", "", domerr.New(domerr.NamespaceError, "prefix \"xml\" requires the XML namespace")
	}
	if (prefix == "xmlns" || qualifiedName == "xmlns") && namespaceURI != xmlnsNamespace {
		return "", "", "", domerr.New(domerr.NamespaceError, "prefix/name \"xmlns\" requires the XMLNS namespace")
	}
	if namespaceURI == xmlnsNamespace && prefix != "xmlns" && qualifiedName != "xmlns" {
		return "", "", "", domerr.New(domerr.NamespaceError, "the XMLNS namespace requires prefix or name \"xmlns\"")
	}
	return namespaceURI, prefix, local, nil
}

func splitQualifiedName(qualifiedName string) (prefix, local string, ok bool) {
	if qualifiedName == "" {
		return "", "", false
	}
	parts := strings.SplitN(qualifiedName, ":", 2)
	if len(parts) == 1 {
		if !isValidNCName(parts[0]) {
			return "", "", false
		}
		return "", parts[0], true
	}
	if !isValidNCName(parts[0]) || !isValidNCName(parts[1]) {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// preInsertValidate implements Pre-insert gate.
func preInsertValidate(node, parent, child *Node) error {
	switch parent.kind {
	case DocumentKind, DocumentFragmentKind, ShadowRootKind, ElementKind:
	default:
		return domerr.New(domerr.HierarchyRequestError, "parent of kind %s cannot accept children", parent.kind)
	}
	if isHostIncludingInclusiveAncestor(node, parent) {
		return domerr.New(domerr.HierarchyRequestError, "node is an ancestor of the destination")
	}
	if child != nil && child.parent != parent {
		return errNotFound("reference child is not a child of parent")
	}
	switch node.kind {
	case DocumentFragmentKind, DocumentTypeKind, ElementKind, TextKind, CommentKind, ProcessingInstructionKind:
	default:
		return domerr.New(domerr.HierarchyRequestError, "node of kind %s cannot be inserted", node.kind)
	}
	if parent.kind == DocumentKind {
		return validateDocumentInsert(node, parent, child, nil)
	}
	if node.kind == DocumentTypeKind {
		return domerr.New(domerr.HierarchyRequestError, "DocumentType can only be inserted into a Document")
	}
	return nil
}

// replaceValidate implements Replace-validity gate: identical to
// pre-insert except the node being replaced (old) is excluded from the
// element/doctype counts.
func replaceValidate(node, parent, old *Node) error {
	switch parent.kind {
	case DocumentKind, DocumentFragmentKind, ShadowRootKind, ElementKind:
	default:
		return domerr.New(domerr.HierarchyRequestError, "parent of kind %s cannot accept children", parent.kind)
	}
	if isHostIncludingInclusiveAncestor(node, parent) {
		return domerr.New(domerr.HierarchyRequestError, "node is an ancestor of the destination")
	}
	if old.parent != parent {
		return errNotFound("node being replaced is not a child of parent")
	}
	switch node.kind {
	case DocumentFragmentKind, DocumentTypeKind, ElementKind, TextKind, CommentKind, ProcessingInstructionKind:
	default:
		return domerr.New(domerr.HierarchyRequestError, "node of kind %s cannot be inserted", node.kind)
	}
	if parent.kind == DocumentKind {
		return validateDocumentInsert(node, parent, nil, old)
	}
	if node.kind == DocumentTypeKind {
		return domerr.New(domerr.HierarchyRequestError, "DocumentType can only be inserted into a Document")
	}
	return nil
}

// preRemoveValidate implements Pre-remove gate.
func preRemoveValidate(child, parent *Node) error {
	if child.parent != parent {
		return errNotFound("child is not a child of parent")
	}
	return nil
}

// validateDocumentInsert enforces Document-specific structural
// rules: at most one Element child, at most one DocumentType child,
// DocumentType must precede Element, and the insertion-point ordering
// constraints for each. exactly one of child/excludeOld is meaningful per
// caller (pre-insert passes child, replace passes excludeOld).
func validateDocumentInsert(node, doc, child, excludeOld *Node) error {
	elementCount, doctypeCount := 0, 0
	for c := doc.firstChild; c != nil; c = c.nextSibling {
		if c == excludeOld {
			continue
		}
		switch c.kind {
		case ElementKind:
			elementCount++
		case DocumentTypeKind:
			doctypeCount++
		}
	}

	nodeElementCount, nodeDoctypeCount := countInsertedKinds(node)

	if elementCount+nodeElementCount > 1 {
		return domerr.New(domerr.HierarchyRequestError, "a Document may have at most one Element child")
	}
	if doctypeCount+nodeDoctypeCount > 1 {
		return domerr.New(domerr.HierarchyRequestError, "a Document may have at most one DocumentType child")
	}
	if nodeDoctypeCount > 0 && !doctypeMustPrecedeElement(doc, child, excludeOld) {
		return domerr.New(domerr.HierarchyRequestError, "a DocumentType must precede any Element")
	}
	if nodeElementCount > 0 && doctypesAfterInsertionPoint(doc, child, excludeOld) > 0 {
		return domerr.New(domerr.HierarchyRequestError, "an Element cannot be inserted before a DocumentType")
	}
	if node.kind == DocumentFragmentKind {
		for c := node.firstChild; c != nil; c = c.nextSibling {
			if c.kind == TextKind {
				return domerr.New(domerr.HierarchyRequestError, "a fragment containing Text cannot be inserted into a Document")
			}
		}
	}
	if node.kind == TextKind {
		return domerr.New(domerr.HierarchyRequestError, "Text cannot be inserted into a Document")
	}
	return nil
}

func countInsertedKinds(node *Node) (elements, doctypes int) {
	if node.kind == DocumentFragmentKind {
		for c := node.firstChild; c != nil; c = c.nextSibling {
			switch c.kind {
			case ElementKind:
				elements++
			case DocumentTypeKind:
				doctypes++
			}
		}
		return
	}
	switch node.kind {
	case ElementKind:
		return 1, 0
	case DocumentTypeKind:
		return 0, 1
	}
	return 0, 0
}

// doctypeMustPrecedeElement reports whether inserting a DocumentType at the
// position before child (or replacing excludeOld) keeps every Element after
// it: i.e. no Element currently precedes the insertion point.
func doctypeMustPrecedeElement(doc, child, excludeOld *Node) bool {
	for c := doc.firstChild; c != nil; c = c.nextSibling {
		if c == child || c == excludeOld {
			return true
		}
		if c.kind == ElementKind {
			return false
		}
	}
	return true
}

// doctypesAfterInsertionPoint counts DocumentType children strictly after
// the insertion point (before child, in document order). child == nil means
// "insert at the tail", where by definition nothing follows; for a replace,
// the insertion point is excludeOld's position. child itself being a
// DocumentType disqualifies the insertion outright, since an Element can
// never precede a DocumentType.
func doctypesAfterInsertionPoint(doc, child, excludeOld *Node) int {
	if child == nil {
		if excludeOld == nil {
			return 0
		}
		child = excludeOld
	}
	if child.kind == DocumentTypeKind && child != excludeOld {
		return 1
	}
	count := 0
	reached := false
	for c := doc.firstChild; c != nil; c = c.nextSibling {
		if c == child {
			reached = true
			continue
		}
		if c == excludeOld {
			continue
		}
		if reached && c.kind == DocumentTypeKind {
			count++
		}
	}
	return count
}

// isHostIncludingInclusiveAncestor reports whether node is parent or an
// ancestor of parent. domkit's shadow trees are not hosted inside a light tree, so
// the host-crossing extension coincides with the plain ancestor walk.
func isHostIncludingInclusiveAncestor(node, parent *Node) bool {
	for cur := parent; cur != nil; cur = cur.parent {
		if cur == node {
			return true
		}
	}
	return false
}
