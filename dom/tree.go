package dom

import "unsafe"

// uintptrOf gives a stable, comparable ordering key for a node's identity,
// used only to break ties between disconnected trees.
func uintptrOf(n *Node) uintptr { return uintptr(unsafe.Pointer(n)) }

// Contains reports whether other is an inclusive descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Document position bitmask constants.
const (
	PositionDisconnected          = 0x01
	PositionPreceding             = 0x02
	PositionFollowing             = 0x04
	PositionContains              = 0x08
	PositionContainedBy           = 0x10
	PositionImplementationSpecific = 0x20
)

// CompareDocumentPosition implements the document-position bitmask
// algorithm, including the IMPLEMENTATION_SPECIFIC +
// PRECEDING/FOLLOWING tie-break for disconnected trees, using each tree's
// root pointer address as the arbitrary-but-stable ordering key.
func (n *Node) CompareDocumentPosition(other *Node) int {
	if n == other {
		return 0
	}
	if n.Contains(other) {
		return PositionContainedBy | PositionFollowing
	}
	if other.Contains(n) {
		return PositionContains | PositionPreceding
	}
	nRoot, otherRoot := n.RootNode(false), other.RootNode(false)
	if nRoot != otherRoot {
		pos := PositionDisconnected | PositionImplementationSpecific
		if nodeAddressLess(other, n) {
			return pos | PositionPreceding
		}
		return pos | PositionFollowing
	}
	if nodePrecedesInTreeOrder(n, other) {
		return PositionFollowing
	}
	return PositionPreceding
}

// nodeAddressLess gives an arbitrary but stable total order over otherwise
// unrelated nodes, used only to break ties for disconnected-tree comparison.
func nodeAddressLess(a, b *Node) bool {
	return uintptrOf(a) < uintptrOf(b)
}

// nodePrecedesInTreeOrder reports whether a comes before b in the shared
// tree's document order.
func nodePrecedesInTreeOrder(a, b *Node) bool {
	preceded := false
	walkTreeOrder(a.RootNode(false), func(n *Node) bool {
		if n == a {
			preceded = true
			return true
		}
		if n == b {
			return false
		}
		return true
	})
	return preceded
}

// walkTreeOrder visits root and every descendant depth-first pre-order,
// stopping early if fn returns false.
func walkTreeOrder(root *Node, fn func(*Node) bool) bool {
	if !fn(root) {
		return false
	}
	for c := root.firstChild; c != nil; c = c.nextSibling {
		if !walkTreeOrder(c, fn) {
			return false
		}
	}
	return true
}

// Children-only predicates used by the Parent/Child mixins.

func (n *Node) FirstElementChild() *Node {
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if c.kind == ElementKind {
			return c
		}
	}
	return nil
}

func (n *Node) LastElementChild() *Node {
	for c := n.lastChild; c != nil; c = c.prevSibling {
		if c.kind == ElementKind {
			return c
		}
	}
	return nil
}

func (n *Node) PreviousElementSibling() *Node {
	for c := n.prevSibling; c != nil; c = c.prevSibling {
		if c.kind == ElementKind {
			return c
		}
	}
	return nil
}

func (n *Node) NextElementSibling() *Node {
	for c := n.nextSibling; c != nil; c = c.nextSibling {
		if c.kind == ElementKind {
			return c
		}
	}
	return nil
}

func (n *Node) ChildElementCount() int {
	count := 0
	for c := n.firstChild; c != nil; c = c.nextSibling {
		if c.kind == ElementKind {
			count++
		}
	}
	return count
}

// TextContent concatenates all descendant Text data in tree order (for
// Element/DocumentFragment/ShadowRoot), or returns the raw data for
// CharacterData kinds.
func (n *Node) TextContent() string {
	if n.kind.isCharacterData() {
		return n.data
	}
	var sb []byte
	walkTreeOrder(n, func(c *Node) bool {
		if c.kind == TextKind || c.kind == CDATASectionKind {
			sb = append(sb, c.data...)
		}
		return true
	})
	return string(sb)
}

// SetTextContent replaces all children with a single Text node holding v
// (or no children if v is empty).
func (n *Node) SetTextContent(v string) error {
	children := snapshotChildren(n)
	for _, c := range children {
		if err := RemoveChild(n, c); err != nil {
			return err
		}
	}
	if v == "" {
		return nil
	}
	return Append(n, NewText(n.ownerDocument, v))
}
