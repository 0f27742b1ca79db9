package dom

import "github.com/oxhq/domkit/domerr"

// NodeOrString is the two-variant sum used in place of variadic
// (Node | DOMString) union arguments to prepend/append/before/
// after/replaceWith/replaceChildren: exactly one of Node/Text is set.
type NodeOrString struct {
	Node *Node
	Text string
}

// Of builds a NodeOrString wrapping a *Node.
func Of(n *Node) NodeOrString { return NodeOrString{Node: n} }

// Str builds a NodeOrString wrapping a string, materialized into a Text
// node lazily against the owner document at the point of use.
func Str(s string) NodeOrString { return NodeOrString{Text: s} }

func (v NodeOrString) resolve(doc *Document) *Node {
	if v.Node != nil {
		return v.Node
	}
	return NewText(doc, v.Text)
}

// convertNodesIntoNode merges a (Node | string) variadic list into a single
// node: strings become Text nodes, and if there is more than one resulting
// node they are gathered into a DocumentFragment.
func convertNodesIntoNode(doc *Document, items []NodeOrString) *Node {
	if len(items) == 1 {
		return items[0].resolve(doc)
	}
	frag := NewDocumentFragment(doc)
	for _, it := range items {
		Append(frag, it.resolve(doc))
	}
	return frag
}

// --- ParentNode mixin ---

// Prepend inserts items before n's first child.
func (n *Node) Prepend(items ...NodeOrString) error {
	return InsertBefore(n, convertNodesIntoNode(n.ownerDocument, items), n.firstChild)
}

// AppendNodes appends items after n's last child. Named to avoid colliding
// with the package-level Append(parent, node) mutation entry point.
func (n *Node) AppendNodes(items ...NodeOrString) error {
	return Append(n, convertNodesIntoNode(n.ownerDocument, items))
}

// ReplaceChildren replaces all of n's children with items.
func (n *Node) ReplaceChildren(items ...NodeOrString) error {
	children := snapshotChildren(n)
	for _, c := range children {
		if err := RemoveChild(n, c); err != nil {
			return err
		}
	}
	if len(items) == 0 {
		return nil
	}
	return Append(n, convertNodesIntoNode(n.ownerDocument, items))
}

// Children is the live Element-filtered view of n's direct children.
func (n *Node) Children() *HTMLCollection { return newElementChildrenCollection(n) }

// MoveBefore is the ParentNode-mixin form of the package-level MoveBefore,
// relocating node to just before refChild among n's children.
func (n *Node) MoveBefore(node, refChild *Node) error {
	return MoveBefore(n, node, refChild)
}

// --- ChildNode mixin ---

// Before inserts items as n's previous siblings.
func (n *Node) Before(items ...NodeOrString) error {
	if n.parent == nil {
		return domerr.New(domerr.HierarchyRequestError, "node has no parent")
	}
	return InsertBefore(n.parent, convertNodesIntoNode(n.ownerDocument, items), n)
}

// After inserts items as n's next siblings.
func (n *Node) After(items ...NodeOrString) error {
	if n.parent == nil {
		return domerr.New(domerr.HierarchyRequestError, "node has no parent")
	}
	return InsertBefore(n.parent, convertNodesIntoNode(n.ownerDocument, items), n.nextSibling)
}

// ReplaceWith replaces n, among its siblings, with items.
func (n *Node) ReplaceWith(items ...NodeOrString) error {
	if n.parent == nil {
		return domerr.New(domerr.HierarchyRequestError, "node has no parent")
	}
	parent := n.parent
	prev, next := n.prevSibling, n.nextSibling
	detach(n)
	emitRemoved(parent, n, prev, next)
	return InsertBefore(parent, convertNodesIntoNode(n.ownerDocument, items), next)
}

// Remove detaches n from its parent, a no-op if n is already an orphan.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	_ = RemoveChild(n.parent, n)
}

// QuerySelector/QuerySelectorAll are the ParentNode mixin's selector entry
// points: descendants of n only, root excluded.
func (n *Node) QuerySelector(selectors string) (*Node, error) {
	list, err := parseSelectors(selectors)
	if err != nil {
		return nil, err
	}
	var found *Node
	for c := n.firstChild; c != nil && found == nil; c = c.nextSibling {
		walkTreeOrder(c, func(el *Node) bool {
			if el.kind == ElementKind && matchesList(el, list) {
				found = el
				return false
			}
			return true
		})
	}
	return found, nil
}

func (n *Node) QuerySelectorAll(selectors string) (*NodeList, error) {
	list, err := parseSelectors(selectors)
	if err != nil {
		return nil, err
	}
	var out []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		walkTreeOrder(c, func(el *Node) bool {
			if el.kind == ElementKind && matchesList(el, list) {
				out = append(out, el)
			}
			return true
		})
	}
	return newStaticNodeList(out), nil
}
