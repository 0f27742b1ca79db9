package dom

// NodeList is either a frozen snapshot of node pointers (as returned from
// querySelectorAll) or a live view over a parent's children (as returned
// from ChildNodes).
type NodeList struct {
	snapshot []*Node
	live     *Node // non-nil for a live ChildNodeList view; snapshot is nil then
}

func newStaticNodeList(nodes []*Node) *NodeList { return &NodeList{snapshot: nodes} }

func newChildNodeList(parent *Node) *NodeList { return &NodeList{live: parent} }

// Length is O(1) for a static list, O(n) for a live view.
func (l *NodeList) Length() int {
	if l.live != nil {
		n := 0
		for c := l.live.firstChild; c != nil; c = c.nextSibling {
			n++
		}
		return n
	}
	return len(l.snapshot)
}

// Item returns the i-th node, or nil if out of range.
func (l *NodeList) Item(i int) *Node {
	if i < 0 {
		return nil
	}
	if l.live != nil {
		j := 0
		for c := l.live.firstChild; c != nil; c = c.nextSibling {
			if j == i {
				return c
			}
			j++
		}
		return nil
	}
	if i >= len(l.snapshot) {
		return nil
	}
	return l.snapshot[i]
}

// All materializes the list into a slice, for range-friendly callers.
func (l *NodeList) All() []*Node {
	if l.live == nil {
		out := make([]*Node, len(l.snapshot))
		copy(out, l.snapshot)
		return out
	}
	var out []*Node
	for c := l.live.firstChild; c != nil; c = c.nextSibling {
		out = append(out, c)
	}
	return out
}

// HTMLCollection is a live, Element-filtered view: either a
// parent's direct children or, when built with a predicate, every
// descendant satisfying it (used by getElementsByTagName/ClassName).
type HTMLCollection struct {
	scope     *Node
	subtree   bool
	predicate func(*Node) bool
}

// newElementChildrenCollection is the Parent mixin's `children` accessor:
// live view of parent's Element children.
func newElementChildrenCollection(parent *Node) *HTMLCollection {
	return &HTMLCollection{scope: parent, predicate: func(*Node) bool { return true }}
}

func newDescendantCollection(scope *Node, predicate func(*Node) bool) *HTMLCollection {
	return &HTMLCollection{scope: scope, subtree: true, predicate: predicate}
}

func (c *HTMLCollection) iterate(fn func(*Node) bool) {
	if c.subtree {
		for ch := c.scope.firstChild; ch != nil; ch = ch.nextSibling {
			if !walkTreeOrder(ch, func(n *Node) bool {
				if n.kind == ElementKind && c.predicate(n) {
					return fn(n)
				}
				return true
			}) {
				return
			}
		}
		return
	}
	for ch := c.scope.firstChild; ch != nil; ch = ch.nextSibling {
		if ch.kind != ElementKind || !c.predicate(ch) {
			continue
		}
		if !fn(ch) {
			return
		}
	}
}

// Length is O(n) over the filtered range.
func (c *HTMLCollection) Length() int {
	n := 0
	c.iterate(func(*Node) bool { n++; return true })
	return n
}

// Item returns the i-th matching element, or nil.
func (c *HTMLCollection) Item(i int) *Node {
	if i < 0 {
		return nil
	}
	var found *Node
	j := 0
	c.iterate(func(n *Node) bool {
		if j == i {
			found = n
			return false
		}
		j++
		return true
	})
	return found
}

// NamedItem returns the first matching element whose id equals name.
func (c *HTMLCollection) NamedItem(name string) *Node {
	var found *Node
	c.iterate(func(n *Node) bool {
		if n.ID() == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// All materializes the collection into a slice.
func (c *HTMLCollection) All() []*Node {
	var out []*Node
	c.iterate(func(n *Node) bool { out = append(out, n); return true })
	return out
}
