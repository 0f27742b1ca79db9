package traversal

import "github.com/oxhq/domkit/dom"

// TreeWalker walks a filtered view of root's subtree with a
// user-writable CurrentNode. Unlike NodeIterator, a FilterReject verdict
// prunes the whole subtree (spec.md §4.11: "honoring REJECT (skip subtree)
// vs SKIP (skip only this node)"), and CurrentNode is never auto-fixed on
// mutation — the caller owns it.
type TreeWalker struct {
	root       *dom.Node
	whatToShow dom.WhatToShow
	filter     NodeFilter
	current    *dom.Node
}

// NewTreeWalker creates a TreeWalker rooted at root, with CurrentNode
// initialized to root.
func NewTreeWalker(root *dom.Node, whatToShow dom.WhatToShow, filter NodeFilter) *TreeWalker {
	return &TreeWalker{root: root, whatToShow: whatToShow, filter: filter, current: root}
}

func (w *TreeWalker) Root() *dom.Node           { return w.root }
func (w *TreeWalker) WhatToShow() dom.WhatToShow { return w.whatToShow }
func (w *TreeWalker) Filter() NodeFilter         { return w.filter }
func (w *TreeWalker) CurrentNode() *dom.Node     { return w.current }

// SetCurrentNode lets the caller reposition the walker anywhere, filtered
// or not — per spec.md §4.11 this field is writable without re-running the
// filter.
func (w *TreeWalker) SetCurrentNode(n *dom.Node) { w.current = n }

// ParentNode moves to the first filtered-accepted ancestor, stopping at
// root, or returns nil without moving if none qualifies.
func (w *TreeWalker) ParentNode() *dom.Node {
	node := w.current
	for node != w.root {
		parent := node.Parent()
		if parent == nil {
			return nil
		}
		node = parent
		if evaluate(w.whatToShow, w.filter, node) == FilterAccept {
			w.current = node
			return node
		}
	}
	return nil
}

// FirstChild moves to the first filtered-accepted child (descending into
// a FilterSkip node's own children when it has none to offer directly).
func (w *TreeWalker) FirstChild() *dom.Node { return w.traverseChildren(true) }

// LastChild is FirstChild's mirror, walking last children instead of first.
func (w *TreeWalker) LastChild() *dom.Node { return w.traverseChildren(false) }

func (w *TreeWalker) traverseChildren(forward bool) *dom.Node {
	start := w.current
	var node *dom.Node
	if forward {
		node = start.FirstChild()
	} else {
		node = start.LastChild()
	}
outer:
	for node != nil {
		switch evaluate(w.whatToShow, w.filter, node) {
		case FilterAccept:
			w.current = node
			return node
		case FilterSkip:
			var child *dom.Node
			if forward {
				child = node.FirstChild()
			} else {
				child = node.LastChild()
			}
			if child != nil {
				node = child
				continue outer
			}
		}
		for {
			var sibling *dom.Node
			if forward {
				sibling = node.NextSibling()
			} else {
				sibling = node.PreviousSibling()
			}
			if sibling != nil {
				node = sibling
				continue outer
			}
			parent := node.Parent()
			if parent == nil || parent == start {
				return nil
			}
			node = parent
		}
	}
	return nil
}

// NextSibling moves to the next filtered-accepted sibling, walking up
// through ancestors (bounded by root) to find one when the immediate
// sibling chain is exhausted, and descending into FilterSkip nodes.
func (w *TreeWalker) NextSibling() *dom.Node { return w.traverseSiblings(true) }

// PreviousSibling is NextSibling's mirror.
func (w *TreeWalker) PreviousSibling() *dom.Node { return w.traverseSiblings(false) }

func (w *TreeWalker) traverseSiblings(forward bool) *dom.Node {
	node := w.current
	if node == w.root {
		return nil
	}
outer:
	for {
		var sibling *dom.Node
		if forward {
			sibling = node.NextSibling()
		} else {
			sibling = node.PreviousSibling()
		}
		for sibling == nil {
			parent := node.Parent()
			if parent == nil || parent == w.root {
				return nil
			}
			node = parent
			if forward {
				sibling = node.NextSibling()
			} else {
				sibling = node.PreviousSibling()
			}
		}
		node = sibling
		switch evaluate(w.whatToShow, w.filter, node) {
		case FilterAccept:
			w.current = node
			return node
		case FilterSkip:
			var child *dom.Node
			if forward {
				child = node.FirstChild()
			} else {
				child = node.LastChild()
			}
			if child != nil {
				node = child
				continue outer
			}
		}
	}
}

// NextNode walks document order forward, descending into every
// non-rejected subtree, and returns the next filtered-accepted node.
func (w *TreeWalker) NextNode() *dom.Node {
	node := w.current
	result := FilterAccept
	for {
		for result != FilterReject {
			child := node.FirstChild()
			if child == nil {
				break
			}
			node = child
			result = evaluate(w.whatToShow, w.filter, node)
			if result == FilterAccept {
				w.current = node
				return node
			}
		}
		var sibling *dom.Node
		temp := node
		for temp != nil {
			if temp == w.root {
				return nil
			}
			sibling = temp.NextSibling()
			if sibling != nil {
				node = sibling
				break
			}
			temp = temp.Parent()
		}
		if sibling == nil {
			return nil
		}
		result = evaluate(w.whatToShow, w.filter, node)
		if result == FilterAccept {
			w.current = node
			return node
		}
	}
}

// PreviousNode is NextNode's mirror, walking document order backward.
func (w *TreeWalker) PreviousNode() *dom.Node {
	node := w.current
	for node != w.root {
		sibling := node.PreviousSibling()
		for sibling != nil {
			node = sibling
			result := evaluate(w.whatToShow, w.filter, node)
			for result != FilterReject {
				last := node.LastChild()
				if last == nil {
					break
				}
				node = last
				result = evaluate(w.whatToShow, w.filter, node)
			}
			if result == FilterAccept {
				w.current = node
				return node
			}
			sibling = node.PreviousSibling()
		}
		if node == w.root {
			return nil
		}
		parent := node.Parent()
		if parent == nil {
			return nil
		}
		node = parent
		if evaluate(w.whatToShow, w.filter, node) == FilterAccept {
			w.current = node
			return node
		}
	}
	return nil
}
