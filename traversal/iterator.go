package traversal

import "github.com/oxhq/domkit/dom"

// NodeIterator walks root's subtree in tree order, skipping nodes the
// WhatToShow mask or filter rejects (spec.md §4.11: "For NodeIterator,
// REJECT is treated as SKIP"). Its state is a reference node plus a
// pointer-before-reference flag, initialized at (root, true).
//
// NodeIterator registers itself as a dom.MutationObserver on root with
// Subtree observation so that removing a node that contains its reference
// fixes the reference up to the next still-attached node, per spec.md
// §4.11's invariant that a NodeIterator's reference is never a detached
// node. TreeWalker carries no such registration: its CurrentNode is
// user-writable and intentionally not auto-fixed.
type NodeIterator struct {
	root       *dom.Node
	whatToShow dom.WhatToShow
	filter     NodeFilter

	reference              *dom.Node
	pointerBeforeReference bool

	detached bool
}

// NewNodeIterator creates a NodeIterator rooted at root. Passing
// dom.ShowAll and a nil filter visits every node in root's subtree.
func NewNodeIterator(root *dom.Node, whatToShow dom.WhatToShow, filter NodeFilter) *NodeIterator {
	it := &NodeIterator{
		root:                   root,
		whatToShow:             whatToShow,
		filter:                 filter,
		reference:              root,
		pointerBeforeReference: true,
	}
	dom.Observe(root, it, dom.ObserveConfig{ChildList: true, Subtree: true})
	return it
}

func (it *NodeIterator) Root() *dom.Node             { return it.root }
func (it *NodeIterator) WhatToShow() dom.WhatToShow   { return it.whatToShow }
func (it *NodeIterator) Filter() NodeFilter           { return it.filter }
func (it *NodeIterator) ReferenceNode() *dom.Node     { return it.reference }
func (it *NodeIterator) PointerBeforeReference() bool { return it.pointerBeforeReference }

// NextNode advances to and returns the next accepted node, or nil if the
// iterator is already at the end of root's subtree.
func (it *NodeIterator) NextNode() *dom.Node { return it.traverse(true) }

// PreviousNode retreats to and returns the previous accepted node, or nil
// if the iterator is already at the start.
func (it *NodeIterator) PreviousNode() *dom.Node { return it.traverse(false) }

func (it *NodeIterator) traverse(forward bool) *dom.Node {
	node := it.reference
	before := it.pointerBeforeReference
	for {
		if forward {
			if !before {
				node = documentOrderNext(it.root, node)
				if node == nil {
					return nil
				}
			} else {
				before = false
			}
		} else {
			if before {
				node = documentOrderPrevious(it.root, node)
				if node == nil {
					return nil
				}
			} else {
				before = true
			}
		}
		if evaluate(it.whatToShow, it.filter, node) == FilterAccept {
			it.reference = node
			it.pointerBeforeReference = before
			return node
		}
	}
}

// Detach stops the iterator from observing further tree mutations. Modern
// WHATWG semantics make Detach a no-op for navigation (callers may keep
// calling NextNode/PreviousNode afterward); domkit keeps that behavior and
// only actually unregisters the mutation hook, which also makes Detach
// idempotent.
func (it *NodeIterator) Detach() {
	if it.detached {
		return
	}
	it.detached = true
	dom.Unobserve(it.root, it)
}

// Notify implements dom.MutationObserver: each removed node that contains
// (inclusively) the iterator's current reference triggers the pre-removing
// fixup so the reference never points at a detached node. The mutation
// engine has already unlinked the removed node by the time Notify runs, so
// the fixup reads the record's snapshotted PreviousSibling/NextSibling/
// Target instead of re-deriving them from the (now-severed) removed node.
func (it *NodeIterator) Notify(records []dom.MutationRecord) {
	for _, rec := range records {
		for _, removed := range rec.RemovedNodes {
			it.preRemove(removed, rec.Target, rec.PreviousSibling, rec.NextSibling)
		}
	}
}

// preRemove implements the NodeIterator pre-removing steps, given
// toBeRemoved's former parent, previous sibling and next sibling (all
// snapshotted in the MutationRecord before the removed node's own links
// were severed).
func (it *NodeIterator) preRemove(toBeRemoved, formerParent, formerPrevSibling, formerNextSibling *dom.Node) {
	if toBeRemoved == it.root || !toBeRemoved.Contains(it.reference) {
		return
	}
	if it.pointerBeforeReference {
		var next *dom.Node
		if formerNextSibling != nil {
			next = formerNextSibling
		} else if formerParent != nil {
			next = followingNotDescendant(formerParent)
		}
		if next != nil {
			it.reference = next
			return
		}
		it.pointerBeforeReference = false
	}
	if formerPrevSibling != nil {
		it.reference = deepestLastDescendant(formerPrevSibling)
		return
	}
	it.reference = formerParent
}

var _ dom.MutationObserver = (*NodeIterator)(nil)
