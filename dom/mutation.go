package dom

import "github.com/oxhq/domkit/domerr"

// InsertBefore implements insert algorithm: pre-insert
// validity, fragment flattening, detach-then-splice for each node, and
// mutation-record emission. refChild may be nil to mean "at tail".
func InsertBefore(parent, node, refChild *Node) error {
	if err := preInsertValidate(node, parent, refChild); err != nil {
		return err
	}
	insertNodes(parent, node, refChild)
	return nil
}

// Append is InsertBefore(parent, node, nil).
func Append(parent, node *Node) error {
	return InsertBefore(parent, node, nil)
}

// ReplaceChild implements replace algorithm: remove old (firing
// its removal record), then insert new at old's former position.
func ReplaceChild(parent, newNode, oldChild *Node) error {
	if err := replaceValidate(newNode, parent, oldChild); err != nil {
		return err
	}
	refChild := oldChild.nextSibling
	if refChild == newNode {
		refChild = refChild.nextSibling
	}
	prev, next := oldChild.prevSibling, oldChild.nextSibling
	detach(oldChild)
	emitRemoved(parent, oldChild, prev, next)
	insertNodes(parent, newNode, refChild)
	return nil
}

// RemoveChild implements remove algorithm.
func RemoveChild(parent, child *Node) error {
	if err := preRemoveValidate(child, parent); err != nil {
		return err
	}
	prev, next := child.prevSibling, child.nextSibling
	detach(child)
	emitRemoved(parent, child, prev, next)
	return nil
}

// insertNodes performs steps 2-4 of insert algorithm: fragment
// flattening followed by per-node splice.
func insertNodes(parent, node, refChild *Node) {
	if node.kind == DocumentFragmentKind {
		children := snapshotChildren(node)
		for _, c := range children {
			detach(c)
		}
		for _, c := range children {
			spliceOne(parent, c, refChild)
		}
		return
	}
	spliceOne(parent, node, refChild)
}

func snapshotChildren(n *Node) []*Node {
	var out []*Node
	for c := n.firstChild; c != nil; c = c.nextSibling {
		out = append(out, c)
	}
	return out
}

// spliceOne inserts a single, already-fragment-extracted node into parent's
// child list before refChild.
func spliceOne(parent, node, refChild *Node) {
	if node.parent != nil {
		oldParent := node.parent
		prev, next := node.prevSibling, node.nextSibling
		detach(node)
		emitRemoved(oldParent, node, prev, next)
	}
	if node.ownerDocument != parent.ownerDocument {
		adopt(node, parent.ownerDocument)
	}

	node.parent = parent
	node.header.SetHasParent(true)

	if refChild == nil {
		node.prevSibling = parent.lastChild
		node.nextSibling = nil
		if parent.lastChild != nil {
			parent.lastChild.nextSibling = node
		} else {
			parent.firstChild = node
		}
		parent.lastChild = node
	} else {
		node.nextSibling = refChild
		node.prevSibling = refChild.prevSibling
		if refChild.prevSibling != nil {
			refChild.prevSibling.nextSibling = node
		} else {
			parent.firstChild = node
		}
		refChild.prevSibling = node
	}
	parent.bumpGeneration()
	emitInserted(parent, node)
}

// detach unlinks child from its parent's sibling chain without releasing
// it; the caller becomes the sole strong owner.
func detach(child *Node) {
	parent := child.parent
	if parent == nil {
		return
	}
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else {
		parent.firstChild = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	} else {
		parent.lastChild = child.prevSibling
	}
	child.prevSibling = nil
	child.nextSibling = nil
	child.parent = nil
	child.header.SetHasParent(false)
	parent.bumpGeneration()
}

// adopt implements : remove node from its current parent if any,
// re-point owner_document through the subtree, and run kind-specific
// adopting steps.
func adopt(node *Node, newDoc *Document) {
	if node.parent != nil {
		oldParent := node.parent
		prev, next := node.prevSibling, node.nextSibling
		detach(node)
		emitRemoved(oldParent, node, prev, next)
	}
	walkSubtree(node, func(n *Node) {
		n.ownerDocument = newDoc
		runAdoptingSteps(n, newDoc)
	})
}

// runAdoptingSteps re-interns an element's tag/attribute names into the new
// document's string pool; other kinds are already
// self-contained and need no adjustment.
func runAdoptingSteps(n *Node, newDoc *Document) {
	if n.kind != ElementKind {
		return
	}
	n.localName = newDoc.intern(n.localName)
	n.prefix = newDoc.intern(n.prefix)
	for _, a := range n.attrs {
		a.localName = newDoc.intern(a.localName)
		a.prefix = newDoc.intern(a.prefix)
	}
}

func walkSubtree(n *Node, fn func(*Node)) {
	fn(n)
	for c := n.firstChild; c != nil; c = c.nextSibling {
		walkSubtree(c, fn)
	}
}

// MoveBefore relocates node within or across parents without tearing down
// state that must survive a move — it updates links directly rather than
// running full remove/insert side effects.
func MoveBefore(parent, node, refChild *Node) error {
	if isHostIncludingInclusiveAncestor(node, parent) {
		return domerr.New(domerr.HierarchyRequestError, "node is an ancestor of the destination")
	}
	if err := preInsertValidate(node, parent, refChild); err != nil {
		// move_before still runs the pre-insert acceptance checks (kind,
		// parent shape, reference-child membership) but not the
		// remove-then-insert side effects those checks gate elsewhere.
		return err
	}
	if node.parent != nil {
		detach(node)
	}
	node.parent = parent
	node.header.SetHasParent(true)
	if refChild == nil {
		node.prevSibling = parent.lastChild
		node.nextSibling = nil
		if parent.lastChild != nil {
			parent.lastChild.nextSibling = node
		} else {
			parent.firstChild = node
		}
		parent.lastChild = node
	} else {
		node.nextSibling = refChild
		node.prevSibling = refChild.prevSibling
		if refChild.prevSibling != nil {
			refChild.prevSibling.nextSibling = node
		} else {
			parent.firstChild = node
		}
		refChild.prevSibling = node
	}
	if node.ownerDocument != parent.ownerDocument {
		walkSubtree(node, func(n *Node) { n.ownerDocument = parent.ownerDocument })
	}
	parent.bumpGeneration()
	emitMoved(parent, node)
	return nil
}
