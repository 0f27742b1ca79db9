package traversal

import "github.com/oxhq/domkit/dom"

// documentOrderNext returns the node that follows n in tree order, bounded
// to root's subtree (nil once the walk would leave root).
func documentOrderNext(root, n *dom.Node) *dom.Node {
	if c := n.FirstChild(); c != nil {
		return c
	}
	cur := n
	for cur != root {
		if s := cur.NextSibling(); s != nil {
			return s
		}
		cur = cur.Parent()
		if cur == nil {
			return nil
		}
	}
	return nil
}

// documentOrderPrevious returns the node that precedes n in tree order,
// bounded to root's subtree (nil once n is root itself).
func documentOrderPrevious(root, n *dom.Node) *dom.Node {
	if n == root {
		return nil
	}
	if s := n.PreviousSibling(); s != nil {
		return deepestLastDescendant(s)
	}
	return n.Parent()
}

func deepestLastDescendant(n *dom.Node) *dom.Node {
	cur := n
	for cur.LastChild() != nil {
		cur = cur.LastChild()
	}
	return cur
}

// followingNotDescendant returns n's first following node in full document
// tree order, skipping n's own subtree and not bounded to any root — used by
// NodeIterator's removal fixup, which per spec.md §4.11 may legitimately
// land the reference outside the iterator's original root.
func followingNotDescendant(n *dom.Node) *dom.Node {
	cur := n
	for cur != nil {
		if s := cur.NextSibling(); s != nil {
			return s
		}
		cur = cur.Parent()
	}
	return nil
}
