// Package traversal implements NodeIterator and TreeWalker (spec.md §4.11):
// filtered, ordered walks over a dom.Node tree driven by a WhatToShow
// bitmask and an optional NodeFilter callback. It depends only on the dom
// package's exported surface (Node, WhatToShow, the MutationObserver hook)
// so dom itself carries no knowledge of traversal — the same one-directional
// shape as selector's relationship to dom, just without an adapter type
// since traversal consumes *dom.Node directly rather than through an
// interface view.
package traversal

import "github.com/oxhq/domkit/dom"

// FilterResult is a NodeFilter's verdict on a candidate node.
type FilterResult int

const (
	FilterAccept FilterResult = iota
	FilterReject
	FilterSkip
)

// NodeFilter is the optional user-supplied acceptance predicate. A nil
// NodeFilter accepts every node that passes the WhatToShow mask.
type NodeFilter interface {
	AcceptNode(n *dom.Node) FilterResult
}

// NodeFilterFunc adapts a plain function to NodeFilter.
type NodeFilterFunc func(n *dom.Node) FilterResult

func (f NodeFilterFunc) AcceptNode(n *dom.Node) FilterResult { return f(n) }

// whatToShowMatches reports whether n's kind bit is set in show.
func whatToShowMatches(show dom.WhatToShow, n *dom.Node) bool {
	return show&n.Kind().ShowBit() != 0
}

// evaluate runs the whatToShow gate then the filter, the shared first half
// of both NodeIterator and TreeWalker's "filter" algorithm. TreeWalker
// additionally distinguishes FilterReject (prune subtree) from FilterSkip
// (skip node, still descend); NodeIterator treats both identically per
// spec.md §4.11 ("For NodeIterator, REJECT is treated as SKIP").
func evaluate(show dom.WhatToShow, filter NodeFilter, n *dom.Node) FilterResult {
	if !whatToShowMatches(show, n) {
		return FilterSkip
	}
	if filter == nil {
		return FilterAccept
	}
	return filter.AcceptNode(n)
}
