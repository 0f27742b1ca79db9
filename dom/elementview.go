package dom

import "github.com/oxhq/domkit/selector"

// elementView adapts *Node to selector.Element without the selector
// package importing dom: dom depends on selector, never the reverse.
type elementView Node

func (e *elementView) node() *Node { return (*Node)(e) }

func (e *elementView) TagName() string { return e.node().TagName() }
func (e *elementView) ID() string      { return e.node().ID() }
func (e *elementView) ClassNames() []string { return e.node().ClassNames() }

func (e *elementView) AttrValue(name string) (string, bool) {
	return e.node().GetAttribute(name)
}

func (e *elementView) Parent() selector.Element {
	p := e.node().parent
	if p == nil || p.kind != ElementKind {
		return nil
	}
	return (*elementView)(p)
}

func (e *elementView) PreviousElementSibling() selector.Element {
	p := e.node().PreviousElementSibling()
	if p == nil {
		return nil
	}
	return (*elementView)(p)
}

func (e *elementView) NextElementSibling() selector.Element {
	p := e.node().NextElementSibling()
	if p == nil {
		return nil
	}
	return (*elementView)(p)
}

func (e *elementView) IsRoot() bool {
	n := e.node()
	return n.ownerDocument != nil && n.ownerDocument.DocumentElement() == n
}

func (e *elementView) IsEmpty() bool { return !e.node().HasChildNodes() }

func (e *elementView) ElementIndex() int {
	n := e.node()
	i := 1
	for c := n.prevSibling; c != nil; c = c.prevSibling {
		if c.kind == ElementKind {
			i++
		}
	}
	return i
}

func (e *elementView) ElementCount() int {
	n := e.node()
	if n.parent == nil {
		return 1
	}
	return n.parent.ChildElementCount()
}

func (e *elementView) ElementIndexOfType() int {
	n := e.node()
	i := 1
	for c := n.prevSibling; c != nil; c = c.prevSibling {
		if c.kind == ElementKind && c.localName == n.localName && c.namespaceURI == n.namespaceURI {
			i++
		}
	}
	return i
}

func (e *elementView) ElementCountOfType() int {
	n := e.node()
	if n.parent == nil {
		return 1
	}
	count := 0
	for c := n.parent.firstChild; c != nil; c = c.nextSibling {
		if c.kind == ElementKind && c.localName == n.localName && c.namespaceURI == n.namespaceURI {
			count++
		}
	}
	return count
}

var _ selector.Element = (*elementView)(nil)
