package dom

import "github.com/oxhq/domkit/domerr"

// Range is a live boundary-point pair over a tree, per spec.md §6.1's
// Document.create_range. domkit models only the structural surface (start/
// end containers and offsets, collapse, boundary comparison); serialization
// (extractContents/cloneContents as markup) is out of scope along with the
// rest of §1's parsing/serialization boundary.
type Range struct {
	startContainer *Node
	startOffset    int
	endContainer   *Node
	endOffset      int
}

// NewRange creates a Range collapsed at (doc, 0).
func NewRange(doc *Document) *Range {
	return &Range{startContainer: doc.Node, endContainer: doc.Node}
}

func (r *Range) StartContainer() *Node { return r.startContainer }
func (r *Range) StartOffset() int      { return r.startOffset }
func (r *Range) EndContainer() *Node   { return r.endContainer }
func (r *Range) EndOffset() int        { return r.endOffset }

// Collapsed reports whether the start and end boundary points are the same.
func (r *Range) Collapsed() bool {
	return r.startContainer == r.endContainer && r.startOffset == r.endOffset
}

func boundaryOffsetLimit(n *Node) int {
	if n.kind.isCharacterData() {
		return n.Length()
	}
	count := 0
	for c := n.firstChild; c != nil; c = c.nextSibling {
		count++
	}
	return count
}

func validateBoundary(n *Node, offset int) error {
	if offset < 0 || offset > boundaryOffsetLimit(n) {
		return domerr.New(domerr.IndexSizeError, "offset %d out of range for node", offset)
	}
	return nil
}

// SetStart sets the start boundary point; if start would now follow end,
// end is moved onto the new start, collapsing the range there.
func (r *Range) SetStart(n *Node, offset int) error {
	if err := validateBoundary(n, offset); err != nil {
		return err
	}
	r.startContainer, r.startOffset = n, offset
	if r.boundaryOrderBad() {
		r.endContainer, r.endOffset = n, offset
	}
	return nil
}

// SetEnd sets the end boundary point; if end would now precede start, start
// is moved onto the new end, collapsing the range there.
func (r *Range) SetEnd(n *Node, offset int) error {
	if err := validateBoundary(n, offset); err != nil {
		return err
	}
	r.endContainer, r.endOffset = n, offset
	if r.boundaryOrderBad() {
		r.startContainer, r.startOffset = n, offset
	}
	return nil
}

// Collapse sets both boundary points to the start boundary (or end, if
// toStart is false).
func (r *Range) Collapse(toStart bool) {
	if toStart {
		r.endContainer, r.endOffset = r.startContainer, r.startOffset
		return
	}
	r.startContainer, r.startOffset = r.endContainer, r.endOffset
}

// SelectNode sets the range to span n as a single child of its parent.
func (r *Range) SelectNode(n *Node) error {
	parent := n.parent
	if parent == nil {
		return domerr.New(domerr.InvalidStateError, "node has no parent to select within")
	}
	index := indexOfChild(n)
	r.startContainer, r.startOffset = parent, index
	r.endContainer, r.endOffset = parent, index+1
	return nil
}

// SelectNodeContents sets the range to span all of n's contents.
func (r *Range) SelectNodeContents(n *Node) {
	r.startContainer, r.startOffset = n, 0
	r.endContainer, r.endOffset = n, boundaryOffsetLimit(n)
}

// CloneRange returns a Range with the same boundary points.
func (r *Range) CloneRange() *Range {
	c := *r
	return &c
}

func indexOfChild(n *Node) int {
	i := 0
	for c := n.prevSibling; c != nil; c = c.prevSibling {
		i++
	}
	return i
}

// boundaryOrderBad reports whether start now strictly follows end in
// document order, which Range normalizes by collapsing the violated
// boundary onto the one just set.
func (r *Range) boundaryOrderBad() bool {
	return comparePoints(r.endContainer, r.endOffset, r.startContainer, r.startOffset) < 0
}

// comparePoints orders two boundary points in the same tree: -1 if a
// precedes b, 0 if equal, 1 if a follows b. Points in disconnected trees
// compare via CompareDocumentPosition's PRECEDING/FOLLOWING bits.
func comparePoints(containerA *Node, offsetA int, containerB *Node, offsetB int) int {
	if containerA == containerB {
		switch {
		case offsetA < offsetB:
			return -1
		case offsetA > offsetB:
			return 1
		default:
			return 0
		}
	}
	pos := containerA.CompareDocumentPosition(containerB)
	switch {
	case pos&PositionContainedBy != 0:
		c := containerB
		for c.parent != containerA {
			c = c.parent
		}
		if indexOfChild(c) < offsetA {
			return 1
		}
		return -1
	case pos&PositionContains != 0:
		c := containerA
		for c.parent != containerB {
			c = c.parent
		}
		if indexOfChild(c) < offsetB {
			return -1
		}
		return 1
	case pos&PositionFollowing != 0:
		return -1
	case pos&PositionPreceding != 0:
		return 1
	default:
		return 0
	}
}
