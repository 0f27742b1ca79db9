// Package selector implements the CSS selector engine used by
// querySelector/querySelectorAll/matches/closest: a
// tokenizer, a recursive-descent parser producing simple/compound/complex
// selectors, and a tree-order matcher. It operates over the small Element
// interface below rather than a concrete tree type, so it has no
// dependency on the dom package.
package selector

// Element is the read-only view of one tree node the matcher needs. The
// dom package's Element type implements it.
type Element interface {
	// TagName is the element's tag name as the element reports it. The
	// matcher lowercases it before comparing it with a type selector, which
	// the parser has lowercased too, so type-selector matching is
	// case-insensitive in every document; there is no case-sensitive mode.
	TagName() string
	ID() string
	ClassNames() []string

	// AttrValue returns an attribute's value and whether it is present.
	// name is the selector's attribute name as lowercased by the parser and
	// is passed on unchanged; the dom package looks it up exactly, so an
	// attribute stored with uppercase letters is not found.
	AttrValue(name string) (string, bool)

	Parent() Element
	PreviousElementSibling() Element
	NextElementSibling() Element

	// IsRoot reports whether this element is its tree's document element.
	IsRoot() bool

	// IsEmpty reports whether the element has no child nodes at all (not
	// just no element children) per :empty's definition.
	IsEmpty() bool

	// ElementIndex is this element's 1-based position among its parent's
	// element children, and ElementCount is the total. Of-type variants
	// restrict both to siblings sharing this element's TagName.
	ElementIndex() int
	ElementCount() int
	ElementIndexOfType() int
	ElementCountOfType() int
}
