package selector

// Combinator is the relation between two adjacent compound selectors in a
// complex selector.
type Combinator int

const (
	// descendant is whitespace; it has no literal token.
	descendant Combinator = iota
	child
	nextSibling
	subsequentSibling
)

// AttrOp is an attribute-selector comparison operator.
type AttrOp int

const (
	attrPresence AttrOp = iota
	attrEquals
	attrIncludes // ~=
	attrDashMatch // |=
	attrPrefix    // ^=
	attrSuffix    // $=
	attrSubstring // *=
)

type pseudoKind int

const (
	pseudoNot pseudoKind = iota
	pseudoFirstChild
	pseudoLastChild
	pseudoOnlyChild
	pseudoFirstOfType
	pseudoLastOfType
	pseudoOnlyOfType
	pseudoNthChild
	pseudoNthLastChild
	pseudoNthOfType
	pseudoNthLastOfType
	pseudoEmpty
	pseudoRoot
)

// simple is one atom of a compound selector: a sum type over type/universal/
// id/class/attribute/pseudo-class selectors (recommendation to
// model the (Node|DOMString) and similar unions as sum types applies here
// too).
type simple struct {
	kindTag    simpleKind
	name       string // type selector tag name, already case-folded to compare-case
	id         string
	class      string
	attrName   string
	attrOp     AttrOp
	attrValue  string
	attrCI     bool
	pseudo     pseudoKind
	pseudoArg  List  // :not(...)
	pseudoNth  Nth
}

type simpleKind int

const (
	kindType simpleKind = iota
	kindUniversal
	kindID
	kindClass
	kindAttr
	kindPseudo
)

// Compound is a chain of simple selectors with no combinator between them;
// all must match the same element.
type Compound struct {
	simples []simple
}

// Complex is a sequence of compound selectors joined by combinators.
type Complex struct {
	compounds   []Compound
	combinators []Combinator // len == len(compounds)-1
}

// List is a comma-separated selector list.
type List []Complex
