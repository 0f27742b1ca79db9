// Package dom implements the node tree, mutation engine, event dispatch,
// and read-only subsystems (selectors, traversal) of an in-memory
// WHATWG-DOM document object model.
package dom

// Kind is a node's immutable nodeType tag. Numeric values match
// the WHATWG nodeType constants so callers that serialize a Kind get the
// familiar wire values for free.
type Kind int

const (
	ElementKind               Kind = 1
	AttrKind                  Kind = 2
	TextKind                  Kind = 3
	CDATASectionKind          Kind = 4
	ProcessingInstructionKind Kind = 7
	CommentKind               Kind = 8
	DocumentKind              Kind = 9
	DocumentTypeKind          Kind = 10
	DocumentFragmentKind      Kind = 11
	ShadowRootKind            Kind = 13
)

func (k Kind) String() string {
	switch k {
	case ElementKind:
		return "Element"
	case AttrKind:
		return "Attr"
	case TextKind:
		return "Text"
	case CDATASectionKind:
		return "CDATASection"
	case ProcessingInstructionKind:
		return "ProcessingInstruction"
	case CommentKind:
		return "Comment"
	case DocumentKind:
		return "Document"
	case DocumentTypeKind:
		return "DocumentType"
	case DocumentFragmentKind:
		return "DocumentFragment"
	case ShadowRootKind:
		return "ShadowRoot"
	default:
		return "Unknown"
	}
}

// isCharacterData reports whether k shares the CharacterData contract
//: Text, Comment, CDATASection, ProcessingInstruction.
func (k Kind) isCharacterData() bool {
	switch k {
	case TextKind, CommentKind, CDATASectionKind, ProcessingInstructionKind:
		return true
	}
	return false
}

// WhatToShow is the NodeFilter acceptance bitmask, keyed on
// 1 << (nodeType - 1).
type WhatToShow uint32

// WhatToShow bits, keyed on 1 << (nodeType - 1).
const (
	ShowElement              WhatToShow = 1 << (ElementKind - 1)
	ShowAttribute            WhatToShow = 1 << (AttrKind - 1)
	ShowText                 WhatToShow = 1 << (TextKind - 1)
	ShowCDATASection         WhatToShow = 1 << (CDATASectionKind - 1)
	ShowProcessingInstruction WhatToShow = 1 << (ProcessingInstructionKind - 1)
	ShowComment              WhatToShow = 1 << (CommentKind - 1)
	ShowDocument             WhatToShow = 1 << (DocumentKind - 1)
	ShowDocumentType         WhatToShow = 1 << (DocumentTypeKind - 1)
	ShowDocumentFragment     WhatToShow = 1 << (DocumentFragmentKind - 1)
	ShowAll                  WhatToShow = 0xFFFFFFFF
)

func (k Kind) showBit() WhatToShow {
	if k < 1 || k > 32 {
		return 0
	}
	return 1 << (uint(k) - 1)
}

// ShowBit is the exported form of showBit, letting packages outside dom
// (e.g. traversal's NodeFilter) test a node's kind against a WhatToShow
// mask without re-deriving the 1<<(nodeType-1) encoding themselves.
func (k Kind) ShowBit() WhatToShow { return k.showBit() }
