package dom

import (
	"strings"
	"unicode/utf16"

	"github.com/oxhq/domkit/domerr"
)

// NewText creates a detached Text node.
func NewText(doc *Document, data string) *Node {
	n := newBaseNode(TextKind, doc)
	n.data = data
	return n
}

// NewComment creates a detached Comment node.
func NewComment(doc *Document, data string) *Node {
	n := newBaseNode(CommentKind, doc)
	n.data = data
	return n
}

// NewCDATASection creates a detached CDATASection node.
func NewCDATASection(doc *Document, data string) *Node {
	n := newBaseNode(CDATASectionKind, doc)
	n.data = data
	return n
}

// NewProcessingInstruction creates a detached ProcessingInstruction node.
func NewProcessingInstruction(doc *Document, target, data string) *Node {
	n := newBaseNode(ProcessingInstructionKind, doc)
	n.target = doc.intern(target)
	n.data = data
	return n
}

// Data is the CharacterData contract's raw string. Stored UTF-8;
// offsets in the accessors below are translated to/from UTF-16 code units
// to match DOMString index semantics.
func (n *Node) Data() string { return n.data }

func (n *Node) SetData(v string) {
	old := n.data
	n.data = v
	n.bumpGeneration()
	emitCharacterDataChanged(n, old)
}

// Length is the data's length measured in UTF-16 code units.
func (n *Node) Length() int { return len(utf16.Encode([]rune(n.data))) }

// SubstringData returns count UTF-16 code units of data starting at offset.
func (n *Node) SubstringData(offset, count int) (string, error) {
	units := utf16.Encode([]rune(n.data))
	if offset < 0 || offset > len(units) {
		return "", domerr.New(domerr.IndexSizeError, "offset %d exceeds data length %d", offset, len(units))
	}
	end := offset + count
	if end > len(units) {
		end = len(units)
	}
	return string(utf16.Decode(units[offset:end])), nil
}

// AppendData appends s to data.
func (n *Node) AppendData(s string) {
	old := n.data
	n.data += s
	n.bumpGeneration()
	emitCharacterDataChanged(n, old)
}

// InsertData splices s into data at offset.
func (n *Node) InsertData(offset int, s string) error {
	return n.spliceData(offset, 0, s)
}

// DeleteData removes count UTF-16 code units from data starting at offset.
func (n *Node) DeleteData(offset, count int) error {
	return n.spliceData(offset, count, "")
}

// ReplaceData replaces count UTF-16 code units starting at offset with s.
func (n *Node) ReplaceData(offset, count int, s string) error {
	return n.spliceData(offset, count, s)
}

func (n *Node) spliceData(offset, count int, s string) error {
	units := utf16.Encode([]rune(n.data))
	if offset < 0 || offset > len(units) {
		return domerr.New(domerr.IndexSizeError, "offset %d exceeds data length %d", offset, len(units))
	}
	end := offset + count
	if end > len(units) {
		end = len(units)
	}
	merged := append(append(append([]uint16{}, units[:offset]...), utf16.Encode([]rune(s))...), units[end:]...)
	old := n.data
	n.data = string(utf16.Decode(merged))
	n.bumpGeneration()
	emitCharacterDataChanged(n, old)
	return nil
}

// Split truncates the node's data at offset, creates a new sibling Text
// holding the suffix, and — if n has a parent — inserts the sibling
// immediately after n.
func (n *Node) Split(offset int) (*Node, error) {
	units := utf16.Encode([]rune(n.data))
	if offset < 0 || offset > len(units) {
		return nil, domerr.New(domerr.IndexSizeError, "offset %d exceeds data length %d", offset, len(units))
	}
	suffix := string(utf16.Decode(units[offset:]))
	n.data = string(utf16.Decode(units[:offset]))
	n.bumpGeneration()

	sibling := NewText(n.ownerDocument, suffix)
	if n.parent != nil {
		if err := InsertBefore(n.parent, sibling, n.nextSibling); err != nil {
			return nil, err
		}
	}
	return sibling, nil
}

// WholeText concatenates the data of the contiguous run of Text siblings
// that includes n.
func (n *Node) WholeText() string {
	start := n
	for start.prevSibling != nil && start.prevSibling.kind == TextKind {
		start = start.prevSibling
	}
	var b strings.Builder
	for c := start; c != nil && c.kind == TextKind; c = c.nextSibling {
		b.WriteString(c.data)
	}
	return b.String()
}

// Target is the ProcessingInstruction's target name.
func (n *Node) Target() string { return n.target }
