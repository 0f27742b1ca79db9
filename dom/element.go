package dom

import (
	"strings"

	"github.com/oxhq/domkit/domerr"
	"github.com/oxhq/domkit/selector"
)

// xmlNamespace and xmlnsNamespace are the two namespaces the qualified-name
// validator cross-checks prefixes against.
const (
	xmlNamespace   = "http://www.w3.org/XML/1998/namespace"
	xmlnsNamespace = "http://www.w3.org/2000/xmlns/"
)

// NewElement creates a detached Element with the given local name, owned by
// doc. The name is interned through doc's string pool.
func NewElement(doc *Document, localName string) *Node {
	n := newBaseNode(ElementKind, doc)
	n.localName = doc.intern(localName)
	return n
}

// NewElementNS is the namespaced factory,
// validating the qualified name and the xml/xmlns cross-constraints
// before construction.
func NewElementNS(doc *Document, namespaceURI, qualifiedName string) (*Node, error) {
	ns, prefix, local, err := validateAndExtract(namespaceURI, qualifiedName)
	if err != nil {
		return nil, err
	}
	n := newBaseNode(ElementKind, doc)
	n.namespaceURI = ns
	n.prefix = doc.intern(prefix)
	n.localName = doc.intern(local)
	return n, nil
}

// TagName is the element's qualified name.
func (n *Node) TagName() string {
	if n.prefix == "" {
		return n.localName
	}
	return n.prefix + ":" + n.localName
}

func (n *Node) LocalName() string    { return n.localName }
func (n *Node) NamespaceURI() string { return n.namespaceURI }
func (n *Node) Prefix() string       { return n.prefix }

// ID is the element's id attribute, read live.
func (n *Node) ID() string {
	v, _ := n.getAttr("", "id")
	return v
}

// ClassName is the raw class attribute string.
func (n *Node) ClassName() string {
	v, _ := n.getAttr("", "class")
	return v
}

// ClassNames splits ClassName on ASCII whitespace, dropping empty tokens,
// implementing selector.Element's contract and DOMTokenList's backing view.
func (n *Node) ClassNames() []string {
	return strings.FieldsFunc(n.ClassName(), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f'
	})
}

// ClassList returns a live DOMTokenList over the class attribute.
func (n *Node) ClassList() *DOMTokenList { return &DOMTokenList{el: n, attrName: "class"} }

func (n *Node) findAttr(namespaceURI, localName string) (*Attr, int) {
	for i, a := range n.attrs {
		if a.namespaceURI == namespaceURI && a.localName == localName {
			return a, i
		}
	}
	return nil, -1
}

func (n *Node) getAttr(namespaceURI, localName string) (string, bool) {
	a, _ := n.findAttr(namespaceURI, localName)
	if a == nil {
		return "", false
	}
	return a.value, true
}

// GetAttribute returns the value of the attribute named name (no namespace).
// domkit matches case-sensitively always; callers in HTML contexts are
// expected to already fold name to lowercase once at the edge rather than on
// every lookup.
func (n *Node) GetAttribute(name string) (string, bool) {
	return n.getAttr("", name)
}

// HasAttribute reports presence without allocating the value.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.getAttr("", name)
	return ok
}

// SetAttribute creates or updates a non-namespaced attribute.
func (n *Node) SetAttribute(name, value string) error {
	local, err := validateName(name)
	if err != nil {
		return err
	}
	a, _ := n.findAttr("", local)
	if a != nil {
		a.SetValue(value)
		return nil
	}
	n.attrs = append(n.attrs, &Attr{localName: n.ownerDocument.intern(local), value: value, ownerElement: n})
	n.bumpGeneration()
	emitAttributeChanged(n, local, "")
	return nil
}

// RemoveAttribute deletes the named attribute if present.
func (n *Node) RemoveAttribute(name string) {
	a, i := n.findAttr("", name)
	if i < 0 {
		return
	}
	old := a.value
	a.ownerElement = nil
	n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
	n.bumpGeneration()
	emitAttributeChanged(n, name, old)
}

// ToggleAttribute flips an attribute's presence, or forces it to the given
// state when force is non-nil.
func (n *Node) ToggleAttribute(name string, force *bool) (bool, error) {
	has := n.HasAttribute(name)
	want := !has
	if force != nil {
		want = *force
	}
	if want == has {
		return has, nil
	}
	if want {
		if err := n.SetAttribute(name, ""); err != nil {
			return false, err
		}
		return true, nil
	}
	n.RemoveAttribute(name)
	return false, nil
}

// GetAttributeNS/SetAttributeNS/RemoveAttributeNS/HasAttributeNS are the
// namespaced variants: lookup and removal match on the
// (namespace, local_name) pair; prefix plays no role in identity, only in
// serialization via Attr.Name().
func (n *Node) GetAttributeNS(namespaceURI, localName string) (string, bool) {
	return n.getAttr(namespaceURI, localName)
}

func (n *Node) HasAttributeNS(namespaceURI, localName string) bool {
	_, ok := n.getAttr(namespaceURI, localName)
	return ok
}

func (n *Node) SetAttributeNS(namespaceURI, qualifiedName, value string) error {
	ns, prefix, local, err := validateAndExtract(namespaceURI, qualifiedName)
	if err != nil {
		return err
	}
	a, _ := n.findAttr(ns, local)
	if a != nil {
		a.prefix = n.ownerDocument.intern(prefix)
		a.SetValue(value)
		return nil
	}
	n.attrs = append(n.attrs, &Attr{
		namespaceURI: ns,
		prefix:       n.ownerDocument.intern(prefix),
		localName:    n.ownerDocument.intern(local),
		value:        value,
		ownerElement: n,
	})
	n.bumpGeneration()
	emitAttributeChanged(n, local, "")
	return nil
}

func (n *Node) RemoveAttributeNS(namespaceURI, localName string) {
	a, i := n.findAttr(namespaceURI, localName)
	if i < 0 {
		return
	}
	old := a.value
	a.ownerElement = nil
	n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
	n.bumpGeneration()
	emitAttributeChanged(n, localName, old)
}

// Attributes returns the element's attribute list in insertion order. The
// returned slice is owned by the caller to range over; mutating it does not
// affect the element (use the SetAttribute family for that).
func (n *Node) Attributes() []*Attr {
	out := make([]*Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// Matches reports whether selectors matches n.
func (n *Node) Matches(selectors string) (bool, error) {
	list, err := selector.Parse(selectors)
	if err != nil {
		return false, err
	}
	return selector.Matches((*elementView)(n), list), nil
}

// Closest walks n's inclusive ancestors outward, returning the first that
// satisfies selectors.
func (n *Node) Closest(selectors string) (*Node, error) {
	list, err := selector.Parse(selectors)
	if err != nil {
		return nil, err
	}
	for cur := n; cur != nil; cur = cur.parent {
		if cur.kind != ElementKind {
			continue
		}
		if selector.Matches((*elementView)(cur), list) {
			return cur, nil
		}
	}
	return nil, nil
}

func validateName(name string) (string, error) {
	if name == "" || !isValidNCName(name) {
		return "", domerr.New(domerr.InvalidCharacterError, "invalid attribute name %q", name)
	}
	return name, nil
}
