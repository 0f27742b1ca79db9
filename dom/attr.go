package dom

// Attr is an attribute record. Unlike the tree-participating
// kinds, an Attr never appears in a child list — §4.3's pre-insert validator
// excludes AttrKind from the set of insertable node kinds — so it is
// represented as its own lightweight struct rather than a variant of Node.
type Attr struct {
	namespaceURI string
	prefix       string
	localName    string
	value        string
	ownerElement *Node // weak
}

func (a *Attr) Kind() Kind            { return AttrKind }
func (a *Attr) NamespaceURI() string  { return a.namespaceURI }
func (a *Attr) Prefix() string        { return a.prefix }
func (a *Attr) LocalName() string     { return a.localName }
func (a *Attr) Value() string         { return a.value }
func (a *Attr) OwnerElement() *Node   { return a.ownerElement }

// Name is the attribute's qualified name: "prefix:localName" if prefixed,
// else just localName.
func (a *Attr) Name() string {
	if a.prefix == "" {
		return a.localName
	}
	return a.prefix + ":" + a.localName
}

// SetValue mutates the attribute in place, re-running the owning element's
// id/class fast-path invalidation and notifying any
// registered attribute observers.
func (a *Attr) SetValue(v string) {
	old := a.value
	a.value = v
	if a.ownerElement != nil {
		a.ownerElement.bumpGeneration()
		emitAttributeChanged(a.ownerElement, a.Name(), old)
	}
}
