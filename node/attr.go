package node

// AttributeType is the small type enumeration spec §3 requires: CDATA and
// the DTD-tokenized types, plus UNDECLARED for attributes whose type the
// tree model never learned (no DTD was consulted when they were built).
type AttributeType int

const (
	AttrUndeclared AttributeType = iota
	AttrCDATA
	AttrID
	AttrIDRef
	AttrIDRefs
	AttrNMToken
	AttrNMTokens
	AttrEntity
	AttrEntities
	AttrNotation
)

// IsTokenized reports whether values of this type are whitespace-normalized
// before escaping (spec §4.10). CDATA and UNDECLARED are not tokenized.
func (t AttributeType) IsTokenized() bool {
	switch t {
	case AttrID, AttrIDRef, AttrIDRefs, AttrNMToken, AttrNMTokens, AttrEntity, AttrEntities, AttrNotation:
		return true
	default:
		return false
	}
}

type Attribute struct {
	treeNode
	name        string
	ns          *Namespace
	atype       AttributeType
	owner       *Element
	defaultAttr bool
}

var _ Node = (*Attribute)(nil)

func newAttribute(name string, ns *Namespace) *Attribute {
	a := &Attribute{
		name: name,
		ns:   ns,
	}
	a.self = a
	return a
}

func (Attribute) Type() NodeType {
	return AttributeNodeType
}

func (n *Attribute) Name() string {
	if n.ns == nil || n.ns.Prefix() == "" {
		return n.name
	}
	return n.ns.Prefix() + ":" + n.name
}

func (n *Attribute) LocalName() string {
	return n.name
}

// AttributeType returns the attribute's declared type, CDATA/UNDECLARED
// attributes being escaped differently from tokenized ones (spec §4.10).
func (n *Attribute) AttributeType() AttributeType {
	return n.atype
}

func (n *Attribute) SetAttributeType(t AttributeType) {
	n.atype = t
}

// OwnerElement returns the element this attribute is declared on. Unlike
// most Node kinds, an Attribute's parent pointer is set explicitly by
// Element.SetAttributeNS rather than through AddChild/AddSibling, since
// attributes are not part of the element's child chain.
func (n *Attribute) OwnerElement() *Element {
	return n.owner
}

// NextAttribute is a thin wrapper around NextSibling() so that the
// caller does not have to constantly type assert
func (n *Attribute) NextAttribute() *Attribute {
	next := n.NextSibling()
	if next == nil {
		return nil
	}
	return next.(*Attribute)
}

func (n *Attribute) SetDefault(b bool) {
	n.defaultAttr = b
}

func (n *Attribute) IsDefault() bool {
	return n.defaultAttr
}

func (n *Attribute) Value() string {
	content, err := n.Content(nil)
	if err != nil {
		return ""
	}
	return string(content)
}

func (n *Attribute) Prefix() string {
	if n.ns == nil {
		return ""
	}
	return n.ns.Prefix()
}

func (n *Attribute) URI() string {
	if n.ns == nil {
		return ""
	}
	return n.ns.URI()
}
