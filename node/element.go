package node

import (
	"errors"

	"github.com/lestrrat-go/xmlc14n/internal/orderedmap"
)

var ErrDuplicateAttribute = errors.New("duplicate attribute")

type Element struct {
	treeNode
	name   string
	attrs  *orderedmap.Map[string, *Attribute]
	ns     *Namespace
	nsDefs []*Namespace
}

var _ Node = (*Element)(nil)

// NewElement creates a new Element with the given name. Please note
// that elements created this way is an orphan node. You normally want to
// create an element using the Document.CreateElement method, which will
// automatically initialize some data, such as setting the owner document
// for the element.
func NewElement(name string) *Element {
	e := &Element{
		name:  name,
		attrs: orderedmap.New[string, *Attribute](),
	}
	e.self = e
	return e
}

func (Element) Type() NodeType {
	return ElementNodeType
}

func (e *Element) LocalName() string {
	return e.name
}

// attrKey is the internal lookup key for an attribute: Clark-notation
// {uri}local so two attributes with the same local name but different
// namespace URIs don't collide.
func attrKey(uri, local string) string {
	if uri == "" {
		return local
	}
	return "{" + uri + "}" + local
}

// SetAttribute sets an unprefixed, CDATA-typed attribute with the given
// name. If the name already exists, it returns ErrDuplicateAttribute.
func (e *Element) SetAttribute(name, value string) error {
	_, err := e.SetAttributeNS(nil, name, value)
	return err
}

// SetAttributeNS sets an attribute qualified by ns (nil for no namespace).
// The attribute's owner element is recorded explicitly, since attributes
// live in the element's attribute map rather than its child chain and
// never go through AddChild.
func (e *Element) SetAttributeNS(ns *Namespace, name, value string) (*Attribute, error) {
	var attr *Attribute
	if e.doc != nil {
		attr = e.doc.CreateAttribute(name, value)
	} else {
		attr = newAttribute(name, nil)
		attr.atype = AttrCDATA
		if value != "" {
			_ = attr.AddChild(NewText([]byte(value)))
		}
	}
	attr.ns = ns
	attr.owner = e
	_ = attr.SetParent(e)

	uri := ""
	if ns != nil {
		uri = ns.URI()
	}
	if err := e.attrs.Set(attrKey(uri, name), attr); err != nil {
		if errors.Is(err, orderedmap.ErrDuplicateEntry) {
			return nil, ErrDuplicateAttribute
		}
		return nil, err
	}
	return attr, nil
}

// GetAttribute looks up an attribute by local name and namespace URI
// (empty uri for no namespace).
func (e *Element) GetAttribute(local, uri string) (*Attribute, bool) {
	return e.attrs.Get(attrKey(uri, local))
}

// Attributes populates the given slice with the attributes
// of the element. If the slice is nil, it will create a new slice
// and return it. If the element has no attributes, it will return
// an empty slice.
func (e *Element) Attributes(dst []*Attribute) []*Attribute {
	if dst == nil {
		dst = make([]*Attribute, 0, e.attrs.Len())
	} else {
		dst = dst[:0]
	}
	for _, attr := range e.attrs.Range() {
		dst = append(dst, attr)
	}
	return dst
}

func (e *Element) Name() string {
	if e.ns == nil || e.ns.Prefix() == "" {
		return e.name
	}
	return e.ns.Prefix() + ":" + e.name
}

func (e *Element) Prefix() string {
	if e.ns != nil {
		return e.ns.Prefix()
	}
	return ""
}

func (e *Element) URI() string {
	if e.ns != nil {
		return e.ns.URI()
	}
	return ""
}

// SetNamespace sets the namespace this element belongs to as an element
// (the namespace behind its own tag name), and records the corresponding
// declaration in nsDefs so Namespaces() reports it. recursive is kept for
// API compatibility but ignored: canonicalization only ever cares about
// what's declared on each element, not about rewriting a whole subtree's
// bindings.
func (e *Element) SetNamespace(prefixStr, uri string, recursive bool) error {
	ns := NewNamespace(prefixStr, uri)
	e.ns = ns
	e.addNamespaceDef(ns)
	return nil
}

// DeclareNamespace records a namespace declaration (xmlns or xmlns:prefix)
// made directly on this element, without changing the element's own
// namespace binding. This is how a scope-only declaration (one that exists
// purely to be inherited, or to undeclare a default namespace with
// xmlns="") gets attached.
func (e *Element) DeclareNamespace(prefixStr, uri string) *Namespace {
	ns := NewNamespace(prefixStr, uri)
	e.addNamespaceDef(ns)
	return ns
}

func (e *Element) addNamespaceDef(ns *Namespace) {
	for _, existing := range e.nsDefs {
		if existing.Prefix() == ns.Prefix() {
			return
		}
	}
	e.nsDefs = append(e.nsDefs, ns)
}

// Namespaces returns the namespace declarations made directly on this
// element, in declaration order. It does not include declarations
// inherited from ancestors; use InScopeNamespaceURI for that.
func (e *Element) Namespaces() []*Namespace {
	return e.nsDefs
}

// Ancestors returns the chain of ancestor elements starting with e's
// parent element and walking up to (but not including) the document. Only
// Document and Element can hold element children, so non-element parents
// never appear.
func (e *Element) Ancestors() []*Element {
	var out []*Element
	for p := e.Parent(); p != nil; p = p.Parent() {
		if el, ok := p.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// InScopeNamespaceURI resolves prefix (empty string for the default
// namespace) to the URI in scope at this element, walking up the ancestor
// chain and stopping at the first element that declares (or undeclares,
// via an empty-URI binding) that prefix. It reports ok=false if the
// prefix is never declared anywhere in scope.
func (e *Element) InScopeNamespaceURI(prefix string) (string, bool) {
	for el := e; el != nil; {
		for _, ns := range el.nsDefs {
			if ns.Prefix() == prefix {
				return ns.URI(), true
			}
		}
		parent := el.Parent()
		next, ok := parent.(*Element)
		if !ok {
			break
		}
		el = next
	}
	return "", false
}
