package node

// Namespace represents an XML namespace declaration
type Namespace struct {
	*prefix
	etype   NodeType
	href    string
	context *Document
}

func NewNamespace(prefixStr, uri string) *Namespace {
	var p prefix
	ns := &Namespace{
		prefix: &p,
		etype:  NamespaceNodeType,
		href:   uri,
	}
	ns.SetPrefix(prefixStr)
	return ns
}

func (n *Namespace) URI() string {
	return n.href
}

// Type always reports NamespaceNodeType. Namespace does not implement
// Node (it never participates in the parent/child tree, only in node-sets),
// but query and c14n still need a uniform way to ask "what kind of thing is
// this" about a node-set member.
func (n *Namespace) Type() NodeType {
	return n.etype
}
