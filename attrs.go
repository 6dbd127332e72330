package c14n

import (
	"github.com/lestrrat-go/xmlc14n/node"
)

// collectAttributes gathers the attributes §4.9 says element e should
// emit: its own attributes (filtered to subset membership when ns is
// non-nil), plus, in non-exclusive subset mode, xml:* attributes
// inherited from ancestors that aren't themselves in the subset.
func collectAttributes(e *node.Element, algo Algorithm, ns *node.NodeSet) []*node.Attribute {
	own := e.Attributes(nil)

	if ns == nil {
		out := make([]*node.Attribute, len(own))
		copy(out, own)
		return appendInheritedXMLAttrs(e, algo, nil, out)
	}

	out := make([]*node.Attribute, 0, len(own))
	for _, attr := range own {
		if ns.Contains(attr) {
			out = append(out, attr)
		}
	}
	return appendInheritedXMLAttrs(e, algo, ns, out)
}

// appendInheritedXMLAttrs implements the second half of §4.9: inherited
// xml:* attributes are only a thing in non-exclusive subset mode, and
// only when e itself is in the subset (the caller only calls this for
// elements it has decided to emit attributes for, so e-in-subset is
// implied when ns != nil — see writeStartTag).
func appendInheritedXMLAttrs(e *node.Element, algo Algorithm, ns *node.NodeSet, out []*node.Attribute) []*node.Attribute {
	if ns == nil || algo.Exclusive() {
		return out
	}

	seen := make(map[string]bool, len(out))
	for _, attr := range out {
		if attr.URI() == xmlURI {
			seen[attr.LocalName()] = true
		}
	}

	for _, ancestor := range e.Ancestors() {
		ancestorInSubset := ns.Contains(ancestor)
		for _, attr := range ancestor.Attributes(nil) {
			if attr.URI() != xmlURI {
				continue
			}
			ln := attr.LocalName()
			if seen[ln] {
				continue
			}
			seen[ln] = true
			if ancestorInSubset {
				// Already emitted on the ancestor's own start tag.
				continue
			}
			out = append(out, attr)
		}
	}
	return out
}
