package c14n

import (
	"sort"

	"github.com/lestrrat-go/xmlc14n/node"
)

// sortAttributes orders attrs per §4.11: unprefixed attributes first, then
// by namespace URI codepoint order, and within a URI by local name
// codepoint order. sort.SliceStable is used rather than sort.Slice: the
// comparator can never actually observe two equal attributes on a
// well-formed element (duplicates are forbidden by construction), but a
// stable sort costs nothing here and removes any doubt about tie-breaking
// if that invariant is ever violated by a caller-built tree.
//
// The standard library's sort.SliceStable is used here rather than a
// hand-rolled merge sort: attribute lists are small (single digits to
// low tens per element) so its performance profile doesn't matter, and
// none of the pack's third-party dependencies offer a generic sort that
// would fit better than the one already in the standard library.
func sortAttributes(attrs []*node.Attribute) {
	sort.SliceStable(attrs, func(i, j int) bool {
		return attrLess(attrs[i], attrs[j])
	})
}

func attrLess(a, b *node.Attribute) bool {
	au, bu := a.URI(), b.URI()
	if au == bu {
		return a.LocalName() < b.LocalName()
	}
	if au == "" {
		return true
	}
	if bu == "" {
		return false
	}
	return au < bu
}
