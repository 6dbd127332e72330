package query

import (
	"sort"

	"github.com/lestrrat-go/xmlc14n/node"
)

// buildDocumentOrder delegates to node.DocumentOrder, which owns the
// tree-walk that splices namespace and attribute nodes in right after
// the element that owns them. context anchors the walk wherever its
// tree actually starts: its owning Document, or the top of a detached
// fragment when there isn't one.
func buildDocumentOrder(context *node.Element) map[any]int {
	return node.DocumentOrder(context)
}

func sortByDocumentOrder(items []any, order map[any]int) {
	const unknown = 1 << 30
	sort.SliceStable(items, func(i, j int) bool {
		oi, oki := order[items[i]]
		oj, okj := order[items[j]]
		if !oki {
			oi = unknown
		}
		if !okj {
			oj = unknown
		}
		return oi < oj
	})
}
