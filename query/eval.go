package query

import (
	"github.com/lestrrat-go/xmlc14n/node"
)

// Evaluate runs expr with context as the context element and returns the
// matched nodes as a node-set in document order, with each element's
// namespace and attribute nodes (when matched) appearing immediately
// after that element, per the splicing convention the canonicalizer's
// subset algorithm (§4.3) assumes.
func Evaluate(expr Expression, context *node.Element) *node.NodeSet {
	order := buildDocumentOrder(context)

	var all []any
	seen := make(map[any]bool)
	for _, p := range expr.Paths {
		for _, item := range evalPath(p, []*node.Element{context}) {
			if seen[item] {
				continue
			}
			seen[item] = true
			all = append(all, item)
		}
	}

	sortByDocumentOrder(all, order)

	return node.NewNodeSet(all...)
}

func evalPath(p Path, ctx []*node.Element) []any {
	elems := ctx
	var leaf []any

	for i, step := range p.Steps {
		isLast := i == len(p.Steps)-1
		switch step.Axis {
		case AxisAttribute:
			for _, e := range elems {
				for _, a := range matchAttributes(e, step.Test) {
					leaf = append(leaf, a)
				}
			}
			elems = nil
		case AxisNamespace:
			for _, e := range elems {
				for _, n := range matchNamespaces(e, step.Test) {
					leaf = append(leaf, n)
				}
			}
			elems = nil
		default:
			var nextElems []*node.Element
			for _, e := range elems {
				matched, childElems := evalElementStep(e, step)
				if isLast {
					leaf = append(leaf, matched...)
				}
				nextElems = append(nextElems, childElems...)
			}
			elems = nextElems
		}
	}
	return leaf
}

// evalElementStep applies one child/descendant/descendant-or-self/self
// step to e, returning the matched nodes (elements, text, comments, PIs)
// alongside the element subset of those matches (so the next step in the
// path has somewhere to continue from).
func evalElementStep(e *node.Element, step Step) (matched []any, elems []*node.Element) {
	switch step.Axis {
	case AxisSelf:
		if matchesNode(e, step.Test) {
			matched = append(matched, e)
			elems = append(elems, e)
		}
		return
	case AxisChild:
		for c := e.FirstChild(); c != nil; c = c.NextSibling() {
			if matchesNode(c, step.Test) {
				matched = append(matched, c)
				if el, ok := c.(*node.Element); ok {
					elems = append(elems, el)
				}
			}
		}
		return
	case AxisDescendant, AxisDescendantOrSelf:
		if step.Axis == AxisDescendantOrSelf && matchesNode(e, step.Test) {
			matched = append(matched, e)
			elems = append(elems, e)
		}
		walkDescendants(e, func(n node.Node) {
			if matchesNode(n, step.Test) {
				matched = append(matched, n)
				if el, ok := n.(*node.Element); ok {
					elems = append(elems, el)
				}
			}
		})
		return
	default:
		return
	}
}

func walkDescendants(e *node.Element, visit func(node.Node)) {
	for c := e.FirstChild(); c != nil; c = c.NextSibling() {
		visit(c)
		if el, ok := c.(*node.Element); ok {
			walkDescendants(el, visit)
		}
	}
}

func matchesNode(n node.Node, t NodeTest) bool {
	switch v := n.(type) {
	case *node.Element:
		if t.Kind != 0 {
			return t.Kind.IsSet(KindElement)
		}
		return matchesName(t, v.URI(), v.LocalName())
	case *node.Text:
		return t.Kind == KindAny || t.Kind.IsSet(KindText)
	case *node.Comment:
		return t.Kind == KindAny || t.Kind.IsSet(KindComment)
	case *node.ProcessingInstructionNode:
		return t.Kind == KindAny || t.Kind.IsSet(KindPI)
	default:
		return false
	}
}

func matchesName(t NodeTest, uri, local string) bool {
	if t.Any {
		return true
	}
	if t.Local == "*" {
		return !t.NamespaceSpecified || t.URI == uri
	}
	if t.Local != local {
		return false
	}
	if t.NamespaceSpecified {
		return t.URI == uri
	}
	return uri == ""
}

func matchAttributes(e *node.Element, t NodeTest) []*node.Attribute {
	var out []*node.Attribute
	for _, a := range e.Attributes(nil) {
		if t.Any || matchesName(t, a.URI(), a.LocalName()) {
			out = append(out, a)
		}
	}
	return out
}

// matchNamespaces returns the namespaces in scope at e (declared on e or
// inherited from an ancestor and not overridden), matching t against the
// declared prefix.
func matchNamespaces(e *node.Element, t NodeTest) []*node.Namespace {
	seen := make(map[string]bool)
	var out []*node.Namespace
	for el := e; el != nil; {
		for _, ns := range el.Namespaces() {
			if seen[ns.Prefix()] {
				continue
			}
			seen[ns.Prefix()] = true
			if t.Any || t.Local == "*" || t.Local == ns.Prefix() {
				out = append(out, ns)
			}
		}
		anc := el.Ancestors()
		if len(anc) == 0 {
			break
		}
		el = anc[0]
	}
	return out
}
