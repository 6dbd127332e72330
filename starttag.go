package c14n

import (
	"io"
	"sort"

	"github.com/lestrrat-go/xmlc14n/node"
)

// writeStartTag implements §4.3. Namespace declaration selection differs
// between whole-document and node-set-subset canonicalization; both
// funnel through the same emission and scope-tracking code once the set
// of declarations to emit has been decided.
func writeStartTag(w io.Writer, scope *nsScope, e *node.Element, algo Algorithm, ns *node.NodeSet) error {
	if ns != nil && !ns.Contains(e) {
		// Not in the output subset: no tag, no declarations, nothing
		// pushed onto scope. Descendants that need to resolve a prefix
		// fall through to whatever ancestor actually got emitted.
		return nil
	}

	if _, err := io.WriteString(w, "<"+e.Name()); err != nil {
		return ioError(err)
	}

	attrs := collectAttributes(e, algo, ns)

	var decls []*node.Namespace
	if ns == nil {
		decls = selectWholeDocDecls(e, scope, algo, attrs)
	} else {
		decls = selectSubsetDecls(e, scope, algo, attrs, ns)
	}
	sortNamespaceDecls(decls)

	for _, d := range decls {
		if err := writeNamespaceDecl(w, d); err != nil {
			return err
		}
		scope.declarePrefix(d.Prefix(), d.URI())
	}

	sortAttributes(attrs)
	for _, a := range attrs {
		if err := writeAttribute(w, a); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return ioError(err)
	}
	return nil
}

// writeEndTag implements §4.5: emit the closing tag iff e is in the
// output subset. Popping the scope frame is the walker's job (it owns
// the matching pushContext call), not this function's.
func writeEndTag(w io.Writer, e *node.Element, ns *node.NodeSet) error {
	if ns != nil && !ns.Contains(e) {
		return nil
	}
	if _, err := io.WriteString(w, "</"+e.Name()+">"); err != nil {
		return ioError(err)
	}
	return nil
}

func selectWholeDocDecls(e *node.Element, scope *nsScope, algo Algorithm, attrs []*node.Attribute) []*node.Namespace {
	var out []*node.Namespace
	for _, d := range e.Namespaces() {
		p, u := d.Prefix(), d.URI()
		if curURI, bound := scope.uri(p); bound && curURI == u {
			continue
		}

		switch {
		case algo.Exclusive():
			if visiblyUtilized(e, p, u, scope, attrs, nil) {
				out = append(out, d)
			}
		case u == "":
			if _, hasParent := ancestorElement(e); !hasParent {
				continue
			}
			if pu, bound := scope.uri(""); !bound || pu == "" {
				continue
			}
			out = append(out, d)
		default:
			out = append(out, d)
		}
	}
	return out
}

func selectSubsetDecls(e *node.Element, scope *nsScope, algo Algorithm, attrs []*node.Attribute, ns *node.NodeSet) []*node.Namespace {
	var pending []*node.Namespace

	if needsDefaultUndeclare(e, ns) {
		pending = append(pending, node.NewNamespace("", ""))
	}

	if idx := ns.IndexOf(e); idx >= 0 {
		for i := idx + 1; i < ns.Len(); i++ {
			nsNode, ok := ns.At(i).(*node.Namespace)
			if !ok {
				break
			}
			pending = append(pending, nsNode)
		}
	}

	var out []*node.Namespace
	for _, d := range pending {
		p, u := d.Prefix(), d.URI()
		if curURI, bound := scope.uri(p); bound && curURI == u {
			continue
		}
		if algo.Exclusive() {
			if visiblyUtilized(e, p, u, scope, attrs, ns) {
				out = append(out, d)
			}
			continue
		}
		out = append(out, d)
	}
	return out
}

// needsDefaultUndeclare reports whether e, a subset member with no
// namespace of its own, must emit xmlns="" to override a non-empty
// default namespace inherited from the nearest ancestor that is itself
// in the output subset.
func needsDefaultUndeclare(e *node.Element, ns *node.NodeSet) bool {
	if !ns.Contains(e) || e.URI() != "" {
		return false
	}
	ancestor, ok := nearestSubsetAncestor(e, ns)
	if !ok {
		return false
	}
	defURI, _ := ancestor.InScopeNamespaceURI("")
	return defURI != ""
}

func nearestSubsetAncestor(e *node.Element, ns *node.NodeSet) (*node.Element, bool) {
	for _, a := range e.Ancestors() {
		if ns.Contains(a) {
			return a, true
		}
	}
	return nil, false
}

func ancestorElement(e *node.Element) (*node.Element, bool) {
	anc := e.Ancestors()
	if len(anc) == 0 {
		return nil, false
	}
	return anc[0], true
}

// visiblyUtilized implements §4.4: a declaration (p, u) on e is visibly
// utilized iff e's own name, one of its emitted attributes' names, or a
// descendant's name/attribute in the output uses prefix p bound to u
// (spec.md's own scenario 6: xmlns:u stays on <a> because <b>'s attribute
// uses it and <b> never redeclares u) — and the nearest ancestor binding
// actually visible in the output (if any) binds p to a different URI.
func visiblyUtilized(e *node.Element, p, u string, scope *nsScope, attrs []*node.Attribute, ns *node.NodeSet) bool {
	used := e.Prefix() == p && e.URI() == u
	if !used {
		for _, a := range attrs {
			if a.Prefix() == p && a.URI() == u {
				used = true
				break
			}
		}
	}
	if !used {
		used = descendantUsesPrefix(e, p, u, ns)
	}
	if !used {
		return false
	}

	curURI, bound := scope.uri(p)
	if !bound {
		return true
	}
	return curURI != u
}

// descendantUsesPrefix scans e's subtree (respecting ns's output-subset
// membership when ns is non-nil) for any element name or attribute that
// resolves prefix p to URI u. A binding overridden partway down already
// resolves its descendants' uses to the new URI, so matching on
// (prefix, resolved URI) together is enough — no separate bookkeeping
// for where a redeclaration happened is needed.
func descendantUsesPrefix(e *node.Element, p, u string, ns *node.NodeSet) bool {
	for c := e.FirstChild(); c != nil; c = c.NextSibling() {
		child, ok := c.(*node.Element)
		if !ok {
			continue
		}
		if ns == nil || ns.Contains(child) {
			if child.Prefix() == p && child.URI() == u {
				return true
			}
			for _, a := range child.Attributes(nil) {
				if ns != nil && !ns.Contains(a) {
					continue
				}
				if a.Prefix() == p && a.URI() == u {
					return true
				}
			}
		}
		if descendantUsesPrefix(child, p, u, ns) {
			return true
		}
	}
	return false
}

func sortNamespaceDecls(decls []*node.Namespace) {
	sort.SliceStable(decls, func(i, j int) bool {
		pi, pj := decls[i].Prefix(), decls[j].Prefix()
		if pi == "" {
			return pj != ""
		}
		if pj == "" {
			return false
		}
		return pi < pj
	})
}

func writeNamespaceDecl(w io.Writer, d *node.Namespace) error {
	name := "xmlns"
	if p := d.Prefix(); p != "" {
		name += ":" + p
	}
	if _, err := io.WriteString(w, " "+name+`="`); err != nil {
		return ioError(err)
	}
	if err := writeAttributeValue(w, []byte(d.URI()), node.AttrCDATA); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `"`); err != nil {
		return ioError(err)
	}
	return nil
}

func writeAttribute(w io.Writer, a *node.Attribute) error {
	if _, err := io.WriteString(w, " "+a.Name()+`="`); err != nil {
		return ioError(err)
	}
	val, err := a.Content(nil)
	if err != nil {
		return err
	}
	if err := writeAttributeValue(w, val, a.AttributeType()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `"`); err != nil {
		return ioError(err)
	}
	return nil
}
