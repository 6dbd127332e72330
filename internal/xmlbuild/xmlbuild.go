// Package xmlbuild builds a node.Document from XML bytes using the
// standard library's encoding/xml decoder. Parsing XML into the tree
// model is explicitly outside the canonicalizer's job; this package is
// the input glue the command-line tools use to get a tree to canonicalize
// in the first place.
package xmlbuild

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	xmlenc "github.com/lestrrat-go/xmlc14n/encoding"
	"github.com/lestrrat-go/xmlc14n/node"
)

// Parse reads a well-formed XML document from r and builds the
// corresponding node.Document. Go's xml.Decoder resolves prefixes to
// namespace URIs and drops the prefix text, so each element's and
// attribute's prefix is recovered from the in-scope declarations by
// resolvePrefixForURI, and every xmlns/xmlns:* attribute becomes a namespace declaration on
// the element it appeared on rather than a plain attribute. Non-UTF-8
// input declared in the XML prolog (encoding="..." other than utf-8) is
// transcoded on the fly: canonical XML output is always UTF-8 (spec
// §4.6), regardless of the source encoding.
func Parse(r io.Reader) (*node.Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if xmlenc.IsUTF8(charset) {
			return input, nil
		}
		enc := xmlenc.Load(charset)
		if enc == nil {
			return nil, errors.Errorf("xmlbuild: unsupported input encoding %q", charset)
		}
		return enc.NewDecoder().Reader(input), nil
	}

	doc := node.NewDocument()
	var cur *node.Element
	var stack []*node.Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "xmlbuild: decode token")
		}

		switch t := tok.(type) {
		case xml.ProcessingInstr:
			pi := doc.CreatePI(t.Target, string(t.Inst))
			if cur != nil {
				if err := cur.AddChild(pi); err != nil {
					return nil, errors.Wrap(err, "xmlbuild: add processing instruction")
				}
			} else {
				if err := doc.AddChild(pi); err != nil {
					return nil, errors.Wrap(err, "xmlbuild: add processing instruction")
				}
			}
		case xml.Comment:
			c := doc.CreateComment(append([]byte(nil), t...))
			if err := attach(doc, cur, c); err != nil {
				return nil, err
			}
		case xml.CharData:
			if cur != nil {
				if err := cur.AddContent(append([]byte(nil), t...)); err != nil {
					return nil, errors.Wrap(err, "xmlbuild: add text")
				}
			}
		case xml.StartElement:
			el := doc.CreateElement(t.Name.Local)
			for _, a := range t.Attr {
				switch {
				case a.Name.Space == "xmlns" && a.Name.Local != "":
					el.DeclareNamespace(a.Name.Local, a.Value)
				case a.Name.Space == "" && a.Name.Local == "xmlns":
					el.DeclareNamespace("", a.Value)
				}
			}

			if err := attach(doc, cur, el); err != nil {
				return nil, err
			}
			stack = append(stack, el)
			cur = el

			// Resolving el's own namespace membership and its attributes'
			// namespaces has to wait until after attach: it walks el's
			// ancestor chain to recover the prefix a resolved URI was
			// spelled with in the source, and that chain doesn't exist
			// until el is linked to its parent.
			if t.Name.Space != "" {
				_ = el.SetNamespace(resolvePrefixForURI(el, t.Name.Space), t.Name.Space, false)
			}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				var ns *node.Namespace
				if a.Name.Space != "" {
					ns = node.NewNamespace(resolvePrefixForURI(el, a.Name.Space), a.Name.Space)
				}
				if _, err := el.SetAttributeNS(ns, a.Name.Local, a.Value); err != nil {
					return nil, errors.Wrapf(err, "xmlbuild: set attribute %s", a.Name.Local)
				}
			}
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.New("xmlbuild: unbalanced end element")
			}
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				cur = stack[len(stack)-1]
			} else {
				cur = nil
			}
		}
	}

	return doc, nil
}

func attach(doc *node.Document, cur *node.Element, n node.Node) error {
	if cur != nil {
		return errors.Wrap(cur.AddChild(n), "xmlbuild: attach child")
	}
	if n.Type() == node.ElementNodeType {
		return errors.Wrap(doc.SetDocumentElement(n), "xmlbuild: set document element")
	}
	return errors.Wrap(doc.AddChild(n), "xmlbuild: attach top-level node")
}

// resolvePrefixForURI recovers the prefix that resolves to uri at el's
// position in the tree: encoding/xml resolves prefixes to URIs but
// discards the original prefix string, so this walks el's own namespace
// declarations and then each ancestor's, nearest first, the same order
// in-scope resolution uses. A prefix already seen at a nearer level
// shadows any binding for that prefix farther up, so each prefix is only
// ever considered at its nearest declaration. Falls back to no prefix if
// none is found.
func resolvePrefixForURI(el *node.Element, uri string) string {
	seen := make(map[string]bool)
	for _, d := range el.Namespaces() {
		if seen[d.Prefix()] {
			continue
		}
		seen[d.Prefix()] = true
		if d.URI() == uri {
			return d.Prefix()
		}
	}
	for _, anc := range el.Ancestors() {
		for _, d := range anc.Namespaces() {
			if seen[d.Prefix()] {
				continue
			}
			seen[d.Prefix()] = true
			if d.URI() == uri {
				return d.Prefix()
			}
		}
	}
	return ""
}
