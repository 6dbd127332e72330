// Package s11n provides a plain, non-canonical XML serializer for the
// node tree: unlike c14n.Canonicalizer it doesn't sort attributes, prune
// namespaces, or normalize whitespace. It exists for debug output and
// test fixtures where a readable rendering of a tree matters more than
// byte-exact canonical form.
package s11n

import (
	"io"

	"github.com/lestrrat-go/xmlc14n/node"
)

type Dumper struct{}

// DumpDoc writes doc's XML declaration followed by each of its children.
func (d *Dumper) DumpDoc(out io.Writer, doc *node.Document) error {
	if err := d.dumpDocContent(out, doc); err != nil {
		return err
	}

	for e := doc.FirstChild(); e != nil; e = e.NextSibling() {
		if err := d.DumpNode(out, e); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dumper) dumpDocContent(out io.Writer, doc *node.Document) error {
	_, _ = io.WriteString(out, `<?xml version="`)
	version := doc.Version()
	if version == "" {
		version = "1.0"
	}
	_, _ = io.WriteString(out, version+`"`)

	if encoding := doc.Encoding(); encoding != "" && encoding != "utf8" && encoding != "utf-8" {
		_, _ = io.WriteString(out, ` encoding="`+encoding+`"`)
	}

	switch doc.Standalone() {
	case node.StandaloneExplicitNo:
		_, _ = io.WriteString(out, ` standalone="no"`)
	case node.StandaloneExplicitYes:
		_, _ = io.WriteString(out, ` standalone="yes"`)
	}
	_, _ = io.WriteString(out, "?>\n")
	return nil
}

func (d *Dumper) dumpDTD(out io.Writer, dtd *node.DTD) error {
	_, _ = io.WriteString(out, "<!DOCTYPE ")
	_, _ = io.WriteString(out, dtd.LocalName())
	_, _ = io.WriteString(out, ">")
	return nil
}

func (d *Dumper) dumpNamespaces(out io.Writer, nslist []*node.Namespace) {
	for _, ns := range nslist {
		_, _ = io.WriteString(out, " xmlns")
		if p := ns.Prefix(); p != "" {
			_, _ = io.WriteString(out, ":"+p)
		}
		_, _ = io.WriteString(out, `="`)
		_, _ = io.WriteString(out, ns.URI())
		_, _ = io.WriteString(out, `"`)
	}
}

func (d *Dumper) dumpAttributes(out io.Writer, e *node.Element) error {
	for _, attr := range e.Attributes(nil) {
		_, _ = io.WriteString(out, " "+attr.Name()+"=")
		if err := DumpQuotedString(out, attr.Value()); err != nil {
			return err
		}
	}
	return nil
}

// DumpNode writes n and, for tree-shaped nodes, its descendants.
func (d *Dumper) DumpNode(out io.Writer, n node.Node) error {
	switch n.Type() {
	case node.DocumentNodeType:
		return d.dumpDocContent(out, n.(*node.Document))
	case node.DocumentTypeNodeType:
		return d.dumpDTD(out, n.(*node.DTD))
	case node.CommentNodeType:
		content, err := n.Content(nil)
		if err != nil {
			return err
		}
		_, _ = io.WriteString(out, "<!--")
		_, _ = out.Write(content)
		_, _ = io.WriteString(out, "-->")
		return nil
	case node.ProcessingInstructionNodeType:
		pi := n.(*node.ProcessingInstructionNode)
		_, _ = io.WriteString(out, "<?"+pi.Target()+" "+pi.Data()+"?>")
		return nil
	case node.TextNodeType:
		c, err := n.Content(nil)
		if err != nil {
			return err
		}
		return EscapeText(out, c, false)
	}

	e, ok := n.(*node.Element)
	if !ok {
		return nil
	}

	_, _ = io.WriteString(out, "<"+e.Name())
	d.dumpNamespaces(out, e.Namespaces())
	if err := d.dumpAttributes(out, e); err != nil {
		return err
	}

	if e.FirstChild() == nil {
		_, _ = io.WriteString(out, "/>")
		return nil
	}
	_, _ = io.WriteString(out, ">")

	for child := e.FirstChild(); child != nil; child = child.NextSibling() {
		if err := d.DumpNode(out, child); err != nil {
			return err
		}
	}

	_, _ = io.WriteString(out, "</"+e.Name()+">")
	return nil
}
