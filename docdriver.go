package c14n

import (
	"io"

	"github.com/lestrrat-go/xmlc14n/node"
)

// writeDocument implements §4.1: prolog nodes, the root element, epilog
// nodes, with the newline-separation rules between them. The document
// type node, if any, is never emitted.
func writeDocument(w io.Writer, doc *node.Document, algo Algorithm, ns *node.NodeSet) error {
	scope := newNSScope()

	var root *node.Element
	var prolog, epilog []node.Node
	seenRoot := false
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() == node.DocumentTypeNodeType {
			continue
		}
		if el, ok := c.(*node.Element); ok {
			root = el
			seenRoot = true
			continue
		}
		if seenRoot {
			epilog = append(epilog, c)
		} else {
			prolog = append(prolog, c)
		}
	}

	for _, n := range prolog {
		if err := writePrologNode(w, n, algo, ns); err != nil {
			return err
		}
	}

	if root != nil {
		if err := walkElement(w, scope, root, algo, ns); err != nil {
			return err
		}
	}

	for _, n := range epilog {
		if err := writeEpilogNode(w, n, algo, ns); err != nil {
			return err
		}
	}

	return nil
}

func writePrologNode(w io.Writer, n node.Node, algo Algorithm, ns *node.NodeSet) error {
	switch n.Type() {
	case node.ProcessingInstructionNodeType:
		pi := n.(*node.ProcessingInstructionNode)
		if ns != nil && !ns.Contains(pi) {
			return nil
		}
		if err := writePI(w, pi); err != nil {
			return err
		}
		return writeNewline(w)
	case node.CommentNodeType:
		if !algo.WithComments() {
			return nil
		}
		c := n.(*node.Comment)
		if ns != nil && !ns.Contains(c) {
			return nil
		}
		if err := writeCommentNode(w, c); err != nil {
			return err
		}
		return writeNewline(w)
	}
	return nil
}

func writeEpilogNode(w io.Writer, n node.Node, algo Algorithm, ns *node.NodeSet) error {
	switch n.Type() {
	case node.ProcessingInstructionNodeType:
		pi := n.(*node.ProcessingInstructionNode)
		if ns != nil && !ns.Contains(pi) {
			return nil
		}
		if err := writeNewline(w); err != nil {
			return err
		}
		return writePI(w, pi)
	case node.CommentNodeType:
		if !algo.WithComments() {
			return nil
		}
		c := n.(*node.Comment)
		if ns != nil && !ns.Contains(c) {
			return nil
		}
		if err := writeNewline(w); err != nil {
			return err
		}
		return writeCommentNode(w, c)
	}
	return nil
}

func writeNewline(w io.Writer) error {
	if _, err := io.WriteString(w, "\n"); err != nil {
		return ioError(err)
	}
	return nil
}

func writePI(w io.Writer, pi *node.ProcessingInstructionNode) error {
	var err error
	if pi.Data() == "" {
		_, err = io.WriteString(w, "<?"+pi.Target()+"?>")
	} else {
		_, err = io.WriteString(w, "<?"+pi.Target()+" "+pi.Data()+"?>")
	}
	if err != nil {
		return ioError(err)
	}
	return nil
}

func writeCommentNode(w io.Writer, c *node.Comment) error {
	content, err := c.Content(nil)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<!--"); err != nil {
		return ioError(err)
	}
	if _, err := w.Write(content); err != nil {
		return ioError(err)
	}
	if _, err := io.WriteString(w, "-->"); err != nil {
		return ioError(err)
	}
	return nil
}
