package c14n

import (
	"io"

	"github.com/lestrrat-go/pdebug"

	"github.com/lestrrat-go/xmlc14n/internal/debug"
	"github.com/lestrrat-go/xmlc14n/internal/stack"
	"github.com/lestrrat-go/xmlc14n/node"
)

// walkFrame tracks, for one open element on the walk stack, which child
// to visit next. Storing a pointer in the stack lets us mutate child
// in place as we advance through the sibling chain.
type walkFrame struct {
	elem  *node.Element
	child node.Node
}

// walkElement implements §4.2: a depth-first walk of root and its
// descendants, driven by an explicit stack rather than native recursion
// so pathologically deep trees can't exhaust the goroutine stack.
func walkElement(w io.Writer, scope *nsScope, root *node.Element, algo Algorithm, ns *node.NodeSet) error {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	var frames stack.Stack[*walkFrame]

	scope.pushContext()
	if err := writeStartTag(w, scope, root, algo, ns); err != nil {
		return err
	}
	frames.Push(&walkFrame{elem: root, child: root.FirstChild()})
	debug.Printf(" --> push node %s", root.Name())
	debug.DumpElement(root)

	for frames.Len() > 0 {
		top := frames.Peek(1)[0]

		child := top.child
		if child == nil {
			if err := writeEndTag(w, top.elem, ns); err != nil {
				return err
			}
			scope.popContext()
			frames.Pop()
			debug.Printf(" <-- pop node %s", top.elem.Name())
			continue
		}
		top.child = child.NextSibling()

		switch c := child.(type) {
		case *node.Element:
			scope.pushContext()
			if err := writeStartTag(w, scope, c, algo, ns); err != nil {
				return err
			}
			frames.Push(&walkFrame{elem: c, child: c.FirstChild()})
			debug.Printf(" --> push node %s", c.Name())
			debug.DumpElement(c)
		case *node.Text:
			if err := writeChildText(w, c, ns); err != nil {
				return err
			}
		case *node.Comment:
			if err := writeChildComment(w, c, algo, ns); err != nil {
				return err
			}
		case *node.ProcessingInstructionNode:
			if err := writeChildPI(w, c, ns); err != nil {
				return err
			}
		default:
			// document type declarations and anything else with no
			// canonical representation as a descendant are skipped.
		}
	}
	return nil
}

func writeChildText(w io.Writer, t *node.Text, ns *node.NodeSet) error {
	if ns != nil && !ns.Contains(t) {
		return nil
	}
	content, err := t.Content(nil)
	if err != nil {
		return err
	}
	return writeText(w, content)
}

func writeChildComment(w io.Writer, c *node.Comment, algo Algorithm, ns *node.NodeSet) error {
	if !algo.WithComments() {
		return nil
	}
	if ns != nil && !ns.Contains(c) {
		return nil
	}
	return writeCommentNode(w, c)
}

func writeChildPI(w io.Writer, pi *node.ProcessingInstructionNode, ns *node.NodeSet) error {
	if ns != nil && !ns.Contains(pi) {
		return nil
	}
	return writePI(w, pi)
}
