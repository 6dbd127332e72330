package node

import (
	"errors"
)

// treeNode is the part of a Node that handles the tree structure. self
// holds the concrete Node embedding this treeNode, set once by the
// type's constructor, so the tree-linking methods below can be defined
// here once instead of as an identical one-line wrapper in every
// concrete node type: Go has no way to recover "the outer struct" from
// an embedded field's method, so without self those wrappers would have
// to keep being hand-written per type.
type treeNode struct {
	name       string
	firstChild Node
	lastChild  Node
	parent     Node
	next       Node
	prev       Node
	doc        *Document
	self       Node
}

func (n *treeNode) getTreeNode() *treeNode {
	return n
}

// AddSibling, Replace, SetNextSibling and SetPrevSibling are identical
// across every tree-participant node type (they only ever touch link
// fields, never type-specific content), so they live here once. A
// concrete type that needs different behavior (Document rejects all
// four; nothing currently needs a different Replace/SetNextSibling/
// SetPrevSibling) defines its own method, which shadows these per
// ordinary Go method promotion rules.
func (n *treeNode) AddSibling(sibling Node) error {
	return addSibling(n.self, sibling)
}

func (n *treeNode) Replace(cur Node) error {
	return replaceNode(n.self, cur)
}

func (n *treeNode) SetNextSibling(sibling Node) error {
	return setNextSibling(n.self, sibling)
}

func (n *treeNode) SetPrevSibling(sibling Node) error {
	return setPrevSibling(n.self, sibling)
}

// AddChild and AddContent follow the same generic child-linking path for
// every node type except Text and Comment, which store raw content
// instead of delegating to a synthesized Text child; those two shadow
// these with their own AddChild/AddContent.
func (n *treeNode) AddChild(cur Node) error {
	return addChild(n.self, cur)
}

func (n *treeNode) AddContent(b []byte) error {
	return addContent(n.self, b)
}

func (n *treeNode) OwnerDocument() *Document {
	return n.doc
}

func (n *treeNode) FirstChild() Node {
	return n.firstChild
}

func (n *treeNode) LastChild() Node {
	return n.lastChild
}

func (n *treeNode) Parent() Node {
	return n.parent
}

func (n *treeNode) NextSibling() Node {
	return n.next
}

func (n *treeNode) PrevSibling() Node {
	return n.prev
}

func (n *treeNode) Content(dst []byte) ([]byte, error) {
	result := dst
	for e := n.firstChild; e != nil; e = e.NextSibling() {
		var err error
		result, err = e.Content(result)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

func (n *treeNode) SetOwnerDocument(doc *Document) error {
	if n == nil {
		return errors.New("cannot set owner document to nil node")
	}
	if doc == nil {
		return errors.New("cannot set nil document")
	}

	n.doc = doc
	return nil
}

func (n *treeNode) SetParent(p Node) error {
	if n == nil {
		return errors.New("cannot set parent to nil node")
	}
	if p == nil {
		return errors.New("cannot set nil parent")
	}

	n.parent = p
	return nil
}

func addSibling(n, sibling Node) error {
	if n == nil {
		return errors.New("cannot add sibling to nil node")
	}
	if sibling == nil {
		return errors.New("cannot add nil sibling")
	}

	l := n
	lt := n.getTreeNode()
	st := sibling.getTreeNode()

	for lt.next != nil {
		l = lt.next
		lt = l.getTreeNode()
	}

	lt.next = sibling
	st.prev = l
	if lt.parent != nil {
		st.parent = lt.parent
		lt.parent.getTreeNode().lastChild = sibling
	}
	return nil
}

func addChild(parent, child Node) error {
	pt := parent.getTreeNode()
	ct := child.getTreeNode()

	l := pt.lastChild
	if l == nil { // No children, set firstChild to cur, and bail out
		pt.firstChild = child
		pt.lastChild = child
		ct.parent = parent
		return nil
	}

	// AddSibling handles setting the parent, and the
	// lastChild pointer
	if err := addSibling(l, child); err != nil {
		return err
	}

	/*
		// If the last child was a text node, keep the old LastChild
		if child.Type() == TextNodeType && l.Type() == TextNode {
			n.setLastChild(l)
		}
	*/
	return nil
}

func addContent(n Node, content []byte) error {
	t := NewText(content)
	return n.AddChild(t)
}

func replaceNode(n Node, cur Node) error {
	if next := n.NextSibling(); next != nil {
		cur.getTreeNode().next = next // cur.next = n.next
		next.getTreeNode().prev = cur // n.next.prev = cur
	}

	if prev := n.PrevSibling(); prev != nil {
		cur.getTreeNode().prev = prev // cur.prev = n.prev
		prev.getTreeNode().next = cur // n.prev.next = cur
	}

	if parent := n.Parent(); parent != nil {
		if parent.FirstChild() == n {
			parent.getTreeNode().firstChild = cur // parent.firstChild = cur
		}
		if parent.LastChild() == n {
			parent.getTreeNode().lastChild = cur // parent.lastChild = cur
		}
		cur.getTreeNode().parent = parent
	}
	return nil
}

func setNextSibling(n, sibling Node) error {
	if n == nil {
		return errors.New("cannot set next sibling to nil node")
	}
	if sibling == nil {
		return errors.New("cannot set nil sibling")
	}

	n.getTreeNode().next = sibling
	sibling.getTreeNode().prev = n

	if parent := n.Parent(); parent != nil {
		sibling.getTreeNode().parent = parent
		if parent.getTreeNode().lastChild == n {
			parent.getTreeNode().lastChild = sibling
		}
	}
	return nil
}

func setPrevSibling(n, sibling Node) error {
	if n == nil {
		return errors.New("cannot set previous sibling to nil node")
	}
	if sibling == nil {
		return errors.New("cannot set nil sibling")
	}

	n.getTreeNode().prev = sibling
	sibling.getTreeNode().next = n

	if parent := n.Parent(); parent != nil {
		sibling.getTreeNode().parent = parent
		if parent.getTreeNode().firstChild == n {
			parent.getTreeNode().firstChild = sibling
		}
	}
	return nil
}

// Root walks n's parent chain to the outermost ancestor: the owning
// Document if n is attached to one, otherwise the top of whatever
// detached fragment n lives in. Canonicalization needs this to find
// where a document-order numbering pass should start from, since a
// query can be rooted at any element, not just the document element.
func Root(n Node) Node {
	if n == nil {
		return nil
	}
	for p := n.Parent(); p != nil; p = n.Parent() {
		n = p
	}
	return n
}

// DocumentOrder assigns every node reachable from root a strictly
// increasing sequence number in XPath document order: a node, then (if
// it is an Element) its namespace nodes, then its attribute nodes, then
// its children recursively. Namespace and attribute nodes never
// participate in the parent/child tree on their own, so this is the only
// place their relative position is defined; query's node-set sorting
// needs that position (c14n's start-tag emission orders attributes and
// namespace declarations with its own comparators instead).
func DocumentOrder(root Node) map[any]int {
	order := make(map[any]int)
	seq := 0
	assign := func(n any) {
		if _, ok := order[n]; !ok {
			order[n] = seq
			seq++
		}
	}

	var walk func(n Node)
	walk = func(n Node) {
		assign(n)
		if e, ok := n.(*Element); ok {
			for _, ns := range e.Namespaces() {
				assign(ns)
			}
			for _, a := range e.Attributes(nil) {
				assign(a)
			}
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}

	switch r := Root(root).(type) {
	case *Document:
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	default:
		if r != nil {
			walk(r)
		}
	}
	return order
}
