package node

import (
	"errors"
)

type prefix string

func (p *prefix) SetPrefix(s string) {
	*p = prefix(s)
}

func (p *prefix) Prefix() string {
	if p == nil {
		return ""
	}
	return string(*p)
}

// NodeType represents the type of a node in the XML tree
type NodeType int

const (
	ElementNodeType NodeType = iota + 1
	AttributeNodeType
	TextNodeType
	ProcessingInstructionNodeType
	CommentNodeType
	DocumentNodeType
	DocumentTypeNodeType

	// NamespaceNodeType never appears as the Type() of a tree participant.
	// It only labels Namespace values placed into a NodeSet.
	NamespaceNodeType
)

var ErrInvalidOperation = errors.New("invalid operation")

// Node interface defines the common functionality for all node types
// that participate in the parent/child/sibling tree. Namespace nodes are
// deliberately excluded: per spec they are only ever members of a
// node-set, never tree participants, so they don't need AddChild,
// siblings, or any of the rest of this interface.
type Node interface {
	// returns the treeNode (the part of the Node that handles the tree structure)
	getTreeNode() *treeNode

	AddChild(Node) error
	AddContent([]byte) error
	AddSibling(Node) error

	Type() NodeType
	// Content appends the content of the node to the provided byte slice and returns the result.
	// If dst is nil, a new slice is allocated.
	Content(dst []byte) ([]byte, error)

	FirstChild() Node
	LastChild() Node

	// LocalName returns the local name of the node.
	LocalName() string

	NextSibling() Node
	OwnerDocument() *Document
	Parent() Node
	PrevSibling() Node

	Replace(Node) error

	SetNextSibling(Node) error
	SetOwnerDocument(doc *Document) error
	SetParent(Node) error
	SetPrevSibling(Node) error
}

type DocumentStandaloneType int

const (
	StandaloneInvalidValue = -99
	StandaloneExplicitYes  = 1
	StandaloneExplicitNo   = 0
	StandaloneNoXMLDecl    = -1
	StandaloneImplicitNo   = -2
)

// DTD stands in for a document's document type declaration. Canonical XML
// never emits it (spec §4.1: "the document type is never emitted"); the
// canonicalizer only needs to recognize and skip it while walking a
// Document's children, so it carries no entity or content-model machinery.
type DTD struct {
	treeNode
	name string
}
