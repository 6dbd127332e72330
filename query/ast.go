// Package query implements the restricted XPath subset the canonicalizer
// uses to resolve a node-set for WriteSubset, modeled on jacoelho/xsd's
// internal/xpath compiler: relative paths, a fixed set of axes, no
// predicates, no functions beyond the four node-kind tests.
package query

import "errors"

// Axis names an XPath axis. Only the axes a canonical-XML node-set
// selector plausibly needs are supported.
type Axis int

const (
	AxisChild Axis = iota
	AxisDescendant
	AxisDescendantOrSelf
	AxisSelf
	AxisAttribute
	AxisNamespace
)

// NodeTest matches a candidate node during evaluation. A test is either
// a name test (Any or Local/URI) or a kind test (node(), text(),
// comment(), processing-instruction()), never both.
type NodeTest struct {
	Any                bool
	Local              string
	URI                string
	NamespaceSpecified bool
	Kind               NodeKind
}

// Step is one axis::test pair in a path.
type Step struct {
	Axis Axis
	Test NodeTest
}

// Path is a sequence of steps evaluated left to right from the context
// element. Only the last step may use the attribute or namespace axis.
type Path struct {
	Steps []Step
}

// Expression is a union ("|") of one or more paths.
type Expression struct {
	Paths []Path
}

// ErrInvalidXPath reports that an expression falls outside the
// supported restricted syntax.
var ErrInvalidXPath = errors.New("invalid xpath")
