package c14n

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/lestrrat-go/xmlc14n/node"
	"github.com/lestrrat-go/xmlc14n/query"
)

// Canonicalizer serializes a node.Document, or a subset of one, to a
// sink in one of the four W3C canonical XML forms.
type Canonicalizer struct {
	sink io.Writer
	algo Algorithm
}

// New creates a Canonicalizer for the given sink and algorithm, selected
// by the (withComments, exclusive) pair rather than a URI.
func New(sink io.Writer, withComments, exclusive bool) *Canonicalizer {
	return &Canonicalizer{sink: sink, algo: algorithmFor(withComments, exclusive)}
}

// NewWithAlgorithm creates a Canonicalizer for one of the four W3C
// algorithm URIs. It returns *NullAlgorithm for an empty URI and
// *UnknownAlgorithm for anything else it doesn't recognize.
func NewWithAlgorithm(sink io.Writer, algorithmURI string) (*Canonicalizer, error) {
	if algorithmURI == "" {
		return nil, &NullAlgorithm{}
	}
	algo, ok := algorithmFromURI(algorithmURI)
	if !ok {
		return nil, &UnknownAlgorithm{URI: algorithmURI}
	}
	return &Canonicalizer{sink: sink, algo: algo}, nil
}

// Write canonicalizes the whole of doc.
func (c *Canonicalizer) Write(ctx context.Context, doc *node.Document) error {
	ctx, span := StartSpan(ctx, "c14n.Write")
	defer span.End()
	TraceEvent(ctx, "canonicalizing whole document", slog.String("algorithm", c.algo.URI()))

	if err := writeDocument(c.sink, doc, c.algo, nil); err != nil {
		TraceError(ctx, err, "canonicalization failed")
		return err
	}
	return nil
}

// WriteSubset resolves xpathExpr against xpathContext (doc's root element
// if nil) into a node-set and canonicalizes only that subset.
func (c *Canonicalizer) WriteSubset(ctx context.Context, doc *node.Document, xpathExpr string, xpathContext *node.Element) error {
	ctx, span := StartSpan(ctx, "c14n.WriteSubset")
	defer span.End()

	if xpathContext == nil {
		xpathContext = doc.DocumentElement()
	}
	if xpathContext == nil {
		err := &QueryError{Expr: xpathExpr, Err: errors.New("document has no root element to query against")}
		TraceError(ctx, err, "xpath evaluation failed")
		return err
	}

	expr, err := query.Parse(xpathExpr, collectNSContext(xpathContext))
	if err != nil {
		qerr := &QueryError{Expr: xpathExpr, Err: err}
		TraceError(ctx, qerr, "xpath parse failed")
		return qerr
	}

	ns := query.Evaluate(expr, xpathContext)
	TraceEvent(ctx, "canonicalizing node-set subset", slog.Int("size", ns.Len()), slog.String("algorithm", c.algo.URI()))

	if err := writeDocument(c.sink, doc, c.algo, ns); err != nil {
		TraceError(ctx, err, "canonicalization failed")
		return err
	}
	return nil
}

// WriteNodeSet canonicalizes an explicitly built subset, for callers who
// already have the node-set they want without going through an XPath
// expression.
func (c *Canonicalizer) WriteNodeSet(ctx context.Context, doc *node.Document, ns *node.NodeSet) error {
	ctx, span := StartSpan(ctx, "c14n.WriteNodeSet")
	defer span.End()
	TraceEvent(ctx, "canonicalizing explicit node-set", slog.Int("size", ns.Len()), slog.String("algorithm", c.algo.URI()))

	if err := writeDocument(c.sink, doc, c.algo, ns); err != nil {
		TraceError(ctx, err, "canonicalization failed")
		return err
	}
	return nil
}

// collectNSContext gathers the prefix bindings in scope at e, innermost
// first, for resolving qualified name tests in an XPath expression.
func collectNSContext(e *node.Element) map[string]string {
	out := map[string]string{"xml": xmlURI}
	for el := e; el != nil; {
		for _, d := range el.Namespaces() {
			if d.Prefix() == "" {
				continue
			}
			if _, ok := out[d.Prefix()]; !ok {
				out[d.Prefix()] = d.URI()
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
