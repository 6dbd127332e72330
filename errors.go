package c14n

import (
	"fmt"

	"github.com/pkg/errors"
)

// IoError wraps a failure writing to the output sink.
type IoError struct {
	Err error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("c14n: write to output failed: %s", e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// UnknownAlgorithm is returned by NewWithAlgorithm when given a URI that
// doesn't match one of the four W3C algorithm identifiers.
type UnknownAlgorithm struct {
	URI string
}

func (e *UnknownAlgorithm) Error() string {
	return fmt.Sprintf("c14n: unknown algorithm URI %q", e.URI)
}

// NullAlgorithm is returned by NewWithAlgorithm when given an empty URI.
type NullAlgorithm struct{}

func (e *NullAlgorithm) Error() string {
	return "c14n: no algorithm URI given"
}

// QueryError wraps a failure to parse or evaluate an XPath expression
// passed to WriteSubset.
type QueryError struct {
	Expr string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("c14n: query %q failed: %s", e.Expr, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func ioError(err error) error {
	return errors.WithStack(&IoError{Err: err})
}
