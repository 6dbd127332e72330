// Package nsstack is a stack of namespace prefix/URI bindings, pushed as
// the canonicalizer's walker descends into an element's declarations and
// popped by count when it leaves that element. Lookup scans from the top
// so an inner declaration always shadows an outer one for the same
// prefix, without needing to track scope boundaries explicitly.
package nsstack

import "github.com/lestrrat-go/xmlc14n/internal/stack"

type Item struct {
	prefix string
	href   string
}

func (i Item) Prefix() string {
	return i.prefix
}

func (i Item) URI() string {
	return i.href
}

func (i Item) Key() string {
	return i.prefix
}

type Stack struct {
	stack.LookupStack
}

func New() Stack {
	return Stack{}
}

// Push records a prefix/URI binding. A repeated prefix is not an error:
// a nested element re-declaring a prefix it already saw is exactly how
// namespace shadowing works, and Lookup's top-down scan makes the
// newest binding win.
func (s *Stack) Push(prefix, uri string) {
	s.LookupStack.Push(Item{prefix: prefix, href: uri})
}

// Lookup returns the URI bound to prefix, or "" if the prefix is not
// currently bound.
func (s *Stack) Lookup(prefix string) string {
	uri, _ := s.LookupURI(prefix)
	return uri
}

// LookupURI returns the URI bound to prefix and whether it is bound at
// all, distinguishing "bound to the empty string" (e.g. a default
// namespace explicitly undeclared with xmlns="") from "never bound".
func (s *Stack) LookupURI(prefix string) (string, bool) {
	item := s.LookupStack.Lookup(prefix)
	if item == stack.NilItem {
		return "", false
	}
	return item.(Item).href, true
}
