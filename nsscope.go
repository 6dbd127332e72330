package c14n

import "github.com/lestrrat-go/xmlc14n/internal/stack/nsstack"

const (
	xmlURI   = "http://www.w3.org/XML/1998/namespace"
	xmlnsURI = "http://www.w3.org/2000/xmlns/"
)

// nsScope is the namespace scope tracker of §4.12: a stack of prefix→URI
// bindings, pushed on element entry and popped on exit, with the `xml`
// and `xmlns` prefixes permanently bound.
type nsScope struct {
	stack  nsstack.Stack
	frames []int // bindings pushed per open frame, so popContext knows how many to pop
}

func newNSScope() *nsScope {
	s := &nsScope{stack: nsstack.New()}
	s.stack.Push("xml", xmlURI)
	s.stack.Push("xmlns", xmlnsURI)
	return s
}

// pushContext opens a new frame for an element about to be visited.
func (s *nsScope) pushContext() {
	s.frames = append(s.frames, 0)
}

// popContext closes the innermost frame, discarding every binding
// declared since the matching pushContext.
func (s *nsScope) popContext() {
	if len(s.frames) == 0 {
		return
	}
	n := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	s.stack.Pop(n)
}

// declarePrefix records prefix→uri on the current (innermost) frame.
func (s *nsScope) declarePrefix(prefix, uri string) {
	s.stack.Push(prefix, uri)
	if n := len(s.frames); n > 0 {
		s.frames[n-1]++
	}
}

// uri returns the URI currently bound to prefix and whether it is bound
// at all. An unbound default prefix ("") is reported as bound to "" with
// ok=false, matching §4.12's "no default namespace in scope" sentinel.
func (s *nsScope) uri(prefix string) (string, bool) {
	return s.stack.LookupURI(prefix)
}
