// Package stack holds the two stack shapes the walker needs: Stack[T], a
// typed LIFO for walker.go's explicit element-walk frames, and
// LookupStack, a top-down-scanned stack for nsstack's prefix/URI
// bindings. Both shrink their backing array via stackPop once it grows
// past twice what's actually in use, instead of holding onto peak usage
// for the life of a long walk.
package stack

type nilItem struct{}

func (i nilItem) Key() string {
	return ""
}

var NilItem = nilItem{}
type StackImpl interface {
	Cap() int
	Len() int
	PopLast()
	Realloc()
}

func stackPop(s StackImpl, n int) {
	if n <= 0 {
		return
	}

	for s.Len() > 0 {
		s.PopLast()
		n--
		if n <= 0 {
			break
		}
	}

	if c := s.Cap(); c > 20 && c > s.Len() * 2 {
		s.Realloc()
	}
}
