//+build debug

package debug

import (
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/lestrrat-go/xmlc14n/node"
)

const Enabled = true

var logger = log.New(os.Stdout, "|DEBUG| ", 0)

// Printf prints debug messages. Only available if compiled with "debug" tag
func Printf(f string, args ...interface{}) {
	logger.Printf(f, args...)
}

// DumpElement spew-dumps the walk state that matters when canonicalizing
// a specific element goes wrong: its qualified name, the namespace
// declarations and attributes collectAttributes/selectWholeDocDecls will
// see, not the full subtree underneath it.
func DumpElement(e *node.Element) {
	spew.Dump(struct {
		Name       string
		Namespaces []*node.Namespace
		Attributes []*node.Attribute
	}{
		Name:       e.Name(),
		Namespaces: e.Namespaces(),
		Attributes: e.Attributes(nil),
	})
}
