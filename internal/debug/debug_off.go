//+build !debug

package debug

import "github.com/lestrrat-go/xmlc14n/node"

const Enabled = false

// Printf is no op unless you compile with the `debug` tag
func Printf(f string, args ...interface{}) {}

// DumpElement is a no-op unless you compile with the `debug` tag.
func DumpElement(e *node.Element) {}
