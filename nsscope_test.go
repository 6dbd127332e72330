package c14n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNSScopePermanentBindings(t *testing.T) {
	scope := newNSScope()

	uri, ok := scope.uri("xml")
	require.True(t, ok)
	require.Equal(t, xmlURI, uri)

	uri, ok = scope.uri("xmlns")
	require.True(t, ok)
	require.Equal(t, xmlnsURI, uri)
}

func TestNSScopeUnbound(t *testing.T) {
	scope := newNSScope()

	_, ok := scope.uri("foo")
	require.False(t, ok)
}

func TestNSScopePushPopContext(t *testing.T) {
	scope := newNSScope()

	scope.pushContext()
	scope.declarePrefix("a", "urn:a")

	uri, ok := scope.uri("a")
	require.True(t, ok)
	require.Equal(t, "urn:a", uri)

	scope.pushContext()
	scope.declarePrefix("b", "urn:b")

	_, ok = scope.uri("b")
	require.True(t, ok)

	scope.popContext()
	_, ok = scope.uri("b")
	require.False(t, ok, "b should no longer be bound after its frame is popped")

	uri, ok = scope.uri("a")
	require.True(t, ok, "a is still bound in the outer frame")
	require.Equal(t, "urn:a", uri)

	scope.popContext()
	_, ok = scope.uri("a")
	require.False(t, ok)
}

func TestNSScopeShadowing(t *testing.T) {
	scope := newNSScope()

	scope.pushContext()
	scope.declarePrefix("p", "urn:outer")

	scope.pushContext()
	scope.declarePrefix("p", "urn:inner")

	uri, ok := scope.uri("p")
	require.True(t, ok)
	require.Equal(t, "urn:inner", uri, "innermost binding wins")

	scope.popContext()
	uri, ok = scope.uri("p")
	require.True(t, ok)
	require.Equal(t, "urn:outer", uri, "popping the inner frame restores the outer binding")
}

func TestNSScopeDefaultUndeclare(t *testing.T) {
	scope := newNSScope()

	scope.pushContext()
	scope.declarePrefix("", "")

	uri, ok := scope.uri("")
	require.True(t, ok, "an explicit xmlns=\"\" is a bound-to-empty-string binding, not unbound")
	require.Equal(t, "", uri)
}
