package c14n

import (
	"testing"

	"github.com/lestrrat-go/xmlc14n/node"
	"github.com/stretchr/testify/require"
)

func nsAttr(uri, prefix, local, value string) *node.Attribute {
	doc := node.NewDocument()
	e := doc.CreateElement("x")
	var ns *node.Namespace
	if uri != "" {
		ns = node.NewNamespace(prefix, uri)
	}
	attr, err := e.SetAttributeNS(ns, local, value)
	if err != nil {
		panic(err)
	}
	return attr
}

func TestSortAttributesUnprefixedFirst(t *testing.T) {
	b := nsAttr("urn:b", "b", "name", "1")
	a := nsAttr("", "", "attr", "2")

	attrs := []*node.Attribute{b, a}
	sortAttributes(attrs)

	require.Equal(t, a, attrs[0], "unprefixed attribute sorts before any namespaced one")
	require.Equal(t, b, attrs[1])
}

func TestSortAttributesByURIThenLocalName(t *testing.T) {
	a1 := nsAttr("urn:aaa", "a", "zzz", "1")
	a2 := nsAttr("urn:bbb", "b", "aaa", "2")
	a3 := nsAttr("urn:aaa", "a", "mmm", "3")

	attrs := []*node.Attribute{a1, a2, a3}
	sortAttributes(attrs)

	require.Equal(t, a3, attrs[0], "urn:aaa/mmm sorts before urn:aaa/zzz")
	require.Equal(t, a1, attrs[1])
	require.Equal(t, a2, attrs[2], "urn:bbb sorts after urn:aaa by URI codepoint order")
}

func TestAttrLess(t *testing.T) {
	unprefixed := nsAttr("", "", "attr", "v")
	prefixed := nsAttr("urn:x", "x", "attr", "v")

	require.True(t, attrLess(unprefixed, prefixed))
	require.False(t, attrLess(prefixed, unprefixed))
}
