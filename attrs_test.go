package c14n

import (
	"testing"

	"github.com/lestrrat-go/xmlc14n/node"
	"github.com/stretchr/testify/require"
)

func TestCollectAttributesWholeDocument(t *testing.T) {
	doc := node.NewDocument()
	root := doc.CreateElement("root")
	require.NoError(t, root.SetAttribute("a", "1"))
	require.NoError(t, root.SetAttribute("b", "2"))

	attrs := collectAttributes(root, Canonical, nil)
	require.Len(t, attrs, 2)
}

func TestCollectAttributesSubsetFiltersToMembership(t *testing.T) {
	doc := node.NewDocument()
	root := doc.CreateElement("root")
	a, err := root.SetAttributeNS(nil, "a", "1")
	require.NoError(t, err)
	_, err = root.SetAttributeNS(nil, "b", "2")
	require.NoError(t, err)

	ns := node.NewNodeSet(root, a)
	attrs := collectAttributes(root, Canonical, ns)
	require.Len(t, attrs, 1)
	require.Equal(t, a, attrs[0])
}

func TestAppendInheritedXMLAttrsNonExclusiveSubset(t *testing.T) {
	doc := node.NewDocument()
	root := doc.CreateElement("root")
	xmlNS := node.NewNamespace("xml", xmlURI)
	langAttr, err := root.SetAttributeNS(xmlNS, "lang", "en")
	require.NoError(t, err)

	child := doc.CreateElement("child")
	require.NoError(t, root.AddChild(child))

	// Only the child is in the output subset: root (and therefore its
	// own xml:lang declaration) never gets emitted, so child inherits it.
	ns := node.NewNodeSet(child)

	attrs := collectAttributes(child, Canonical, ns)
	require.Len(t, attrs, 1)
	require.Equal(t, "lang", attrs[0].LocalName())
	require.Equal(t, xmlURI, attrs[0].URI())
	_ = langAttr
}

func TestAppendInheritedXMLAttrsSkippedWhenAncestorAlsoInSubset(t *testing.T) {
	doc := node.NewDocument()
	root := doc.CreateElement("root")
	xmlNS := node.NewNamespace("xml", xmlURI)
	_, err := root.SetAttributeNS(xmlNS, "lang", "en")
	require.NoError(t, err)

	child := doc.CreateElement("child")
	require.NoError(t, root.AddChild(child))

	ns := node.NewNodeSet(root, child)

	attrs := collectAttributes(child, Canonical, ns)
	require.Len(t, attrs, 0, "child does not re-emit an xml:* attribute its in-subset ancestor already carries")
}

func TestAppendInheritedXMLAttrsExclusiveNeverInherits(t *testing.T) {
	doc := node.NewDocument()
	root := doc.CreateElement("root")
	xmlNS := node.NewNamespace("xml", xmlURI)
	_, err := root.SetAttributeNS(xmlNS, "lang", "en")
	require.NoError(t, err)

	child := doc.CreateElement("child")
	require.NoError(t, root.AddChild(child))

	ns := node.NewNodeSet(child)

	attrs := collectAttributes(child, Exclusive, ns)
	require.Len(t, attrs, 0, "exclusive canonicalization never inherits xml:* attributes across a subset boundary")
}

func TestAppendInheritedXMLAttrsSeenDoesNotDuplicate(t *testing.T) {
	doc := node.NewDocument()
	root := doc.CreateElement("root")
	xmlNS := node.NewNamespace("xml", xmlURI)
	_, err := root.SetAttributeNS(xmlNS, "lang", "en")
	require.NoError(t, err)

	child := doc.CreateElement("child")
	childXMLNS := node.NewNamespace("xml", xmlURI)
	childLang, err := child.SetAttributeNS(childXMLNS, "lang", "fr")
	require.NoError(t, err)
	require.NoError(t, root.AddChild(child))

	ns := node.NewNodeSet(child, childLang)

	attrs := collectAttributes(child, Canonical, ns)
	require.Len(t, attrs, 1, "child's own xml:lang shadows the ancestor's, not duplicated")
	val, err := attrs[0].Content(nil)
	require.NoError(t, err)
	require.Equal(t, "fr", string(val))
}
