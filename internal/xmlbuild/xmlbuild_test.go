package xmlbuild_test

import (
	"strings"
	"testing"

	"github.com/lestrrat-go/xmlc14n/internal/xmlbuild"
	"github.com/lestrrat-go/xmlc14n/node"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleDocument(t *testing.T) {
	doc, err := xmlbuild.Parse(strings.NewReader(`<root attr="value"><child/></root>`))
	require.NoError(t, err)

	root := doc.DocumentElement()
	require.NotNil(t, root)
	require.Equal(t, "root", root.LocalName())

	attr, ok := root.GetAttribute("attr", "")
	require.True(t, ok)
	val, err := attr.Content(nil)
	require.NoError(t, err)
	require.Equal(t, "value", string(val))

	child, ok := root.FirstChild().(*node.Element)
	require.True(t, ok)
	require.Equal(t, "child", child.LocalName())
}

func TestParseNamespacedDocument(t *testing.T) {
	doc, err := xmlbuild.Parse(strings.NewReader(
		`<root xmlns="urn:default" xmlns:p="urn:p"><p:child p:attr="v"/></root>`))
	require.NoError(t, err)

	root := doc.DocumentElement()
	require.Equal(t, "urn:default", root.URI())

	child, ok := root.FirstChild().(*node.Element)
	require.True(t, ok)
	require.Equal(t, "urn:p", child.URI())
	require.Equal(t, "p", child.Prefix())

	attr, ok := child.GetAttribute("attr", "urn:p")
	require.True(t, ok)
	val, err := attr.Content(nil)
	require.NoError(t, err)
	require.Equal(t, "v", string(val))
}

func TestParseProcessingInstructionAndComment(t *testing.T) {
	doc, err := xmlbuild.Parse(strings.NewReader(
		"<?pi-target pi-data?><!--a comment--><root/>"))
	require.NoError(t, err)

	first := doc.FirstChild()
	pi, ok := first.(*node.ProcessingInstructionNode)
	require.True(t, ok)
	require.Equal(t, "pi-target", pi.Target())
	require.Equal(t, "pi-data", pi.Data())

	second := first.NextSibling()
	comment, ok := second.(*node.Comment)
	require.True(t, ok)
	content, err := comment.Content(nil)
	require.NoError(t, err)
	require.Equal(t, "a comment", string(content))
}

func TestParseTextContent(t *testing.T) {
	doc, err := xmlbuild.Parse(strings.NewReader(`<root>hello world</root>`))
	require.NoError(t, err)

	content, err := doc.DocumentElement().Content(nil)
	require.NoError(t, err)
	require.Equal(t, "hello world", string(content))
}

func TestParseUnbalancedFails(t *testing.T) {
	_, err := xmlbuild.Parse(strings.NewReader(`<root><child></root>`))
	require.Error(t, err)
}

func TestParseNonUTF8Charset(t *testing.T) {
	// ISO-8859-1 encoded document with a Latin-1 byte (0xE9 = 'é') in
	// text content, declared via the prolog's encoding attribute.
	raw := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><root>caf\xe9</root>"
	doc, err := xmlbuild.Parse(strings.NewReader(raw))
	require.NoError(t, err)

	content, err := doc.DocumentElement().Content(nil)
	require.NoError(t, err)
	require.Equal(t, "café", string(content))
}
