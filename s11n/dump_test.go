package s11n_test

import (
	"bytes"
	"testing"

	"github.com/lestrrat-go/xmlc14n/node"
	"github.com/lestrrat-go/xmlc14n/s11n"
	"github.com/stretchr/testify/require"
)

func TestDumpDocSimple(t *testing.T) {
	doc := node.NewDocument()
	root := doc.CreateElement("root")
	require.NoError(t, doc.SetDocumentElement(root))
	require.NoError(t, root.SetAttribute("id", "1"))
	require.NoError(t, root.AddContent([]byte("hello")))

	var buf bytes.Buffer
	d := s11n.Dumper{}
	require.NoError(t, d.DumpDoc(&buf, doc))

	require.Equal(t, "<?xml version=\"1.0\"?>\n<root id=\"1\">hello</root>", buf.String())
}

func TestDumpNodeEmptyElementSelfCloses(t *testing.T) {
	doc := node.NewDocument()
	e := doc.CreateElement("empty")

	var buf bytes.Buffer
	d := s11n.Dumper{}
	require.NoError(t, d.DumpNode(&buf, e))
	require.Equal(t, "<empty/>", buf.String())
}

func TestDumpNodeComment(t *testing.T) {
	doc := node.NewDocument()
	c := doc.CreateComment([]byte(" note "))

	var buf bytes.Buffer
	d := s11n.Dumper{}
	require.NoError(t, d.DumpNode(&buf, c))
	require.Equal(t, "<!-- note -->", buf.String())
}

func TestDumpNodeNamespacedElement(t *testing.T) {
	doc := node.NewDocument()
	e := doc.CreateElement("root")
	require.NoError(t, e.SetNamespace("p", "urn:p", false))

	var buf bytes.Buffer
	d := s11n.Dumper{}
	require.NoError(t, d.DumpNode(&buf, e))
	require.Equal(t, `<p:root xmlns:p="urn:p"/>`, buf.String())
}
