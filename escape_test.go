package c14n

import (
	"bytes"
	"testing"

	"github.com/lestrrat-go/xmlc14n/node"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"amp", "a & b", "a &amp; b"},
		{"lt-gt", "a < b > c", "a &lt; b &gt; c"},
		{"cr", "a\rb", "a&#xD;b"},
		{"tab and lf pass through", "a\tb\nc", "a\tb\nc"},
		{"all at once", "<a>&\r</a>", "&lt;a&gt;&amp;&#xD;&lt;/a&gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeText(&buf, []byte(tt.in)))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteAttributeValueCDATA(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"quote", `say "hi"`, "say &quot;hi&quot;"},
		{"amp-lt", "a & b < c", "a &amp; b &lt; c"},
		{"tab-nl-cr", "a\tb\nc\rd", "a&#x9;b&#xA;c&#xD;d"},
		{"spaces preserved for CDATA", "a   b", "a   b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeAttributeValue(&buf, []byte(tt.in), node.AttrCDATA))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteAttributeValueTokenized(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeAttributeValue(&buf, []byte("  a   b  "), node.AttrNMTokens))
	require.Equal(t, "a b", buf.String(), "tokenized types collapse and trim whitespace before escaping")
}

func TestNormalizeWhitespace(t *testing.T) {
	require.Equal(t, "a b c", string(normalizeWhitespace([]byte("  a   b    c  "))))
	require.Equal(t, "", string(normalizeWhitespace([]byte("   "))))
	require.Equal(t, "a\tb", string(normalizeWhitespace([]byte("a\tb"))), "tab is not collapsed, only 0x20 space")
}

func TestValidUTF8(t *testing.T) {
	require.True(t, validUTF8([]byte("hello éè")))
	require.False(t, validUTF8([]byte{0xff, 0xfe}))
}
