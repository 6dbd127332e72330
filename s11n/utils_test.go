package s11n_test

import (
	"bytes"
	"testing"

	"github.com/lestrrat-go/xmlc14n/s11n"
	"github.com/stretchr/testify/require"
)

func TestDumpQuotedStringPrefersDoubleQuotes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, s11n.DumpQuotedString(&buf, "hello"))
	require.Equal(t, `"hello"`, buf.String())
}

func TestDumpQuotedStringFallsBackToSingleQuotes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, s11n.DumpQuotedString(&buf, `say "hi"`))
	require.Equal(t, `'say "hi"'`, buf.String())
}

func TestDumpQuotedStringEscapesWhenBothQuotesPresent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, s11n.DumpQuotedString(&buf, `say "hi" it's me`))
	require.Equal(t, `"say &#34;hi&#34; it's me"`, buf.String())
}

func TestEscapeAttrValue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, s11n.EscapeAttrValue(&buf, []byte("a \"b\" & <c> d\te\rf\n")))
	require.Equal(t, "a &#34;b&#34; &amp; &lt;c&gt; d&#9;e&#13;f&#10;", buf.String())
}

func TestEscapeTextDefaultDoesNotEscapeNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, s11n.EscapeText(&buf, []byte("a & b < c > d\ne\r"), false))
	require.Equal(t, "a &amp; b &lt; c &gt; d\ne&#13;", buf.String())
}

func TestEscapeTextWithNewlineEscaping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, s11n.EscapeText(&buf, []byte("a\nb"), true))
	require.Equal(t, "a&#10;b", buf.String())
}
