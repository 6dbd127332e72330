package c14n

import (
	"io"
	"unicode/utf8"

	"github.com/lestrrat-go/xmlc14n/internal/pool"
	"github.com/lestrrat-go/xmlc14n/node"
)

// writeText emits s per §4.6: only \r, &, <, > are replaced; everything
// else passes through as UTF-8 bytes.
func writeText(w io.Writer, s []byte) error {
	buf := pool.ByteSlice().Get()
	defer pool.ByteSlice().Put(buf)

	last := 0
	for i := 0; i < len(s); i++ {
		var rep string
		switch s[i] {
		case '\r':
			rep = "&#xD;"
		case '&':
			rep = "&amp;"
		case '<':
			rep = "&lt;"
		case '>':
			rep = "&gt;"
		default:
			continue
		}
		buf = append(buf, s[last:i]...)
		buf = append(buf, rep...)
		last = i + 1
	}
	buf = append(buf, s[last:]...)

	if _, err := w.Write(buf); err != nil {
		return ioError(err)
	}
	return nil
}

// writeAttributeValue emits s per §4.10. Tokenized attribute types get
// whitespace-normalized (runs of ASCII space collapsed to one, leading
// and trailing space stripped) before the character escapes are applied;
// CDATA/UNDECLARED values (and namespace-declaration URIs, via the same
// rule) are escaped as-is.
func writeAttributeValue(w io.Writer, s []byte, atype node.AttributeType) error {
	if atype.IsTokenized() {
		s = normalizeWhitespace(s)
	}

	buf := pool.ByteSlice().Get()
	defer pool.ByteSlice().Put(buf)

	last := 0
	for i := 0; i < len(s); i++ {
		var rep string
		switch s[i] {
		case '\t':
			rep = "&#x9;"
		case '\n':
			rep = "&#xA;"
		case '\r':
			rep = "&#xD;"
		case '"':
			rep = "&quot;"
		case '&':
			rep = "&amp;"
		case '<':
			rep = "&lt;"
		default:
			continue
		}
		buf = append(buf, s[last:i]...)
		buf = append(buf, rep...)
		last = i + 1
	}
	buf = append(buf, s[last:]...)

	if _, err := w.Write(buf); err != nil {
		return ioError(err)
	}
	return nil
}

// normalizeWhitespace collapses runs of ASCII space to a single space and
// strips leading/trailing spaces, leaving \t, \n, \r untouched (those are
// still escaped afterward, not treated as whitespace to collapse: only
// 0x20 is "space" for this rule).
func normalizeWhitespace(s []byte) []byte {
	out := make([]byte, 0, len(s))
	inSpace := false
	for _, c := range s {
		if c == ' ' {
			inSpace = true
			continue
		}
		if inSpace && len(out) > 0 {
			out = append(out, ' ')
		}
		inSpace = false
		out = append(out, c)
	}
	return out
}

// validUTF8 reports whether s decodes cleanly as UTF-8, rejecting the
// unpaired surrogates §9 says the encoder must not silently pass through.
func validUTF8(s []byte) bool {
	return utf8.Valid(s)
}
