// utils.go holds the escaping helpers s11n's Dumper calls: they favor
// readability over the byte-exact, spec-mandated escaping that
// escape.go's writeText/writeAttributeValue produce for canonicalized
// output, so a dumped tree stays close to how the source document
// actually looked when something needs eyeballing.
package s11n

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// isInCharacterRange reports whether r is a valid XML 1.0 character; a
// rune outside this range can't appear literally in a dump and is
// swapped for the Unicode replacement character instead.
func isInCharacterRange(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// DumpQuotedString writes s as an XML attribute value, picking whichever
// quote character needs the least escaping: double quotes if s has none,
// single quotes if s has no single quotes, or double quotes with every
// embedded " escaped if s contains both.
func DumpQuotedString(out io.Writer, s string) error {
	if !strings.ContainsRune(s, '"') {
		return writeQuoted(out, '"', s)
	}
	if !strings.ContainsRune(s, '\'') {
		return writeQuoted(out, '\'', s)
	}

	if _, err := out.Write([]byte{'"'}); err != nil {
		return err
	}
	last := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '"' {
			continue
		}
		if _, err := io.WriteString(out, s[last:i]); err != nil {
			return err
		}
		if _, err := out.Write(esc_quot); err != nil {
			return err
		}
		last = i + 1
	}
	if _, err := io.WriteString(out, s[last:]); err != nil {
		return err
	}
	_, err := out.Write([]byte{'"'})
	return err
}

func writeQuoted(out io.Writer, q byte, s string) error {
	if _, err := out.Write([]byte{q}); err != nil {
		return err
	}
	if _, err := io.WriteString(out, s); err != nil {
		return err
	}
	_, err := out.Write([]byte{q})
	return err
}

var (
	esc_quot = []byte("&#34;") // shorter than "&quot;"
	esc_amp  = []byte("&amp;")
	esc_lt   = []byte("&lt;")
	esc_gt   = []byte("&gt;")
	esc_tab  = []byte("&#9;")
	esc_nl   = []byte("&#10;")
	esc_cr   = []byte("&#13;")
	esc_fffd = []byte("�") // Unicode replacement character
)

// EscapeAttrValue writes s to w as a dumped attribute value: the XML
// metacharacters plus whitespace that would otherwise be invisible in a
// rendered dump (tab, newline, CR) are escaped; other control characters
// and code points from U+0080 to U+00DF are written as hexadecimal
// character references, characters outside the XML range become U+FFFD,
// and everything else passes through. Unlike escape.go's writeAttributeValue, no whitespace
// normalization by attribute type happens here, since Dumper has no
// notion of the DTD-declared attribute type to normalize against.
func EscapeAttrValue(w io.Writer, s []byte) error {
	var esc []byte
	last := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRune(s[i:])
		i += width
		switch r {
		case '"':
			esc = esc_quot
		case '&':
			esc = esc_amp
		case '<':
			esc = esc_lt
		case '>':
			esc = esc_gt
		case '\n':
			esc = esc_nl
		case '\r':
			esc = esc_cr
		case '\t':
			esc = esc_tab
		default:
			if !(0x20 <= r && r < 0x80) { // nolint:staticcheck
				if r < 0xE0 {
					esc = []byte(fmt.Sprintf("&#x%X;", r))
					break
				}
			}
			if !isInCharacterRange(r) || (r == 0xFFFD && width == 1) {
				esc = esc_fffd
				break
			}
			continue
		}

		if _, err := w.Write(s[last : i-width]); err != nil {
			return err
		}
		if _, err := w.Write(esc); err != nil {
			return err
		}
		last = i
	}

	if _, err := w.Write(s[last:]); err != nil {
		return err
	}
	return nil
}

// EscapeText writes s to w as dumped element content. escapeNewline
// additionally writes each newline as &#10; (by default newlines pass
// through): a dump of text pulled out of a CDATA section wants its
// newlines escaped too, since Dumper never reconstructs the original
// CDATA markers.
func EscapeText(w io.Writer, s []byte, escapeNewline bool) error {
	var esc []byte
	last := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRune(s[i:])
		i += width
		switch r {
		case '&':
			esc = esc_amp
		case '<':
			esc = esc_lt
		case '>':
			esc = esc_gt
		case '\n':
			if !escapeNewline {
				continue
			}
			esc = esc_nl
		case '\r':
			esc = esc_cr
		default:
			if !(r == '\t' || (0x20 <= r && r < 0x80)) { // nolint:staticcheck
				if r < 0xE0 {
					esc = []byte(fmt.Sprintf("&#x%X;", r))
					break
				}
			}
			if !isInCharacterRange(r) || (r == 0xFFFD && width == 1) {
				esc = esc_fffd
				break
			}
			continue
		}

		if _, err := w.Write(s[last : i-width]); err != nil {
			return err
		}
		if _, err := w.Write(esc); err != nil {
			return err
		}
		last = i
	}

	if _, err := w.Write(s[last:]); err != nil {
		return err
	}
	return nil
}
