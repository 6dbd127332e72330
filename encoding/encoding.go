// Package encoding resolves the charset names that show up in an XML
// declaration's encoding="..." pseudo-attribute to a
// golang.org/x/text/encoding.Encoding that internal/xmlbuild.Parse uses
// to transcode input into UTF-8. Canonical XML output is always UTF-8
// (spec §4.6, mirrored in internal/xmlbuild.Parse's doc comment), so
// this package only ever runs on the way in, never the way out.
package encoding

import (
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

var byName = map[string]enc.Encoding{
	"utf8":               unicode.UTF8,
	"utf-8":              unicode.UTF8,
	"euc-jp":             japanese.EUCJP,
	"shift_jis":          japanese.ShiftJIS,
	"shift-jis":          japanese.ShiftJIS,
	"shiftjis":           japanese.ShiftJIS,
	"cp932":              japanese.ShiftJIS,
	"jis":                japanese.ISO2022JP,
	"iso-2022-jp":        japanese.ISO2022JP,
	"big5":               traditionalchinese.Big5,
	"euc-kr":             korean.EUCKR,
	"hz-gb2312":          simplifiedchinese.HZGB2312,
	"cp437":              charmap.CodePage437,
	"cp866":              charmap.CodePage866,
	"iso-8859-10":        charmap.ISO8859_10,
	"iso-8859-13":        charmap.ISO8859_13,
	"iso-8859-14":        charmap.ISO8859_14,
	"iso-8859-15":        charmap.ISO8859_15,
	"iso-8859-16":        charmap.ISO8859_16,
	"iso-8859-2":         charmap.ISO8859_2,
	"iso-8859-3":         charmap.ISO8859_3,
	"iso-8859-4":         charmap.ISO8859_4,
	"iso-8859-5":         charmap.ISO8859_5,
	"iso-8859-6":         charmap.ISO8859_6,
	"iso-8859-7":         charmap.ISO8859_7,
	"iso-8859-8":         charmap.ISO8859_8,
	"koi8r":              charmap.KOI8R,
	"koir8u":             charmap.KOI8U,
	"macintosh":          charmap.Macintosh,
	"macintoshcyrillic":  charmap.MacintoshCyrillic,
	"windows1250":        charmap.Windows1250,
	"windows1251":        charmap.Windows1251,
	"iso-8859-1":         charmap.Windows1252,
	"windows1252":        charmap.Windows1252,
	"windows1253":        charmap.Windows1253,
	"windows1254":        charmap.Windows1254,
	"windows1255":        charmap.Windows1255,
	"windows1256":        charmap.Windows1256,
	"windows1257":        charmap.Windows1257,
	"windows1258":        charmap.Windows1258,
	"windows874":         charmap.Windows874,
	"xuserdefined":       charmap.XUserDefined,
}

// utf8Aliases are the spellings that name the output encoding the
// canonicalizer already produces, so IsUTF8 can tell xmlbuild.Parse when
// wrapping the input reader in a transcoding decoder would be a
// byte-for-byte no-op.
var utf8Aliases = map[string]bool{
	"":      true, // no encoding="..." declared: XML defaults to UTF-8
	"utf8":  true,
	"utf-8": true,
}

// Load resolves an XML declaration's encoding name to the
// golang.org/x/text/encoding.Encoding that decodes it, or nil if the
// name isn't one this package knows how to transcode.
func Load(name string) enc.Encoding {
	return byName[strings.ToLower(name)]
}

// IsUTF8 reports whether name names the encoder's own output encoding,
// so the caller can skip transcoding a stream that's already UTF-8.
func IsUTF8(name string) bool {
	return utf8Aliases[strings.ToLower(name)]
}
