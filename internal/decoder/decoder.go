// Package decoder turns the raw bytes of a tester report into text.
//
// Reports exported by the terminal are UTF-16 with a byte-order mark, but
// files that went through other tools show up as BOM-less UTF-16LE or UTF-8.
// The decoder tries those encodings in order of likelihood and never fails:
// when nothing matches it falls back to lossy UTF-8.
package decoder

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Encoding names reported in Result.Encoding.
const (
	EncodingUTF16     = "utf-16"
	EncodingUTF16LE   = "utf-16le"
	EncodingUTF8      = "utf-8"
	EncodingUTF8Lossy = "utf-8-lossy"
)

// Result is the outcome of a decode attempt.
type Result struct {
	Text     string
	Encoding string
	// Degraded is set when none of the preferred encodings matched and the
	// text was produced with replacement characters.
	Degraded bool
}

type candidate struct {
	name   string
	decode func(raw []byte) (string, bool)
}

var candidates = []candidate{
	{name: EncodingUTF16, decode: decodeUTF16BOM},
	{name: EncodingUTF16LE, decode: decodeUTF16LE},
	{name: EncodingUTF8, decode: decodeUTF8},
}

// Decode returns the text of raw.
func Decode(raw []byte) string {
	return DecodeDetailed(raw).Text
}

// DecodeDetailed returns the text of raw together with the encoding used.
func DecodeDetailed(raw []byte) Result {
	if len(raw) == 0 {
		return Result{Encoding: EncodingUTF8}
	}
	for _, c := range candidates {
		if text, ok := c.decode(raw); ok {
			return Result{Text: text, Encoding: c.name}
		}
	}
	return Result{Text: decodeLossy(raw), Encoding: EncodingUTF8Lossy, Degraded: true}
}

// decodeUTF16BOM requires a byte-order mark; little-endian unless the mark says otherwise.
func decodeUTF16BOM(raw []byte) (string, bool) {
	bigEndian := len(raw) >= 2 && raw[0] == 0xFE && raw[1] == 0xFF
	return strictUTF16(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), raw, bigEndian)
}

func decodeUTF16LE(raw []byte) (string, bool) {
	if !looksLikeUTF16LE(raw) {
		return "", false
	}
	return strictUTF16(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), raw, false)
}

func strictUTF16(enc encoding.Encoding, raw []byte, bigEndian bool) (string, bool) {
	if len(raw)%2 != 0 {
		return "", false
	}
	// x/text substitutes U+FFFD for unpaired surrogates instead of failing,
	// so they are caught on the code units. A literal U+FFFD is valid text.
	if !pairedSurrogates(raw, bigEndian) {
		return "", false
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	return strings.TrimPrefix(string(out), "\ufeff"), true
}

// pairedSurrogates reports whether every high surrogate in raw is directly
// followed by a low surrogate and no low surrogate stands alone.
func pairedSurrogates(raw []byte, bigEndian bool) bool {
	unit := func(i int) uint16 {
		if bigEndian {
			return uint16(raw[i])<<8 | uint16(raw[i+1])
		}
		return uint16(raw[i+1])<<8 | uint16(raw[i])
	}
	for i := 0; i+1 < len(raw); i += 2 {
		u := unit(i)
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+3 >= len(raw) {
				return false
			}
			if next := unit(i + 2); next < 0xDC00 || next > 0xDFFF {
				return false
			}
			i += 2
		case u >= 0xDC00 && u <= 0xDFFF:
			return false
		}
	}
	return true
}

// looksLikeUTF16LE reports whether at least half of the code units have a
// zero high byte, which holds for any markup-heavy document.
func looksLikeUTF16LE(raw []byte) bool {
	units := len(raw) / 2
	if units == 0 {
		return false
	}
	zeros := 0
	for i := 1; i < len(raw); i += 2 {
		if raw[i] == 0 {
			zeros++
		}
	}
	return zeros*2 >= units
}

func decodeUTF8(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func decodeLossy(raw []byte) string {
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	}
	return string(out)
}
