package glint

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Dump renders v for a human debugging a program or a loaded module: like
// Value.DebugString, but when v itself is a byte-aligned bitstring whose
// Latin-1 decoding is printable, it also shows that text. Bitstrings nested
// inside records, lists, or pairs are rendered as DebugString renders them,
// without text. This is aimed at the case where a module's
// raw-binary Value is exactly "an opaque bitstring" to the runtime (§6.1)
// but is almost always source text to the person looking at it. Decoding
// is best-effort and diagnostic only; the runtime itself never assumes an
// encoding.
func Dump(v Value) string {
	var sb strings.Builder
	dumpValue(&sb, v, 0)
	return sb.String()
}

func dumpValue(sb *strings.Builder, v Value, depth int) {
	if b, ok := v.AsBits(); ok && b.Len > 0 && b.Len%8 == 0 {
		if text, ok := decodeLatin1(b.Data); ok && isPrintable(text) {
			sb.WriteString(v.DebugString())
			sb.WriteString(" #")
			sb.WriteString(text)
			return
		}
	}
	sb.WriteString(v.DebugString())
}

func decodeLatin1(data []byte) (string, bool) {
	out, _, err := transform.String(charmap.ISO8859_1.NewDecoder(), string(data))
	if err != nil {
		return "", false
	}
	return out, true
}

func isPrintable(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
