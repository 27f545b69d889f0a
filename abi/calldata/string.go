package calldata

import (
	"encoding/hex"
	"sort"
	"strings"
	"unicode/utf16"
)

// ToText renders v in the canonical diagnostic notation: JSON for null,
// booleans, integers, strings, arrays and maps, "b#<hex>" for byte strings
// and "addr#<hex>" for addresses. Map entries are written in ascending key
// order and no whitespace is inserted.
func ToText(v Value) string {
	var sb strings.Builder
	writeText(&sb, v)
	return sb.String()
}

func writeText(sb *strings.Builder, v Value) {
	switch v := v.(type) {
	case Null:
		sb.WriteString("null")
	case Bool:
		if v {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Int:
		sb.WriteString(v.bigOrZero().String())
	case Bytes:
		sb.WriteString("b#")
		sb.WriteString(hex.EncodeToString(v))
	case Str:
		writeQuoted(sb, string(v))
	case Address:
		sb.WriteString("addr#")
		sb.WriteString(hex.EncodeToString(v.Address[:]))
	case Array:
		sb.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeText(sb, elem)
		}
		sb.WriteByte(']')
	case Map:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeQuoted(sb, k)
			sb.WriteByte(':')
			writeText(sb, v[k])
		}
		sb.WriteByte('}')
	default:
		// Only reachable for nil or foreign Value implementations.
		sb.WriteString("<invalid>")
	}
}

const lowerHex = "0123456789abcdef"

// writeQuoted writes s as an ASCII-only JSON string literal. Characters
// outside printable ASCII are written as \uXXXX escapes, using surrogate
// pairs above the basic multilingual plane.
func writeQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			switch {
			case r >= 0x20 && r < 0x7f:
				sb.WriteByte(byte(r))
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				writeUnicodeEscape(sb, hi)
				writeUnicodeEscape(sb, lo)
			default:
				writeUnicodeEscape(sb, r)
			}
		}
	}
	sb.WriteByte('"')
}

func writeUnicodeEscape(sb *strings.Builder, r rune) {
	sb.WriteString(`\u`)
	sb.WriteByte(lowerHex[r>>12&0xf])
	sb.WriteByte(lowerHex[r>>8&0xf])
	sb.WriteByte(lowerHex[r>>4&0xf])
	sb.WriteByte(lowerHex[r&0xf])
}
