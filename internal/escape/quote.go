// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

// Package escape produces JSON string escapes for output.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// Quote escapes the contents of src for inclusion in a JSON string literal.
// The result does not include the surrounding quotation marks. The escapes
// produced are carriage return, newline, tab, backslash, double quote, and
// the line and paragraph separators U+2028 and U+2029; all other runes pass
// through unchanged.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		switch r {
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\t':
			buf = append(buf, '\\', 't')
		case '\\', '"':
			buf = append(buf, '\\', byte(r))
		case '\u2028': // line separator
			buf = append(buf, `\u2028`...)
		case '\u2029': // paragraph separator
			buf = append(buf, `\u2029`...)
		default:
			buf = utf8.AppendRune(buf, r)
		}
		src = src.SliceFrom(n)
	}
	return buf
}
