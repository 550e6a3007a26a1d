// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

// Package escape quotes text for inclusion in JSON output.
package escape

import (
	"go4.org/mem"
)

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a JSON string literal, escaping backslashes, double
// quotation marks, and control characters, and adding the enclosing quotation
// marks. Input is treated as raw bytes: multibyte runes pass through
// unchanged, whether or not they are valid UTF-8.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len()+2)
	buf = append(buf, '"')
	for i := 0; i < src.Len(); i++ {
		switch b := src.At(i); {
		case b == '"' || b == '\\':
			buf = append(buf, '\\', b)
		case b == '\n':
			buf = append(buf, '\\', 'n')
		case b == '\r':
			buf = append(buf, '\\', 'r')
		case b == '\t':
			buf = append(buf, '\\', 't')
		case b < ' ':
			buf = append(buf, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
		default:
			buf = append(buf, b)
		}
	}
	return append(buf, '"')
}
