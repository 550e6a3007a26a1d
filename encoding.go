// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

package jfeed

import (
	"strings"

	"go4.org/mem"

	"github.com/streamyjson/jfeed/internal/escape"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added. Quoting is needed for output even though
// the input grammar has no escapes: a parsed key or value may legally contain
// quotes-significant bytes such as a backslash or a newline.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// JSON renders s as a JSON string literal.
func (s *String) JSON() string { return string(escape.Quote(mem.B(s.text))) }

// JSON renders o as compact JSON source text. Members appear in insertion
// order. A partial document renders as the document it is a partial
// representation of: unterminated strings are closed, and open objects get
// their closing braces.
func (o *Object) JSON() string {
	var sb strings.Builder
	o.encode(&sb)
	return sb.String()
}

func (o *Object) encode(sb *strings.Builder) {
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(Quote(m.Key))
		sb.WriteByte(':')
		switch v := m.Value.(type) {
		case *Object:
			v.encode(sb)
		default:
			sb.WriteString(v.JSON())
		}
	}
	sb.WriteByte('}')
}
