// Copyright (C) 2025 The jfeed Authors. All Rights Reserved.

package jfeed

import "fmt"

// A LineCol describes the line number and column offset of a location in the
// consumed input.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }
