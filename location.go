// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

package jparse

import "fmt"

// A LineCol describes the line number and column of a location in source
// text. Both counters are 1-based, and the column resets to 1 after each
// newline.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // column within the line, 1-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }
