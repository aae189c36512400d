// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

package jparse

import (
	"go4.org/mem"

	"github.com/kmatt/jparse/internal/escape"
)

// Quote encodes src as a JSON string literal. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}
