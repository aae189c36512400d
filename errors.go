// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

package jparse

import "fmt"

// Kind classifies the failure reported by a ParseError.
type Kind byte

// Constants defining the valid Kind values.
const (
	ExtraToken        Kind = 1 + iota // a complete value followed by more input
	InsufficientToken                 // input ended before a value was complete
	UnexpectedToken                   // a token the grammar does not allow here
	InvalidString                     // malformed string literal
	InvalidNumber                     // malformed number literal
	NonStringKey                      // object key is not a string
)

var kindStr = [...]string{
	0:                 "invalid",
	ExtraToken:        "extra token",
	InsufficientToken: "insufficient token",
	UnexpectedToken:   "unexpected token",
	InvalidString:     "invalid string",
	InvalidNumber:     "invalid number",
	NonStringKey:      "non-string key",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[0]
	}
	return kindStr[v]
}

// ParseError is the concrete type of errors reported by Parse. It records
// the reason for the failure and the position of the offending byte. The
// position is captured at the point of failure and is never rewritten while
// the error unwinds through enclosing productions.
type ParseError struct {
	Kind     Kind    // the failure category
	Message  string  // a human-readable reason
	Offset   int     // byte offset of the failure, 0-based
	Location LineCol // line and column of the failure, 1-based
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("at %s: %s", e.Location, e.Message)
}
