// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

// Package jparse implements a single-pass recursive-descent parser for JSON
// text.
//
// # Parsing
//
// Parse decodes exactly one JSON value from a byte slice:
//
//	v, err := jparse.Parse(data)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The value may be surrounded by whitespace, but any other content after it
// is an error. ParseString is shorthand for parsing a string instead of a
// byte slice.
//
// Parsed values are trees of [ast.Value]; see the ast package for the
// concrete kinds and for re-encoding trees as JSON text.
//
// # Errors
//
// All failures are reported as a [*ParseError] carrying a category, a
// human-readable reason, and the 1-based line and column of the offending
// byte:
//
//	var perr *jparse.ParseError
//	if errors.As(err, &perr) {
//	   log.Printf("%s at %v", perr.Kind, perr.Location)
//	}
//
// Errors are terminal for the whole call: there is no partial result or
// resynchronization, and an error raised in a nested value surfaces
// unchanged.
//
// # Compatibility
//
// The accepted grammar matches RFC 8259 with two deliberate exceptions,
// kept for compatibility with the inputs this parser replaces a decoder
// for: a Unicode escape accepts between 2 and 8 hexadecimal digits rather
// than exactly 4, and surrogate escape pairs are not combined.
package jparse
