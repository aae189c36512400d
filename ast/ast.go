// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

// Package ast defines the tree of values produced by parsing JSON source.
package ast

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"go4.org/mem"

	"github.com/kmatt/jparse/internal/escape"
)

// A Value is an arbitrary JSON value. A Value is exactly one of Null, Bool,
// Number, String, Array or Object.
type Value interface {
	// JSON re-encodes the value as JSON source text.
	JSON() string
}

// Null represents the JSON null constant.
var Null Value = nullValue{}

type nullValue struct{}

func (nullValue) JSON() string { return "null" }

// A Bool is the value of a true or false constant.
type Bool bool

func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// A Number is a numeric value. All numbers are carried as float64.
type Number float64

// JSON re-encodes n as a number literal. An infinity, which parsing an
// extreme exponent can produce, has no literal of its own and is written as
// an exponent large enough to saturate again when re-read.
func (n Number) JSON() string {
	f := float64(n)
	if math.IsInf(f, +1) {
		return "1e999"
	}
	if math.IsInf(f, -1) {
		return "-1e999"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// A String is a string value, with escape sequences already decoded.
type String string

func (s String) JSON() string {
	return `"` + string(escape.Quote(mem.S(string(s)))) + `"`
}

// An Array is an ordered sequence of values.
type Array []Value

func (a Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// An Object maps member keys to values. Duplicate keys in source text
// resolve to the last value written, and member order is not preserved.
type Object map[string]Value

// JSON re-encodes o with its keys in sorted order, so that equal objects
// produce equal text.
func (o Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, key := range slices.Sorted(maps.Keys(o)) {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(String(key).JSON())
		sb.WriteByte(':')
		sb.WriteString(o[key].JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}
