// Copyright (C) 2025 The jparse Authors. All Rights Reserved.

package jparse

import (
	"fmt"
	"math"
	"unicode/utf8"

	"go4.org/mem"

	"github.com/kmatt/jparse/ast"
)

// Parse parses a single JSON value from data. The value may be preceded and
// followed by whitespace, but anything else after it is an error. In case of
// error, the returned error has concrete type [*ParseError].
//
// The returned tree does not alias data: string contents are copied out of
// the input during decoding.
func Parse(data []byte) (ast.Value, error) {
	p := &parser{input: data, line: 1, col: 1}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipWhitespaces()
	if !p.eof() {
		return nil, p.failf(ExtraToken, "unexpected token %q after value", p.cur())
	}
	return v, nil
}

// ParseString parses a single JSON value from s. It is shorthand for Parse
// on the bytes of s.
func ParseString(s string) (ast.Value, error) { return Parse([]byte(s)) }

// Literals matched by the keyword and punctuation productions.
var (
	litNull  = mem.S("null")
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litColon = mem.S(":")
	litComma = mem.S(",")
)

// A parser is a single-use recursive descent engine over one input buffer.
// The cursor and the (line, column) counters move in lockstep: every advance
// updates exactly one of them, so any production can fail with an accurate
// location at any time.
type parser struct {
	input []byte
	pos   int // cursor, 0-based index into input
	line  int // line number, 1-based
	col   int // column number, 1-based, reset to 1 after each newline
}

func (p *parser) eof() bool { return p.pos >= len(p.input) }

func (p *parser) cur() byte { return p.input[p.pos] }

// advance consumes the current byte. Consuming a newline increments the line
// counter and resets the column to 1; any other byte increments the column.
// The caller must check bounds first: advancing at end of input violates the
// engine contract and panics.
func (p *parser) advance() {
	if p.eof() {
		panic("jparse: advance past end of input")
	}
	if p.input[p.pos] == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	p.pos++
}

// skipWhitespaces advances past space, tab, CR and LF, stopping at the first
// non-whitespace byte or the end of input.
func (p *parser) skipWhitespaces() {
	for !p.eof() && isSpace(p.cur()) {
		p.advance()
	}
}

// A mark is a snapshot of the cursor and its position counters.
type mark struct{ pos, line, col int }

func (p *parser) mark() mark   { return mark{p.pos, p.line, p.col} }
func (p *parser) reset(m mark) { p.pos, p.line, p.col = m.pos, m.line, m.col }

// expect matches lit against the input at the cursor, consuming it on
// success. On a mismatch partway through a multi-byte literal, the cursor
// and both position counters are restored to their values before the
// attempt, so a failed speculative match never corrupts position tracking.
func (p *parser) expect(lit mem.RO) bool {
	m := p.mark()
	for i := 0; i < lit.Len(); i++ {
		if p.eof() || p.cur() != lit.At(i) {
			p.reset(m)
			return false
		}
		p.advance()
	}
	return true
}

func (p *parser) failf(kind Kind, msg string, args ...any) *ParseError {
	return &ParseError{
		Kind:     kind,
		Message:  fmt.Sprintf(msg, args...),
		Offset:   p.pos,
		Location: LineCol{Line: p.line, Column: p.col},
	}
}

// parseValue parses one JSON value beginning at the first non-whitespace
// byte, dispatching on the lookahead byte. Object and array members recurse
// through here.
func (p *parser) parseValue() (ast.Value, error) {
	p.skipWhitespaces()
	if p.eof() {
		return nil, p.failf(InsufficientToken, "unexpected end of input")
	}
	switch c := p.cur(); {
	case c == 'n':
		return p.parseKeyword(litNull, ast.Null)
	case c == 't':
		return p.parseKeyword(litTrue, ast.Bool(true))
	case c == 'f':
		return p.parseKeyword(litFalse, ast.Bool(false))
	case c == '-' || isDigit(c):
		return p.parseNumber()
	case c == '"':
		return p.parseString()
	case c == '{':
		return p.parseObject()
	case c == '[':
		return p.parseArray()
	default:
		return nil, p.failf(UnexpectedToken, "unexpected token %q", c)
	}
}

// parseKeyword matches one of the constants null, true or false. On a
// mismatch the cursor has been restored to the start of the attempt, so the
// reported location is the first byte of the bogus keyword.
func (p *parser) parseKeyword(lit mem.RO, v ast.Value) (ast.Value, error) {
	if !p.expect(lit) {
		return nil, p.failf(UnexpectedToken, "unexpected token %q", p.cur())
	}
	return v, nil
}

// parseString decodes a string literal, copying the decoded text out of the
// input buffer.
//
// Escape handling is deliberately compatible with the original grammar this
// parser replaces: \u accepts between 2 and 8 hex digits rather than exactly
// 4, and surrogate escape pairs are not combined.
func (p *parser) parseString() (ast.Value, error) {
	p.advance() // opening quote
	buf := make([]byte, 0, 16)
	for !p.eof() && p.cur() != '"' {
		c := p.cur()
		if c != '\\' {
			buf = append(buf, c)
			p.advance()
			continue
		}
		p.advance() // backslash
		if p.eof() {
			return nil, p.failf(InvalidString, "unexpected end of a string literal")
		}
		switch e := p.cur(); e {
		case 't':
			buf = append(buf, '\t')
			p.advance()
		case 'r':
			buf = append(buf, '\r')
			p.advance()
		case 'n':
			buf = append(buf, '\n')
			p.advance()
		case '"', '\\', '/':
			buf = append(buf, e)
			p.advance()
		case 'u':
			p.advance()
			r, err := p.parseHexRune()
			if err != nil {
				return nil, err
			}
			buf = utf8.AppendRune(buf, r)
		default:
			return nil, p.failf(InvalidString, "invalid escape sequence")
		}
	}
	if p.eof() {
		return nil, p.failf(InvalidString, "missing double quote")
	}
	p.advance() // closing quote
	return ast.String(buf), nil
}

// parseHexRune decodes the digits of a \u escape: up to 8 hex digits are
// consumed greedily, and at least 2 must be present. A value outside the
// valid rune range (including an unpaired surrogate) encodes as the
// replacement rune.
func (p *parser) parseHexRune() (rune, error) {
	var v int64
	var n int
	for n < 8 && !p.eof() && isHexDigit(p.cur()) {
		v = v<<4 | int64(hexValue(p.cur()))
		p.advance()
		n++
	}
	if n < 2 {
		return 0, p.failf(InvalidString, "invalid escape sequence")
	}
	return rune(v), nil
}

// parseNumber decodes a number literal into a float64. The integer part is
// accumulated in an int64 and must survive a round trip through float64:
// this guards precision, not range, so very large but exactly-representable
// integers still succeed.
func (p *parser) parseNumber() (ast.Value, error) {
	sign := 1.0
	if p.cur() == '-' {
		sign = -1
		p.advance()
	}

	var intPart int64
	switch {
	case p.eof() || !isDigit(p.cur()):
		return nil, p.failf(InvalidNumber, "missing integer part")
	case p.cur() == '0':
		// A leading zero is the whole integer part; 0.12 is fine, 01 is not.
		p.advance()
	default:
		for !p.eof() && isDigit(p.cur()) {
			d := int64(p.cur() - '0')
			if intPart > (math.MaxInt64-d)/10 {
				// The accumulator would wrap; a wrapped value could sneak
				// past the round-trip check below.
				return nil, p.failf(InvalidNumber, "too large number")
			}
			intPart = intPart*10 + d
			p.advance()
		}
		if int64(float64(intPart)) != intPart {
			return nil, p.failf(InvalidNumber, "too large number")
		}
	}

	var frac float64
	if !p.eof() && p.cur() == '.' {
		p.advance()
		weight := 0.1
		var nd int
		for !p.eof() && isDigit(p.cur()) {
			frac += float64(p.cur()-'0') * weight
			weight *= 0.1
			p.advance()
			nd++
		}
		if nd == 0 {
			return nil, p.failf(InvalidNumber, "insufficient fraction part")
		}
	}

	var exp float64
	if !p.eof() && (p.cur() == 'e' || p.cur() == 'E') {
		p.advance()
		expSign := 1.0
		if !p.eof() && (p.cur() == '+' || p.cur() == '-') {
			if p.cur() == '-' {
				expSign = -1
			}
			p.advance()
		}
		var nd int
		for !p.eof() && isDigit(p.cur()) {
			exp = exp*10 + float64(p.cur()-'0')
			p.advance()
			nd++
		}
		if nd == 0 {
			return nil, p.failf(InvalidNumber, "insufficient exponent part")
		}
		exp *= expSign
	}

	v := sign * (float64(intPart) + frac)
	if exp != 0 {
		// Extreme exponents overflow to infinity or underflow to zero per
		// ordinary float64 semantics.
		v *= math.Pow(10, exp)
	}
	return ast.Number(v), nil
}

// parseObject decodes the members of an object. Keys must be strings;
// duplicate keys are allowed and the last value written for a key wins.
func (p *parser) parseObject() (ast.Value, error) {
	p.advance() // '{'
	obj := ast.Object{}
	p.skipWhitespaces()
	if !p.eof() && p.cur() == '}' {
		p.advance()
		return obj, nil
	}
	for {
		key, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		ks, ok := key.(ast.String)
		if !ok {
			return nil, p.failf(NonStringKey, "object key must be a string")
		}
		p.skipWhitespaces()
		if !p.expect(litColon) {
			return nil, p.failf(UnexpectedToken, "missing colon")
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj[string(ks)] = val

		p.skipWhitespaces()
		if p.expect(litComma) {
			continue // the next iteration requires another key
		}
		if p.eof() {
			return nil, p.failf(InsufficientToken, "unexpected end of input")
		}
		if p.cur() == '}' {
			p.advance()
			return obj, nil
		}
		return nil, p.failf(UnexpectedToken, "missing comma")
	}
}

// parseArray decodes the elements of an array. After a comma another value
// is required, so a trailing comma fails in value dispatch.
func (p *parser) parseArray() (ast.Value, error) {
	p.advance() // '['
	arr := ast.Array{}
	p.skipWhitespaces()
	if !p.eof() && p.cur() == ']' {
		p.advance()
		return arr, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)

		p.skipWhitespaces()
		if p.expect(litComma) {
			continue
		}
		if p.eof() {
			return nil, p.failf(InsufficientToken, "unexpected end of input")
		}
		if p.cur() == ']' {
			p.advance()
			return arr, nil
		}
		return nil, p.failf(UnexpectedToken, `unexpected token %q, expecting "," or "]"`, p.cur())
	}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}
