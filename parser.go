// Copyright (C) 2024 The jval Authors. All Rights Reserved.

package jval

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jval-go/jval/internal/escape"

	"go4.org/mem"
)

// Parse parses a single JSON value from the front of input. Insignificant
// whitespace before and after the value is skipped, and the remainder of the
// input past the trailing whitespace is returned to the caller.
//
// Parse does not require that rest be empty; use ParseSingle for strict
// whole-document parsing. In case of error, the returned error has concrete
// type [*ParseError].
func Parse(input string) (v Value, rest string, err error) {
	p := &parser{src: input}
	defer p.recoverParseError(&err)

	p.ws()
	v, ok := p.parseValue()
	if !ok {
		return nil, input, p.valueError("")
	}
	p.ws()
	return v, p.src[p.pos:], nil
}

// ParseSingle parses input as a single complete document: one JSON value
// surrounded by nothing but whitespace. It is a strict form of Parse;
// trailing non-whitespace input, which Parse would return to the caller, is
// reported as an UnexpectedToken at its offset.
func ParseSingle(input string) (Value, error) {
	v, rest, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, &ParseError{Kind: UnexpectedToken, Offset: len(input) - len(rest)}
	}
	return v, nil
}

// A parser is a cursor over an in-memory input. The grammar productions are
// its methods; each parses starting at the cursor and either advances past
// what it matched or, for a recoverable failure, leaves the cursor unmoved
// so a sibling alternative can retry from the same position.
//
// Fatal failures do not return: they unwind by panicking with a *ParseError,
// caught by recoverParseError at the entry point. A production panics only
// after its commit point, once the opening delimiter of a string, array, or
// object has been consumed, so the panic can never discard a viable
// alternative.
type parser struct {
	src string
	pos int
}

func (p *parser) recoverParseError(errp *error) {
	if v := recover(); v != nil {
		perr, ok := v.(*ParseError)
		if !ok {
			panic(v)
		}
		*errp = perr
	}
}

// fatal constructs the error for a failure past a commit point.
// Call sites panic with the result.
func fatal(kind Kind, off int, context string) *ParseError {
	return &ParseError{Kind: kind, Offset: off, Context: context}
}

// valueError describes the failure of the value dispatcher at the cursor. A
// position that looks like the start of a number but did not scan as one is
// an invalid number literal; anything else is an unexpected token.
func (p *parser) valueError(context string) *ParseError {
	kind := UnexpectedToken
	if p.pos < len(p.src) && isNumStart(p.src[p.pos]) {
		kind = InvalidNumberLiteral
	}
	return &ParseError{Kind: kind, Offset: p.pos, Context: context}
}

// ws consumes the maximal run of insignificant whitespace at the cursor.
// It always succeeds, matching zero bytes if none are present.
func (p *parser) ws() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

// literal consumes the exact text lit at the cursor and reports whether it
// was present.
func (p *parser) literal(lit string) bool {
	if strings.HasPrefix(p.src[p.pos:], lit) {
		p.pos += len(lit)
		return true
	}
	return false
}

// peek reports whether the byte at the cursor is ch.
func (p *parser) peek(ch byte) bool { return p.pos < len(p.src) && p.src[p.pos] == ch }

// parseValue tries each value production in a fixed order and returns the
// first match. It reports false, leaving the cursor unmoved, if no
// production matches at the cursor. The leading characters of the
// productions are disjoint, so the order carries no semantic weight; it is
// fixed to document the intended precedence.
func (p *parser) parseValue() (Value, bool) {
	if p.literal("null") {
		return Null{}, true
	}
	if p.literal("true") {
		return Bool(true), true
	}
	if p.literal("false") {
		return Bool(false), true
	}
	if p.peek('"') {
		return String(p.stringBody()), true
	}
	if v, ok := p.parseNumber(); ok {
		return v, true
	}
	if p.peek('[') {
		return p.parseArray(), true
	}
	if p.peek('{') {
		return p.parseObject(), true
	}
	return nil, false
}

// parseNumber matches the JSON number grammar: an optional minus sign, an
// integer part, an optional fraction, and an optional exponent. The matched
// text is converted with strconv.ParseFloat, so a literal beyond the range
// of a float64 saturates to an infinity rather than failing. Failure to
// match is recoverable and leaves the cursor unmoved.
func (p *parser) parseNumber() (Value, bool) {
	i := p.pos
	if i < len(p.src) && p.src[i] == '-' {
		i++
	}
	digits := i
	for i < len(p.src) && isDigit(p.src[i]) {
		i++
	}
	if i == digits {
		return nil, false // no integer part
	}
	if i < len(p.src) && p.src[i] == '.' {
		i++
		for i < len(p.src) && isDigit(p.src[i]) {
			i++
		}
	}
	if i < len(p.src) && (p.src[i] == 'e' || p.src[i] == 'E') {
		// An exponent marker not followed by digits is not part of the
		// number; leave it for the surrounding production.
		j := i + 1
		if j < len(p.src) && (p.src[j] == '+' || p.src[j] == '-') {
			j++
		}
		if j < len(p.src) && isDigit(p.src[j]) {
			i = j
			for i < len(p.src) && isDigit(p.src[i]) {
				i++
			}
		}
	}

	v, err := strconv.ParseFloat(p.src[p.pos:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, false
	}
	p.pos = i
	return Number(v), true
}

// stringBody parses a quoted string at the cursor and returns its decoded
// content. Precondition: the cursor is at '"'. Once the opening quote is
// consumed the parse is committed: a missing closing quote or a malformed
// escape is fatal, tagged "string", so that a bad string is never silently
// retried as a different kind of value.
func (p *parser) stringBody() string {
	open := p.pos
	p.pos++ // consume '"'

	// Find the closing quote. Escapes are tracked only so that an escaped
	// quote does not terminate the body; decoding them is escape.Unquote's
	// business.
	var esc bool
	for i := p.pos; i < len(p.src); i++ {
		ch := p.src[i]
		if esc {
			esc = false
		} else if ch == '\\' {
			esc = true
		} else if ch == '"' {
			dec, err := escape.Unquote(mem.S(p.src[p.pos:i]))
			if err != nil {
				panic(escapeError(err, p.pos))
			}
			p.pos = i + 1
			return string(dec)
		}
	}
	panic(fatal(UnterminatedString, open, "string"))
}

// escapeError converts an error from escape.Unquote into a fatal ParseError
// anchored at the offending backslash. base is the offset of the first byte
// of the string body within the input.
func escapeError(err error, base int) *ParseError {
	kind, off := InvalidEscape, base
	var eerr *escape.Error
	if errors.As(err, &eerr) {
		off = base + eerr.Off
		if eerr.Unicode {
			kind = InvalidUnicodeEscape
		}
	}
	return &ParseError{Kind: kind, Offset: off, Context: "string", err: err}
}

// parseArray parses an array at the cursor. Precondition: the cursor is at
// '['. The parse is committed once the bracket is consumed; failures past
// that point are fatal, tagged "array". The body is zero or more values
// separated by commas, with no trailing comma.
func (p *parser) parseArray() Array {
	open := p.pos
	p.pos++ // consume '['
	p.ws()

	vals := Array{}
	if p.literal("]") {
		return vals
	}
	for {
		if p.pos >= len(p.src) {
			panic(fatal(UnterminatedArray, open, "array"))
		}
		v, ok := p.parseValue()
		if !ok {
			panic(p.valueError("array"))
		}
		vals = append(vals, v)

		p.ws()
		if p.literal("]") {
			return vals
		}
		if !p.literal(",") {
			if p.pos >= len(p.src) {
				panic(fatal(UnterminatedArray, open, "array"))
			}
			panic(fatal(MissingCommaOrCloser, p.pos, "array"))
		}
		p.ws()
	}
}

// parseObject parses an object at the cursor. Precondition: the cursor is at
// '{'. The parse is committed once the brace is consumed; failures past that
// point are fatal, tagged "object" (or "string", inside a key). The body is
// zero or more "key": value members separated by commas, with no trailing
// comma. Duplicate keys are permitted in the source; the last one wins.
func (p *parser) parseObject() Object {
	open := p.pos
	p.pos++ // consume '{'
	p.ws()

	obj := Object{}
	if p.literal("}") {
		return obj
	}
	for {
		if p.pos >= len(p.src) {
			panic(fatal(UnterminatedObject, open, "object"))
		}
		if !p.peek('"') {
			panic(fatal(UnexpectedToken, p.pos, "object"))
		}
		key := p.stringBody()

		p.ws()
		if !p.literal(":") {
			panic(fatal(MissingColon, p.pos, "object"))
		}
		p.ws()

		v, ok := p.parseValue()
		if !ok {
			if p.pos >= len(p.src) {
				panic(fatal(UnterminatedObject, open, "object"))
			}
			panic(p.valueError("object"))
		}
		obj[key] = v

		p.ws()
		if p.literal("}") {
			return obj
		}
		if !p.literal(",") {
			if p.pos >= len(p.src) {
				panic(fatal(UnterminatedObject, open, "object"))
			}
			panic(fatal(MissingCommaOrCloser, p.pos, "object"))
		}
		p.ws()
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
