// Copyright (C) 2024 The jval Authors. All Rights Reserved.

package jval

import "fmt"

// Kind is the type of a parse error classification.
type Kind byte

// Constants defining the valid Kind values.
const (
	UnexpectedToken      Kind = iota // no value production matched
	UnterminatedString               // missing closing quote
	InvalidEscape                    // invalid character after backslash
	InvalidUnicodeEscape             // malformed hex or lone/invalid surrogate
	InvalidNumberLiteral             // number-like text that did not parse
	MissingColon                     // object member without ":"
	MissingCommaOrCloser             // aggregate without "," or closer
	UnterminatedArray                // missing "]"
	UnterminatedObject               // missing "}"
)

var kindStr = [...]string{
	UnexpectedToken:      "unexpected token",
	UnterminatedString:   "unterminated string",
	InvalidEscape:        "invalid escape",
	InvalidUnicodeEscape: "invalid Unicode escape",
	InvalidNumberLiteral: "invalid number literal",
	MissingColon:         `missing ":"`,
	MissingCommaOrCloser: `missing "," or closing delimiter`,
	UnterminatedArray:    "unterminated array",
	UnterminatedObject:   "unterminated object",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return "invalid error kind"
	}
	return kindStr[v]
}

// ParseError is the concrete type of errors reported by the parser.
//
// Offset is the byte offset in the input at which the failure occurred.
// For the unterminated kinds it is the offset of the construct's opening
// delimiter; for all other kinds it is the offset of the offending byte,
// or the length of the input if it ended prematurely.
type ParseError struct {
	Kind    Kind
	Offset  int
	Context string // innermost enclosing construct, or ""

	err error
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("offset %d: in %s: %s", e.Offset, e.Context, e.Kind)
	}
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Kind)
}

// Unwrap supports error wrapping.
func (e *ParseError) Unwrap() error { return e.err }
