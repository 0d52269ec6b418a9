// Copyright (C) 2024 The jval Authors. All Rights Reserved.

// Package jval implements a recursive-descent parser for JSON documents.
//
// # Parsing
//
// The Parse function consumes a single JSON value from the front of its
// input, skipping insignificant whitespace before and after the value. It
// returns the parsed value along with whatever input remains unconsumed:
//
//	v, rest, err := jval.Parse(input)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Parse does not require that the remainder be empty. Callers that want
// strict whole-document behaviour should use ParseSingle, which reports an
// error if anything other than whitespace follows the value:
//
//	v, err := jval.ParseSingle(input)
//
// # Values
//
// A parsed document is represented by the Value interface, whose concrete
// types are Null, Bool, Number, String, Array, and Object. The set of types
// satisfying Value is closed. String contents are fully decoded during
// parsing: escape sequences, including \uXXXX escapes and UTF-16 surrogate
// pairs, are resolved before the value is returned.
//
//	JSON type  | Go type | Representation
//	---------- | ------- | -----------------------------------
//	null       | Null    | struct{}
//	boolean    | Bool    | bool
//	number     | Number  | float64
//	string     | String  | string (escapes resolved)
//	array      | Array   | []Value
//	object     | Object  | map[string]Value
//
// All numbers, whether or not the source literal carries a fraction or an
// exponent, are represented as IEEE-754 doubles. Object keys are unique; if
// the source contains duplicate keys the last occurrence wins.
//
// # Errors
//
// In case of error, the error has concrete type *ParseError, carrying the
// byte offset of the failure, an error Kind, and the label of the innermost
// enclosing construct ("string", "array", or "object") being parsed when the
// failure occurred.
//
// The parser backtracks only while choosing among value alternatives. Once
// it has consumed the opening delimiter of a string, array, or object, the
// parse is committed: a malformation past that point is reported directly
// and the prefix is never reinterpreted as a different kind of value. This
// keeps parse time linear in the input length and anchors error reports to
// the construct that actually failed.
package jval
