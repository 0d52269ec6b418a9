// Copyright (C) 2024 The jval Authors. All Rights Reserved.

package jval

import "fmt"

// A Value is an arbitrary JSON value. The concrete types satisfying Value
// are Null, Bool, Number, String, Array, and Object; the set is closed.
type Value interface{ isValue() }

// Null represents the JSON null constant.
type Null struct{}

// A Bool is a JSON Boolean constant, true or false.
type Bool bool

// A Number is a JSON number. Every numeric literal, whether or not it has a
// fraction or an exponent, is represented as an IEEE-754 double. Literals
// outside the range of a float64 saturate to an infinity.
type Number float64

// A String is a JSON string value. Its content is fully decoded: escape
// sequences from the source text have already been resolved.
type String string

// An Array is an ordered sequence of values.
type Array []Value

// An Object is a mapping from string keys to values. Iteration order is
// unspecified. If the source text contained duplicate keys, the mapping
// holds the last occurrence of each.
type Object map[string]Value

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// ToValue converts a plain Go value into the corresponding Value. It
// understands nil, bool, string, the built-in numeric types, []any, and
// map[string]any, and passes through values that already satisfy Value.
// It panics if v does not belong to that set.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case float64:
		return Number(t)
	case float32:
		return Number(t)
	case int:
		return Number(t)
	case int8:
		return Number(t)
	case int16:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint8:
		return Number(t)
	case uint16:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case []any:
		vals := make(Array, len(t))
		for i, elt := range t {
			vals[i] = ToValue(elt)
		}
		return vals
	case map[string]any:
		obj := make(Object, len(t))
		for key, elt := range t {
			obj[key] = ToValue(elt)
		}
		return obj
	default:
		panic(fmt.Sprintf("cannot convert %T to a Value", v))
	}
}
