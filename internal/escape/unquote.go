// Copyright (C) 2024 The jval Authors. All Rights Reserved.

// Package escape handles unquoting of JSON strings.
package escape

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// An Error reports an invalid or incomplete escape sequence found during
// unquoting. Off is the byte offset of the introducing backslash within the
// input given to Unquote.
type Error struct {
	Off     int
	Unicode bool // the sequence was a \u escape
	Msg     string
}

// Error satisfies the error interface.
func (e *Error) Error() string { return fmt.Sprintf("offset %d: %s", e.Off, e.Msg) }

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. A \uXXXX
// escape encoding a high surrogate must be immediately followed by another
// \u escape encoding a low surrogate; the pair decodes to a single rune.
// Unquote reports an *Error for an invalid or incomplete escape sequence,
// and for a surrogate half that is unpaired or paired incorrectly.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(make([]byte, 0, src.Len()), src), nil
	}

	dec := make([]byte, 0, src.Len())
	base := 0 // offset of the start of src within the original input
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		off := base + i // offset of the backslash
		src = src.SliceFrom(i + 1)
		base = off + 1
		if src.Len() == 0 {
			return nil, &Error{Off: off, Msg: "incomplete escape sequence"}
		}

		ch := src.At(0)
		src = src.SliceFrom(1)
		base++
		switch ch {
		case '"', '\\', '/':
			dec = append(dec, ch)
		case 'b':
			dec = append(dec, '\b')
		case 'f':
			dec = append(dec, '\f')
		case 'n':
			dec = append(dec, '\n')
		case 'r':
			dec = append(dec, '\r')
		case 't':
			dec = append(dec, '\t')
		case 'u':
			r, n, err := decodeUnicode(src, off)
			if err != nil {
				return nil, err
			}
			dec = utf8.AppendRune(dec, r)
			src = src.SliceFrom(n)
			base += n
		default:
			return nil, &Error{Off: off, Msg: fmt.Sprintf("invalid %q after escape", ch)}
		}

		// Look for the next escape sequence, and if one is not found we can
		// blit the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// decodeUnicode decodes the tail of a \u escape whose "\u" prefix has
// already been consumed, so that src begins at the first hex digit. It
// returns the decoded rune and the number of bytes consumed from src. off
// is the offset of the introducing backslash, used for error reports.
func decodeUnicode(src mem.RO, off int) (rune, int, error) {
	if src.Len() < 4 {
		return 0, 0, &Error{Off: off, Unicode: true, Msg: "incomplete Unicode escape"}
	}
	v, err := parseHex(src.SliceTo(4))
	if err != nil {
		return 0, 0, &Error{Off: off, Unicode: true, Msg: err.Error()}
	}
	r := rune(v)
	if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}

	// A surrogate half encodes a scalar value only as a high/low pair, with
	// the low half following immediately as another \u escape.
	rest := src.SliceFrom(4)
	if rest.Len() < 6 || rest.At(0) != '\\' || rest.At(1) != 'u' {
		return 0, 0, &Error{Off: off, Unicode: true, Msg: "unpaired surrogate"}
	}
	w, err := parseHex(rest.SliceFrom(2).SliceTo(4))
	if err != nil {
		return 0, 0, &Error{Off: off, Unicode: true, Msg: err.Error()}
	}
	r = utf16.DecodeRune(r, rune(w))
	if r == utf8.RuneError {
		return 0, 0, &Error{Off: off, Unicode: true, Msg: "invalid surrogate pair"}
	}
	return r, 10, nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
