// Copyright (C) 2024 The jval Authors. All Rights Reserved.

package jval

import "fmt"

// Path traverses v along the given path elements and returns the value it
// arrives at. Each element must be one of:
//
//   - a string, selecting the named key of an Object
//   - an int, selecting an index of an Array; a negative index counts
//     backward from the end of the array
//   - a func(Value) (Value, error), which is applied to the current value
//     and whose result replaces it
//
// Path reports an error if an element does not apply to the value reached
// at its position in the path. An empty path returns v unchanged.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			obj, ok := cur.(Object)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %T with key %q", cur, t)
			}
			next, ok := obj[t]
			if !ok {
				return nil, fmt.Errorf("key %q not found", t)
			}
			cur = next

		case int:
			arr, ok := cur.(Array)
			if !ok {
				return nil, fmt.Errorf("cannot traverse %T with index %d", cur, t)
			}
			idx := t
			if idx < 0 {
				idx += len(arr)
			}
			if idx < 0 || idx >= len(arr) {
				return nil, fmt.Errorf("index %d out of range for %d elements", t, len(arr))
			}
			cur = arr[idx]

		case func(Value) (Value, error):
			next, err := t(cur)
			if err != nil {
				return nil, err
			}
			cur = next

		default:
			return nil, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}
