// Copyright (C) 2024 The jval Authors. All Rights Reserved.

package jval_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jval-go/jval"
)

const pathJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestPath(t *testing.T) {
	v, err := jval.ParseSingle(pathJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name string
		path []any
		want jval.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NoMatch", []any{"nonesuch"}, nil, true},
		{"WrongType", []any{11}, nil, true},
		{"BadElement", []any{3.5}, nil, true},

		{"ArrayPos", []any{"list", 1, "x"}, jval.Number(2), false},
		{"ArrayNeg", []any{"list", -1, "x"}, jval.Number(2), false},
		{"ArrayRange", []any{"o", 25}, nil, true},
		{"ObjPath", []any{"xyz", "d"}, jval.Bool(true), false},
		{"Deep", []any{"y", "hello"}, jval.String("there"), false},

		{"FuncArray", []any{"o", testPathFunc}, jval.Number(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, jval.Number(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := jval.Path(v, tc.path...)
			if err != nil {
				if !tc.fail {
					t.Fatalf("Path: unexpected error: %v", err)
				}
				t.Logf("Got expected error: %v", err)
				return
			} else if tc.fail {
				t.Fatalf("Path: got %+v, want error", got)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Wrong result (-want, +got):\n%s", diff)
			}
		})
	}
}

func testPathFunc(v jval.Value) (jval.Value, error) {
	switch t := v.(type) {
	case jval.Array:
		return jval.ToValue(len(t)), nil
	case jval.Object:
		return jval.ToValue(len(t)), nil
	}
	return nil, errors.New("not a thing with length")
}
