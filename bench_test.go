// Copyright (C) 2024 The jval Authors. All Rights Reserved.

package jval_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/jval-go/jval"
)

func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))
	text := string(input)

	b.Run("Stdlib", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("ParseSingle", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := jval.ParseSingle(text); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
