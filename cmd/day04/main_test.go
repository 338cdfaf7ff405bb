package main

import (
	"testing"

	aoc "github.com/maisem/aoc2022"
)

func TestSamples(t *testing.T) {
	if err := aoc.VerifySamples(source, &solver{}); err != nil {
		t.Fatal(err)
	}
}
