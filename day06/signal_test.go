package day06

import (
	"errors"
	"testing"

	aoc "github.com/maisem/aoc2022"
)

func TestMarkers(t *testing.T) {
	tests := []struct {
		stream          string
		packet, message int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tt := range tests {
		if got := aoc.MustGet(StartOfPacket(tt.stream)); got != tt.packet {
			t.Errorf("StartOfPacket(%q) = %v, want %v", tt.stream, got, tt.packet)
		}
		if got := aoc.MustGet(StartOfMessage(tt.stream)); got != tt.message {
			t.Errorf("StartOfMessage(%q) = %v, want %v", tt.stream, got, tt.message)
		}
	}
}

func TestMarkerMonotonic(t *testing.T) {
	const stream = "nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg"
	prev := 0
	for w := 1; w <= 14; w++ {
		got, err := Marker(stream, w)
		if err != nil {
			t.Fatalf("Marker(%d): %v", w, err)
		}
		if got < prev {
			t.Errorf("Marker(%d) = %d, less than width %d result %d", w, got, w-1, prev)
		}
		if got < w {
			t.Errorf("Marker(%d) = %d, before a full window", w, got)
		}
		prev = got
	}
}

func TestMarkerErrors(t *testing.T) {
	if _, err := Marker("abcabc", 4); !errors.Is(err, aoc.ErrInvariant) {
		t.Errorf("Marker(abcabc, 4) error = %v, want ErrInvariant", err)
	}
	if _, err := Marker("abc", 4); err == nil {
		t.Error("Marker on short stream succeeded, want error")
	}
	if _, err := Marker("abcd", 0); err == nil {
		t.Error("Marker with width 0 succeeded, want error")
	}
}

func TestParse(t *testing.T) {
	if got := aoc.MustGet(Parse("abcd\n")); got != "abcd" {
		t.Errorf("Parse = %q, want abcd", got)
	}
	for _, in := range []string{"", "\n", "  \n", "ab\ncd\n"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}
