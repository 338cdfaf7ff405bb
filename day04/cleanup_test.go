package day04

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	aoc "github.com/maisem/aoc2022"
)

const example = `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
`

func TestParse(t *testing.T) {
	got, err := Parse(example)
	if err != nil {
		t.Fatal(err)
	}
	want := []Pair{
		{Range{2, 4}, Range{6, 8}},
		{Range{2, 3}, Range{4, 5}},
		{Range{5, 7}, Range{7, 9}},
		{Range{2, 8}, Range{3, 7}},
		{Range{6, 6}, Range{4, 6}},
		{Range{2, 6}, Range{4, 8}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestCounts(t *testing.T) {
	pairs := aoc.MustGet(Parse(example))
	if got := CountContained(pairs); got != 2 {
		t.Errorf("CountContained = %v, want 2", got)
	}
	if got := CountOverlapping(pairs); got != 4 {
		t.Errorf("CountOverlapping = %v, want 4", got)
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		p                     Pair
		contained, overlapped bool
	}{
		{Pair{Range{2, 8}, Range{3, 7}}, true, true},
		{Pair{Range{2, 4}, Range{6, 8}}, false, false},
		{Pair{Range{5, 7}, Range{7, 9}}, false, true},
		{Pair{Range{6, 6}, Range{4, 6}}, true, true},
		{Pair{Range{1, 1}, Range{1, 1}}, true, true},
		{Pair{Range{1, 2}, Range{3, 4}}, false, false},
	}
	for _, tt := range tests {
		if got := tt.p.FullyContains(); got != tt.contained {
			t.Errorf("%v.FullyContains() = %v, want %v", tt.p, got, tt.contained)
		}
		if got := tt.p.Overlapping(); got != tt.overlapped {
			t.Errorf("%v.Overlapping() = %v, want %v", tt.p, got, tt.overlapped)
		}
	}
}

func TestRangeProperties(t *testing.T) {
	var rs []Range
	for s := 0; s < 6; s++ {
		for e := s; e < 6; e++ {
			rs = append(rs, Range{s, e})
		}
	}
	for _, a := range rs {
		for _, b := range rs {
			if a.Overlaps(b) != b.Overlaps(a) {
				t.Errorf("Overlaps not symmetric for %v, %v", a, b)
			}
			if a.Within(b) && b.Within(a) && a != b {
				t.Errorf("%v and %v are within each other but differ", a, b)
			}
			if a.Within(b) && !a.Overlaps(b) {
				t.Errorf("%v within %v but does not overlap it", a, b)
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"2-4\n",
		"2-4,6\n",
		"2-x,6-8\n",
		"4-2,6-8\n",
	} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}
