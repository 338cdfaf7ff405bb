// Package day04 compares the section ranges assigned to pairs of elves.
package day04

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2022"
)

// Range is the inclusive span of section IDs [Start, End].
type Range struct {
	Start, End int
}

func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Start, r.End) }

// Contains reports whether o lies entirely inside r.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

// Within reports whether r lies entirely inside o.
func (r Range) Within(o Range) bool { return o.Contains(r) }

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Start <= o.End && o.Start <= r.End
}

type Pair struct {
	A, B Range
}

// FullyContains reports whether one range of the pair contains the other.
func (p Pair) FullyContains() bool {
	return p.A.Contains(p.B) || p.B.Contains(p.A)
}

func (p Pair) Overlapping() bool {
	return p.A.Overlaps(p.B)
}

func parseRange(s string) (Range, error) {
	a, b, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("range %q: missing '-'", s)
	}
	ns, err := aoc.Ints(a, b)
	if err != nil {
		return Range{}, fmt.Errorf("range %q: %w", s, err)
	}
	r := Range{Start: ns[0], End: ns[1]}
	if r.Start > r.End {
		return Range{}, fmt.Errorf("range %q: start after end", s)
	}
	return r, nil
}

// Parse reads one "a-b,c-d" pair per line.
func Parse(in string) ([]Pair, error) {
	var out []Pair
	for i, line := range aoc.Lines(in) {
		a, b, ok := strings.Cut(line, ",")
		if !ok {
			return nil, aoc.Errorf(i+1, line, "missing ','")
		}
		ra, err := parseRange(a)
		if err != nil {
			return nil, &aoc.ParseError{Line: i + 1, Text: line, Err: err}
		}
		rb, err := parseRange(b)
		if err != nil {
			return nil, &aoc.ParseError{Line: i + 1, Text: line, Err: err}
		}
		out = append(out, Pair{A: ra, B: rb})
	}
	return out, nil
}

// CountPairs returns how many pairs satisfy pred.
func CountPairs(pairs []Pair, pred func(Pair) bool) int {
	n := 0
	for _, p := range pairs {
		if pred(p) {
			n++
		}
	}
	return n
}

func CountContained(pairs []Pair) int {
	return CountPairs(pairs, Pair.FullyContains)
}

func CountOverlapping(pairs []Pair) int {
	return CountPairs(pairs, Pair.Overlapping)
}
