// Package day03 finds misplaced items in rucksacks.
package day03

import (
	"fmt"

	aoc "github.com/maisem/aoc2022"
	"tailscale.com/util/set"
)

// Rucksack holds two equally sized compartments.
type Rucksack struct {
	Left, Right string
}

// Shared returns the one item type found in both compartments.
func (r Rucksack) Shared() (rune, error) {
	return Common(r.Left, r.Right)
}

// Items is every item in the rucksack.
func (r Rucksack) Items() string { return r.Left + r.Right }

// Group is three elves that share exactly one badge item.
type Group [3]Rucksack

func (g Group) Badge() (rune, error) {
	return Common(g[0].Items(), g[1].Items(), g[2].Items())
}

// Common returns the single item type present in every part.
func Common(parts ...string) (rune, error) {
	if len(parts) == 0 {
		return 0, fmt.Errorf("%w: no parts to intersect", aoc.ErrInvariant)
	}
	common := make(set.Set[rune])
	for _, r := range parts[0] {
		common.Add(r)
	}
	for _, p := range parts[1:] {
		next := make(set.Set[rune])
		for _, r := range p {
			if common.Contains(r) {
				next.Add(r)
			}
		}
		common = next
	}
	if common.Len() != 1 {
		return 0, fmt.Errorf("%w: %d items common to %q, want exactly 1", aoc.ErrInvariant, common.Len(), parts)
	}
	return common.Slice()[0], nil
}

// Priority maps a-z to 1-26 and A-Z to 27-52.
func Priority(r rune) (int, error) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 1, nil
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 27, nil
	}
	return 0, fmt.Errorf("no priority for item %q", r)
}

func ParseRucksacks(in string) ([]Rucksack, error) {
	var out []Rucksack
	for i, line := range aoc.Lines(in) {
		if line == "" {
			return nil, aoc.Errorf(i+1, line, "empty rucksack")
		}
		if len(line)%2 != 0 {
			return nil, aoc.Errorf(i+1, line, "odd item count %d", len(line))
		}
		for _, r := range line {
			if _, err := Priority(r); err != nil {
				return nil, &aoc.ParseError{Line: i + 1, Text: line, Err: err}
			}
		}
		half := len(line) / 2
		out = append(out, Rucksack{Left: line[:half], Right: line[half:]})
	}
	return out, nil
}

// ParseGroups reads rucksacks and groups every three consecutive ones.
func ParseGroups(in string) ([]Group, error) {
	rs, err := ParseRucksacks(in)
	if err != nil {
		return nil, err
	}
	if len(rs)%3 != 0 {
		return nil, aoc.Errorf(len(rs), rs[len(rs)-1].Items(), "%d rucksacks do not split into groups of 3", len(rs))
	}
	out := make([]Group, 0, len(rs)/3)
	for i := 0; i < len(rs); i += 3 {
		out = append(out, Group{rs[i], rs[i+1], rs[i+2]})
	}
	return out, nil
}

func sumPriorities[T any](items []T, find func(T) (rune, error)) (int, error) {
	total := 0
	for _, it := range items {
		r, err := find(it)
		if err != nil {
			return 0, err
		}
		p, err := Priority(r)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total, nil
}

// SharedPriorities sums the priorities of the item each rucksack carries in
// both compartments.
func SharedPriorities(rs []Rucksack) (int, error) {
	return sumPriorities(rs, Rucksack.Shared)
}

// BadgePriorities sums the priorities of each group's badge.
func BadgePriorities(gs []Group) (int, error) {
	return sumPriorities(gs, Group.Badge)
}
