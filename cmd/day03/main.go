// Command day03 solves Advent of Code 2022 day 3, Rucksack Reorganization.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/day03"
)

func main() {
	aoc.Run(2022, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=157

vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
*/
func (s solver) D3p1() (any, error) {
	return aoc.Solve(s.Puzzle, day03.ParseRucksacks, day03.SharedPriorities)
}

// want=70
func (s solver) D3p2() (any, error) {
	return aoc.Solve(s.Puzzle, day03.ParseGroups, day03.BadgePriorities)
}
