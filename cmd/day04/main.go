// Command day04 solves Advent of Code 2022 day 4, Camp Cleanup.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/day04"
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
want=2

2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
*/
func (s solver) D4p1() (any, error) {
	return aoc.Solve(s.Puzzle, day04.Parse, aoc.Total(day04.CountContained))
}

// want=4
func (s solver) D4p2() (any, error) {
	return aoc.Solve(s.Puzzle, day04.Parse, aoc.Total(day04.CountOverlapping))
}
