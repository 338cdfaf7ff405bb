// Command day05 solves Advent of Code 2022 day 5, Supply Stacks.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/day05"
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
want=CMZ

    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2
*/
func (s solver) D5p1() (any, error) {
	return aoc.Solve(s.Puzzle, day05.Parse, day05.Rearrange9000)
}

// want=MCD
func (s solver) D5p2() (any, error) {
	return aoc.Solve(s.Puzzle, day05.Parse, day05.Rearrange9001)
}
