// Command day06 solves Advent of Code 2022 day 6, Tuning Trouble.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/day06"
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
want=7

mjqjpqmgbljsphdztnvjfqwrcgsmlb
*/
func (s solver) D6p1() (any, error) {
	return aoc.Solve(s.Puzzle, day06.Parse, day06.StartOfPacket)
}

// want=19
func (s solver) D6p2() (any, error) {
	return aoc.Solve(s.Puzzle, day06.Parse, day06.StartOfMessage)
}
