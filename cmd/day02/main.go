// Command day02 solves Advent of Code 2022 day 2, Rock Paper Scissors.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/day02"
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
want=15

A Y
B X
C Z
*/
func (s solver) D2p1() (any, error) {
	return aoc.Solve(s.Puzzle, day02.ParseRounds, aoc.Total(day02.TotalScore))
}

// The second column is the outcome to aim for, not a move.
//
// want=12
func (s solver) D2p2() (any, error) {
	return aoc.Solve(s.Puzzle, day02.ParsePlans, aoc.Total(day02.PlannedScore))
}
