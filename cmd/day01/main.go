// Command day01 solves Advent of Code 2022 day 1, Calorie Counting.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/day01"
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
want=24000

1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
*/
func (s solver) D1p1() (any, error) {
	return aoc.Solve(s.Puzzle, day01.Parse, aoc.Total(day01.MostCalories))
}

// want=45000
func (s solver) D1p2() (any, error) {
	return aoc.Solve(s.Puzzle, day01.Parse, aoc.Total(day01.TopThreeCalories))
}
