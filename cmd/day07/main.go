// Command day07 solves Advent of Code 2022 day 7, No Space Left On Device.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2022"
	"github.com/maisem/aoc2022/day07"
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
want=95437

$ cd /
$ ls
dir a
14848514 b.txt
8504156 c.dat
dir d
$ cd a
$ ls
dir e
29116 f
2557 g
62596 h.lst
$ cd e
$ ls
584 i
$ cd ..
$ cd ..
$ cd d
$ ls
4060174 j
8033020 d.log
5626152 d.ext
7214296 k
*/
func (s solver) D7p1() (any, error) {
	return aoc.Solve(s.Puzzle, day07.Parse, aoc.Total(day07.SmallDirsTotal))
}

// want=24933642
func (s solver) D7p2() (any, error) {
	return aoc.Solve(s.Puzzle, day07.Parse, day07.DirToDelete)
}
