// Package day01 counts the calories carried by each elf.
package day01

import (
	aoc "github.com/maisem/aoc2022"
)

// Elf is the calorie count of each item an elf carries.
type Elf []int

func (e Elf) Total() int {
	return aoc.Sum(e...)
}

// Parse reads one number per line, elves separated by blank lines.
func Parse(in string) ([]Elf, error) {
	var elves []Elf
	lineNo := 0
	var cur Elf
	flush := func() {
		if cur != nil {
			elves = append(elves, cur)
		}
		cur = nil
	}
	for _, line := range aoc.Lines(in) {
		lineNo++
		if line == "" {
			flush()
			continue
		}
		n, err := aoc.Atoi(line)
		if err != nil {
			return nil, &aoc.ParseError{Line: lineNo, Text: line, Err: err}
		}
		if n < 0 {
			return nil, aoc.Errorf(lineNo, line, "negative calories")
		}
		cur = append(cur, n)
	}
	flush()
	return elves, nil
}

// MostCalories returns the largest total carried by a single elf.
func MostCalories(elves []Elf) int {
	most := 0
	for _, e := range elves {
		most = max(most, e.Total())
	}
	return most
}

// TopThreeCalories returns the combined total of the three elves carrying
// the most.
func TopThreeCalories(elves []Elf) int {
	return topN(elves, 3)
}

// topN keeps the n largest totals in a min-queue, evicting the smallest
// whenever a larger total shows up.
func topN(elves []Elf, n int) int {
	q := aoc.MinQueue[int]()
	for i, e := range elves {
		t := e.Total()
		switch {
		case q.Len() < n:
			q.Push(&aoc.PQI[int]{V: i, P: t})
		case t > q.Peek().P:
			q.Pop()
			q.Push(&aoc.PQI[int]{V: i, P: t})
		}
	}
	sum := 0
	for q.Len() > 0 {
		sum += q.Pop().P
	}
	return sum
}
