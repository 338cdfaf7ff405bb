// Package day02 scores a rock paper scissors strategy guide.
package day02

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2022"
)

// Move is a hand shape. Each move beats the one before it, cyclically.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

func (m Move) String() string {
	switch m {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// Points is the score for playing m.
func (m Move) Points() int { return int(m) + 1 }

// Against returns the outcome of playing m against theirs.
func (m Move) Against(theirs Move) Outcome {
	switch (m - theirs + 3) % 3 {
	case 0:
		return Draw
	case 1:
		return Win
	}
	return Lose
}

// For returns the move that gets outcome o against theirs.
func For(theirs Move, o Outcome) Move {
	return (theirs + Move(o) - 1 + 3) % 3
}

type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

func (o Outcome) Points() int { return int(o) * 3 }

// Round is one line of the guide read as two moves.
type Round struct {
	Theirs, Ours Move
}

func (r Round) Score() int {
	return r.Ours.Points() + r.Ours.Against(r.Theirs).Points()
}

// Plan is one line of the guide read as a move and the desired outcome.
type Plan struct {
	Theirs  Move
	Outcome Outcome
}

func (p Plan) Score() int {
	return Round{Theirs: p.Theirs, Ours: For(p.Theirs, p.Outcome)}.Score()
}

func theirMove(s string) (Move, error) {
	switch s {
	case "A":
		return Rock, nil
	case "B":
		return Paper, nil
	case "C":
		return Scissors, nil
	}
	return 0, fmt.Errorf("bad opponent move %q", s)
}

func ourMove(s string) (Move, error) {
	switch s {
	case "X":
		return Rock, nil
	case "Y":
		return Paper, nil
	case "Z":
		return Scissors, nil
	}
	return 0, fmt.Errorf("bad move %q", s)
}

func outcome(s string) (Outcome, error) {
	switch s {
	case "X":
		return Lose, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, fmt.Errorf("bad outcome %q", s)
}

// parse splits every line into exactly two fields and hands them to f.
func parse[T any](in string, f func(a, b string) (T, error)) ([]T, error) {
	var out []T
	for i, line := range aoc.Lines(in) {
		fs := strings.Fields(line)
		if len(fs) != 2 {
			return nil, aoc.Errorf(i+1, line, "got %d fields, want 2", len(fs))
		}
		v, err := f(fs[0], fs[1])
		if err != nil {
			return nil, &aoc.ParseError{Line: i + 1, Text: line, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseRounds reads the second column as our move.
func ParseRounds(in string) ([]Round, error) {
	return parse(in, func(a, b string) (Round, error) {
		theirs, err := theirMove(a)
		if err != nil {
			return Round{}, err
		}
		ours, err := ourMove(b)
		if err != nil {
			return Round{}, err
		}
		return Round{Theirs: theirs, Ours: ours}, nil
	})
}

// ParsePlans reads the second column as the outcome to aim for.
func ParsePlans(in string) ([]Plan, error) {
	return parse(in, func(a, b string) (Plan, error) {
		theirs, err := theirMove(a)
		if err != nil {
			return Plan{}, err
		}
		o, err := outcome(b)
		if err != nil {
			return Plan{}, err
		}
		return Plan{Theirs: theirs, Outcome: o}, nil
	})
}

func TotalScore(rounds []Round) int {
	total := 0
	for _, r := range rounds {
		total += r.Score()
	}
	return total
}

func PlannedScore(plans []Plan) int {
	total := 0
	for _, p := range plans {
		total += p.Score()
	}
	return total
}
