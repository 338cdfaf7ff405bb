// Package day05 simulates a crane rearranging stacks of crates.
package day05

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	aoc "github.com/maisem/aoc2022"
	"golang.org/x/exp/maps"
	"tailscale.com/util/mak"
)

// Ship maps a stack number to its crates.
type Ship struct {
	stacks map[int]*aoc.Stack[byte]
}

// ShipOf builds a ship from crate letters listed bottom to top.
func ShipOf(stacks map[int]string) Ship {
	var s Ship
	for k, v := range stacks {
		mak.Set(&s.stacks, k, aoc.StackOf([]byte(v)...))
	}
	return s
}

// Crates returns the crate letters of each stack, bottom to top.
func (s Ship) Crates() map[int]string {
	out := make(map[int]string, len(s.stacks))
	for k, st := range s.stacks {
		out[k] = string(st.Slice())
	}
	return out
}

func (s Ship) Clone() Ship {
	var out Ship
	for k, st := range s.stacks {
		mak.Set(&out.stacks, k, st.Clone())
	}
	return out
}

func (s Ship) stack(n int) (*aoc.Stack[byte], error) {
	st, ok := s.stacks[n]
	if !ok {
		return nil, fmt.Errorf("%w: no stack %d", aoc.ErrInvariant, n)
	}
	return st, nil
}

// Tops returns the top crate of every non-empty stack in stack order.
func (s Ship) Tops() string {
	keys := maps.Keys(s.stacks)
	slices.Sort(keys)
	var sb strings.Builder
	for _, k := range keys {
		if c, ok := s.stacks[k].Peek(); ok {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Move is "move N from From to To".
type Move struct {
	N, From, To int
}

func (m Move) String() string {
	return fmt.Sprintf("move %d from %d to %d", m.N, m.From, m.To)
}

// Plan is the starting ship and the moves to apply to it.
type Plan struct {
	Ship  Ship
	Moves []Move
}

// A Mover applies one move to the ship in place.
type Mover func(Ship, Move) error

func endpoints(s Ship, m Move) (from, to *aoc.Stack[byte], err error) {
	if from, err = s.stack(m.From); err != nil {
		return nil, nil, err
	}
	if to, err = s.stack(m.To); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func pop(st *aoc.Stack[byte], n int) (byte, error) {
	c, ok := st.Pop()
	if !ok {
		return 0, fmt.Errorf("%w: stack %d is empty", aoc.ErrInvariant, n)
	}
	return c, nil
}

// CrateMover9000 lifts one crate at a time, so the moved crates end up in
// reverse order.
func CrateMover9000(s Ship, m Move) error {
	from, to, err := endpoints(s, m)
	if err != nil {
		return err
	}
	for i := 0; i < m.N; i++ {
		c, err := pop(from, m.From)
		if err != nil {
			return err
		}
		to.Push(c)
	}
	return nil
}

// CrateMover9001 lifts all N crates at once and keeps their order.
func CrateMover9001(s Ship, m Move) error {
	from, to, err := endpoints(s, m)
	if err != nil {
		return err
	}
	var held aoc.Stack[byte]
	for i := 0; i < m.N; i++ {
		c, err := pop(from, m.From)
		if err != nil {
			return err
		}
		held.Push(c)
	}
	for held.Len() > 0 {
		c, _ := held.Pop()
		to.Push(c)
	}
	return nil
}

// Rearrange applies every move of p to a copy of its ship and returns the
// resulting top crates.
func Rearrange(p Plan, mover Mover) (string, error) {
	ship := p.Ship.Clone()
	for i, m := range p.Moves {
		if err := mover(ship, m); err != nil {
			return "", fmt.Errorf("move %d (%v): %w", i+1, m, err)
		}
	}
	return ship.Tops(), nil
}

func Rearrange9000(p Plan) (string, error) { return Rearrange(p, CrateMover9000) }
func Rearrange9001(p Plan) (string, error) { return Rearrange(p, CrateMover9001) }

// Parse reads the crate drawing, a blank line and the move list.
func Parse(in string) (Plan, error) {
	blocks := aoc.Blocks(in)
	if len(blocks) == 0 || len(blocks) > 2 {
		return Plan{}, &aoc.ParseError{Err: fmt.Errorf("got %d blank-line separated sections, want 2", len(blocks))}
	}
	ship, err := parseDrawing(blocks[0])
	if err != nil {
		return Plan{}, err
	}
	p := Plan{Ship: ship}
	if len(blocks) == 1 {
		return p, nil
	}
	first := len(blocks[0]) + 2 // line number of the first move
	for i, line := range blocks[1] {
		m, err := parseMove(line)
		if err != nil {
			return Plan{}, &aoc.ParseError{Line: first + i, Text: line, Err: err}
		}
		p.Moves = append(p.Moves, m)
	}
	return p, nil
}

func parseMove(line string) (Move, error) {
	fs := strings.Fields(line)
	if len(fs) != 6 || fs[0] != "move" || fs[2] != "from" || fs[4] != "to" {
		return Move{}, fmt.Errorf("want \"move N from A to B\"")
	}
	ns, err := aoc.Ints(fs[1], fs[3], fs[5])
	if err != nil {
		return Move{}, err
	}
	if ns[0] < 0 {
		return Move{}, fmt.Errorf("negative crate count %d", ns[0])
	}
	return Move{N: ns[0], From: ns[1], To: ns[2]}, nil
}

// parseDrawing reads a drawing like
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
// Stack i sits in column 4(i-1)+1.
func parseDrawing(lines []string) (Ship, error) {
	last := len(lines) - 1
	labels := strings.Fields(lines[last])
	if len(labels) == 0 {
		return Ship{}, aoc.Errorf(last+1, lines[last], "no stack labels")
	}
	for i, l := range labels {
		if l != strconv.Itoa(i+1) {
			return Ship{}, aoc.Errorf(last+1, lines[last], "stack label %q, want %d", l, i+1)
		}
	}
	width := 4*len(labels) - 1
	for _, line := range lines {
		width = max(width, len(line))
	}
	g := aoc.MakeGrid[byte](width, len(lines))
	g.Fill(' ')
	for y, line := range lines {
		copy(g[y], line)
	}
	cols := g.Transpose()

	var ship Ship
	for i := range labels {
		n := i + 1
		x := 4*i + 1
		st := new(aoc.Stack[byte])
		gap := false
		for y := last - 1; y >= 0; y-- {
			c := cols[x][y]
			if c == ' ' {
				gap = true
				continue
			}
			if gap {
				return Ship{}, aoc.Errorf(y+1, lines[y], "crate %q in stack %d has nothing below it", c, n)
			}
			if c < 'A' || c > 'Z' || g.At(aoc.Pt{X: x - 1, Y: y}) != '[' || g.At(aoc.Pt{X: x + 1, Y: y}) != ']' {
				return Ship{}, aoc.Errorf(y+1, lines[y], "malformed crate in stack %d", n)
			}
			st.Push(c)
		}
		mak.Set(&ship.stacks, n, st)
	}
	// Only crates may appear above the labels; separator columns and
	// anything right of the last stack stay blank.
	for y := 0; y < last; y++ {
		for x, c := range g[y] {
			if c == ' ' {
				continue
			}
			i := x / 4
			if i >= len(labels) || x%4 == 3 || g[y][4*i+1] == ' ' {
				return Ship{}, aoc.Errorf(y+1, lines[y], "stray %q at column %d", c, x+1)
			}
		}
	}
	return ship, nil
}
