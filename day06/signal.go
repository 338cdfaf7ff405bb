// Package day06 locates start markers in a device's datastream.
package day06

import (
	"errors"
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2022"
	"tailscale.com/util/set"
)

const (
	PacketWidth  = 4
	MessageWidth = 14
)

// Parse returns the datastream, a single non-empty line.
func Parse(in string) (string, error) {
	lines := aoc.Lines(in)
	switch len(lines) {
	case 0:
		return "", &aoc.ParseError{Err: errors.New("empty datastream")}
	case 1:
	default:
		return "", aoc.Errorf(2, lines[1], "datastream spans %d lines, want 1", len(lines))
	}
	s := strings.TrimSpace(lines[0])
	if s == "" {
		return "", aoc.Errorf(1, lines[0], "empty datastream")
	}
	return s, nil
}

// window holds the last size characters seen.
type window struct {
	q    aoc.Queue[rune]
	size int
}

func (w *window) push(r rune) {
	w.q.Push(r)
	if w.q.Len() > w.size {
		w.q.Pop()
	}
}

// distinct reports whether the window is full and holds no repeats.
func (w *window) distinct() bool {
	if w.q.Len() < w.size {
		return false
	}
	seen := make(set.Set[rune])
	for _, r := range w.q.Slice() {
		if seen.Contains(r) {
			return false
		}
		seen.Add(r)
	}
	return true
}

// Marker returns how many characters of stream have been read when the
// last width of them are all different.
func Marker(stream string, width int) (int, error) {
	if width < 1 {
		return 0, fmt.Errorf("bad marker width %d", width)
	}
	w := &window{size: width}
	n := 0
	for _, r := range stream {
		n++
		w.push(r)
		if w.distinct() {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: no run of %d distinct characters in %d-character stream", aoc.ErrInvariant, width, n)
}

func StartOfPacket(stream string) (int, error)  { return Marker(stream, PacketWidth) }
func StartOfMessage(stream string) (int, error) { return Marker(stream, MessageWidth) }
