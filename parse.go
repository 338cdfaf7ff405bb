package aoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvariant is wrapped by errors reporting that something the puzzle
// guarantees turned out to be false.
var ErrInvariant = errors.New("invariant violated")

// ParseError reports a line of input that does not match the puzzle's
// grammar.
type ParseError struct {
	Line int // 1-based; 0 if unknown
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("parse %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("line %d: parse %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Errorf returns a *ParseError for the given line.
func Errorf(line int, text, format string, args ...any) error {
	return &ParseError{Line: line, Text: text, Err: fmt.Errorf(format, args...)}
}

// Lines splits s into lines. A single trailing newline does not produce an
// empty last line, and "\r\n" is treated as "\n".
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits s into groups of lines separated by blank lines.
func Blocks(s string) [][]string {
	var out [][]string
	var cur []string
	for _, line := range Lines(s) {
		if line == "" {
			if cur != nil {
				out = append(out, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	if cur != nil {
		out = append(out, cur)
	}
	return out
}

// Atoi parses a decimal integer, ignoring surrounding whitespace.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return n, nil
}

// Ints parses each of s with Atoi.
func Ints(s ...string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, v := range s {
		n, err := Atoi(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
