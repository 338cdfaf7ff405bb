package aoc

import (
	"slices"
	"testing"
)

func TestStack(t *testing.T) {
	s := StackOf(1, 2)
	s.Push(3)
	if v, ok := s.Peek(); !ok || v != 3 {
		t.Errorf("Peek = %v, %v; want 3, true", v, ok)
	}
	c := s.Clone()
	c.Push(4)
	if s.Len() != 3 || c.Len() != 4 {
		t.Errorf("Len = %d, clone Len = %d; want 3, 4", s.Len(), c.Len())
	}
	var got []int
	for s.Len() > 0 {
		v, _ := s.Pop()
		got = append(got, v)
	}
	if want := []int{3, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("popped %v, want %v", got, want)
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack succeeded")
	}
	if _, ok := s.Peek(); ok {
		t.Error("Peek on empty stack succeeded")
	}
	if want := []int{1, 2, 3, 4}; !slices.Equal(c.Slice(), want) {
		t.Errorf("clone = %v, want %v", c.Slice(), want)
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	if v, ok := q.Pop(); !ok || v != 1 {
		t.Errorf("Pop = %v, %v; want 1, true", v, ok)
	}
	if want := []int{2, 3}; !slices.Equal(q.Slice(), want) {
		t.Errorf("Slice = %v, want %v", q.Slice(), want)
	}
	q.Pop()
	q.Pop()
	if _, ok := q.Pop(); ok || q.Len() != 0 {
		t.Error("Pop on empty queue succeeded")
	}
}

func TestPQ(t *testing.T) {
	tests := []struct {
		name string
		pq   *PQ[string]
		want []int
	}{
		{"min", MinQueue[string](), []int{1, 2, 5, 9}},
		{"max", MaxQueue[string](), []int{9, 5, 2, 1}},
	}
	for _, tt := range tests {
		for _, p := range []int{5, 1, 9, 2} {
			tt.pq.Push(&PQI[string]{V: "x", P: p})
		}
		if got := tt.pq.Peek().P; got != tt.want[0] {
			t.Errorf("%s: Peek = %d, want %d", tt.name, got, tt.want[0])
		}
		var got []int
		for tt.pq.Len() > 0 {
			got = append(got, tt.pq.Pop().P)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("%s: popped %v, want %v", tt.name, got, tt.want)
		}
	}
}
