package stack

import (
	"testing"

	"github.com/rabbitsfoot/rabbitsfoot/source/values"
)

func TestPushPop(t *testing.T) {
	s := NewStack()
	if _, ok := s.Pop(); ok {
		t.Fatalf("Pop on an empty stack should fail")
	}
	s.Push(values.Int(1))
	s.Push(values.List([]int{2, 3}))
	if s.Len() != 2 {
		t.Fatalf("Wanted length 2, got %d", s.Len())
	}
	top, ok := s.HeadValue()
	if !ok || top.Literal() != "[2, 3]" {
		t.Fatalf("Wanted head [2, 3], got %s", top.Literal())
	}
	top, _ = s.Pop()
	if top.Literal() != "[2, 3]" {
		t.Fatalf("Wanted to pop [2, 3], got %s", top.Literal())
	}
	top, _ = s.Pop()
	if top.Literal() != "1" {
		t.Fatalf("Wanted to pop 1, got %s", top.Literal())
	}
	if !s.IsEmpty() {
		t.Fatalf("Stack should be empty")
	}
}

func TestSnapshotIsUnaffectedByLaterChanges(t *testing.T) {
	s := NewStack()
	s.Push(values.Int(1))
	s.Push(values.Int(2))
	snap := s.Snapshot()
	s.Pop()
	s.Push(values.List([]int{7}))
	if got := snap.String(); got != "[1, 2]" {
		t.Fatalf("Wanted snapshot [1, 2], got %s", got)
	}
	if got := s.Snapshot().String(); got != "[1, [7]]" {
		t.Fatalf("Wanted stack [1, [7]], got %s", got)
	}
}
