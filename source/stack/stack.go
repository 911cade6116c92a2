package stack

import (
	"github.com/rabbitsfoot/rabbitsfoot/source/values"

	"src.elv.sh/pkg/persistent/vector"
)

// Stack is the value stack of a session. It is backed by a persistent vector, so taking a
// Snapshot for the trace costs nothing and can't be disturbed by later pushes and pops.
type Stack struct {
	vals vector.Vector
}

func NewStack() *Stack { return &Stack{vals: vector.Empty} }

func (s *Stack) Push(val values.Value) {
	s.vals = s.vals.Conj(val)
}

func (s *Stack) Pop() (values.Value, bool) {
	top, ok := s.HeadValue()
	if !ok {
		return top, false
	}
	s.vals = s.vals.Pop()
	return top, true
}

func (s *Stack) HeadValue() (values.Value, bool) {
	if s.vals.Len() == 0 {
		return values.Value{}, false
	}
	top, _ := s.vals.Index(s.vals.Len() - 1)
	return top.(values.Value), true
}

func (s *Stack) Len() int {
	return s.vals.Len()
}

func (s *Stack) IsEmpty() bool {
	return s.vals.Len() == 0
}

// Snapshot is an immutable view of the stack at some moment, bottom first.
type Snapshot struct {
	vals vector.Vector
}

func (s *Stack) Snapshot() Snapshot {
	return Snapshot{vals: s.vals}
}

func (S Snapshot) Len() int {
	return S.vals.Len()
}

func (S Snapshot) Values() []values.Value {
	result := make([]values.Value, 0, S.vals.Len())
	for it := S.vals.Iterator(); it.HasElem(); it.Next() {
		result = append(result, it.Elem().(values.Value))
	}
	return result
}

// String shows the snapshot bottom first, so that the top of the stack is on the right.
func (S Snapshot) String() string {
	return values.Describe(S.Values())
}
