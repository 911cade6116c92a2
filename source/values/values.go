package values

import (
	"strconv"
	"strings"
)

type ValueType uint32

const (
	UNDEFINED_VALUE ValueType = iota // For debugging purposes, it is useful to have the zero value something it should never actually be.
	INT                              // V is an int.
	INT_LIST                         // V is a []int, which is never mutated once the value exists.
)

var typeNames = []string{"undefined", "integer", "integer list"}

func (t ValueType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown type " + strconv.Itoa(int(t))
}

type Value struct {
	T ValueType
	V any
}

func Int(i int) Value {
	return Value{INT, i}
}

// List wraps a slice as a value. The caller gives up the right to modify the slice.
func List(L []int) Value {
	return Value{INT_LIST, L}
}

func (v Value) Int() int {
	return v.V.(int)
}

func (v Value) List() []int {
	return v.V.([]int)
}

// Literal renders a value the way it is written in trace output and in the final
// result: integers as themselves, lists as [a, b, c].
func (v Value) Literal() string {
	switch v.T {
	case INT:
		return strconv.Itoa(v.V.(int))
	case INT_LIST:
		return IntsLiteral(v.V.([]int))
	}
	return "<" + v.T.String() + ">"
}

func IntsLiteral(L []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range L {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(x))
	}
	b.WriteByte(']')
	return b.String()
}

func Describe(vL []Value) string {
	result := ""
	sep := ""
	for _, v := range vL {
		result = result + sep + v.Literal()
		sep = ", "
	}
	return "[" + result + "]"
}
