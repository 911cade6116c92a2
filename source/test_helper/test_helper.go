package test_helper

import (
	"testing"

	"github.com/rabbitsfoot/rabbitsfoot/source/err"
	"github.com/rabbitsfoot/rabbitsfoot/source/lexer"
	"github.com/rabbitsfoot/rabbitsfoot/source/repl"
	"github.com/rabbitsfoot/rabbitsfoot/source/settings"
	"github.com/rabbitsfoot/rabbitsfoot/source/text"
	"github.com/rabbitsfoot/rabbitsfoot/source/values"
	"github.com/rabbitsfoot/rabbitsfoot/source/vm"
)

// Auxiliary types and functions for testing the lexer and vm.

// A TestItem is a program, the array it runs on, and what we want: either the final array, or
// the identifier of the error the run should fail with.
type TestItem struct {
	Input string
	Data  string
	Want  string
}

const SEED = 42

func RunTest(t *testing.T, tests []TestItem, F func(program, data string) (string, error)) {
	t.Helper()
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(text.ExplainWhitespace(test.Input)))
		}
		got, e := F(test.Input, test.Data)
		if e != nil && settings.SHOW_TESTS {
			println(text.Red(e.Error()))
		}
		if !(test.Want == got) {
			t.Fatalf(`Test failed with input %q on %s | Wanted : %s | Got : %s.`, test.Input, test.Data, test.Want, got)
		}
	}
}

// TestValues runs the program and returns the final array, or the identifier of the error.
func TestValues(program, data string) (string, error) {
	machine, e := MakeVm(program, data)
	if e != nil {
		return e.ErrorId, e
	}
	if e := machine.Run(); e != nil {
		return e.ErrorId, e
	}
	return values.IntsLiteral(machine.Data), nil
}

// TestStack runs the program and returns what is left on the stack, bottom first.
func TestStack(program, data string) (string, error) {
	machine, e := MakeVm(program, data)
	if e != nil {
		return e.ErrorId, e
	}
	if e := machine.Run(); e != nil {
		return e.ErrorId, e
	}
	return values.Describe(machine.Stack()), nil
}

func MakeVm(program, data string) (*vm.Vm, *err.Error) {
	prog, e := lexer.Lex("test", program)
	if e != nil {
		return nil, e
	}
	ints, e := repl.ParseArray(data)
	if e != nil {
		return nil, e
	}
	return vm.Make(prog, ints, vm.Config{Random: vm.NewSeededRandom(SEED)}), nil
}
