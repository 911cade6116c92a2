package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rabbitsfoot/rabbitsfoot/source/lexer"
	"github.com/rabbitsfoot/rabbitsfoot/source/test_helper"
	"github.com/rabbitsfoot/rabbitsfoot/source/vm"
)

func TestIdentity(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `,.`, Data: `[5]`, Want: `[5]`},
		{Input: "\n,.", Data: `[5]`, Want: `[5]`},
		{Input: `,.`, Data: `[1, 2, 3]`, Want: `[1, 2, 3]`},
		{Input: `,~.`, Data: `[1, 2]`, Want: `[1, 2]`},
		{Input: ",\n%\n.", Data: `[1, 2, 3]`, Want: `[1, 2, 3]`},
		{Input: "[1]\n.", Data: `[1]`, Want: `[1]`},
	}
	test_helper.RunTest(t, tests, test_helper.TestValues)
}

func TestArithmetic(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: "[2 2 2]\n,\n+\n.", Data: `[1, 1, 1]`, Want: `[39, 39, 39]`},
		{Input: `,,+.`, Data: `[2, 3]`, Want: `[4, 6]`},
		{Input: `,,*.`, Data: `[2, 3]`, Want: `[4, 9]`},
		{Input: ",\n-\n.", Data: `[3, 0, -2]`, Want: `[1, 0, -1]`},
		{Input: "[0 0]\n,\n+\n/\n.", Data: `[4, 7]`, Want: `[0, 0]`},
		{Input: ",," + strings.Repeat("*,", 62) + "*.", Data: `[2]`, Want: `vm/mul/overflow`},
	}
	test_helper.RunTest(t, tests, test_helper.TestValues)
}

func TestWriteBack(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: "[1 2]\n.", Data: `[1]`, Want: `[2]`},
		{Input: "[1 2 3]\n.", Data: `[0, 0]`, Want: `[3, 3]`},
		{Input: "[]\n.", Data: `[1, 2]`, Want: `[1, 2]`},
		{Input: "[5]\n.", Data: `[]`, Want: `[]`},
		{Input: `,`, Data: `[]`, Want: `[]`},
	}
	test_helper.RunTest(t, tests, test_helper.TestValues)
}

func TestPersistence(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: ",|\n.", Data: `[1, 2]`, Want: `[1, 1]`},
		{Input: "<0>\n,.", Data: `[0, 0]`, Want: `[2, 0]`},
	}
	test_helper.RunTest(t, tests, test_helper.TestValues)
	stackTests := []test_helper.TestItem{
		{Input: ",\n,\n.", Data: `[1, 2]`, Want: `[[1], [2]]`},
		{Input: ",\n.", Data: `[1, 2]`, Want: `[]`},
	}
	test_helper.RunTest(t, stackTests, test_helper.TestStack)
}

func TestMacros(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: "#,\n=.", Data: `[7]`, Want: `[7]`},
		{Input: ",\n@.", Data: `[7]`, Want: `[7]`},
		{Input: "REM <0>\n=,.", Data: `[1, 1]`, Want: `[3, 1]`},
	}
	test_helper.RunTest(t, tests, test_helper.TestValues)
}

func TestBranches(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: ",\n!\n.", Data: `[1]`, Want: `vm/branch/parity`},
		{Input: ",\n!\n!\n.", Data: `[4]`, Want: `[4]`},
	}
	test_helper.RunTest(t, tests, test_helper.TestValues)
}

func TestErrors(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `,`, Data: `[1]`, Want: `vm/halt`},
		{Input: ``, Data: `[1]`, Want: `vm/halt`},
		{Input: ",\n.\nfoo", Data: `[1]`, Want: `[1]`},
		{Input: "foo\n,.", Data: `[1]`, Want: `lex/line`},
		{Input: "[1 x]\n.", Data: `[1]`, Want: `lex/list/int`},
		{Input: "[]\n0\n.", Data: `[1]`, Want: `vm/zero/origin`},
		{Input: "0\n,.", Data: `[1, 2]`, Want: `vm/zero/origin`},
		{Input: `,?.`, Data: `[1]`, Want: `vm/factorial/type`},
		{Input: ",\n$\n.", Data: `[1]`, Want: `vm/pack/type`},
		{Input: ",\n^\n.", Data: `[1]`, Want: `vm/eval/unsupported`},
		{Input: `,^.`, Data: `[1]`, Want: `lex/line`},
		{Input: `+.`, Data: `[1]`, Want: `vm/stack/empty`},
		{Input: `.`, Data: `[1]`, Want: `vm/stack/empty`},
		{Input: "[1 2]\n[3]\n.", Data: `[0]`, Want: `vm/list/count`},
		{Input: "<5>\n,.", Data: `[1]`, Want: `vm/increment/range`},
		{Input: "<-1>\n,.", Data: `[1]`, Want: `lex/increment/neg`},
		{Input: "a@\n,.", Data: `[1]`, Want: `lex/at/first`},
		{Input: "=\n#,", Data: `[1]`, Want: `lex/comment/eq`},
		{Input: `,.`, Data: `[1, x]`, Want: `io/input/int`},
	}
	test_helper.RunTest(t, tests, test_helper.TestValues)
}

func TestTrace(t *testing.T) {
	prog, e := lexer.Lex("test", ",|\n.")
	if e != nil {
		t.Fatalf("Unexpected error: %s", e.Error())
	}
	var trace bytes.Buffer
	machine := vm.Make(prog, []int{1, 2}, vm.Config{Random: vm.NewSeededRandom(test_helper.SEED), Trace: &trace})
	if e := machine.Run(); e != nil {
		t.Fatalf("Unexpected error: %s", e.Error())
	}
	for _, want := range []string{"Inferred window size", "Running line: ,", "cache set to [1]",
		"stack = [[1]] <-TOS", "Replacing values", "Program terminated successfully."} {
		if !strings.Contains(trace.String(), want) {
			t.Fatalf("Wanted the trace to contain %q, got:\n%s", want, trace.String())
		}
	}
}

func TestNoTraceByDefault(t *testing.T) {
	machine, e := test_helper.MakeVm(",.", "[1]")
	if e != nil {
		t.Fatalf("Unexpected error: %s", e.Error())
	}
	if e := machine.Run(); e != nil {
		t.Fatalf("Unexpected error: %s", e.Error())
	}
}
