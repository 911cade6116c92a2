package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rabbitsfoot/rabbitsfoot/source/values"
)

func TestParseArray(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"[1, 2, 3]", "[1, 2, 3]"},
		{"1 2 3", "[1, 2, 3]"},
		{"  [ -4,5 ,6 ]  ", "[-4, 5, 6]"},
		{"[]", "[]"},
		{"", "[]"},
		{"[[7]]", "[7]"},
	}
	for _, test := range tests {
		got, e := ParseArray(test.input)
		if e != nil {
			t.Fatalf("Unexpected error parsing %q: %s", test.input, e.Error())
		}
		if values.IntsLiteral(got) != test.want {
			t.Fatalf("Parsing %q: wanted %s, got %s", test.input, test.want, values.IntsLiteral(got))
		}
	}
}

func TestParseArrayRejectsNonIntegers(t *testing.T) {
	_, e := ParseArray("[1, two, 3]")
	if e == nil || e.ErrorId != "io/input/int" {
		t.Fatalf("Wanted io/input/int error")
	}
}

func TestReadArray(t *testing.T) {
	got, e := ReadArray(strings.NewReader("[3, 1, 4]\nignored\n"))
	if e != nil {
		t.Fatalf("Unexpected error: %s", e.Error())
	}
	if values.IntsLiteral(got) != "[3, 1, 4]" {
		t.Fatalf("Wanted [3, 1, 4], got %s", values.IntsLiteral(got))
	}
	got, e = ReadArray(strings.NewReader("5 9"))
	if e != nil || values.IntsLiteral(got) != "[5, 9]" {
		t.Fatalf("Wanted [5, 9] from a line without a newline")
	}
	if _, e = ReadArray(strings.NewReader("")); e == nil || e.ErrorId != "io/input/read" {
		t.Fatalf("Wanted io/input/read error on empty input")
	}
}

func TestWriteArray(t *testing.T) {
	var out bytes.Buffer
	if e := WriteArray(&out, []int{1, -2, 3}); e != nil {
		t.Fatalf("Unexpected error: %s", e.Error())
	}
	if out.String() != "[1, -2, 3]\n" {
		t.Fatalf("Wanted %q, got %q", "[1, -2, 3]\n", out.String())
	}
}
