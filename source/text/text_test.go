package text

import (
	"testing"

	"github.com/rabbitsfoot/rabbitsfoot/source/token"
)

func TestDescribePos(t *testing.T) {
	tests := []struct {
		tok  *token.Token
		want string
	}{
		{&token.Token{Source: "/tmp/progs/sum.rf", Line: 3}, " at line 3 of 'sum'"},
		{&token.Token{Source: "v1.2/sum", Line: 1}, " at line 1 of 'sum'"},
		{&token.Token{Source: "sum.rf"}, " in 'sum'"},
		{&token.Token{Line: 2}, " at line 2 of program"},
		{nil, ""},
	}
	for _, test := range tests {
		if got := DescribePos(test.tok); got != test.want {
			t.Fatalf("Position of %+v | Wanted : %q | Got : %q.", test.tok, test.want, got)
		}
	}
}

func TestDescribeTok(t *testing.T) {
	tests := []struct {
		tok  *token.Token
		want string
	}{
		{&token.Token{Type: token.ILLEGAL, Literal: "foo"}, "'foo'"},
		{&token.Token{Type: token.NOP}, "empty line"},
		{&token.Token{Type: token.EOF}, "end of program"},
	}
	for _, test := range tests {
		if got := DescribeTok(test.tok); got != test.want {
			t.Fatalf("Description of %+v | Wanted : %q | Got : %q.", test.tok, test.want, got)
		}
	}
}
