package vm

import (
	"strconv"

	"github.com/rabbitsfoot/rabbitsfoot/source/token"
)

func makeOp(oc opcode, tok *token.Token) *operation {
	return &operation{opcode: oc, tok: tok}
}

type operation struct {
	opcode opcode
	tok    *token.Token // The line the operation was made from, which also carries any literal's integers.
}

type opcode uint8

const (
	nop opcode = iota
	illg

	selw // ,
	addv // +
	mulv // *
	fact // ?
	mnmx // -
	cach // |
	flip // ~
	zero // 0
	pack // $
	brch // !
	eval // ^
	divw // /
	rndm // %
	lstc // [...]
	incr // <...>
	halt // .
)

var OPCODES = map[token.TokenType]opcode{
	token.NOP:       nop,
	token.ILLEGAL:   illg,
	token.SELECT:    selw,
	token.ADD:       addv,
	token.MUL:       mulv,
	token.FACTORIAL: fact,
	token.MINUS:     mnmx,
	token.CACHE:     cach,
	token.FLIP:      flip,
	token.ZERO:      zero,
	token.PACK:      pack,
	token.BRANCH:    brch,
	token.EVAL:      eval,
	token.DIVIDE:    divw,
	token.RANDOM:    rndm,
	token.LIST:      lstc,
	token.INCREMENT: incr,
	token.HALT:      halt,
}

var opNames = [...]string{
	nop:  "nop ",
	illg: "illg",
	selw: "selw",
	addv: "addv",
	mulv: "mulv",
	fact: "fact",
	mnmx: "mnmx",
	cach: "cach",
	flip: "flip",
	zero: "zero",
	pack: "pack",
	brch: "brch",
	eval: "eval",
	divw: "divw",
	rndm: "rndm",
	lstc: "lstc",
	incr: "incr",
	halt: "halt",
}

func describe(op *operation) string {
	result := "@" + strconv.Itoa(op.tok.Line) + " " + opNames[op.opcode]
	switch op.opcode {
	case lstc, incr:
		for _, i := range op.tok.Ints {
			result = result + " " + strconv.Itoa(i)
		}
	case illg:
		result = result + " " + op.tok.Problem
	}
	return result
}
