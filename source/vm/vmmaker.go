package vm

import (
	"io"
	"math/rand/v2"

	"github.com/rabbitsfoot/rabbitsfoot/source/lexer"
	"github.com/rabbitsfoot/rabbitsfoot/source/stack"
)

// Config is what a vm needs to know besides the program and the array.
type Config struct {
	Random *rand.Rand // The source for '%'. If nil, a randomly seeded one is made.
	Trace  io.Writer  // Where the trace goes, or nil for no trace.
}

// Just as the lexer turns the lines of the program into tokens, the vmmaker turns the
// tokens into operations and sets up the session that all the passes share.
func Make(prog *lexer.Program, data []int, cfg Config) *Vm {
	vm := &Vm{
		prog:   prog,
		code:   make([]*operation, 0, len(prog.Lines)),
		Data:   data,
		window: prog.WindowSize,
		stack:  stack.NewStack(),
		random: cfg.Random,
	}
	for _, tok := range prog.Lines {
		vm.code = append(vm.code, makeOp(OPCODES[tok.Type], tok))
	}
	if vm.random == nil {
		vm.random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	vm.tracker = newTracker(cfg.Trace)
	return vm
}

// NewSeededRandom gives a random source for '%' which behaves the same on every run.
func NewSeededRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
