package vm

import (
	"math/rand/v2"

	"github.com/rabbitsfoot/rabbitsfoot/source/err"
	"github.com/rabbitsfoot/rabbitsfoot/source/lexer"
	"github.com/rabbitsfoot/rabbitsfoot/source/settings"
	"github.com/rabbitsfoot/rabbitsfoot/source/stack"
	"github.com/rabbitsfoot/rabbitsfoot/source/token"
	"github.com/rabbitsfoot/rabbitsfoot/source/values"
)

// A Vm is a session: the stack and the cache persist across every pass through the
// program, and are never reset between one combination of positions and the next.
type Vm struct {
	prog   *lexer.Program
	code   []*operation
	Data   []int
	window int

	stack *stack.Stack
	cache *values.Value // Nil until '|' first sets it.

	combination []int // The positions the current pass is working on.
	random      *rand.Rand
	tracker     *tracker
}

// Run makes one pass through the program for every combination of positions, writing
// the result of each pass back into the array.
func (vm *Vm) Run() *err.Error {
	vm.tracker.window(vm.window, len(vm.Data))
	combos := newCombinations(len(vm.Data), vm.window)
	for combos.Next() {
		vm.combination = combos.Current()
		vm.tracker.combination(vm.combination)
		if e := vm.runPass(); e != nil {
			return e
		}
		if e := vm.writeBack(); e != nil {
			return e
		}
		vm.tracker.afterPass(vm.cache, vm.Data)
	}
	vm.tracker.done()
	return nil
}

func (vm *Vm) runPass() *err.Error {
	for _, op := range vm.code {
		if settings.SHOW_RUNTIME {
			println(describe(op))
		}
		vm.tracker.line(op.tok)
		switch op.opcode {
		case halt:
			return nil
		case nop:
			continue
		}
		if e := INSTRUCTIONS[op.opcode](vm, op); e != nil {
			return e
		}
		vm.tracker.stack(vm.stack)
	}
	return err.CreateErr("vm/halt", &token.Token{Type: token.EOF, Source: vm.prog.Source})
}

func (vm *Vm) writeBack() *err.Error {
	result, ok := vm.stack.Pop()
	if !ok {
		return err.CreateErr("vm/stack/empty", nil)
	}
	if result.T != values.INT_LIST {
		return err.CreateErr("vm/result/type", nil, result.Literal())
	}
	newValues := result.List()
	if len(newValues) != vm.window {
		return err.CreateErr("vm/result/shape", nil, len(newValues), vm.window)
	}
	vm.tracker.replace(vm.combination, newValues)
	for i, pos := range vm.combination {
		vm.Data[pos] = newValues[i]
	}
	return nil
}

func (vm *Vm) pop(op *operation) (values.Value, *err.Error) {
	v, ok := vm.stack.Pop()
	if !ok {
		return v, err.CreateErr("vm/stack/empty", op.tok)
	}
	return v, nil
}

func (vm *Vm) push(v values.Value) {
	vm.stack.Push(v)
}

// Stack returns the contents of the stack, bottom first.
func (vm *Vm) Stack() []values.Value {
	return vm.stack.Snapshot().Values()
}

// Cache returns the cached value, and false if nothing has been cached.
func (vm *Vm) Cache() (values.Value, bool) {
	if vm.cache == nil {
		return values.Value{}, false
	}
	return *vm.cache, true
}
