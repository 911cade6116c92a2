package vm

import (
	"math"
	"slices"

	"github.com/JohnCGriffin/overflow"

	"github.com/rabbitsfoot/rabbitsfoot/source/err"
	"github.com/rabbitsfoot/rabbitsfoot/source/values"
)

// The instruction for each opcode. The vm handles nop and halt itself, since they
// affect the flow of the pass rather than the state.
var INSTRUCTIONS = [...]func(vm *Vm, op *operation) *err.Error{
	nop:  nil,
	illg: (*Vm).illegal,
	selw: (*Vm).selectWindow,
	addv: (*Vm).add,
	mulv: (*Vm).multiply,
	fact: (*Vm).factorial,
	mnmx: (*Vm).minus,
	cach: (*Vm).saveOrLoad,
	flip: (*Vm).flip,
	zero: (*Vm).zero,
	pack: (*Vm).pack,
	brch: (*Vm).branch,
	eval: (*Vm).eval,
	divw: (*Vm).divide,
	rndm: (*Vm).randomize,
	lstc: (*Vm).listLiteral,
	incr: (*Vm).increment,
	halt: nil,
}

func (vm *Vm) illegal(op *operation) *err.Error {
	if e, ok := vm.prog.Faults[op.tok.Line]; ok {
		return e
	}
	return err.CreateErr("lex/line", op.tok)
}

func (vm *Vm) selectWindow(op *operation) *err.Error {
	result := make([]int, len(vm.combination))
	for i, pos := range vm.combination {
		result[i] = vm.Data[pos]
	}
	vm.push(values.List(result))
	return nil
}

func (vm *Vm) add(op *operation) *err.Error {
	return vm.arithmetic(op, overflow.Add, "vm/add")
}

func (vm *Vm) multiply(op *operation) *err.Error {
	return vm.arithmetic(op, overflow.Mul, "vm/mul")
}

// Integers combine with integers and lists with lists, elementwise.
func (vm *Vm) arithmetic(op *operation, fn func(a, b int) (int, bool), errPrefix string) *err.Error {
	top, e := vm.pop(op)
	if e != nil {
		return e
	}
	second, e := vm.pop(op)
	if e != nil {
		return e
	}
	switch {
	case top.T == values.INT && second.T == values.INT:
		result, ok := fn(top.Int(), second.Int())
		if !ok {
			return err.CreateErr(errPrefix+"/overflow", op.tok, top.Int(), second.Int())
		}
		vm.push(values.Int(result))
	case top.T == values.INT_LIST && second.T == values.INT_LIST:
		a, b := top.List(), second.List()
		if len(a) != len(b) {
			return err.CreateErr(errPrefix+"/shape", op.tok, len(a), len(b))
		}
		result := make([]int, len(a))
		for i := range a {
			var ok bool
			if result[i], ok = fn(a[i], b[i]); !ok {
				return err.CreateErr(errPrefix+"/overflow", op.tok, a[i], b[i])
			}
		}
		vm.push(values.List(result))
	default:
		return err.CreateErr(errPrefix+"/type", op.tok)
	}
	return nil
}

func (vm *Vm) factorial(op *operation) *err.Error {
	top, e := vm.pop(op)
	if e != nil {
		return e
	}
	if top.T != values.INT {
		return err.CreateErr("vm/factorial/type", op.tok)
	}
	n := top.Int()
	if n < 0 {
		return err.CreateErr("vm/factorial/negative", op.tok, n)
	}
	result := 1
	for i := 2; i <= n; i++ {
		var ok bool
		if result, ok = overflow.Mul(result, i); !ok {
			return err.CreateErr("vm/factorial/overflow", op.tok, n)
		}
	}
	vm.push(values.Int(result))
	return nil
}

// On a list, '-' gives the sign of each element. On two integers it was meant to push
// their maximum and then their negated minimum, but the second half was never made to
// work, so it fails once the operands have been checked.
func (vm *Vm) minus(op *operation) *err.Error {
	top, e := vm.pop(op)
	if e != nil {
		return e
	}
	switch top.T {
	case values.INT:
		second, e := vm.pop(op)
		if e != nil {
			return e
		}
		if second.T != values.INT {
			return err.CreateErr("vm/minus/type", op.tok)
		}
		return err.CreateErr("vm/minus/unsupported", op.tok, top.Int(), second.Int())
	case values.INT_LIST:
		L := top.List()
		result := make([]int, len(L))
		for i, x := range L {
			result[i] = sign(x)
		}
		vm.push(values.List(result))
	}
	return nil
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// The first '|' to be executed saves the top of the stack without popping it. Every one
// after that replaces the top of the stack with the saved value.
func (vm *Vm) saveOrLoad(op *operation) *err.Error {
	if vm.cache == nil {
		top, ok := vm.stack.HeadValue()
		if !ok {
			return err.CreateErr("vm/stack/empty", op.tok)
		}
		vm.cache = &top
		vm.tracker.cacheSet(top)
		return nil
	}
	if _, e := vm.pop(op); e != nil {
		return e
	}
	vm.push(*vm.cache)
	return nil
}

// Pops one list per position in the window, transposes them as the rows of a matrix,
// and pushes the columns back in reverse order, so that the first column ends up on top.
func (vm *Vm) flip(op *operation) *err.Error {
	rows := make([][]int, 0, vm.window)
	for range vm.window {
		row, e := vm.pop(op)
		if e != nil {
			return e
		}
		if row.T != values.INT_LIST {
			return err.CreateErr("vm/flip/type", op.tok)
		}
		rows = append(rows, row.List())
	}
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return err.CreateErr("vm/flip/shape", op.tok)
		}
	}
	for j := width - 1; j >= 0; j-- {
		col := make([]int, len(rows))
		for i, row := range rows {
			col[i] = row[j]
		}
		vm.push(values.List(col))
	}
	return nil
}

func (vm *Vm) zero(op *operation) *err.Error {
	if !slices.ContainsFunc(vm.combination, func(pos int) bool { return pos != 0 }) {
		return err.CreateErr("vm/zero/origin", op.tok)
	}
	if len(vm.Data) == 0 && vm.window == 0 {
		return err.CreateErr("vm/zero/empty", op.tok)
	}
	vm.push(values.Int(0))
	return nil
}

// Empties the stack into a list, the former top of the stack first.
func (vm *Vm) pack(op *operation) *err.Error {
	ints := []int{}
	for !vm.stack.IsEmpty() {
		v, _ := vm.stack.Pop()
		if v.T != values.INT {
			return err.CreateErr("vm/pack/type", op.tok)
		}
		ints = append(ints, v.Int())
	}
	if len(ints) != vm.window {
		return err.CreateErr("vm/pack/count", op.tok, len(ints), vm.window)
	}
	vm.push(values.List(ints))
	return nil
}

// The '!' lines should delimit a conditional jump. Only the check that they pair up and
// the case of a list on top of the stack, where nothing happens, were ever defined.
func (vm *Vm) branch(op *operation) *err.Error {
	if vm.prog.OddBangs {
		return err.CreateErr("vm/branch/parity", op.tok)
	}
	top, ok := vm.stack.HeadValue()
	if !ok {
		return err.CreateErr("vm/stack/empty", op.tok)
	}
	if top.T == values.INT {
		return err.CreateErr("vm/branch/unsupported", op.tok)
	}
	return nil
}

// Nothing ever puts program text on the stack, so there is nothing '^' can evaluate.
func (vm *Vm) eval(op *operation) *err.Error {
	if _, e := vm.pop(op); e != nil {
		return e
	}
	return err.CreateErr("vm/eval/unsupported", op.tok)
}

func (vm *Vm) divide(op *operation) *err.Error {
	top, e := vm.pop(op)
	if e != nil {
		return e
	}
	if top.T != values.INT_LIST {
		return err.CreateErr("vm/divide/type", op.tok)
	}
	L := top.List()
	result := make([]int, len(L))
	for i, x := range L {
		result[i] = floorDiv(x, vm.window)
	}
	vm.push(values.List(result))
	return nil
}

// Division rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (vm *Vm) randomize(op *operation) *err.Error {
	top, e := vm.pop(op)
	if e != nil {
		return e
	}
	switch top.T {
	case values.INT:
		n := top.Int()
		if n < 0 {
			return err.CreateErr("vm/random/negative", op.tok)
		}
		if n == math.MaxInt {
			vm.push(values.Int(vm.random.Int()))
			return nil
		}
		vm.push(values.Int(vm.random.IntN(n + 1)))
	case values.INT_LIST:
		L := slices.Clone(top.List())
		vm.random.Shuffle(len(L), func(i, j int) { L[i], L[j] = L[j], L[i] })
		vm.push(values.List(L))
	}
	return nil
}

func (vm *Vm) listLiteral(op *operation) *err.Error {
	if len(op.tok.Ints) != vm.window {
		return err.CreateErr("vm/list/count", op.tok, len(op.tok.Ints), vm.window)
	}
	vm.push(values.List(op.tok.Ints))
	return nil
}

// Increments the array at each listed position. This doesn't touch the stack.
func (vm *Vm) increment(op *operation) *err.Error {
	for _, pos := range op.tok.Ints {
		if pos >= len(vm.Data) {
			return err.CreateErr("vm/increment/range", op.tok, pos, len(vm.Data))
		}
		incremented, ok := overflow.Add(vm.Data[pos], 1)
		if !ok {
			return err.CreateErr("vm/increment/overflow", op.tok, pos)
		}
		vm.Data[pos] = incremented
	}
	return nil
}
