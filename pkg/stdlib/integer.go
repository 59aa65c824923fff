package stdlib

import (
	"src.pgsn.dev/pkg/term"
)

func intValue(t term.Term) int { return t.(*term.Int).Value() }

func intOp(name string, f func(a, b int) term.Term) *term.BuiltinFunc {
	return term.Declare(name, 2, isAll[*term.Int], func(args []term.Term) term.Term {
		return f(intValue(args[0]), intValue(args[1]))
	})
}

func (lib *Lib) addIntegers() {
	lib.Plus = lib.addBuiltin(intOp("int.plus",
		func(a, b int) term.Term { return lb.Int(a + b) }))
	lib.Minus = lib.addBuiltin(intOp("int.minus",
		func(a, b int) term.Term { return lb.Int(a - b) }))
	lib.Times = lib.addBuiltin(intOp("int.times",
		func(a, b int) term.Term { return lb.Int(a * b) }))
	lib.Less = lib.addBuiltin(intOp("int.less",
		func(a, b int) term.Term { return lb.Bool(a < b) }))
}

func (lib *Lib) addStrings() {
	lib.Concat = lib.addBuiltin(term.Declare("string.concat", 2, isAll[*term.String],
		func(args []term.Term) term.Term {
			return lb.Str(args[0].(*term.String).Value() + args[1].(*term.String).Value())
		}))
}
