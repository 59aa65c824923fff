package stdlib

import (
	"src.pgsn.dev/pkg/term"
)

func boolValue(t term.Term) bool { return t.(*term.Bool).Value() }

func boolOp(name string, f func(a, b bool) bool) *term.BuiltinFunc {
	return term.Declare(name, 2, isAll[*term.Bool], func(args []term.Term) term.Term {
		return lb.Bool(f(boolValue(args[0]), boolValue(args[1])))
	})
}

func (lib *Lib) addBooleans() {
	lib.True = lib.add("bool.true", nb.Bool(true))
	lib.False = lib.add("bool.false", nb.Bool(false))

	lib.Not = lib.addBuiltin(term.Declare("bool.not", 1, isAll[*term.Bool],
		func(args []term.Term) term.Term { return lb.Bool(!boolValue(args[0])) }))
	lib.And = lib.addBuiltin(boolOp("bool.and", func(a, b bool) bool { return a && b }))
	lib.Or = lib.addBuiltin(boolOp("bool.or", func(a, b bool) bool { return a || b }))
	lib.Xor = lib.addBuiltin(boolOp("bool.xor", func(a, b bool) bool { return a != b }))

	// The branches are not looked at, so they stay unevaluated until chosen.
	lib.IfThenElse = lib.addBuiltin(term.Declare("if_then_else", 3,
		func(args []term.Term) bool {
			_, ok := args[0].(*term.Bool)
			return ok
		},
		func(args []term.Term) term.Term {
			if boolValue(args[0]) {
				return args[1]
			}
			return args[2]
		}))

	lib.Guard = lib.addBuiltin(term.Declare("guard", 2,
		func(args []term.Term) bool {
			b, ok := args[0].(*term.Bool)
			return ok && b.Value()
		},
		func(args []term.Term) term.Term { return args[1] }))

	lib.Equal = lib.addBuiltin(term.Declare("equal", 2,
		func(args []term.Term) bool {
			return isData(args[0]) && isData(args[1])
		},
		func(args []term.Term) term.Term { return lb.Bool(args[0].Equal(args[1])) }))
}

// isData reports whether t is built only from literals, builtins, lists and
// records. Equality of other terms can change as they reduce.
func isData(t term.Term) bool {
	switch t := t.(type) {
	case *term.Abstraction, *term.Application, *term.Variable:
		return false
	case *term.Builtin:
		for _, arg := range t.Bound() {
			if !isData(arg) {
				return false
			}
		}
		return true
	case *term.List:
		for _, elem := range t.Elems() {
			if !isData(elem) {
				return false
			}
		}
		return true
	case *term.Record:
		for _, v := range t.Attrs() {
			if !isData(v) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
