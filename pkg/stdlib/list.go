package stdlib

import (
	"src.pgsn.dev/pkg/term"
)

func asList(t term.Term) *term.List { return t.(*term.List) }

func nonEmptyList(args []term.Term) bool {
	l, ok := args[0].(*term.List)
	return ok && l.Len() > 0
}

func (lib *Lib) addLists() {
	lib.Empty = lib.add("list.empty", nb.List())

	lib.Cons = lib.addBuiltin(term.Declare("list.cons", 2,
		func(args []term.Term) bool {
			_, ok := args[1].(*term.List)
			return ok
		},
		func(args []term.Term) term.Term { return asList(args[1]).Prepend(args[0]) }))

	lib.Head = lib.addBuiltin(term.Declare("list.head", 1, nonEmptyList,
		func(args []term.Term) term.Term { return asList(args[0]).Elem(0) }))

	lib.Tail = lib.addBuiltin(term.Declare("list.tail", 1, nonEmptyList,
		func(args []term.Term) term.Term {
			l := asList(args[0])
			return l.Slice(1, l.Len())
		}))

	lib.Index = lib.addBuiltin(term.Declare("list.index", 2,
		func(args []term.Term) bool {
			l, ok := args[0].(*term.List)
			return ok && l.Applicable(args[1:])
		},
		func(args []term.Term) term.Term { return asList(args[0]).Apply(args[1:]) }))

	lib.IsEmpty = lib.addBuiltin(term.Declare("list.is_empty", 1, isAll[*term.List],
		func(args []term.Term) term.Term { return lb.Bool(asList(args[0]).Len() == 0) }))

	lib.Length = lib.addBuiltin(term.Declare("list.length", 1, isAll[*term.List],
		func(args []term.Term) term.Term { return lb.Int(asList(args[0]).Len()) }))

	lib.addFold()
}

// addFold adds the members defined in terms of the right fold.
func (lib *Lib) addFold() {
	fold, f, init, l := term.V("fold"), term.V("f"), term.V("init"), term.V("l")
	lib.Fold = lib.add("list.fold", term.App(lib.Fix, term.Lam(
		term.Apply(lib.IfThenElse,
			term.App(lib.IsEmpty, l),
			init,
			term.Apply(f,
				term.App(lib.Head, l),
				term.Apply(fold, f, init, term.App(lib.Tail, l)))),
		fold, f, init, l)))

	x, acc := term.V("x"), term.V("acc")
	lib.Map = lib.add("list.map", term.Lam(
		term.Apply(lib.Fold,
			term.Lam(term.Apply(lib.Cons, term.App(f, x), acc), x, acc),
			lib.Empty,
			l),
		f, l))

	lib.IntegerSum = lib.add("list.integer_sum",
		term.Lam(term.Apply(lib.Fold, lib.Plus, nb.Int(0), l), l))
}
