package term

import (
	"strconv"

	"github.com/xiaq/persistent/list"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DefaultName is the display name given to a binder without a name hint when
// recovering names.
const DefaultName = "x"

// FreeVariables returns the names of the free variables of a named term.
func FreeVariables(t Term) map[string]struct{} {
	RequireNamed("FreeVariables", t)
	free := make(map[string]struct{})
	collectFree(t, list.Empty, free)
	return free
}

func collectFree(t Term, bound list.List, free map[string]struct{}) {
	switch t := t.(type) {
	case *Variable:
		if _, ok := lookup(bound, t.name); !ok {
			free[t.name] = struct{}{}
		}
	case *Abstraction:
		collectFree(t.body, bound.Cons(t.binder.name), free)
	case *Application:
		collectFree(t.fn, bound, free)
		collectFree(t.arg, bound, free)
	case *List:
		for it := t.elems.Iterator(); it.HasElem(); it.Next() {
			collectFree(it.Elem().(Term), bound, free)
		}
	case *Record:
		for it := t.attrs.Iterator(); it.HasElem(); it.Next() {
			_, v := it.Elem()
			collectFree(v.(Term), bound, free)
		}
	}
}

// NamingContext returns the names in lexicographic order. Position i of the
// result is the name of the free index i when removing names.
func NamingContext(names map[string]struct{}) []string {
	ctx := maps.Keys(names)
	slices.Sort(ctx)
	return ctx
}

// RemoveName converts a named term to a nameless one, using the naming
// context of its free variables.
func RemoveName(t Term) Term {
	return RemoveNameWithContext(t, NamingContext(FreeVariables(t)))
}

// RemoveNameWithContext converts a named term to a nameless one. A free
// variable becomes the index of the first occurrence of its name in ctx,
// offset by the number of enclosing abstractions; it panics with a
// *ContractError if a free variable is missing from ctx.
//
// Binder names and variable names are kept as name hints.
func RemoveNameWithContext(t Term, ctx []string) Term {
	RequireNamed("RemoveName", t)
	return removeName(t, toList(ctx))
}

func removeName(t Term, ctx list.List) Term {
	switch t := t.(type) {
	case *Variable:
		i, ok := lookup(ctx, t.name)
		if !ok {
			violate("RemoveName", t, "variable %s not in naming context", t.name)
		}
		meta := t.meta
		meta.NameHint = t.name
		return &Variable{base{Nameless, meta}, "", i}
	case *Abstraction:
		body := removeName(t.body, ctx.Cons(t.binder.name))
		meta := t.meta
		meta.NameHint = t.binder.name
		return &Abstraction{base{Nameless, meta}, nil, body}
	case *Application:
		return &Application{base{Nameless, t.meta},
			removeName(t.fn, ctx), removeName(t.arg, ctx)}
	case *List:
		return mapElemsToMode(t, Nameless, func(u Term) Term { return removeName(u, ctx) })
	case *Record:
		return mapAttrsToMode(t, Nameless, func(u Term) Term { return removeName(u, ctx) })
	default:
		return withMode(t, Nameless)
	}
}

// RecoverName converts a nameless term to a named one with an empty naming
// context.
func RecoverName(t Term) Term {
	return RecoverNameWithContext(t, nil)
}

// RecoverNameWithContext converts a nameless term to a named one. Free index
// i refers to ctx[i] after accounting for enclosing abstractions.
//
// Each abstraction binds its name hint, or DefaultName if it has none. When
// that name would capture a reference to an outer variable of the same name,
// a numeric suffix is added. A free index beyond ctx becomes a variable named
// after its hint (or DefaultName) followed by an underscore and its index.
// Such names do not survive a round trip through RemoveName.
//
// A builtin with bound arguments becomes an application of the unbound
// builtin to its recovered arguments.
func RecoverNameWithContext(t Term, ctx []string) Term {
	RequireNameless("RecoverName", t)
	return recoverName(t, &recoverCtx{toList(ctx), len(ctx)})
}

type recoverCtx struct {
	names list.List
	n     int
}

func (c *recoverCtx) push(name string) *recoverCtx {
	return &recoverCtx{c.names.Cons(name), c.n + 1}
}

// nth returns the i-th name of the context, counting from the innermost.
func (c *recoverCtx) nth(i int) string {
	l := c.names
	for ; i > 0; i-- {
		l = l.Rest()
	}
	return l.First().(string)
}

func recoverName(t Term, ctx *recoverCtx) Term {
	switch t := t.(type) {
	case *Variable:
		var name string
		if t.index < ctx.n {
			name = ctx.nth(t.index)
		} else {
			name = hintOr(t.meta.NameHint) + "_" + strconv.Itoa(t.index)
		}
		return &Variable{base{Named, Meta{Debug: t.meta.Debug, NameHint: name}}, name, -1}
	case *Abstraction:
		name := binderName(t, ctx)
		body := recoverName(t.body, ctx.push(name))
		meta := t.meta
		meta.NameHint = name
		binder := &Variable{base{Named, Meta{Debug: t.meta.Debug, NameHint: name}}, name, -1}
		return &Abstraction{base{Named, meta}, binder, body}
	case *Application:
		return &Application{base{Named, t.meta},
			recoverName(t.fn, ctx), recoverName(t.arg, ctx)}
	case *Builtin:
		var result Term = &Builtin{base{Named, t.meta}, t.fn, nil}
		for _, arg := range t.bound {
			result = NewApplication(result, recoverName(arg, ctx))
		}
		return result
	case *List:
		return mapElemsToMode(t, Named, func(u Term) Term { return recoverName(u, ctx) })
	case *Record:
		return mapAttrsToMode(t, Named, func(u Term) Term { return recoverName(u, ctx) })
	default:
		return withMode(t, Named)
	}
}

// binderName picks the display name of an abstraction, avoiding the names of
// the outer variables its body refers to.
func binderName(a *Abstraction, ctx *recoverCtx) string {
	hint := hintOr(a.meta.NameHint)
	outer := make(map[string]struct{})
	forEachFree(a.body, 0, func(i int) {
		// Index 0 is the abstraction's own variable.
		if i >= 1 && i-1 < ctx.n {
			outer[ctx.nth(i-1)] = struct{}{}
		}
	})
	name := hint
	for k := 1; ; k++ {
		if _, taken := outer[name]; !taken {
			return name
		}
		name = hint + strconv.Itoa(k)
	}
}

// forEachFree calls f with index-depth for every variable of t whose index is
// at least depth, where depth grows by one under each abstraction.
func forEachFree(t Term, depth int, f func(int)) {
	switch t := t.(type) {
	case *Variable:
		if t.index >= depth {
			f(t.index - depth)
		}
	case *Abstraction:
		forEachFree(t.body, depth+1, f)
	case *Application:
		forEachFree(t.fn, depth, f)
		forEachFree(t.arg, depth, f)
	case *Builtin:
		for _, arg := range t.bound {
			forEachFree(arg, depth, f)
		}
	case *List:
		for it := t.elems.Iterator(); it.HasElem(); it.Next() {
			forEachFree(it.Elem().(Term), depth, f)
		}
	case *Record:
		for it := t.attrs.Iterator(); it.HasElem(); it.Next() {
			_, v := it.Elem()
			forEachFree(v.(Term), depth, f)
		}
	}
}

func hintOr(hint string) string {
	if hint == "" {
		return DefaultName
	}
	return hint
}

// toList converts a naming context to a persistent list whose first element
// is ctx[0].
func toList(ctx []string) list.List {
	l := list.Empty
	for i := len(ctx) - 1; i >= 0; i-- {
		l = l.Cons(ctx[i])
	}
	return l
}

// lookup returns the position of the first occurrence of name in l.
func lookup(l list.List, name string) (int, bool) {
	i := 0
	for ; l != list.Empty; l = l.Rest() {
		if l.First() == name {
			return i, true
		}
		i++
	}
	return 0, false
}
