package stdlib

import (
	"strconv"

	"src.pgsn.dev/pkg/term"
)

func (lib *Lib) addCombinators() {
	// λf. (λx. f (x x)) (λx. f (x x))
	f, x := term.V("f"), term.V("x")
	half := term.Lam(term.App(f, term.App(x, x)), x)
	lib.Fix = lib.add("fix", term.Lam(term.App(half, half), f))
}

// Let builds a term that evaluates body with x bound to def.
func Let(x *term.Variable, def, body term.Term) term.Term {
	return term.App(term.Lam(body, x), def)
}

// Lambda builds a function of vars, taking them one at a time.
func Lambda(vars []*term.Variable, body term.Term) term.Term {
	return term.Lam(body, vars...)
}

// LambdaKeywords builds a function that takes a single record of keyword
// arguments. Within body, each of labels is bound to the argument with that
// label, or to the attribute of defaults with that label if the argument has
// none. When neither has the label, the application gets stuck.
func (lib *Lib) LambdaKeywords(labels []string, defaults *term.Record, body term.Term) term.Term {
	if defaults == nil {
		defaults = nb.Record(nil)
	}
	kw := term.V(freshName("kw", body, defaults, labels))
	vars := make([]*term.Variable, len(labels))
	args := make([]term.Term, len(labels))
	merged := term.Apply(lib.OverwriteRecord, defaults, kw)
	for i, label := range labels {
		vars[i] = term.V(label)
		args[i] = term.App(merged, nb.Str(label))
	}
	// The arguments stay outside the binders of labels.
	return term.Lam(term.Apply(term.Lam(body, vars...), args...), kw)
}

// freshName returns prefix, or prefix followed by a number, such that it is
// not one of names and not free in body or defaults.
func freshName(prefix string, body, defaults term.Term, names []string) string {
	taken := term.FreeVariables(body)
	for name := range term.FreeVariables(defaults) {
		taken[name] = struct{}{}
	}
	for _, name := range names {
		taken[name] = struct{}{}
	}
	name := prefix
	for i := 1; ; i++ {
		if _, ok := taken[name]; !ok {
			return name
		}
		name = prefix + strconv.Itoa(i)
	}
}
