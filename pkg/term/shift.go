package term

// Shift adds amount to every de Bruijn index in t that is at least cutoff,
// where the cutoff grows by one under each abstraction. It panics with a
// *ContractError if t is named or an index would become negative.
//
// Sub-terms without affected indices are shared with t.
func Shift(t Term, amount, cutoff int) Term {
	RequireNameless("Shift", t)
	if amount == 0 {
		return t
	}
	if u := shift(t, amount, cutoff); u != nil {
		return u
	}
	return t
}

// shift returns nil when t has no index at or above cutoff.
func shift(t Term, d, c int) Term {
	switch t := t.(type) {
	case *Variable:
		if t.index < c {
			return nil
		}
		return t.withIndex(t.index + d)
	case *Abstraction:
		body := shift(t.body, d, c+1)
		if body == nil {
			return nil
		}
		return &Abstraction{t.base, nil, body}
	case *Application:
		return mapApplication(t, func(u Term) Term { return shift(u, d, c) })
	case *Builtin:
		return mapBound(t, func(u Term) Term { return shift(u, d, c) })
	case *List:
		if l := t.mapElems(func(u Term) Term { return shift(u, d, c) }); l != nil {
			return l
		}
		return nil
	case *Record:
		if r := t.UpdateAttrs(func(u Term) Term { return shift(u, d, c) }); r != nil {
			return r
		}
		return nil
	default:
		return nil
	}
}

// Subst replaces every occurrence of the index target in t with replacement.
// Under each abstraction, the target and the free indices of replacement are
// shifted up by one. Both terms must be nameless.
func Subst(t Term, target int, replacement Term) Term {
	if u := SubstOrNil(t, target, replacement); u != nil {
		return u
	}
	return t
}

// SubstOrNil is like Subst, but returns nil when target does not occur in t.
func SubstOrNil(t Term, target int, replacement Term) Term {
	RequireNameless("Subst", t)
	RequireNameless("Subst", replacement)
	if target < 0 {
		violate("Subst", t, "negative target index %d", target)
	}
	return subst(t, target, replacement, 0)
}

// subst replaces index target+depth with replacement shifted by depth.
func subst(t Term, target int, s Term, depth int) Term {
	switch t := t.(type) {
	case *Variable:
		if t.index != target+depth {
			return nil
		}
		return Shift(s, depth, 0)
	case *Abstraction:
		body := subst(t.body, target, s, depth+1)
		if body == nil {
			return nil
		}
		return &Abstraction{t.base, nil, body}
	case *Application:
		return mapApplication(t, func(u Term) Term { return subst(u, target, s, depth) })
	case *Builtin:
		return mapBound(t, func(u Term) Term { return subst(u, target, s, depth) })
	case *List:
		if l := t.mapElems(func(u Term) Term { return subst(u, target, s, depth) }); l != nil {
			return l
		}
		return nil
	case *Record:
		if r := t.UpdateAttrs(func(u Term) Term { return subst(u, target, s, depth) }); r != nil {
			return r
		}
		return nil
	default:
		return nil
	}
}

// BetaReduce returns the result of applying an abstraction with the given
// body to arg, both nameless: index 0 of body is replaced with arg, and the
// remaining free indices of body move down by one.
func BetaReduce(body, arg Term) Term {
	RequireNameless("BetaReduce", body)
	RequireNameless("BetaReduce", arg)
	return Shift(Subst(body, 0, Shift(arg, 1, 0)), -1, 0)
}

func mapApplication(a *Application, f func(Term) Term) Term {
	fn, arg := f(a.fn), f(a.arg)
	if fn == nil && arg == nil {
		return nil
	}
	if fn == nil {
		fn = a.fn
	}
	if arg == nil {
		arg = a.arg
	}
	return a.with(fn, arg)
}

func mapBound(b *Builtin, f func(Term) Term) Term {
	var bound []Term
	for i, arg := range b.bound {
		u := f(arg)
		if u == nil {
			continue
		}
		if bound == nil {
			bound = append([]Term(nil), b.bound...)
		}
		bound[i] = u
	}
	if bound == nil {
		return nil
	}
	return b.withBound(bound)
}
