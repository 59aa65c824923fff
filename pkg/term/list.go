package term

import (
	"github.com/xiaq/persistent/vector"
)

// List is an ordered sequence of terms of the same mode, stored in a
// persistent vector. As the head of an application it behaves like a unary
// builtin taking an *Int index in [0, Len).
type List struct {
	base
	elems vector.Vector
}

func newList(mode Mode, elems vector.Vector) *List {
	return &List{base{mode, Meta{}}, elems}
}

// Len returns the number of elements.
func (l *List) Len() int { return l.elems.Len() }

// Elem returns the i-th element. It panics with a *ContractError if i is out
// of range.
func (l *List) Elem(i int) Term {
	v, ok := l.elems.Index(i)
	if !ok {
		violate("Elem", l, "index %d out of range [0, %d)", i, l.Len())
	}
	return v.(Term)
}

// Elems returns all elements as a slice.
func (l *List) Elems() []Term {
	elems := make([]Term, 0, l.Len())
	for it := l.elems.Iterator(); it.HasElem(); it.Next() {
		elems = append(elems, it.Elem().(Term))
	}
	return elems
}

// WithElem returns a list with the i-th element replaced. All other elements
// are shared with l.
func (l *List) WithElem(i int, t Term) *List {
	checkMode("WithElem", l.mode, t)
	if i < 0 || i >= l.Len() {
		violate("WithElem", l, "index %d out of range [0, %d)", i, l.Len())
	}
	return &List{l.base, l.elems.Assoc(i, t)}
}

// Append returns a list with t added at the end.
func (l *List) Append(t Term) *List {
	checkMode("Append", l.mode, t)
	return &List{l.base, l.elems.Cons(t)}
}

// Prepend returns a list with t added at the front.
func (l *List) Prepend(t Term) *List {
	checkMode("Prepend", l.mode, t)
	elems := vector.Empty.Cons(t)
	for it := l.elems.Iterator(); it.HasElem(); it.Next() {
		elems = elems.Cons(it.Elem())
	}
	return &List{l.base, elems}
}

// Slice returns the elements from i up to but not including j.
func (l *List) Slice(i, j int) *List {
	if i < 0 || j > l.Len() || i > j {
		violate("Slice", l, "slice [%d:%d] out of range [0, %d]", i, j, l.Len())
	}
	return &List{l.base, l.elems.SubVector(i, j)}
}

// Arity implements Applier.
func (l *List) Arity() int { return 1 }

// Applicable implements Applier.
func (l *List) Applicable(args []Term) bool {
	if len(args) != 1 {
		return false
	}
	i, ok := args[0].(*Int)
	return ok && 0 <= i.value && i.value < l.Len()
}

// Apply implements Applier.
func (l *List) Apply(args []Term) Term {
	if !l.Applicable(args) {
		violate("Apply", l, "list is not applicable to %v", args)
	}
	return l.Elem(args[0].(*Int).value)
}

// Equal implements Term.
func (l *List) Equal(other Term) bool {
	o, ok := other.(*List)
	if !ok || l.mode != o.mode || l.Len() != o.Len() {
		return false
	}
	ix, iy := l.elems.Iterator(), o.elems.Iterator()
	for ; ix.HasElem() && iy.HasElem(); ix.Next() {
		if !ix.Elem().(Term).Equal(iy.Elem().(Term)) {
			return false
		}
		iy.Next()
	}
	return true
}

// mapElems calls f on each element. If f returns nil for every element, it
// returns nil; otherwise it returns a list where the elements for which f
// returned non-nil are replaced.
func (l *List) mapElems(f func(Term) Term) *List {
	elems := l.elems
	changed := false
	i := 0
	for it := l.elems.Iterator(); it.HasElem(); it.Next() {
		if t := f(it.Elem().(Term)); t != nil {
			elems = elems.Assoc(i, t)
			changed = true
		}
		i++
	}
	if !changed {
		return nil
	}
	return &List{l.base, elems}
}

// mapElemsToMode converts every element of l with f, producing a list of the
// given mode.
func mapElemsToMode(l *List, mode Mode, f func(Term) Term) *List {
	elems := vector.Empty
	for it := l.elems.Iterator(); it.HasElem(); it.Next() {
		t := f(it.Elem().(Term))
		checkMode("convert", mode, t)
		elems = elems.Cons(t)
	}
	return &List{base{mode, l.meta}, elems}
}

// UpdateElems calls f on each element. It returns nil if f returns nil for
// every element, and otherwise a list in which exactly the elements for which
// f returned a term are replaced; the others are shared with l.
func (l *List) UpdateElems(f func(Term) Term) *List {
	return l.mapElems(func(t Term) Term {
		u := f(t)
		if u != nil {
			checkMode("UpdateElems", l.mode, u)
		}
		return u
	})
}
