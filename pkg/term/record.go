package term

import (
	"github.com/xiaq/persistent/hash"
	"github.com/xiaq/persistent/hashmap"
	"golang.org/x/exp/slices"
)

var emptyAttrs = hashmap.New(
	func(k1, k2 interface{}) bool { return k1.(string) == k2.(string) },
	func(k interface{}) uint32 { return hash.String(k.(string)) })

// Record maps unique string labels to terms of the same mode, stored in a
// persistent hash map. As the head of an application it behaves like a unary
// builtin taking a *String label present in the record.
type Record struct {
	base
	attrs hashmap.Map
}

// Len returns the number of attributes.
func (r *Record) Len() int { return r.attrs.Len() }

// Get returns the term bound to label, and whether there is one.
func (r *Record) Get(label string) (Term, bool) {
	v, ok := r.attrs.Index(label)
	if !ok {
		return nil, false
	}
	return v.(Term), true
}

// Has reports whether the record has the given label.
func (r *Record) Has(label string) bool {
	_, ok := r.attrs.Index(label)
	return ok
}

// Labels returns the labels of the record in lexicographic order.
func (r *Record) Labels() []string {
	labels := make([]string, 0, r.Len())
	for it := r.attrs.Iterator(); it.HasElem(); it.Next() {
		k, _ := it.Elem()
		labels = append(labels, k.(string))
	}
	slices.Sort(labels)
	return labels
}

// Attrs returns the attributes as a Go map.
func (r *Record) Attrs() map[string]Term {
	m := make(map[string]Term, r.Len())
	for it := r.attrs.Iterator(); it.HasElem(); it.Next() {
		k, v := it.Elem()
		m[k.(string)] = v.(Term)
	}
	return m
}

// Assoc returns a record with label bound to t, replacing any existing
// binding.
func (r *Record) Assoc(label string, t Term) *Record {
	checkMode("Assoc", r.mode, t)
	return &Record{r.base, r.attrs.Assoc(label, t)}
}

// Dissoc returns a record without label. It returns r itself if label is
// absent.
func (r *Record) Dissoc(label string) *Record {
	if !r.Has(label) {
		return r
	}
	return &Record{r.base, r.attrs.Dissoc(label)}
}

// Merge returns a record with all attributes of r and other. When both have a
// label, the binding of other wins.
func (r *Record) Merge(other *Record) *Record {
	checkMode("Merge", r.mode, other)
	attrs := r.attrs
	for it := other.attrs.Iterator(); it.HasElem(); it.Next() {
		k, v := it.Elem()
		attrs = attrs.Assoc(k, v)
	}
	return &Record{r.base, attrs}
}

// Arity implements Applier.
func (r *Record) Arity() int { return 1 }

// Applicable implements Applier.
func (r *Record) Applicable(args []Term) bool {
	if len(args) != 1 {
		return false
	}
	s, ok := args[0].(*String)
	return ok && r.Has(s.value)
}

// Apply implements Applier.
func (r *Record) Apply(args []Term) Term {
	if !r.Applicable(args) {
		violate("Apply", r, "record is not applicable to %v", args)
	}
	t, _ := r.Get(args[0].(*String).value)
	return t
}

// Equal implements Term.
func (r *Record) Equal(other Term) bool {
	o, ok := other.(*Record)
	if !ok || r.mode != o.mode || r.Len() != o.Len() {
		return false
	}
	for it := r.attrs.Iterator(); it.HasElem(); it.Next() {
		k, v := it.Elem()
		ov, ok := o.attrs.Index(k)
		if !ok || !v.(Term).Equal(ov.(Term)) {
			return false
		}
	}
	return true
}

// UpdateAttrs calls f on each attribute value. It returns nil if f returns nil
// for every value, and otherwise a record in which exactly the values for
// which f returned a term are replaced; the others are shared with r.
func (r *Record) UpdateAttrs(f func(Term) Term) *Record {
	attrs := r.attrs
	changed := false
	for it := r.attrs.Iterator(); it.HasElem(); it.Next() {
		k, v := it.Elem()
		if t := f(v.(Term)); t != nil {
			checkMode("UpdateAttrs", r.mode, t)
			attrs = attrs.Assoc(k, t)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return &Record{r.base, attrs}
}

func mapAttrsToMode(r *Record, mode Mode, f func(Term) Term) *Record {
	attrs := emptyAttrs
	for it := r.attrs.Iterator(); it.HasElem(); it.Next() {
		k, v := it.Elem()
		t := f(v.(Term))
		checkMode("convert", mode, t)
		attrs = attrs.Assoc(k, t)
	}
	return &Record{base{mode, r.meta}, attrs}
}
