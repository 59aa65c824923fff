package term

// Int is an integer literal.
type Int struct {
	base
	value int
}

// Value returns the value of the literal.
func (i *Int) Value() int { return i.value }

// Equal implements Term.
func (i *Int) Equal(other Term) bool {
	o, ok := other.(*Int)
	return ok && i.mode == o.mode && i.value == o.value
}

// String is a string literal.
type String struct {
	base
	value string
}

// Value returns the value of the literal.
func (s *String) Value() string { return s.value }

// Equal implements Term.
func (s *String) Equal(other Term) bool {
	o, ok := other.(*String)
	return ok && s.mode == o.mode && s.value == o.value
}

// Bool is a boolean literal.
type Bool struct {
	base
	value bool
}

// Value returns the value of the literal.
func (b *Bool) Value() bool { return b.value }

// Equal implements Term.
func (b *Bool) Equal(other Term) bool {
	o, ok := other.(*Bool)
	return ok && b.mode == o.mode && b.value == o.value
}

// withMode returns a copy of a leaf term in another mode. It is used when
// converting between named and nameless terms; leaves have nothing else to
// convert.
func withMode(t Term, mode Mode) Term {
	if t.Mode() == mode {
		return t
	}
	switch t := t.(type) {
	case *Int:
		return &Int{base{mode, t.meta}, t.value}
	case *String:
		return &String{base{mode, t.meta}, t.value}
	case *Bool:
		return &Bool{base{mode, t.meta}, t.value}
	case *Builtin:
		if len(t.bound) > 0 {
			violate("withMode", t, "builtin %s with bound arguments cannot change mode", t.fn.Name)
		}
		return &Builtin{base{mode, t.meta}, t.fn, nil}
	default:
		violate("withMode", t, "%T is not a leaf", t)
		return nil
	}
}
