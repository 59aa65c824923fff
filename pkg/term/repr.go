package term

import (
	"strconv"
	"strings"
)

func (v *Variable) String() string {
	if v.mode == Nameless {
		return "#" + strconv.Itoa(v.index)
	}
	return v.name
}

func (a *Abstraction) String() string { return repr(a) }
func (a *Application) String() string { return repr(a) }
func (b *Builtin) String() string     { return repr(b) }
func (i *Int) String() string         { return strconv.Itoa(i.value) }
func (s *String) String() string      { return strconv.Quote(s.value) }
func (b *Bool) String() string        { return strconv.FormatBool(b.value) }
func (l *List) String() string        { return repr(l) }
func (r *Record) String() string      { return repr(r) }

func repr(t Term) string {
	var sb strings.Builder
	writeRepr(&sb, t)
	return sb.String()
}

func writeRepr(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case *Abstraction:
		sb.WriteString("λ")
		if t.mode == Named {
			sb.WriteString(t.binder.name)
		}
		sb.WriteString(". ")
		writeRepr(sb, t.body)
	case *Application:
		// Curried applications print flat: ((f a) b) is (f a b).
		var args []Term
		var head Term = t
		for {
			app, ok := head.(*Application)
			if !ok {
				break
			}
			args = append(args, app.arg)
			head = app.fn
		}
		sb.WriteByte('(')
		writeRepr(sb, head)
		for i := len(args) - 1; i >= 0; i-- {
			sb.WriteByte(' ')
			writeRepr(sb, args[i])
		}
		sb.WriteByte(')')
	case *Builtin:
		if t.IsConstant() {
			sb.WriteString(t.fn.Name)
			return
		}
		sb.WriteString("<builtin ")
		sb.WriteString(t.fn.Name)
		for _, arg := range t.bound {
			sb.WriteByte(' ')
			writeRepr(sb, arg)
		}
		sb.WriteByte('>')
	case *List:
		sb.WriteByte('[')
		first := true
		for it := t.elems.Iterator(); it.HasElem(); it.Next() {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			writeRepr(sb, it.Elem().(Term))
		}
		sb.WriteByte(']')
	case *Record:
		sb.WriteByte('{')
		for i, label := range t.Labels() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(label)
			sb.WriteString(": ")
			v, _ := t.Get(label)
			writeRepr(sb, v)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString(t.String())
	}
}
