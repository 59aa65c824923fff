// Package vals converts between terms and Go values.
//
// Only data terms have Go values: integers, strings, booleans, and lists and
// records of data terms. They correspond to int, string, bool, []any and
// map[string]any respectively.
package vals

import (
	"fmt"

	"github.com/samber/lo"

	"src.pgsn.dev/pkg/errutil"
	"src.pgsn.dev/pkg/term"
)

// Kind returns the kind of a term, such as "int" or "abstraction".
func Kind(t term.Term) string {
	switch t := t.(type) {
	case nil:
		return "nil"
	case *term.Variable:
		return "variable"
	case *term.Abstraction:
		return "abstraction"
	case *term.Application:
		return "application"
	case *term.Builtin:
		if t.IsConstant() {
			return "constant"
		}
		return "builtin"
	case *term.Int:
		return "int"
	case *term.String:
		return "string"
	case *term.Bool:
		return "bool"
	case *term.List:
		return "list"
	case *term.Record:
		return "record"
	default:
		return fmt.Sprintf("!!%T", t)
	}
}

// NotValue is the error for a term that has no Go value.
type NotValue struct {
	Kind string
	Repr string
}

func (err NotValue) Error() string {
	return fmt.Sprintf("not a value: %s %s", err.Kind, err.Repr)
}

// UnsupportedType is the error for a Go value that has no term.
type UnsupportedType struct {
	Type string
}

func (err UnsupportedType) Error() string {
	return "unsupported type: " + err.Type
}

// FromTerm converts a data term to a Go value. The error reports every part of
// t that is not data, in the order of list elements and sorted record labels.
func FromTerm(t term.Term) (any, error) {
	switch t := t.(type) {
	case *term.Int:
		return t.Value(), nil
	case *term.String:
		return t.Value(), nil
	case *term.Bool:
		return t.Value(), nil
	case *term.List:
		var errs []error
		vs := lo.Map(t.Elems(), func(elem term.Term, _ int) any {
			v, err := FromTerm(elem)
			errs = append(errs, err)
			return v
		})
		if err := errutil.Multi(errs...); err != nil {
			return nil, err
		}
		return vs, nil
	case *term.Record:
		var errs []error
		m := make(map[string]any, t.Len())
		for _, label := range t.Labels() {
			attr, _ := t.Get(label)
			v, err := FromTerm(attr)
			m[label] = v
			errs = append(errs, err)
		}
		if err := errutil.Multi(errs...); err != nil {
			return nil, err
		}
		return m, nil
	case nil:
		return nil, NotValue{Kind: "nil"}
	default:
		return nil, NotValue{Kind: Kind(t), Repr: t.String()}
	}
}

// ToTerm converts a Go value to a term of the given mode. Besides the types
// FromTerm produces, it accepts all integer types, []any, map[string]any and
// terms of the same mode.
func ToTerm(mode term.Mode, v any) (term.Term, error) {
	b := term.Builder{Mode: mode}
	switch v := v.(type) {
	case term.Term:
		if v.Mode() != mode {
			return nil, UnsupportedType{fmt.Sprintf("%s term", v.Mode())}
		}
		return v, nil
	case int:
		return b.Int(v), nil
	case int8:
		return b.Int(int(v)), nil
	case int16:
		return b.Int(int(v)), nil
	case int32:
		return b.Int(int(v)), nil
	case int64:
		return b.Int(int(v)), nil
	case uint8:
		return b.Int(int(v)), nil
	case uint16:
		return b.Int(int(v)), nil
	case string:
		return b.Str(v), nil
	case bool:
		return b.Bool(v), nil
	case []any:
		elems := make([]term.Term, len(v))
		for i, elem := range v {
			t, err := ToTerm(mode, elem)
			if err != nil {
				return nil, err
			}
			elems[i] = t
		}
		return b.List(elems...), nil
	case map[string]any:
		attrs := make(map[string]term.Term, len(v))
		for label, attr := range v {
			t, err := ToTerm(mode, attr)
			if err != nil {
				return nil, err
			}
			attrs[label] = t
		}
		return b.Record(attrs), nil
	default:
		return nil, UnsupportedType{fmt.Sprintf("%T", v)}
	}
}
