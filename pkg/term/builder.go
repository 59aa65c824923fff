package term

import (
	"github.com/xiaq/persistent/vector"
)

// Builder builds terms of one mode. Every sub-term passed to a Builder must
// have the Builder's mode.
type Builder struct {
	Mode Mode
}

// Builders for the two modes.
var (
	NamedBuilder    = Builder{Named}
	NamelessBuilder = Builder{Nameless}
)

// Var builds a named variable. It panics with a *ContractError on a nameless
// Builder.
func (b Builder) Var(name string) *Variable {
	if b.Mode != Named {
		violate("Var", nil, "named variable %s from a %s builder", name, b.Mode)
	}
	return NewVariable(name)
}

// Index builds a nameless variable. It panics with a *ContractError on a named
// Builder.
func (b Builder) Index(i int) *Variable {
	if b.Mode != Nameless {
		violate("Index", nil, "index %d from a %s builder", i, b.Mode)
	}
	return NewIndex(i)
}

// Int builds an integer literal.
func (b Builder) Int(v int) *Int { return &Int{base{b.Mode, Meta{}}, v} }

// Str builds a string literal.
func (b Builder) Str(v string) *String { return &String{base{b.Mode, Meta{}}, v} }

// Bool builds a boolean literal.
func (b Builder) Bool(v bool) *Bool { return &Bool{base{b.Mode, Meta{}}, v} }

// Constant builds an opaque constant with the given name.
func (b Builder) Constant(name string) *Builtin {
	return DeclareConstant(name).Instance(b.Mode)
}

// Builtin builds an instance of a builtin declaration.
func (b Builder) Builtin(fn *BuiltinFunc) *Builtin { return fn.Instance(b.Mode) }

// List builds a list of the given elements.
func (b Builder) List(elems ...Term) *List {
	vec := vector.Empty
	for _, elem := range elems {
		checkMode("List", b.Mode, elem)
		vec = vec.Cons(elem)
	}
	return newList(b.Mode, vec)
}

// Record builds a record from a Go map.
func (b Builder) Record(attrs map[string]Term) *Record {
	m := emptyAttrs
	for label, t := range attrs {
		checkMode("Record", b.Mode, t)
		m = m.Assoc(label, t)
	}
	return &Record{base{b.Mode, Meta{}}, m}
}

// RecordOf builds a record from alternating labels and terms. It panics with
// a *ContractError if the arguments don't alternate correctly.
func (b Builder) RecordOf(labelsAndTerms ...any) *Record {
	if len(labelsAndTerms)%2 != 0 {
		violate("RecordOf", nil, "odd number of arguments")
	}
	m := emptyAttrs
	for i := 0; i < len(labelsAndTerms); i += 2 {
		label, ok := labelsAndTerms[i].(string)
		if !ok {
			violate("RecordOf", nil, "label at position %d is %T, not string", i, labelsAndTerms[i])
		}
		t, ok := labelsAndTerms[i+1].(Term)
		if !ok {
			violate("RecordOf", nil, "value at position %d is %T, not Term", i+1, labelsAndTerms[i+1])
		}
		checkMode("RecordOf", b.Mode, t)
		m = m.Assoc(label, t)
	}
	return &Record{base{b.Mode, Meta{}}, m}
}

// Abs builds an abstraction. For a named Builder, binder must be non-nil; for
// a nameless Builder, it must be nil.
func (b Builder) Abs(binder *Variable, body Term) *Abstraction {
	if b.Mode == Named {
		return NewAbstraction(binder, body)
	}
	if binder != nil {
		violate("Abs", binder, "nameless abstraction with a binder")
	}
	return NewNamelessAbstraction(body)
}

// Lambda builds nested abstractions binding each of binders in turn. On a
// nameless Builder, each binder only contributes one abstraction, whose name
// hint is the binder's name if the binder is non-nil.
func (b Builder) Lambda(binders []*Variable, body Term) Term {
	for i := len(binders) - 1; i >= 0; i-- {
		if b.Mode == Named {
			body = NewAbstraction(binders[i], body)
			continue
		}
		abs := NewNamelessAbstraction(body)
		if binders[i] != nil {
			abs.meta.NameHint = binders[i].name
		}
		body = abs
	}
	return body
}

// App builds an application.
func (b Builder) App(fn, arg Term) *Application {
	checkMode("App", b.Mode, fn)
	return NewApplication(fn, arg)
}

// Apply builds a curried application of fn to args.
func (b Builder) Apply(fn Term, args ...Term) Term {
	checkMode("Apply", b.Mode, fn)
	return Apply(fn, args...)
}

// App is a shorthand for NewApplication.
func App(fn, arg Term) *Application { return NewApplication(fn, arg) }

// V is a shorthand for NewVariable.
func V(name string) *Variable { return NewVariable(name) }

// Lam builds a named abstraction binding each of vars in turn, so that
// Lam(body, x, y) is λx. λy. body.
func Lam(body Term, vars ...*Variable) Term {
	for i := len(vars) - 1; i >= 0; i-- {
		body = NewAbstraction(vars[i], body)
	}
	return body
}
