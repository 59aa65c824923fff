package term

// Variable is a variable reference. A named variable has a non-empty name; a
// nameless variable has a de Bruijn index counting enclosing abstractions from
// the innermost outward.
type Variable struct {
	base
	name  string
	index int
}

// NewVariable creates a named variable.
func NewVariable(name string) *Variable {
	if name == "" {
		violate("NewVariable", nil, "empty variable name")
	}
	return &Variable{base{Named, Meta{NameHint: name}}, name, -1}
}

// NewIndex creates a nameless variable with the given de Bruijn index.
func NewIndex(index int) *Variable {
	if index < 0 {
		violate("NewIndex", nil, "negative index %d", index)
	}
	return &Variable{base{Nameless, Meta{}}, "", index}
}

// Name returns the name of a named variable, or "" for a nameless one.
func (v *Variable) Name() string { return v.name }

// Index returns the de Bruijn index of a nameless variable, or -1 for a named
// one.
func (v *Variable) Index() int { return v.index }

func (v *Variable) withIndex(index int) *Variable {
	if index < 0 {
		violate("Shift", v, "index %d shifted below zero", v.index)
	}
	return &Variable{v.base, "", index}
}

// Equal implements Term.
func (v *Variable) Equal(other Term) bool {
	o, ok := other.(*Variable)
	return ok && v.mode == o.mode && v.name == o.name && v.index == o.index
}

// Abstraction is a lambda abstraction. A named abstraction binds a named
// variable; a nameless one binds index 0 of its body implicitly.
type Abstraction struct {
	base
	binder *Variable
	body   Term
}

// NewAbstraction creates a named abstraction binding v in body.
func NewAbstraction(v *Variable, body Term) *Abstraction {
	if v == nil {
		violate("NewAbstraction", nil, "nil binder")
	}
	RequireNamed("NewAbstraction", v)
	RequireNamed("NewAbstraction", body)
	return &Abstraction{base{Named, Meta{NameHint: v.name}}, v, body}
}

// NewNamelessAbstraction creates a nameless abstraction with the given body.
func NewNamelessAbstraction(body Term) *Abstraction {
	RequireNameless("NewNamelessAbstraction", body)
	return &Abstraction{base{Nameless, Meta{}}, nil, body}
}

// Binder returns the variable bound by a named abstraction, or nil for a
// nameless one.
func (a *Abstraction) Binder() *Variable { return a.binder }

// Body returns the body of the abstraction.
func (a *Abstraction) Body() Term { return a.body }

// WithBody returns a copy of the abstraction with its body replaced. The new
// body must have the same mode.
func (a *Abstraction) WithBody(body Term) *Abstraction {
	checkMode("WithBody", a.mode, body)
	return &Abstraction{a.base, a.binder, body}
}

// Equal implements Term. Named abstractions are equal only if they bind the
// same name; no alpha-conversion is attempted.
func (a *Abstraction) Equal(other Term) bool {
	o, ok := other.(*Abstraction)
	if !ok || a.mode != o.mode {
		return false
	}
	if a.mode == Named && a.binder.name != o.binder.name {
		return false
	}
	return a.body.Equal(o.body)
}

// Application applies a function term to an argument term.
type Application struct {
	base
	fn  Term
	arg Term
}

// NewApplication creates an application. Both sub-terms must have the same
// mode, which becomes the mode of the application.
func NewApplication(fn, arg Term) *Application {
	checkNotNil("NewApplication", fn)
	checkMode("NewApplication", fn.Mode(), arg)
	return &Application{base{fn.Mode(), Meta{}}, fn, arg}
}

// Func returns the function part of the application.
func (a *Application) Func() Term { return a.fn }

// Arg returns the argument part of the application.
func (a *Application) Arg() Term { return a.arg }

func (a *Application) with(fn, arg Term) *Application {
	if fn == a.fn && arg == a.arg {
		return a
	}
	return &Application{a.base, fn, arg}
}

// Equal implements Term.
func (a *Application) Equal(other Term) bool {
	o, ok := other.(*Application)
	return ok && a.mode == o.mode && a.fn.Equal(o.fn) && a.arg.Equal(o.arg)
}

// Apply applies fn to args one at a time, building ((fn a0) a1) ...
func Apply(fn Term, args ...Term) Term {
	t := fn
	for _, arg := range args {
		t = NewApplication(t, arg)
	}
	return t
}
