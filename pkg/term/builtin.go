package term

// Applier is implemented by terms that consume arguments when they are at the
// head of an application: *Builtin, *List and *Record.
//
// The evaluator applies an Applier once it has at least Arity pending
// arguments and Applicable holds on the first Arity of them. When Applicable
// does not hold, the application is stuck: it does not reduce, and no error
// is raised.
type Applier interface {
	Term
	// Arity returns the number of arguments still needed.
	Arity() int
	// Applicable reports whether the term applies to exactly Arity arguments.
	Applicable(args []Term) bool
	// Apply applies the term to exactly Arity arguments. It panics with a
	// *ContractError if Applicable does not hold.
	Apply(args []Term) Term
}

var (
	_ Applier = (*Builtin)(nil)
	_ Applier = (*List)(nil)
	_ Applier = (*Record)(nil)
)

// BuiltinFunc declares a builtin function. Instances of the declaration are
// *Builtin terms.
type BuiltinFunc struct {
	// Name is used for printing and for comparing builtins.
	Name string
	// Arity is the number of arguments the builtin takes. A builtin with an
	// arity of 0 is a constant: it never applies.
	Arity int
	// Applicable reports whether the builtin applies to exactly Arity
	// arguments, all nameless. It must not have side effects. If nil, the
	// builtin never applies.
	Applicable func(args []Term) bool
	// Apply computes the nameless result from exactly Arity nameless
	// arguments. It is only called when Applicable holds.
	Apply func(args []Term) Term
}

// Declare declares a builtin function. It panics with a *ContractError if
// arity is negative, or if arity is positive and apply is nil.
func Declare(name string, arity int, applicable func([]Term) bool, apply func([]Term) Term) *BuiltinFunc {
	if arity < 0 {
		violate("Declare", nil, "builtin %s has negative arity %d", name, arity)
	}
	if arity > 0 && apply == nil {
		violate("Declare", nil, "builtin %s has no implementation", name)
	}
	return &BuiltinFunc{name, arity, applicable, apply}
}

// DeclareConstant declares an opaque named constant.
func DeclareConstant(name string) *BuiltinFunc {
	if name == "" {
		violate("DeclareConstant", nil, "empty constant name")
	}
	return &BuiltinFunc{Name: name}
}

// Instance returns an instance of the builtin with no bound arguments.
func (fn *BuiltinFunc) Instance(mode Mode) *Builtin {
	return &Builtin{base{mode, Meta{}}, fn, nil}
}

// Named is a shorthand for fn.Instance(Named).
func (fn *BuiltinFunc) Named() *Builtin { return fn.Instance(Named) }

// Nameless is a shorthand for fn.Instance(Nameless).
func (fn *BuiltinFunc) Nameless() *Builtin { return fn.Instance(Nameless) }

// Builtin is an instance of a builtin function, possibly with some arguments
// already bound. There are always fewer bound arguments than the declared
// arity.
type Builtin struct {
	base
	fn    *BuiltinFunc
	bound []Term
}

// Func returns the declaration of the builtin.
func (b *Builtin) Func() *BuiltinFunc { return b.fn }

// Name returns the name of the builtin.
func (b *Builtin) Name() string { return b.fn.Name }

// IsConstant reports whether the builtin is an opaque constant.
func (b *Builtin) IsConstant() bool { return b.fn.Arity == 0 }

// Bound returns the arguments already bound to the builtin.
func (b *Builtin) Bound() []Term { return append([]Term(nil), b.bound...) }

// Arity returns the number of arguments still needed, which is the declared
// arity minus the number of bound arguments.
func (b *Builtin) Arity() int { return b.fn.Arity - len(b.bound) }

// Bind returns a copy of the builtin with more arguments bound. Only nameless
// builtins can have bound arguments, and the total number of bound arguments
// must stay below the declared arity.
func (b *Builtin) Bind(args ...Term) *Builtin {
	if b.mode != Nameless {
		violate("Bind", b, "binding arguments to named builtin %s", b.fn.Name)
	}
	if len(args) >= b.Arity() {
		violate("Bind", b, "binding %d arguments to %s, which needs %d", len(args), b.fn.Name, b.Arity())
	}
	for _, arg := range args {
		RequireNameless("Bind", arg)
	}
	bound := make([]Term, 0, len(b.bound)+len(args))
	bound = append(append(bound, b.bound...), args...)
	return &Builtin{b.base, b.fn, bound}
}

func (b *Builtin) allArgs(args []Term) []Term {
	if len(b.bound) == 0 {
		return args
	}
	all := make([]Term, 0, len(b.bound)+len(args))
	return append(append(all, b.bound...), args...)
}

// Applicable implements Applier.
func (b *Builtin) Applicable(args []Term) bool {
	if len(args) != b.Arity() || b.fn.Applicable == nil || b.fn.Arity == 0 {
		return false
	}
	return b.fn.Applicable(b.allArgs(args))
}

// Apply implements Applier.
func (b *Builtin) Apply(args []Term) Term {
	if !b.Applicable(args) {
		violate("Apply", b, "builtin %s is not applicable to %d arguments", b.fn.Name, len(args))
	}
	result := b.fn.Apply(b.allArgs(args))
	RequireNameless("Apply", result)
	return result
}

func (b *Builtin) withBound(bound []Term) *Builtin {
	return &Builtin{b.base, b.fn, bound}
}

// Equal implements Term. Builtins are equal if they have the same name,
// arity and bound arguments.
func (b *Builtin) Equal(other Term) bool {
	o, ok := other.(*Builtin)
	if !ok || b.mode != o.mode || b.fn.Name != o.fn.Name || b.fn.Arity != o.fn.Arity {
		return false
	}
	return equalTerms(b.bound, o.bound)
}

func equalTerms(xs, ys []Term) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !xs[i].Equal(ys[i]) {
			return false
		}
	}
	return true
}
