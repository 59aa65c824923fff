// Package term implements the terms of an untyped lambda calculus extended
// with literals, builtin functions, lists and records.
//
// Every term is either named or nameless. Named terms refer to variables by
// name and are what clients build; nameless terms use de Bruijn indices and
// are what the evaluator works on. [RemoveName] and [RecoverName] convert
// between the two. A composite term and its immediate sub-terms always have
// the same mode; constructors panic with a *ContractError when they don't.
//
// Terms are immutable. Operations that "change" a term return a new term that
// shares unchanged sub-terms with the old one.
package term

import (
	"fmt"

	"src.pgsn.dev/pkg/diag"
)

// Mode is the representation mode of a term.
type Mode uint8

// Possible values of Mode.
const (
	// Variables are referred to by name and abstractions bind names.
	Named Mode = iota + 1
	// Variables are de Bruijn indices and abstractions bind implicitly.
	Nameless
)

func (m Mode) String() string {
	switch m {
	case Named:
		return "named"
	case Nameless:
		return "nameless"
	default:
		return fmt.Sprintf("!(bad mode %d)", uint8(m))
	}
}

// Meta is the metadata carried by a term. It never affects evaluation or
// equality.
type Meta struct {
	// Where the term came from. May be nil.
	Debug *diag.Context
	// A display name used when a nameless term is converted back to a named
	// one. Nameless variables and abstractions remember the name they were
	// converted from here.
	NameHint string
}

// Term is a lambda term. The set of implementations is closed: *Variable,
// *Abstraction, *Application, *Builtin, *Int, *String, *Bool, *List and
// *Record.
type Term interface {
	// Mode returns the mode of the term.
	Mode() Mode
	// Meta returns the metadata of the term.
	Meta() Meta
	// Equal reports whether the term is structurally equal to another term,
	// ignoring metadata.
	Equal(Term) bool
	// String returns a human-readable representation of the term.
	String() string

	term()
}

type base struct {
	mode Mode
	meta Meta
}

func (b *base) Mode() Mode { return b.mode }
func (b *base) Meta() Meta { return b.meta }
func (*base) term()        {}

// ContractError is the value panicked with when a term is used in a way that
// breaks the contracts of this package, such as mixing named and nameless
// sub-terms.
type ContractError struct {
	Op      string
	Message string
	// Where the offending term came from, if known.
	Context *diag.Context
}

func (e *ContractError) Error() string {
	if e.Context != nil {
		return fmt.Sprintf("contract violation in %s: %s (at %s)", e.Op, e.Message, e.Context.Location())
	}
	return fmt.Sprintf("contract violation in %s: %s", e.Op, e.Message)
}

func violate(op string, t Term, format string, args ...any) {
	err := &ContractError{Op: op, Message: fmt.Sprintf(format, args...)}
	if t != nil {
		err.Context = t.Meta().Debug
	}
	panic(err)
}

func checkNotNil(op string, t Term) {
	if t == nil {
		violate(op, nil, "nil term")
	}
}

func checkMode(op string, want Mode, t Term) {
	checkNotNil(op, t)
	if t.Mode() != want {
		violate(op, t, "%s sub-term %s inside %s term", t.Mode(), t, want)
	}
}

// RequireNameless panics with a *ContractError if t is nil or named.
func RequireNameless(op string, t Term) {
	checkMode(op, Nameless, t)
}

// RequireNamed panics with a *ContractError if t is nil or nameless.
func RequireNamed(op string, t Term) {
	checkMode(op, Named, t)
}

// WithMeta returns a copy of t with its metadata replaced.
func WithMeta(t Term, meta Meta) Term {
	switch t := t.(type) {
	case *Variable:
		c := *t
		c.meta = meta
		return &c
	case *Abstraction:
		c := *t
		c.meta = meta
		return &c
	case *Application:
		c := *t
		c.meta = meta
		return &c
	case *Builtin:
		c := *t
		c.meta = meta
		return &c
	case *Int:
		c := *t
		c.meta = meta
		return &c
	case *String:
		c := *t
		c.meta = meta
		return &c
	case *Bool:
		c := *t
		c.meta = meta
		return &c
	case *List:
		c := *t
		c.meta = meta
		return &c
	case *Record:
		c := *t
		c.meta = meta
		return &c
	default:
		violate("WithMeta", nil, "unknown term %T", t)
		return nil
	}
}

// WithDebug returns a copy of t carrying the given debug context.
func WithDebug(t Term, ctx *diag.Context) Term {
	meta := t.Meta()
	meta.Debug = ctx
	return WithMeta(t, meta)
}
