// Package eval implements the reduction of nameless terms.
//
// Reduction is normal order, and also proceeds under abstractions and inside
// lists and records. A term that cannot step is either a normal form or a
// stuck application, such as a builtin applied to arguments it does not
// accept; both are returned to the caller as they are.
package eval

import (
	"src.pgsn.dev/pkg/term"
)

// Step performs one reduction step on a nameless term. It returns the reduced
// term and true, or t and false if t cannot step. It panics with a
// *term.ContractError if t is named.
func Step(t term.Term) (term.Term, bool) {
	term.RequireNameless("Step", t)
	if u := step(t); u != nil {
		return u, true
	}
	return t, false
}

// step returns nil when t cannot step.
func step(t term.Term) term.Term {
	switch t := t.(type) {
	case *term.Application:
		s, ok := NewSpine(t).Step()
		if !ok {
			return nil
		}
		return s.Term()
	case *term.Abstraction:
		body := step(t.Body())
		if body == nil {
			return nil
		}
		return t.WithBody(body)
	case *term.List:
		if l := t.UpdateElems(step); l != nil {
			return l
		}
		return nil
	case *term.Record:
		if r := t.UpdateAttrs(step); r != nil {
			return r
		}
		return nil
	default:
		// Variables, literals and builtins never step.
		return nil
	}
}

// IsStuck reports whether t cannot step and is an application, such as a
// builtin applied to arguments it does not accept, or a variable applied to
// anything.
func IsStuck(t term.Term) bool {
	if _, ok := t.(*term.Application); !ok {
		return false
	}
	_, ok := Step(t)
	return !ok
}
