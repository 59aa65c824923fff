package eval

import (
	"golang.org/x/exp/slices"

	"src.pgsn.dev/pkg/term"
)

// Spine is a flattened application: Head applied to each of Pending in turn,
// Pending[0] first. A Spine never has an *term.Application as its Head.
type Spine struct {
	Head    term.Term
	Pending []term.Term
}

// NewSpine flattens the nested applications of t.
func NewSpine(t term.Term) *Spine {
	var pending []term.Term
	for {
		app, ok := t.(*term.Application)
		if !ok {
			break
		}
		pending = append(pending, app.Arg())
		t = app.Func()
	}
	slices.Reverse(pending)
	return &Spine{t, pending}
}

// Term rebuilds the term represented by the spine.
func (s *Spine) Term() term.Term {
	return term.Apply(s.Head, s.Pending...)
}

// Push returns a spine with one more pending argument.
func (s *Spine) Push(arg term.Term) *Spine {
	pending := make([]term.Term, 0, len(s.Pending)+1)
	return &Spine{s.Head, append(append(pending, s.Pending...), arg)}
}

// Step performs one reduction step on the spine. The rules are tried in
// order:
//
//  1. An abstraction at the head consumes the first pending argument by beta
//     reduction.
//  2. A builtin, list or record at the head is applied to as many pending
//     arguments as it needs, if there are enough and they are applicable.
//  3. The head itself steps.
//  4. The first pending argument that can step does so.
//
// When none applies, Step returns s and false.
func (s *Spine) Step() (*Spine, bool) {
	switch head := s.Head.(type) {
	case *term.Abstraction:
		if len(s.Pending) > 0 {
			return respine(term.BetaReduce(head.Body(), s.Pending[0]), s.Pending[1:]), true
		}
	case term.Applier:
		if n := head.Arity(); n > 0 && len(s.Pending) >= n && head.Applicable(s.Pending[:n]) {
			return respine(head.Apply(s.Pending[:n]), s.Pending[n:]), true
		}
	}
	if h := step(s.Head); h != nil {
		return respine(h, s.Pending), true
	}
	for i, arg := range s.Pending {
		if a := step(arg); a != nil {
			pending := slices.Clone(s.Pending)
			pending[i] = a
			return &Spine{s.Head, pending}, true
		}
	}
	return s, false
}

// respine builds a spine of head applied to pending, flattening head if it is
// itself an application.
func respine(head term.Term, pending []term.Term) *Spine {
	s := NewSpine(head)
	s.Pending = append(s.Pending, pending...)
	return s
}
