package eval_test

import (
	"testing"

	. "src.pgsn.dev/pkg/eval"
	"src.pgsn.dev/pkg/term"
)

func TestNewSpine(t *testing.T) {
	f, a, b := term.NewIndex(0), lb.Int(1), lb.Int(2)
	s := NewSpine(lb.Apply(f, a, b))
	if s.Head != f {
		t.Errorf("got head %v, want %v", s.Head, f)
	}
	if len(s.Pending) != 2 || s.Pending[0] != a || s.Pending[1] != b {
		t.Errorf("got pending %v, want [%v %v]", s.Pending, a, b)
	}
	if got, want := s.Term(), lb.Apply(f, a, b); !got.Equal(want) {
		t.Errorf("got term %v, want %v", got, want)
	}

	pushed := s.Push(a)
	if got, want := pushed.Term(), lb.Apply(f, a, b, a); !got.Equal(want) {
		t.Errorf("got term %v, want %v", got, want)
	}
	if len(s.Pending) != 2 {
		t.Errorf("Push modified the original spine")
	}

	if s := NewSpine(a); s.Head != a || len(s.Pending) != 0 {
		t.Errorf("spine of a non-application should have no pending arguments")
	}
}

func TestSpine_Step(t *testing.T) {
	i0, i1 := term.NewIndex(0), term.NewIndex(1)
	lam := term.NewNamelessAbstraction
	id := lam(i0)
	one, two := lb.Int(1), lb.Int(2)

	tests := []struct {
		name  string
		spine *Spine
		want  term.Term
		ok    bool
	}{
		{
			name:  "beta",
			spine: &Spine{Head: id, Pending: []term.Term{one, two}},
			want:  lb.App(one, two),
			ok:    true,
		},
		{
			name:  "builtin",
			spine: &Spine{Head: plus.Nameless(), Pending: []term.Term{one, two}},
			want:  lb.Int(3),
			ok:    true,
		},
		{
			name:  "builtin with bound argument",
			spine: &Spine{Head: plus.Nameless().Bind(one), Pending: []term.Term{two}},
			want:  lb.Int(3),
			ok:    true,
		},
		{
			name:  "head step before argument step",
			spine: &Spine{Head: lam(lb.App(id, i0)), Pending: []term.Term{}},
			want:  lam(i0),
			ok:    true,
		},
		{
			name:  "first steppable argument",
			spine: &Spine{Head: i1, Pending: []term.Term{one, lb.App(id, two), lb.App(id, one)}},
			want:  lb.Apply(i1, one, two, lb.App(id, one)),
			ok:    true,
		},
		{
			name:  "respine after beta",
			spine: &Spine{Head: lam(lb.App(plus.Nameless(), i0)), Pending: []term.Term{one, two}},
			want:  lb.Apply(plus.Nameless(), one, two),
			ok:    true,
		},
		{
			name:  "stuck",
			spine: &Spine{Head: plus.Nameless(), Pending: []term.Term{one, lb.Str("a")}},
			want:  lb.Apply(plus.Nameless(), one, lb.Str("a")),
			ok:    false,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := test.spine.Step()
			if ok != test.ok {
				t.Errorf("got ok %v, want %v", ok, test.ok)
			}
			if !got.Term().Equal(test.want) {
				t.Errorf("got %v, want %v", got.Term(), test.want)
			}
		})
	}
}

func TestSpine_RespineFlattensHead(t *testing.T) {
	lam := term.NewNamelessAbstraction
	i0 := term.NewIndex(0)
	s := &Spine{Head: lam(lb.App(plus.Nameless(), i0)), Pending: []term.Term{lb.Int(1), lb.Int(2)}}
	s, _ = s.Step()
	if _, ok := s.Head.(*term.Builtin); !ok {
		t.Errorf("got head %v, want the builtin", s.Head)
	}
	if len(s.Pending) != 2 {
		t.Errorf("got %d pending arguments, want 2", len(s.Pending))
	}
}
