package term_test

import (
	"testing"

	. "src.pgsn.dev/pkg/term"
	. "src.pgsn.dev/pkg/tt"
)

func TestShift(t *testing.T) {
	Test(t, Fn("Shift", Shift), Table{
		Args(i0, 1, 0).Rets(i1),
		Args(i0, 1, 1).Rets(i0),
		Args(i2, -2, 0).Rets(i0),
		Args(lam(App(i1, i0)), 2, 0).Rets(lam(App(NewIndex(3), i0))),
		Args(lam(lam(App(i2, i1))), 1, 0).Rets(lam(lam(App(NewIndex(3), i1)))),
		Args(lb.List(i0, lb.Int(1)), 1, 0).Rets(lb.List(i1, lb.Int(1))),
		Args(lb.RecordOf("a", i0, "b", i1), 1, 1).
			Rets(lb.RecordOf("a", i0, "b", i2)),
		Args(plus.Nameless().Bind(i0), 1, 0).Rets(plus.Nameless().Bind(i1)),
		Args(lb.Str("s"), 5, 0).Rets(lb.Str("s")),
	})

	Test(t, Fn("panics", panics).ArgsFmt("%p"), Table{
		Args(func() { Shift(i0, -1, 0) }).Rets(contractViolation{}),
		Args(func() { Shift(V("x"), 1, 0) }).Rets(contractViolation{}),
	})
}

func TestShift_SharesUnchangedTerms(t *testing.T) {
	closed := lam(App(i0, lb.List(lb.Int(1))))
	if got := Shift(closed, 3, 0); got != closed {
		t.Errorf("Shift of a closed term built a new term %v", got)
	}

	shared := lb.List(lb.Int(1))
	l := lb.List(i0, shared)
	shifted := Shift(l, 1, 0).(*List)
	if shifted.Elem(1) != shared {
		t.Errorf("Shift rebuilt an unaffected element")
	}
}

func TestShift_Inverse(t *testing.T) {
	terms := []Term{
		i0,
		lam(App(i1, i0)),
		lb.Apply(i2, lam(i0), lb.List(i1)),
		lb.RecordOf("x", lam(lam(i2))),
	}
	for _, term := range terms {
		for _, d := range []int{1, 2, 5} {
			if got := Shift(Shift(term, d, 0), -d, 0); !got.Equal(term) {
				t.Errorf("Shift(Shift(%v, %d, 0), %d, 0) = %v", term, d, -d, got)
			}
		}
	}
}

func TestSubst(t *testing.T) {
	Test(t, Fn("Subst", Subst), Table{
		Args(i0, 0, NewIndex(5)).Rets(NewIndex(5)),
		Args(i1, 0, NewIndex(5)).Rets(i1),
		// The target and the replacement are shifted under binders.
		Args(lam(i1), 0, i0).Rets(lam(i1)),
		Args(lam(App(i1, i0)), 0, lb.Int(3)).Rets(lam(App(lb.Int(3), i0))),
		Args(lb.List(i0, i1), 1, lb.Str("a")).Rets(lb.List(i0, lb.Str("a"))),
		Args(plus.Nameless().Bind(i0), 0, lb.Int(2)).
			Rets(plus.Nameless().Bind(lb.Int(2))),
	})
}

func TestSubstOrNil(t *testing.T) {
	Test(t, Fn("SubstOrNil", SubstOrNil), Table{
		Args(lam(i0), 0, lb.Int(1)).Rets(nil),
		Args(lb.Int(1), 0, lb.Int(2)).Rets(nil),
		Args(lb.RecordOf("a", i1), 0, lb.Int(2)).Rets(nil),
		Args(lb.RecordOf("a", i0), 0, lb.Int(2)).Rets(lb.RecordOf("a", lb.Int(2))),
	})
}

func TestBetaReduce(t *testing.T) {
	Test(t, Fn("BetaReduce", BetaReduce), Table{
		// (λ. #0) #3 → #3
		Args(i0, NewIndex(3)).Rets(NewIndex(3)),
		// (λ. #0 #1) 5 → 5 #0
		Args(App(i0, i1), lb.Int(5)).Rets(App(lb.Int(5), i0)),
		// (λ. λ. #1 #0) #0 → λ. #1 #0
		Args(lam(App(i1, i0)), i0).Rets(lam(App(i1, i0))),
		// (λ. λ. #1) λ. #0 → λ. λ. #0
		Args(lam(i1), lam(i0)).Rets(lam(lam(i0))),
		Args(lb.List(i0, i0), lb.Str("a")).Rets(lb.List(lb.Str("a"), lb.Str("a"))),
	})
}
