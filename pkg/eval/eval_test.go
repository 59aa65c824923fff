package eval_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "src.pgsn.dev/pkg/eval"
	. "src.pgsn.dev/pkg/eval/evaltest"
	"src.pgsn.dev/pkg/term"
	"src.pgsn.dev/pkg/tt"
)

var (
	nb = term.NamedBuilder
	lb = term.NamelessBuilder

	V     = term.V
	Lam   = term.Lam
	App   = term.App
	Apply = term.Apply

	x, y, z = V("x"), V("y"), V("z")

	id = Lam(x, x)
	k  = Lam(x, x, y)

	omega  = Lam(App(x, x), x)
	omega3 = Lam(Apply(x, x, x), x)
)

var plus = term.Declare("plus", 2,
	func(args []term.Term) bool {
		_, ok0 := args[0].(*term.Int)
		_, ok1 := args[1].(*term.Int)
		return ok0 && ok1
	},
	func(args []term.Term) term.Term {
		return lb.Int(args[0].(*term.Int).Value() + args[1].(*term.Int).Value())
	})

func TestFullyEval_Lambda(t *testing.T) {
	Test(t,
		That(App(id, y)).ReducesTo(y),
		That(Apply(k, y, z)).ReducesTo(y),
		That(App(k, y)).ReducesTo(Lam(y, V("w"))),
		// Reduction proceeds under binders.
		That(Lam(App(id, z), z)).ReducesTo(Lam(z, z)),
		// Normal order: the unused argument is never evaluated.
		That(Apply(k, y, App(omega, omega))).ReducesTo(y),
		// A variable at the head leaves the arguments to be reduced.
		That(App(y, App(id, z))).ReducesTo(App(y, z)).IsStuck(),
	)
}

func TestFullyEval_Builtins(t *testing.T) {
	one, two, three := nb.Int(1), nb.Int(2), nb.Int(3)
	Test(t,
		That(Apply(plus.Named(), one, two)).ReducesTo(three),
		// Arguments are reduced until the builtin is applicable.
		That(Apply(plus.Named(), App(id, one), App(id, two))).ReducesTo(three),
		// Curried application is the same as multi-argument application.
		That(App(App(plus.Named(), one), two)).ReducesTo(three),
		That(Apply(Lam(App(plus.Named(), x), x), one, two)).ReducesTo(three),
		// Extra arguments stay pending.
		That(Apply(App(id, plus.Named()), one, two, y)).ReducesTo(App(three, y)).IsStuck(),
		// Partial application.
		That(App(plus.Named(), one)).IsStuck(),
		// Inapplicable arguments.
		That(Apply(plus.Named(), one, nb.Str("a"))).IsStuck(),
		// Constants never apply.
		That(App(nb.Constant("c"), one)).IsStuck(),
		That(nb.Int(1)).ReducesTo(one),
	)
}

func TestFullyEval_Containers(t *testing.T) {
	a, b := nb.Str("a"), nb.Str("b")
	l := nb.List(a, b)
	r := nb.RecordOf("a", x, "b", y)
	Test(t,
		That(App(l, nb.Int(1))).ReducesTo(b),
		That(App(l, nb.Int(5))).IsStuck(),
		That(App(l, a)).IsStuck(),
		That(App(r, a)).ReducesTo(x),
		That(App(r, nb.Str("c"))).IsStuck(),
		// Elements and values are reduced point-wise.
		That(nb.List(App(id, a), b, App(id, b))).ReducesTo(nb.List(a, b, b)),
		That(nb.RecordOf("k", App(id, a))).ReducesTo(nb.RecordOf("k", a)),
		// The index is reduced before the list is applied.
		That(App(l, Apply(plus.Named(), nb.Int(0), nb.Int(1)))).ReducesTo(b),
		// A list computed at the head is applied.
		That(Apply(Lam(l, y), nb.Int(0), nb.Int(0))).ReducesTo(a),
	)
}

func TestFullyEval_Errors(t *testing.T) {
	Test(t,
		That(App(omega3, omega3)).Throws(ErrorWithType(&NonTermination{})),
		That(App(omega, omega)).Throws(ErrorWithType(&NoProgress{})),
		That(Apply(k, y, z)).WithCfg(EvalCfg{MaxSteps: 1}).
			Throws(ErrorWithType(&NonTermination{})),
		// Using up the budget is an error even if the last step reached a
		// normal form.
		That(Apply(k, y, z)).WithCfg(EvalCfg{MaxSteps: 2}).
			Throws(ErrorWithMessage("reduction did not terminate within 2 steps")),
		That(Apply(k, y, z)).WithCfg(EvalCfg{MaxSteps: 3}).ReducesTo(y),
		That(App(omega3, omega3)).Throws(AnyError),
	)
}

func TestFullyEval_NonTerminationCarriesLastTerm(t *testing.T) {
	_, err := FullyEval(App(omega3, omega3), EvalCfg{})
	nt, ok := err.(*NonTermination)
	if !ok {
		t.Fatalf("got error %v, want *NonTermination", err)
	}
	if nt.Steps != DefaultMaxSteps {
		t.Errorf("got Steps %d, want %d", nt.Steps, DefaultMaxSteps)
	}
	if _, ok := Step(nt.Last); !ok {
		t.Errorf("last term %v cannot step", nt.Last)
	}
}

func TestFullyEval_Trace(t *testing.T) {
	var steps []int
	var last term.Term
	result, err := FullyEval(Apply(k, y, z), EvalCfg{Trace: func(i int, t term.Term) {
		steps = append(steps, i)
		last = t
	}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, steps); diff != "" {
		t.Errorf("steps (-want +got):\n%s", diff)
	}
	if last != result {
		t.Errorf("last traced term %v is not the result %v", last, result)
	}
}

func TestStep(t *testing.T) {
	i0 := term.NewIndex(0)
	tt.Test(t, tt.Fn("Step", Step), tt.Table{
		tt.Args(lb.Int(1)).Rets(lb.Int(1), false),
		tt.Args(i0).Rets(i0, false),
		tt.Args(plus.Nameless()).Rets(plus.Nameless(), false),
		tt.Args(lb.App(term.NewNamelessAbstraction(i0), lb.Int(1))).Rets(lb.Int(1), true),
		tt.Args(lb.List(lb.Int(1))).Rets(lb.List(lb.Int(1)), false),
	})
}

func TestIsStuck(t *testing.T) {
	i0 := term.NewIndex(0)
	tt.Test(t, tt.Fn("IsStuck", IsStuck), tt.Table{
		tt.Args(lb.Int(1)).Rets(false),
		tt.Args(lb.App(i0, lb.Int(1))).Rets(true),
		tt.Args(lb.App(term.NewNamelessAbstraction(i0), lb.Int(1))).Rets(false),
		tt.Args(lb.App(lb.List(), lb.Int(0))).Rets(true),
	})
}

func TestEvaluator(t *testing.T) {
	ev := NewEvaluator(EvalCfg{})
	tt.Test(t, tt.Fn("Eval", ev.Eval), tt.Table{
		tt.Args(App(id, y)).Rets(y, nil),
		// The binder is renamed to avoid capturing the free y.
		tt.Args(App(k, y)).Rets(Lam(y, V("y1")), nil),
		tt.Args(Apply(plus.Named(), nb.Int(1), nb.Int(2))).Rets(nb.Int(3), nil),
		tt.Args(App(omega, omega)).Rets(App(omega, omega), tt.Any),
	})
}
