// Package evaltest provides a framework for testing the reduction of terms.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T and any number of test cases.
//
// Test cases are constructed using the That function, followed by method calls
// that add additional information to it.
//
// Example:
//
//	Test(t,
//	    That(term.App(id, x)).ReducesTo(x),
//	    That(term.App(list, n)).IsStuck())
package evaltest

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.pgsn.dev/pkg/eval"
	"src.pgsn.dev/pkg/term"
)

// Case is a test case that can be used in Test.
type Case struct {
	input  term.Term
	cfg    eval.EvalCfg
	verify func(t *testing.T, result term.Term)
	want   result
}

type result struct {
	Term  term.Term
	Stuck bool
	Error error
}

// That returns a new Case that evaluates the given term with eval.FullyEval.
func That(t term.Term) Case {
	return Case{input: t}
}

// WithCfg returns an altered Case that evaluates with the given configuration.
func (c Case) WithCfg(cfg eval.EvalCfg) Case {
	c.cfg = cfg
	return c
}

// ReducesTo returns an altered Case that requires the evaluation to produce a
// term equal to want. A named want is converted to a nameless term with the
// naming context of the input's free variables.
func (c Case) ReducesTo(want term.Term) Case {
	c.want.Term = want
	return c
}

// IsStuck returns an altered Case that requires the evaluation to end with a
// stuck application. Unless ReducesTo is also used, the stuck term must be the
// input itself.
func (c Case) IsStuck() Case {
	c.want.Stuck = true
	return c
}

// Throws returns an altered Case that requires the evaluation to fail with the
// given error. The error supports special matcher values constructed by
// functions like ErrorWithType.
func (c Case) Throws(err error) Case {
	c.want.Error = err
	return c
}

// Passes returns an altered Case that runs an additional verification function
// on the result.
func (c Case) Passes(f func(t *testing.T, result term.Term)) Case {
	c.verify = f
	return c
}

// Test runs test cases.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(tc.input.String(), func(t *testing.T) {
			t.Helper()
			var ctx []string
			input := tc.input
			if input.Mode() == term.Named {
				ctx = term.NamingContext(term.FreeVariables(input))
				input = term.RemoveNameWithContext(input, ctx)
			}
			got, err := eval.FullyEval(input, tc.cfg)

			if tc.verify != nil {
				tc.verify(t, got)
			}
			want := tc.want.Term
			if want == nil && tc.want.Stuck {
				want = input
			}
			if want != nil {
				if want.Mode() == term.Named {
					want = term.RemoveNameWithContext(want, ctx)
				}
				if !got.Equal(want) {
					t.Errorf("got %v, want %v (-want +got):\n%s",
						got, want, cmp.Diff(want.String(), got.String()))
				}
			}
			if tc.want.Stuck && !eval.IsStuck(got) {
				t.Errorf("got %v, want a stuck term", got)
			}
			if !matchErr(tc.want.Error, err) {
				t.Errorf("got error %v, want %v", err, tc.want.Error)
			}
		})
	}
}

func matchErr(want, got error) bool {
	if want == nil {
		return got == nil
	}
	if matcher, ok := want.(errorMatcher); ok {
		return matcher.matchError(got)
	}
	return reflect.DeepEqual(want, got)
}
