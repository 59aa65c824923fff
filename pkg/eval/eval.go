package eval

import (
	"fmt"

	"src.pgsn.dev/pkg/logutil"
	"src.pgsn.dev/pkg/term"
)

var logger = logutil.GetLogger("[eval] ")

// DefaultMaxSteps is the step budget used when EvalCfg.MaxSteps is not
// positive.
const DefaultMaxSteps = 1000

// EvalCfg keeps configuration for FullyEval.
type EvalCfg struct {
	// The maximum number of steps. If not positive, DefaultMaxSteps is used.
	MaxSteps int
	// If not nil, called with every intermediate term and the number of steps
	// taken to reach it. The initial term is reported with step 0.
	Trace func(step int, t term.Term)
}

func (cfg *EvalCfg) fillDefaults() {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
}

// NonTermination is returned by FullyEval when every step allowed by the step
// budget reduced the term.
type NonTermination struct {
	Steps int
	Last  term.Term
}

func (e *NonTermination) Error() string {
	return fmt.Sprintf("reduction did not terminate within %d steps", e.Steps)
}

// NoProgress is returned by FullyEval when a step produces a term equal to its
// input, which would otherwise loop until the budget runs out.
type NoProgress struct {
	Step int
	Term term.Term
}

func (e *NoProgress) Error() string {
	return fmt.Sprintf("step %d reduced %v to itself", e.Step, e.Term)
}

// FullyEval reduces t until it cannot step. A named t is converted with
// term.RemoveName first; the result is always nameless.
//
// At most cfg.MaxSteps steps are attempted. The returned error is a
// *NonTermination if all of them reduced the term, even when the last one
// reached a normal form, or a *NoProgress if a step does not change the term.
// In both cases the last term reached is returned along with the error.
func FullyEval(t term.Term, cfg EvalCfg) (term.Term, error) {
	cfg.fillDefaults()
	if t.Mode() == term.Named {
		t = term.RemoveName(t)
	}
	if cfg.Trace != nil {
		cfg.Trace(0, t)
	}
	for steps := 0; steps < cfg.MaxSteps; steps++ {
		next, ok := Step(t)
		if !ok {
			return t, nil
		}
		if next.Equal(t) {
			logger.Printf("no progress at step %d: %v", steps+1, t)
			return t, &NoProgress{Step: steps + 1, Term: t}
		}
		t = next
		if cfg.Trace != nil {
			cfg.Trace(steps+1, t)
		}
	}
	logger.Printf("giving up after %d steps", cfg.MaxSteps)
	return t, &NonTermination{Steps: cfg.MaxSteps, Last: t}
}

// Evaluator evaluates named terms with a fixed configuration, converting
// results back to named terms.
type Evaluator struct {
	cfg EvalCfg
}

// NewEvaluator creates an Evaluator.
func NewEvaluator(cfg EvalCfg) *Evaluator {
	cfg.fillDefaults()
	return &Evaluator{cfg}
}

// Eval is like FullyEval, but takes and returns named terms. The free
// variables of t keep their names in the result.
func (ev *Evaluator) Eval(t term.Term) (term.Term, error) {
	term.RequireNamed("Eval", t)
	ctx := term.NamingContext(term.FreeVariables(t))
	result, err := FullyEval(term.RemoveNameWithContext(t, ctx), ev.cfg)
	return term.RecoverNameWithContext(result, ctx), err
}
