package vals_test

import (
	"bytes"
	"testing"

	"src.pgsn.dev/pkg/must"
	"src.pgsn.dev/pkg/term"
	"src.pgsn.dev/pkg/tt"
	. "src.pgsn.dev/pkg/vals"
)

var (
	nb = term.NamedBuilder
	lb = term.NamelessBuilder

	x  = term.V("x")
	id = term.Lam(x, x)

	plus = term.Declare("plus", 2, nil, func(args []term.Term) term.Term { return args[0] })
)

func TestKind(t *testing.T) {
	tt.Test(t, tt.Fn("Kind", Kind), tt.Table{
		tt.Args(nil).Rets("nil"),
		tt.Args(x).Rets("variable"),
		tt.Args(id).Rets("abstraction"),
		tt.Args(term.App(id, x)).Rets("application"),
		tt.Args(plus.Named()).Rets("builtin"),
		tt.Args(nb.Constant("unit")).Rets("constant"),
		tt.Args(nb.Int(1)).Rets("int"),
		tt.Args(nb.Str("a")).Rets("string"),
		tt.Args(nb.Bool(true)).Rets("bool"),
		tt.Args(nb.List()).Rets("list"),
		tt.Args(nb.Record(nil)).Rets("record"),
	})
}

func TestFromTerm(t *testing.T) {
	tt.Test(t, tt.Fn("FromTerm", FromTerm), tt.Table{
		tt.Args(nb.Int(1)).Rets(1, nil),
		tt.Args(lb.Str("a")).Rets("a", nil),
		tt.Args(nb.Bool(false)).Rets(false, nil),
		tt.Args(nb.List(nb.Int(1), nb.List(nb.Str("a")))).
			Rets([]any{1, []any{"a"}}, nil),
		tt.Args(nb.RecordOf("a", nb.Int(1), "b", nb.RecordOf())).
			Rets(map[string]any{"a": 1, "b": map[string]any{}}, nil),

		tt.Args(x).Rets(nil, NotValue{Kind: "variable", Repr: "x"}),
		tt.Args(nb.RecordOf("f", id)).
			Rets(nil, NotValue{Kind: "abstraction", Repr: "λx. x"}),
		// Every offending element is reported.
		tt.Args(nb.List(x, nb.Int(1), id)).
			Rets(nil, errorMessage("multiple errors: not a value: variable x; not a value: abstraction λx. x")),
		tt.Args(nb.RecordOf("d", x, "c", nb.Int(1), "b", id, "a", term.V("y"))).
			Rets(nil, errorMessage("multiple errors: not a value: variable y; not a value: abstraction λx. x; not a value: variable x")),
	})
}

func TestToTerm(t *testing.T) {
	tt.Test(t, tt.Fn("ToTerm", ToTerm), tt.Table{
		tt.Args(term.Named, 1).Rets(nb.Int(1), nil),
		tt.Args(term.Nameless, int64(2)).Rets(lb.Int(2), nil),
		tt.Args(term.Named, uint8(3)).Rets(nb.Int(3), nil),
		tt.Args(term.Named, "a").Rets(nb.Str("a"), nil),
		tt.Args(term.Named, true).Rets(nb.Bool(true), nil),
		tt.Args(term.Named, []any{1, "a"}).Rets(nb.List(nb.Int(1), nb.Str("a")), nil),
		tt.Args(term.Nameless, map[string]any{"a": []any{}}).
			Rets(lb.RecordOf("a", lb.List()), nil),
		tt.Args(term.Named, id).Rets(id, nil),

		tt.Args(term.Nameless, id).Rets(nil, UnsupportedType{"named term"}),
		tt.Args(term.Named, 1.5).Rets(nil, UnsupportedType{"float64"}),
		tt.Args(term.Named, []any{1, struct{}{}}).Rets(nil, UnsupportedType{"struct {}"}),
	})
}

func TestRoundTrip(t *testing.T) {
	v := map[string]any{"a": []any{1, "b", true}, "c": map[string]any{"d": 2}}
	tm := must.OK1(ToTerm(term.Named, v))
	tt.Test(t, tt.Fn("FromTerm", FromTerm), tt.Table{
		tt.Args(tm).Rets(v, nil),
	})
}

func TestWriteYAML(t *testing.T) {
	write := func(tm term.Term) (string, error) {
		var buf bytes.Buffer
		err := WriteYAML(&buf, tm)
		return buf.String(), err
	}
	tt.Test(t, tt.Fn("WriteYAML", write), tt.Table{
		tt.Args(nb.RecordOf("b", nb.Bool(true), "a", nb.RecordOf("c", nb.Str("x")))).
			Rets("a:\n  c: x\nb: true\n", nil),
		tt.Args(nb.List(nb.Int(1), nb.Str("a"))).Rets("- 1\n- a\n", nil),
		tt.Args(nb.Str("1")).Rets("\"1\"\n", nil),
		tt.Args(id).Rets("", NotValue{Kind: "abstraction", Repr: "λx. x"}),
	})
}

type errorMessage string

func (m errorMessage) Match(v tt.RetValue) bool {
	err, ok := v.(error)
	return ok && err.Error() == string(m)
}
