package stdlib

import (
	"github.com/samber/lo"

	"src.pgsn.dev/pkg/term"
)

func asRecord(t term.Term) *term.Record { return t.(*term.Record) }

func labelValue(t term.Term) string { return t.(*term.String).Value() }

// recordAndLabel is the applicability of builtins taking a record and a label.
func recordAndLabel(args []term.Term) bool {
	_, ok0 := args[0].(*term.Record)
	_, ok1 := args[1].(*term.String)
	return ok0 && ok1
}

func (lib *Lib) addRecords() {
	lib.EmptyRecord = lib.add("record.empty", nb.Record(nil))

	lib.AddAttribute = lib.addBuiltin(term.Declare("record.add_attribute", 3,
		func(args []term.Term) bool { return recordAndLabel(args[:2]) },
		func(args []term.Term) term.Term {
			return asRecord(args[0]).Assoc(labelValue(args[1]), args[2])
		}))

	lib.RemoveAttribute = lib.addBuiltin(term.Declare("record.remove_attribute", 2,
		recordAndLabel,
		func(args []term.Term) term.Term {
			return asRecord(args[0]).Dissoc(labelValue(args[1]))
		}))

	lib.HasLabel = lib.addBuiltin(term.Declare("record.has_label", 2,
		recordAndLabel,
		func(args []term.Term) term.Term {
			return lb.Bool(asRecord(args[0]).Has(labelValue(args[1])))
		}))

	lib.ListLabels = lib.addBuiltin(term.Declare("record.list_labels", 1,
		isAll[*term.Record],
		func(args []term.Term) term.Term {
			labels := lo.Map(asRecord(args[0]).Labels(),
				func(l string, _ int) term.Term { return lb.Str(l) })
			return lb.List(labels...)
		}))

	lib.OverwriteRecord = lib.addBuiltin(term.Declare("record.overwrite", 2,
		isAll[*term.Record],
		func(args []term.Term) term.Term {
			return asRecord(args[0]).Merge(asRecord(args[1]))
		}))
}
