// Package stdlib implements the standard library of terms: boolean logic,
// integer arithmetic, strings, lists, records and a fixed-point combinator.
//
// All members are named terms, to be used as parts of named terms that are
// then evaluated with the eval package. Builtin members print with dotted
// names like list.cons, which are also the names under which Lookup finds
// them.
package stdlib

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"

	"src.pgsn.dev/pkg/logutil"
	"src.pgsn.dev/pkg/term"
)

var logger = logutil.GetLogger("[stdlib] ")

var (
	nb = term.NamedBuilder
	lb = term.NamelessBuilder
)

// Lib is the standard library. It is built once by New and not modified
// afterwards.
type Lib struct {
	// Booleans.
	True, False  term.Term
	Not          term.Term
	And, Or, Xor term.Term
	IfThenElse   term.Term
	Guard        term.Term
	Equal        term.Term
	// Integers.
	Plus, Minus, Times term.Term
	Less               term.Term
	// Strings.
	Concat term.Term
	// Lists.
	Empty      term.Term
	Cons       term.Term
	Head, Tail term.Term
	Index      term.Term
	IsEmpty    term.Term
	Length     term.Term
	Fold       term.Term
	Map        term.Term
	IntegerSum term.Term
	// Records.
	EmptyRecord     term.Term
	AddAttribute    term.Term
	RemoveAttribute term.Term
	HasLabel        term.Term
	ListLabels      term.Term
	OverwriteRecord term.Term
	// Combinators.
	Fix term.Term

	members map[string]term.Term
}

// New builds the standard library.
func New() *Lib {
	lib := &Lib{members: make(map[string]term.Term)}
	lib.addCombinators()
	lib.addBooleans()
	lib.addIntegers()
	lib.addStrings()
	lib.addLists()
	lib.addRecords()
	logger.Printf("built standard library with %d members", len(lib.members))
	return lib
}

func (lib *Lib) add(name string, t term.Term) term.Term {
	if _, exists := lib.members[name]; exists {
		panic("duplicate stdlib member " + name)
	}
	lib.members[name] = t
	return t
}

func (lib *Lib) addBuiltin(fn *term.BuiltinFunc) term.Term {
	return lib.add(fn.Name, fn.Named())
}

// Lookup finds a member by its dotted name.
func (lib *Lib) Lookup(name string) (term.Term, bool) {
	t, ok := lib.members[name]
	return t, ok
}

// Names returns the names of all members in lexicographic order.
func (lib *Lib) Names() []string {
	names := lo.Keys(lib.members)
	slices.Sort(names)
	return names
}

// isAll reports whether every argument is a T.
func isAll[T term.Term](args []term.Term) bool {
	for _, arg := range args {
		if _, ok := arg.(T); !ok {
			return false
		}
	}
	return true
}
