// Package term defines the value model shared by the substitution,
// unifier, and goal layers: logic variables, ground atomic values, and
// the sequence type that represents both tuples and cons-lists.
package term

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cockroachdb/apd"
)

// Term is a value that can appear in a substitution: a logic variable,
// an atomic ground value, or a sequence of terms.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Kind classifies a Term per the three categories the data model names:
// Var, Sequence, or Atom (which here covers Int, BigInt, Str, Bool and
// Undef — everything that isn't a Var or a Seq).
type Kind int

const (
	KindVar Kind = iota
	KindAtom
	KindSeq
)

// Classify returns the Kind of t.
func Classify(t Term) Kind {
	switch t.(type) {
	case Var:
		return KindVar
	case Seq:
		return KindSeq
	default:
		return KindAtom
	}
}

var varCounter int64

// Var is a logic variable, identified by its ID. Two Vars are the same
// variable iff their IDs are equal.
type Var struct {
	ID   string
	Name string
}

// NewVar constructs a variable with a globally unique ID. name is used
// only for display; pass "" for an anonymous scratch variable.
func NewVar(name string) Var {
	n := atomic.AddInt64(&varCounter, 1)
	id := "_" + strconv.FormatInt(n, 10)
	if name != "" {
		id = name + "." + strconv.FormatInt(n, 10)
	}
	return Var{ID: id, Name: name}
}

func (v Var) isTerm() {}

func (v Var) String() string {
	if v.Name != "" {
		return v.Name
	}
	return v.ID
}

// Int is a machine-precision prolog-style number.
type Int int64

func (Int) isTerm() {}

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// BigInt is an arbitrary-precision integer, backed by apd.Decimal held
// at exponent zero. It is the representation the relational arithmetic
// predicates (pluso, succo, between, lengtho, number-chars) use so that
// they never overflow.
type BigInt struct {
	*apd.Decimal
}

// NewBigInt wraps d as a BigInt. d is not copied; callers that still
// hold a mutable reference to d should not mutate it afterwards.
func NewBigInt(d *apd.Decimal) BigInt {
	return BigInt{Decimal: d}
}

// BigIntFromInt64 constructs a BigInt from a machine integer.
func BigIntFromInt64(n int64) BigInt {
	return BigInt{Decimal: apd.New(n, 0)}
}

func (BigInt) isTerm() {}

func (b BigInt) String() string {
	if b.Decimal == nil {
		return "<nil-bigint>"
	}
	return b.Decimal.Text('f')
}

// Str is a prolog-style string value.
type Str string

func (Str) isTerm() {}

func (s Str) String() string { return string(s) }

// Bool is a boolean atomic value.
type Bool bool

func (Bool) isTerm() {}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// undef is the sentinel "undefined" atomic value.
type undef struct{}

func (undef) isTerm() {}

func (undef) String() string { return "undefined" }

// Undef is the unique sentinel for "undefined".
var Undef Term = undef{}

// posInf is the sentinel representing an unbounded upper limit, used
// only by between's hi argument.
type posInf struct{}

func (posInf) isTerm() {}

func (posInf) String() string { return "+inf" }

// Inf is the sentinel for an unbounded upper limit in between.
var Inf Term = posInf{}

// Seq is an ordered sequence of terms. It represents both tuples and
// cons-lists; the empty sequence is the empty list.
type Seq []Term

func (Seq) isTerm() {}

func (s Seq) String() string {
	parts := make([]string, len(s))
	for i, t := range s {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Equal reports whether a and b are the same term without chasing any
// variable bindings: identical IDs for Vars, structural equality for
// atoms, and element-wise Equal for sequences.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Var:
		bv, ok := b.(Var)
		return ok && a.ID == bv.ID
	case Int, BigInt:
		if !IsNumber(b) {
			return false
		}
		ai, _ := ToBigInt(a)
		bi, _ := ToBigInt(b)
		return CompareBigInt(ai, bi) == 0
	case Str:
		bv, ok := b.(Str)
		return ok && a == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && a == bv
	case undef:
		_, ok := b.(undef)
		return ok
	case posInf:
		_, ok := b.(posInf)
		return ok
	case Seq:
		bv, ok := b.(Seq)
		if !ok || len(a) != len(bv) {
			return false
		}
		for i := range a {
			if !Equal(a[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsNumber reports whether t is Int or BigInt.
func IsNumber(t Term) bool {
	switch t.(type) {
	case Int, BigInt:
		return true
	default:
		return false
	}
}

// kindRank orders the term kinds for Compare: variables first, then
// numbers, then strings and booleans, then sequences, with the
// sentinels tucked between atoms and sequences.
func kindRank(t Term) int {
	switch t.(type) {
	case Var:
		return 0
	case Int, BigInt:
		return 1
	case Str:
		return 2
	case Bool:
		return 3
	case undef, posInf:
		return 4
	case Seq:
		return 5
	default:
		return 6
	}
}

// Compare returns -1, 0 or 1 as a orders before, the same as, or after
// b under a total order over terms: by kind first (Var < number < Str
// < Bool < sentinel < Seq), then by value within a kind; the two
// sentinels, Undef and Inf, share a rank and compare as 0. It does not
// chase variable bindings; callers compare walked terms. It is
// grounded on the teacher's Term.Compare(Term, *Env) int64, trimmed to
// a pure structural comparison since this engine has no per-call Env
// argument threading through String/Compare.
func Compare(a, b Term) int {
	ra, rb := kindRank(a), kindRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch a := a.(type) {
	case Var:
		return strings.Compare(a.ID, b.(Var).ID)
	case Int, BigInt:
		ai, _ := ToBigInt(a)
		bi, _ := ToBigInt(b)
		return CompareBigInt(ai, bi)
	case Str:
		return strings.Compare(string(a), string(b.(Str)))
	case Bool:
		bv := bool(b.(Bool))
		av := bool(a)
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case Seq:
		bs := b.(Seq)
		for i := 0; i < len(a) && i < len(bs); i++ {
			if c := Compare(a[i], bs[i]); c != 0 {
				return c
			}
		}
		return compareInt(int64(len(a)), int64(len(bs)))
	default:
		return 0
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
