package relation

import (
	"strings"

	"github.com/cockroachdb/apd"

	"github.com/stellartux/kanren"
	"github.com/stellartux/kanren/stream"
	"github.com/stellartux/kanren/subst"
	"github.com/stellartux/kanren/term"
)

// Numbero succeeds if t is an Int or BigInt. An unbound t is decidably
// not a number, so it fails silently rather than raising: unlike
// Pluso's arithmetic modes, a type test is always decidable and never
// needs more information to answer.
func Numbero(t term.Term) kanren.Goal {
	return func(st *subst.State) stream.Stream {
		if term.IsNumber(subst.Walk(t, st)) {
			return kanren.Succeed(st)
		}
		return stream.Empty
	}
}

// Groundo succeeds if t contains no unbound variables once fully
// walked.
func Groundo(t term.Term) kanren.Goal {
	return func(st *subst.State) stream.Stream {
		if isGround(subst.WalkStar(t, st)) {
			return kanren.Succeed(st)
		}
		return stream.Empty
	}
}

func isGround(t term.Term) bool {
	switch t := t.(type) {
	case term.Var:
		return false
	case term.Seq:
		for _, e := range t {
			if !isGround(e) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// StringChars relates a Str to the Seq of its single-character Str
// elements, in either direction.
func StringChars(s, chars term.Term) kanren.Goal {
	return func(st *subst.State) stream.Stream {
		if str, ok := subst.Walk(s, st).(term.Str); ok {
			return kanren.Eq(chars, charSeq(string(str)))(st)
		}
		if seq, ok := subst.Walk(chars, st).(term.Seq); ok {
			joined, err := joinChars(seq)
			if err != nil {
				return stream.Error(err)
			}
			return kanren.Eq(s, term.Str(joined))(st)
		}
		return stream.Error(stream.ErrInstantiation)
	}
}

// NumberChars relates a number to the Seq of the single-character Str
// elements of its decimal representation, in either direction.
func NumberChars(n, chars term.Term) kanren.Goal {
	return func(st *subst.State) stream.Stream {
		nw := subst.Walk(n, st)
		if term.IsNumber(nw) {
			return kanren.Eq(chars, charSeq(nw.String()))(st)
		}
		if seq, ok := subst.Walk(chars, st).(term.Seq); ok {
			joined, err := joinChars(seq)
			if err != nil {
				return stream.Error(err)
			}
			d, _, err := apd.NewFromString(joined)
			if err != nil {
				return stream.Error(kanren.TypeError("number", chars))
			}
			return kanren.Eq(n, term.Normalize(term.NewBigInt(d)))(st)
		}
		return stream.Error(stream.ErrInstantiation)
	}
}

func charSeq(s string) term.Seq {
	runes := []rune(s)
	seq := make(term.Seq, len(runes))
	for i, r := range runes {
		seq[i] = term.Str(string(r))
	}
	return seq
}

func joinChars(seq term.Seq) (string, error) {
	var b strings.Builder
	for _, e := range seq {
		s, ok := e.(term.Str)
		if !ok {
			return "", kanren.TypeError("character", e)
		}
		b.WriteString(string(s))
	}
	return b.String(), nil
}
