package relation

import (
	"github.com/stellartux/kanren"
	"github.com/stellartux/kanren/stream"
	"github.com/stellartux/kanren/subst"
	"github.com/stellartux/kanren/term"
)

// Succo relates n to n's successor, over integers (n may be negative).
// It is grounded on the teacher's numeric comparison builtins
// (engine/builtin.go's compareNumber family), generalized from a
// two-sided check into a relation that can run in reverse. With
// neither side bound it has no way to decide which n is meant and
// raises an instantiation error, the same ambiguous-mode policy Pluso
// uses.
func Succo(n, succ term.Term) kanren.Goal {
	return func(st *subst.State) stream.Stream {
		nw := subst.Walk(n, st)
		sw := subst.Walk(succ, st)

		if ni, ok := term.ToBigInt(nw); ok {
			return kanren.Eq(succ, term.Normalize(term.AddBigInt(ni, term.BigIntFromInt64(1))))(st)
		}
		if si, ok := term.ToBigInt(sw); ok {
			return kanren.Eq(n, term.Normalize(term.SubBigInt(si, term.BigIntFromInt64(1))))(st)
		}
		return stream.Error(stream.ErrInstantiation)
	}
}

// Pluso relates a, b and sum such that a + b = sum, over integers
// (any of them may be negative). Any one argument may be the unbound output; with two or
// more arguments unbound the mode is ambiguous and Pluso raises an
// instantiation error rather than guessing, per the spec's "ambiguous
// modes raise an instantiation error" rule for relational arithmetic.
func Pluso(a, b, sum term.Term) kanren.Goal {
	return func(st *subst.State) stream.Stream {
		ai, aok := term.ToBigInt(subst.Walk(a, st))
		bi, bok := term.ToBigInt(subst.Walk(b, st))
		si, sok := term.ToBigInt(subst.Walk(sum, st))

		switch {
		case aok && bok:
			return kanren.Eq(sum, term.Normalize(term.AddBigInt(ai, bi)))(st)
		case aok && sok:
			return kanren.Eq(b, term.Normalize(term.SubBigInt(si, ai)))(st)
		case bok && sok:
			return kanren.Eq(a, term.Normalize(term.SubBigInt(si, bi)))(st)
		default:
			return stream.Error(stream.ErrInstantiation)
		}
	}
}

// Between relates x to every integer in [lo, hi], inclusive. lo and hi
// may be negative. hi may be term.Inf for an unbounded range. If x is
// already a number, Between only checks lo <= x (and x <= hi unless hi
// is Inf) and succeeds at most once; otherwise it binds x to lo, lo+1,
// … in turn, which with Inf never ends.
func Between(lo, hi, x term.Term) kanren.Goal {
	return func(st *subst.State) stream.Stream {
		loI, ok := term.ToBigInt(subst.Walk(lo, st))
		if !ok {
			return stream.Error(stream.ErrInstantiation)
		}

		hiw := subst.Walk(hi, st)
		var hiI term.BigInt
		unbounded := term.IsInf(hiw)
		if !unbounded {
			hiI, ok = term.ToBigInt(hiw)
			if !ok {
				return stream.Error(stream.ErrInstantiation)
			}
		}

		xw := subst.Walk(x, st)
		if xi, ok := term.ToBigInt(xw); ok {
			if term.CompareBigInt(xi, loI) < 0 || (!unbounded && term.CompareBigInt(xi, hiI) > 0) {
				return stream.Empty
			}
			return kanren.Succeed(st)
		}

		var step func(k term.BigInt) kanren.Goal
		step = func(k term.BigInt) kanren.Goal {
			if !unbounded && term.CompareBigInt(k, hiI) > 0 {
				return kanren.Fail
			}
			return kanren.Disj(
				kanren.Eq(x, term.Normalize(k)),
				kanren.Delay(func() kanren.Goal { return step(term.AddBigInt(k, term.BigIntFromInt64(1))) }),
			)
		}
		return step(loI)(st)
	}
}
