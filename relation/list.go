package relation

import (
	"github.com/stellartux/kanren"
	"github.com/stellartux/kanren/stream"
	"github.com/stellartux/kanren/subst"
	"github.com/stellartux/kanren/term"
)

// Membero relates x to each element of l in turn, yielding one
// substitution per matching position. It is grounded on the teacher's
// ListIterator (engine/iterator.go), which walks a list one cell at a
// time rather than requiring it be fully materialized up front.
func Membero(x, l term.Term) kanren.Goal {
	return func(st *subst.State) stream.Stream {
		if seq, ok := subst.Walk(l, st).(term.Seq); ok {
			gs := make([]kanren.Goal, len(seq))
			for i, e := range seq {
				gs[i] = kanren.Eq(x, e)
			}
			return kanren.Disj(gs...)(st)
		}
		// l unbound: enumerate every (length, position) pair so that
		// membero(x, l) eventually offers l = [x], l = [_, x], [x, _],
		// l = [_, _, x], and so on.
		return enumerateLengths(func(n int) kanren.Goal {
			if n == 0 {
				return kanren.Fail
			}
			gs := make([]kanren.Goal, n)
			for k := 0; k < n; k++ {
				before := freshSeq(k)
				after := freshSeq(n - k - 1)
				gs[k] = kanren.Eq(l, concatSeq(concatSeq(before, term.Seq{x}), after))
			}
			return kanren.Disj(gs...)
		})(st)
	}
}

// Listo succeeds once for every Seq l could be: immediately if l is
// already a Seq, or by enumerating l = [], l = [_], l = [_, _], … if l
// is unbound. Any other value of l fails.
func Listo(l term.Term) kanren.Goal {
	return func(st *subst.State) stream.Stream {
		lw := subst.Walk(l, st)
		if _, ok := lw.(term.Seq); ok {
			return kanren.Succeed(st)
		}
		if _, ok := lw.(term.Var); !ok {
			return stream.Empty
		}
		return enumerateLengths(func(n int) kanren.Goal {
			return kanren.Eq(l, freshSeq(n))
		})(st)
	}
}

// Lengtho relates l to its length n.
func Lengtho(l, n term.Term) kanren.Goal {
	return func(st *subst.State) stream.Stream {
		lw := subst.Walk(l, st)
		nw := subst.Walk(n, st)

		if seq, ok := lw.(term.Seq); ok {
			return kanren.Eq(n, bigIntTerm(len(seq)))(st)
		}
		if k, ok := term.NonNegInt64(nw); ok {
			return kanren.Eq(l, freshSeq(k))(st)
		}
		return enumerateLengths(func(k int) kanren.Goal {
			return kanren.Conj(kanren.Eq(n, bigIntTerm(k)), kanren.Eq(l, freshSeq(k)))
		})(st)
	}
}

// Appendo relates p, s and l such that l is p's elements followed by
// s's elements. It dispatches on which of p and l are already known to
// be sequences (i.e. their length is fixed): with only l known it
// tries every split of l, which is how appendo(-, -, [1,2,3,4])
// enumerates its five answers, and when neither is known it falls back
// to the diagonal enumeration of every (len(p), len(s)) pair, which
// lets the fully unbound appendo(-, -, -) produce every solution at a
// finite depth.
func Appendo(p, s, l term.Term) kanren.Goal {
	return func(st *subst.State) stream.Stream {
		pw := subst.Walk(p, st)
		lw := subst.Walk(l, st)

		if pSeq, ok := pw.(term.Seq); ok {
			if sSeq, ok := subst.Walk(s, st).(term.Seq); ok {
				return kanren.Eq(l, concatSeq(pSeq, sSeq))(st)
			}
			if lSeq, ok := lw.(term.Seq); ok {
				if len(pSeq) > len(lSeq) {
					return stream.Empty
				}
				return kanren.Conj(
					kanren.Eq(p, lSeq[:len(pSeq)]),
					kanren.Eq(s, lSeq[len(pSeq):]),
				)(st)
			}
			return enumerateLengths(func(j int) kanren.Goal {
				tail := freshSeq(j)
				return kanren.Conj(kanren.Eq(s, tail), kanren.Eq(l, concatSeq(pSeq, tail)))
			})(st)
		}

		if lSeq, ok := lw.(term.Seq); ok {
			gs := make([]kanren.Goal, len(lSeq)+1)
			for k := 0; k <= len(lSeq); k++ {
				k := k
				gs[k] = kanren.Conj(
					kanren.Eq(p, lSeq[:k]),
					kanren.Eq(s, lSeq[k:]),
				)
			}
			return kanren.Disj(gs...)(st)
		}

		return enumeratePairs(func(k, j int) kanren.Goal {
			pv, sv := freshSeq(k), freshSeq(j)
			return kanren.Conj(
				kanren.Eq(p, pv),
				kanren.Eq(s, sv),
				kanren.Eq(l, concatSeq(pv, sv)),
			)
		})(st)
	}
}

// Conso relates car, cdr and list such that list is car prepended to
// cdr. It is appendo specialized to a single-element prefix.
func Conso(car, cdr, list term.Term) kanren.Goal {
	return Appendo(term.Seq{car}, cdr, list)
}

// Caro relates p to its first element.
func Caro(p, x term.Term) kanren.Goal {
	return kanren.CallFresh("cdr", func(cdr term.Var) kanren.Goal {
		return Conso(x, cdr, p)
	})
}

// Cdro relates p to everything but its first element.
func Cdro(p, rest term.Term) kanren.Goal {
	return kanren.CallFresh("car", func(car term.Var) kanren.Goal {
		return Conso(car, rest, p)
	})
}

// Firsto is Caro under the name the list-predicate family also uses.
func Firsto(l, x term.Term) kanren.Goal {
	return Caro(l, x)
}

// Lasto relates l to its final element.
func Lasto(l, x term.Term) kanren.Goal {
	return kanren.CallFresh("front", func(front term.Var) kanren.Goal {
		return Appendo(front, term.Seq{x}, l)
	})
}

// Ntho relates l's element at zero-based index n to x.
func Ntho(l, n, x term.Term) kanren.Goal {
	return func(st *subst.State) stream.Stream {
		lw := subst.Walk(l, st)
		nw := subst.Walk(n, st)

		if seq, ok := lw.(term.Seq); ok {
			if idx, ok := term.NonNegInt64(nw); ok {
				if idx >= len(seq) {
					return stream.Empty
				}
				return kanren.Eq(x, seq[idx])(st)
			}
			gs := make([]kanren.Goal, len(seq))
			for i := range seq {
				i := i
				gs[i] = kanren.Conj(kanren.Eq(n, bigIntTerm(i)), kanren.Eq(x, seq[i]))
			}
			return kanren.Disj(gs...)(st)
		}

		if idx, ok := term.NonNegInt64(nw); ok {
			before := freshSeq(idx)
			return enumerateLengths(func(m int) kanren.Goal {
				after := freshSeq(m)
				return kanren.Eq(l, concatSeq(concatSeq(before, term.Seq{x}), after))
			})(st)
		}

		return enumeratePairs(func(idx, m int) kanren.Goal {
			before, after := freshSeq(idx), freshSeq(m)
			return kanren.Conj(
				kanren.Eq(n, bigIntTerm(idx)),
				kanren.Eq(l, concatSeq(concatSeq(before, term.Seq{x}), after)),
			)
		})(st)
	}
}

// Anyo succeeds if g succeeds for at least one element of a list
// produced by repeatedly trying g and its successors, mirroring
// Reddy's classic any/1: it is disji(g, delay(anyo(g))) so that
// diverging alternatives further down the disjunction don't starve
// the ones before them.
func Anyo(g kanren.Goal) kanren.Goal {
	return kanren.Disji(g, kanren.Delay(func() kanren.Goal { return Anyo(g) }))
}
