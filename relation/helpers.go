// Package relation is the relational predicate library: arithmetic,
// list, string, and type predicates built on top of package kanren's
// goal algebra. Each predicate is specified by its behavior for every
// mode its arguments can take (ground, unbound, or partially
// instantiated), grounded on the teacher's argument-mode dispatch
// (engine/builtin.go, e.g. Functor and TypeInteger) and its list
// walking (engine/iterator.go's ListIterator).
//
// Because this engine's Term.Seq is a flat ordered sequence rather
// than a recursive cons-pair, the list modes where the length of a
// list is not known are resolved by lazily enumerating candidate
// shapes of increasing size — the same technique Listo and Lengtho already need
// for "x unbound, emit bindings for every n ≥ 0" — rather than by
// building an open-tailed pair structure into the core term model.
package relation

import (
	"github.com/stellartux/kanren"
	"github.com/stellartux/kanren/term"
)

// freshSeq returns a Seq of n distinct anonymous fresh variables.
func freshSeq(n int) term.Seq {
	out := make(term.Seq, n)
	for i := range out {
		out[i] = term.NewVar("")
	}
	return out
}

// concatSeq returns a new Seq with b's elements appended after a's.
func concatSeq(a, b term.Seq) term.Seq {
	out := make(term.Seq, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// enumerateLengths lazily tries build(0), build(1), build(2), … in
// order, never constructing build(n+1) until build(n)'s stream is
// exhausted. It is how Listo, Lengtho, Appendo and Ntho produce their
// "for every n ≥ 0" infinite enumerations without recursing eagerly.
func enumerateLengths(build func(n int) kanren.Goal) kanren.Goal {
	var step func(n int) kanren.Goal
	step = func(n int) kanren.Goal {
		return kanren.Disj(build(n), kanren.Delay(func() kanren.Goal { return step(n + 1) }))
	}
	return step(0)
}

// enumeratePairs lazily tries every (k, j) pair with k+j = 0, then
// k+j = 1, then k+j = 2, … so that every pair is reached at a finite
// depth even when both dimensions are unbounded. Appendo's
// fully-unbound mode (p, s, and l all fresh) uses this instead of
// enumerateLengths nested inside itself, which would never advance
// past k=0.
func enumeratePairs(build func(k, j int) kanren.Goal) kanren.Goal {
	var step func(total int) kanren.Goal
	step = func(total int) kanren.Goal {
		gs := make([]kanren.Goal, 0, total+2)
		for k := 0; k <= total; k++ {
			gs = append(gs, build(k, total-k))
		}
		gs = append(gs, kanren.Delay(func() kanren.Goal { return step(total + 1) }))
		return kanren.Disj(gs...)
	}
	return step(0)
}

func bigIntTerm(n int) term.Term {
	return term.Normalize(term.BigIntFromInt64(int64(n)))
}
