package kanren

import (
	"strconv"

	"github.com/stellartux/kanren/stream"
	"github.com/stellartux/kanren/subst"
	"github.com/stellartux/kanren/term"
)

// Conj is the left fold of g1..gn with Bind: conj() is Succeed;
// conj(g) is g. If g1 fails immediately, Bind never invokes g2, so a
// failing goal anywhere in the chain halts evaluation there without
// requiring g2 to be inspected — this is what makes
// conj(fail, diverging-goal) terminate.
func Conj(gs ...Goal) Goal {
	switch len(gs) {
	case 0:
		return Succeed
	case 1:
		return gs[0]
	}
	return func(s *subst.State) stream.Stream {
		out := gs[0](s)
		for _, g := range gs[1:] {
			g := g
			out = stream.Bind(out, g)
		}
		return out
	}
}

// Disj is the left fold of g1..gn with sequential mplus: every
// substitution from clause i is yielded before any from clause i+1.
// disj() is Fail; disj(g) is g.
func Disj(gs ...Goal) Goal {
	switch len(gs) {
	case 0:
		return Fail
	case 1:
		return gs[0]
	}
	return func(s *subst.State) stream.Stream {
		out := gs[0](s)
		for _, g := range gs[1:] {
			g := g
			out = stream.MPlusSeq(out, stream.Suspend(func() stream.Stream { return g(s) }))
		}
		return out
	}
}

// Disji interleaves g1..gn in strict round-robin order. disji() is
// Fail; disji(g) is g.
func Disji(gs ...Goal) Goal {
	switch len(gs) {
	case 0:
		return Fail
	case 1:
		return gs[0]
	}
	return func(s *subst.State) stream.Stream {
		streams := make([]stream.Stream, len(gs))
		for i, g := range gs {
			g := g
			streams[i] = stream.Suspend(func() stream.Stream { return g(s) })
		}
		return stream.MPlusInt(streams...)
	}
}

// Condr randomly interleaves g1..gn, picking a uniformly random
// non-exhausted goal on every pull. It is explicitly non-deterministic
// and must not appear in deterministic tests.
func Condr(gs ...Goal) Goal {
	switch len(gs) {
	case 0:
		return Fail
	case 1:
		return gs[0]
	}
	return func(s *subst.State) stream.Stream {
		streams := make([]stream.Stream, len(gs))
		for i, g := range gs {
			g := g
			streams[i] = stream.Suspend(func() stream.Stream { return g(s) })
		}
		return stream.MPlusRand(streams...)
	}
}

// Delay returns a goal that, when invoked, calls gc to build the inner
// goal and immediately invokes it. gc is never called at construction
// time; this is what lets recursive goal definitions like
//
//	func fives() Goal {
//		return Disj(Eq(term.Int(5), x), Delay(fives))
//	}
//
// break left-recursion: constructing the Disj does not recurse into
// fives again until a consumer actually pulls from the stream.
func Delay(gc func() Goal) Goal {
	return func(s *subst.State) stream.Stream {
		return stream.Suspend(func() stream.Stream { return gc()(s) })
	}
}

// TakeGoal returns a goal that truncates g's stream to at most n
// substitutions. A negative n means unlimited.
func TakeGoal(n int, g Goal) Goal {
	return func(s *subst.State) stream.Stream {
		return stream.Limit(n, g(s))
	}
}

// CallFresh creates v = Var(name) and invokes gc(v) on the original
// substitution. v is given a globally unique id regardless of how many
// times CallFresh(name, ...) is called, so recursive goals that call
// CallFresh repeatedly never collide, and no binding for v needs to be
// recorded up front.
func CallFresh(name string, gc func(term.Var) Goal) Goal {
	return func(s *subst.State) stream.Stream {
		v := term.NewVar(name)
		return gc(v)(s)
	}
}

// Fresh is call-fresh iterated over names: it creates one variable per
// name and invokes gc with all of them in order. Passing the list of
// names explicitly is the alternate API the design notes call for,
// since Go (unlike the Racket source) cannot recover parameter names
// from a function value at runtime.
func Fresh(names []string, gc func([]term.Var) Goal) Goal {
	return func(s *subst.State) stream.Stream {
		vs := make([]term.Var, len(names))
		for i, n := range names {
			vs[i] = term.NewVar(n)
		}
		return gc(vs)(s)
	}
}

// Clause is a sequence of goals. A bare goal is a single-element
// Clause. Conde and Condi conjoin a clause's goals; Conda and Condu
// treat the first goal as the clause's head and the rest as its tail.
type Clause []Goal

func (c Clause) asGoal() Goal { return Conj(c...) }

func (c Clause) headTail() (Goal, Goal) {
	if len(c) == 0 {
		return Succeed, Succeed
	}
	return c[0], Conj(c[1:]...)
}

// Conde is sequential disjunction over conjunctive clauses:
// disj(conj(clause1...), conj(clause2...), ...).
func Conde(clauses ...Clause) Goal {
	gs := make([]Goal, len(clauses))
	for i, c := range clauses {
		gs[i] = c.asGoal()
	}
	return Disj(gs...)
}

// Condi is Conde using interleaved disjunction.
func Condi(clauses ...Clause) Goal {
	gs := make([]Goal, len(clauses))
	for i, c := range clauses {
		gs[i] = c.asGoal()
	}
	return Disji(gs...)
}

// Conda is the soft cut: it finds the first clause whose head goal
// yields at least one substitution, commits to that clause's tail over
// the head's full stream, and discards every subsequent clause. A
// clause whose head succeeds once but whose tail fails yields nothing
// further — it does not fall through to later clauses.
func Conda(clauses ...Clause) Goal {
	return func(s *subst.State) stream.Stream {
		for _, c := range clauses {
			head, tail := c.headTail()
			h, rest, err := stream.Uncons(head(s))
			if err != nil {
				return stream.Error(err)
			}
			if h == nil {
				continue
			}
			headStream := stream.Cons(h, rest)
			return stream.Bind(headStream, func(s2 *subst.State) stream.Stream { return tail(s2) })
		}
		return stream.Empty
	}
}

// Condu is committed choice: like Conda, but only the first yielded
// substitution of the committing head is used, and the clause's tail
// is evaluated once against it.
func Condu(clauses ...Clause) Goal {
	return func(s *subst.State) stream.Stream {
		for _, c := range clauses {
			head, tail := c.headTail()
			h, _, err := stream.Uncons(head(s))
			if err != nil {
				return stream.Error(err)
			}
			if h == nil {
				continue
			}
			return tail(h)
		}
		return stream.Empty
	}
}

// Run seeds the empty substitution into goal and returns a stream of
// at most n substitutions, or every substitution if n is negative. It
// is equivalent to TakeGoal(n, goal)(Empty()); the error return exists
// for parity with callers that branch on Run failing outright, though
// Run itself never produces one.
func Run(n int, goal Goal) (stream.Stream, error) {
	return stream.Limit(n, goal(subst.Empty())), nil
}

// RunAll seeds the empty substitution into goal and returns the full,
// possibly infinite stream of substitutions.
func RunAll(goal Goal) stream.Stream {
	return goal(subst.Empty())
}

// Reify performs a deep walk of t against s and renumbers the
// remaining free variables to a canonical $0, $1, … presentation, so
// that test assertions don't depend on the internal ids NewVar
// happened to allocate. The "$" sigil is reserved for Reify's output
// and never produced by NewVar, so a reified term's variable ids never
// collide with a live variable's id if it is walked again.
func Reify(t term.Term, s *subst.State) term.Term {
	counter := 0
	names := map[string]term.Term{}
	var walk func(t term.Term) term.Term
	walk = func(t term.Term) term.Term {
		t = subst.Walk(t, s)
		switch t := t.(type) {
		case term.Var:
			if n, ok := names[t.ID]; ok {
				return n
			}
			n := term.Var{ID: "$" + strconv.Itoa(counter)}
			counter++
			names[t.ID] = n
			return n
		case term.Seq:
			out := make(term.Seq, len(t))
			for i, e := range t {
				out[i] = walk(e)
			}
			return out
		default:
			return t
		}
	}
	return walk(t)
}
