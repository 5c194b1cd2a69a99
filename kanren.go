// Package kanren implements the goal algebra of a minimalist
// miniKanren-family relational programming engine: unification over
// ground terms and list structure, and the combinators
// (succeed/fail/==/conj/disj/disji/conde/condi/conda/condu/condr/fresh)
// whose goals produce lazy, possibly infinite streams of satisfying
// substitutions.
//
// It is grounded on the teacher's Call/Unify dispatch
// (engine/builtin.go) and its clause-alternative iteration
// (engine/vm.go), reshaped from Prolog's continuation-passing
// execution model into microKanren's pull-based Goal = State -> Stream
// model, which is what spec.md's stream layer (package stream)
// requires.
package kanren

import (
	"fmt"

	"github.com/stellartux/kanren/stream"
	"github.com/stellartux/kanren/subst"
	"github.com/stellartux/kanren/term"
)

// Goal is a function from a substitution to the lazy stream of
// substitutions that satisfy it. Goals are pure: invoking a goal on
// the same substitution any number of times yields streams with
// identical element sequences, except Condr.
type Goal func(*subst.State) stream.Stream

// ErrInstantiation is re-exported from package stream for callers that
// only import kanren.
var ErrInstantiation = stream.ErrInstantiation

// Exception is an error that carries the term that could not be
// resolved to a decision, e.g. a value of the wrong type passed to a
// relational predicate. It mirrors the teacher's Exception
// (engine/exception.go). Only TypeError constructs one; instantiation
// errors are reported with the ErrInstantiation sentinel instead.
type Exception struct {
	Kind    string
	Culprit term.Term
}

func (e *Exception) Error() string {
	if e.Culprit == nil {
		return e.Kind
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Culprit)
}

// TypeError constructs an Exception reporting that culprit does not
// have the shape validType requires.
func TypeError(validType string, culprit term.Term) error {
	return &Exception{Kind: "type_error(" + validType + ")", Culprit: culprit}
}

// Succeed is the goal that always succeeds, without extending the
// substitution.
func Succeed(s *subst.State) stream.Stream { return stream.Unit(s) }

// Fail is the goal that never succeeds.
func Fail(s *subst.State) stream.Stream { return stream.Empty }

// Eq unifies u and v without an occurs check.
func Eq(u, v term.Term) Goal {
	return func(s *subst.State) stream.Stream {
		s2, ok := unify(u, v, s)
		if !ok {
			return stream.Empty
		}
		return stream.Unit(s2)
	}
}

// EqOccurs unifies u and v with an occurs check: it refuses to bind a
// variable to a term that contains that same variable.
func EqOccurs(u, v term.Term) Goal {
	return func(s *subst.State) stream.Stream {
		s2, ok := unifyOccurs(u, v, s)
		if !ok {
			return stream.Empty
		}
		return stream.Unit(s2)
	}
}

// unify implements the five-step algorithm of spec.md §4.C.
func unify(u, v term.Term, s *subst.State) (*subst.State, bool) {
	u = subst.Walk(u, s)
	v = subst.Walk(v, s)

	if term.Equal(u, v) {
		return s, true
	}
	if uv, ok := u.(term.Var); ok {
		return s.Extend(uv.ID, v), true
	}
	if vv, ok := v.(term.Var); ok {
		return s.Extend(vv.ID, u), true
	}
	us, uok := u.(term.Seq)
	vs, vok := v.(term.Seq)
	if uok && vok {
		if len(us) != len(vs) {
			return s, false
		}
		for i := range us {
			var ok bool
			s, ok = unify(us[i], vs[i], s)
			if !ok {
				return s, false
			}
		}
		return s, true
	}
	return s, false
}

func unifyOccurs(u, v term.Term, s *subst.State) (*subst.State, bool) {
	u = subst.Walk(u, s)
	v = subst.Walk(v, s)

	if term.Equal(u, v) {
		return s, true
	}
	if uv, ok := u.(term.Var); ok {
		if occurs(uv.ID, v, s) {
			return s, false
		}
		return s.Extend(uv.ID, v), true
	}
	if vv, ok := v.(term.Var); ok {
		if occurs(vv.ID, u, s) {
			return s, false
		}
		return s.Extend(vv.ID, u), true
	}
	us, uok := u.(term.Seq)
	vs, vok := v.(term.Seq)
	if uok && vok {
		if len(us) != len(vs) {
			return s, false
		}
		for i := range us {
			var ok bool
			s, ok = unifyOccurs(us[i], vs[i], s)
			if !ok {
				return s, false
			}
		}
		return s, true
	}
	return s, false
}

func occurs(id string, t term.Term, s *subst.State) bool {
	switch t := subst.Walk(t, s).(type) {
	case term.Var:
		return t.ID == id
	case term.Seq:
		for _, e := range t {
			if occurs(id, e, s) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
