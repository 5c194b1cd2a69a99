// Package subst implements the substitution: an immutable mapping from
// variable id to term, with the walk and walk* resolution algorithms.
// It is grounded on the teacher's frame-chain Env (engine/env.go),
// simplified to one binding per frame since a substitution is extended
// one variable at a time by the unifier.
package subst

import "github.com/stellartux/kanren/term"

// State is a substitution: an immutable, persistent mapping from
// variable id to term. A nil *State also has no bindings, but it
// cannot be carried as a stream element: package stream reads a nil
// head as the end of the stream.
type State struct {
	up   *State
	id   string
	term term.Term
}

// root is the empty substitution. It is a non-nil frame that holds no
// binding, so that an answer which leaves the substitution unchanged
// is still a stream element.
var root = &State{}

// Empty returns the unique initial, empty substitution.
func Empty() *State { return root }

// Extend returns a new substitution with id bound to t, sharing
// structure with s. It does not check whether id is already bound;
// the unifier guarantees it never extends a variable twice.
func (s *State) Extend(id string, t term.Term) *State {
	return &State{up: s, id: id, term: t}
}

// Lookup returns the term bound to id in s, if any.
func (s *State) Lookup(id string) (term.Term, bool) {
	for f := s; f != nil && f != root; f = f.up {
		if f.id == id {
			return f.term, true
		}
	}
	return nil, false
}

// Walk resolves t one step: if t is a variable bound in s, it follows
// the binding chain until it reaches either a non-variable or an
// unbound variable. A self-binding v ↦ v terminates at v.
func Walk(t term.Term, s *State) term.Term {
	for {
		v, ok := t.(term.Var)
		if !ok {
			return t
		}
		ref, ok := s.Lookup(v.ID)
		if !ok {
			return v
		}
		if rv, ok := ref.(term.Var); ok && rv.ID == v.ID {
			return v
		}
		t = ref
	}
}

// WalkStar is Walk followed by recursion into sequence elements.
func WalkStar(t term.Term, s *State) term.Term {
	t = Walk(t, s)
	seq, ok := t.(term.Seq)
	if !ok {
		return t
	}
	out := make(term.Seq, len(seq))
	for i, e := range seq {
		out[i] = WalkStar(e, s)
	}
	return out
}
