// Package stream implements the lazy, forward-only sequence of
// substitutions that goals produce, along with the combinators that
// compose them: sequential and interleaved mplus, and bind.
//
// A Stream is one of three shapes, mirroring the "{Empty, Mature,
// Immature}" tagged variant the design notes call for: empty, a cons
// cell of one substitution plus the rest of the stream, or a
// suspension — a thunk that produces a Stream when forced. A fourth
// shape, the error stream built by Error, reports an error when pulled. The
// trampoline that forces suspensions one at a time (see Uncons) is
// grounded on the teacher's Promise.Force (engine/promise.go), reshaped
// from a bool-result promise into one that yields substitutions.
package stream

import (
	"errors"

	"github.com/stellartux/kanren/subst"
)

// ErrInstantiation signals that a goal cannot be decided without more
// information about its arguments. Unlike logical failure (an empty
// stream), it propagates synchronously to the consumer pulling the
// stream.
var ErrInstantiation = errors.New("instantiation error")

// Stream is a lazy sequence of substitutions.
type Stream interface {
	isStream()
}

type empty struct{}

func (empty) isStream() {}

// Empty is the stream with no elements.
var Empty Stream = empty{}

type cons struct {
	head *subst.State
	rest Stream
}

func (cons) isStream() {}

// Unit returns the single-element stream containing s.
func Unit(s *subst.State) Stream {
	return cons{head: s, rest: Empty}
}

// Cons returns a stream whose first element is head and whose
// remaining elements come from rest.
func Cons(head *subst.State, rest Stream) Stream {
	return cons{head: head, rest: rest}
}

type suspension struct {
	thunk func() Stream
}

func (suspension) isStream() {}

// Suspend returns an immature stream: f is not invoked until the
// stream is pulled. Goals use this to break left-recursion — invoking
// a goal returns a Suspend immediately, deferring the recursive call
// until a consumer actually asks for an element.
func Suspend(f func() Stream) Stream {
	return suspension{thunk: f}
}

type errStream struct {
	err error
}

func (errStream) isStream() {}

// Error returns a stream that, when pulled, reports err and then
// terminates. Combinators built on Uncons propagate it to the nearest
// consumer without recovering.
func Error(err error) Stream {
	return errStream{err: err}
}

// Uncons forces s until it can report its first element. It returns
// (head, rest, nil) if s has an element, (nil, nil, nil) if s is
// exhausted, and (nil, nil, err) if pulling s raised an error.
func Uncons(s Stream) (*subst.State, Stream, error) {
	for {
		switch v := s.(type) {
		case empty:
			return nil, nil, nil
		case errStream:
			return nil, nil, v.err
		case cons:
			return v.head, v.rest, nil
		case suspension:
			s = v.thunk()
		default:
			panic("stream: unreachable stream variant")
		}
	}
}

// MPlusSeq concatenates a and b: it fully enumerates a before
// enumerating b. Used by Disj and Conde.
func MPlusSeq(a, b Stream) Stream {
	head, rest, err := Uncons(a)
	if err != nil {
		return Error(err)
	}
	if head == nil {
		return b
	}
	return Cons(head, Suspend(func() Stream { return MPlusSeq(rest, b) }))
}

// MPlusInt interleaves any number of streams in strict round-robin
// order, skipping exhausted ones: the k-th pull comes from streams[k
// mod m] among the streams still alive. Used by Disji and Condi.
func MPlusInt(streams ...Stream) Stream {
	return roundRobin(streams)
}

func roundRobin(qs []Stream) Stream {
	for len(qs) > 0 {
		head, rest, err := Uncons(qs[0])
		if err != nil {
			return Error(err)
		}
		if head == nil {
			qs = qs[1:]
			continue
		}
		next := make([]Stream, 0, len(qs))
		next = append(next, qs[1:]...)
		next = append(next, rest)
		return Cons(head, Suspend(func() Stream { return roundRobin(next) }))
	}
	return Empty
}

// Bind splices goal(s) into the stream for every substitution s pulled
// from in, before advancing to the next element of in. It is the
// sequential composition used by Conj.
func Bind(in Stream, goal func(*subst.State) Stream) Stream {
	head, rest, err := Uncons(in)
	if err != nil {
		return Error(err)
	}
	if head == nil {
		return Empty
	}
	return MPlusSeq(goal(head), Suspend(func() Stream { return Bind(rest, goal) }))
}

// Limit truncates s to at most n elements. A negative n means
// unlimited.
func Limit(n int, s Stream) Stream {
	if n == 0 {
		return Empty
	}
	head, rest, err := Uncons(s)
	if err != nil {
		return Error(err)
	}
	if head == nil {
		return Empty
	}
	if n < 0 {
		return Cons(head, Suspend(func() Stream { return Limit(n, rest) }))
	}
	return Cons(head, Suspend(func() Stream { return Limit(n-1, rest) }))
}

// Collect eagerly pulls at most max elements from s (all of them, if
// max is negative) and returns the resulting substitutions. It exists
// for tests and callers that want a materialized slice instead of
// pulling by hand; it must not be used on an unbounded stream with a
// negative max.
func Collect(s Stream, max int) ([]*subst.State, error) {
	var out []*subst.State
	for max < 0 || len(out) < max {
		head, rest, err := Uncons(s)
		if err != nil {
			return out, err
		}
		if head == nil {
			return out, nil
		}
		out = append(out, head)
		s = rest
	}
	return out, nil
}
