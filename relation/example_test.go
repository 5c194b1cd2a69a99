package relation_test

import (
	"fmt"

	"github.com/stellartux/kanren"
	"github.com/stellartux/kanren/relation"
	"github.com/stellartux/kanren/stream"
	"github.com/stellartux/kanren/term"
)

// ExampleAppendo_splits demonstrates appendo run backwards: given only
// the concatenated list, it enumerates every way to split it into a
// prefix and a suffix.
func ExampleAppendo_splits() {
	p, s := term.NewVar("p"), term.NewVar("s")
	goal := relation.Appendo(p, s, term.Seq{term.Int(1), term.Int(2), term.Int(3)})

	result, _ := kanren.Run(-1, goal)
	states, _ := stream.Collect(result, -1)
	for _, st := range states {
		fmt.Println(kanren.Reify(p, st), "|", kanren.Reify(s, st))
	}
	// Output:
	// () | (1 2 3)
	// (1) | (2 3)
	// (1 2) | (3)
	// (1 2 3) | ()
}

// ExamplePluso_reverse shows pluso solving for an addend given the sum.
func ExamplePluso_reverse() {
	b := term.NewVar("b")
	goal := relation.Pluso(term.Int(2), b, term.Int(5))

	result, _ := kanren.Run(-1, goal)
	states, _ := stream.Collect(result, -1)
	fmt.Println(kanren.Reify(b, states[0]))
	// Output: 3
}

// ExampleMembero demonstrates membero yielding one answer per matching
// position, including one that leaves an unrelated element unbound.
func ExampleMembero() {
	x := term.NewVar("x")
	goal := relation.Membero(term.Int(1), term.Seq{term.Int(1), term.Int(2), x, term.Int(4)})

	result, _ := kanren.Run(-1, goal)
	states, _ := stream.Collect(result, -1)
	fmt.Println(len(states))
	fmt.Println(kanren.Reify(x, states[1]))
	// Output:
	// 2
	// 1
}
