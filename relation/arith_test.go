package relation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellartux/kanren"
	"github.com/stellartux/kanren/relation"
	"github.com/stellartux/kanren/stream"
	"github.com/stellartux/kanren/term"
)

func TestSuccoForwardAndBackward(t *testing.T) {
	succ := term.NewVar("succ")
	got := collectReified(t, -1, succ, relation.Succo(term.Int(4), succ))
	assert.Equal(t, []term.Term{term.Int(5)}, got)

	n := term.NewVar("n")
	got = collectReified(t, -1, n, relation.Succo(n, term.Int(5)))
	assert.Equal(t, []term.Term{term.Int(4)}, got)
}

func TestSuccoZeroHasNegativePredecessor(t *testing.T) {
	n := term.NewVar("n")
	got := collectReified(t, -1, n, relation.Succo(n, term.Int(0)))
	assert.Equal(t, []term.Term{term.Int(-1)}, got)
}

func TestSuccoOfNegativeInteger(t *testing.T) {
	succ := term.NewVar("succ")
	got := collectReified(t, -1, succ, relation.Succo(term.Int(-3), succ))
	assert.Equal(t, []term.Term{term.Int(-2)}, got)
}

func TestPlusoAllThreeModes(t *testing.T) {
	sum := term.NewVar("sum")
	got := collectReified(t, -1, sum, relation.Pluso(term.Int(2), term.Int(3), sum))
	assert.Equal(t, []term.Term{term.Int(5)}, got)

	b := term.NewVar("b")
	got = collectReified(t, -1, b, relation.Pluso(term.Int(2), b, term.Int(5)))
	assert.Equal(t, []term.Term{term.Int(3)}, got)

	a := term.NewVar("a")
	got = collectReified(t, -1, a, relation.Pluso(a, term.Int(3), term.Int(5)))
	assert.Equal(t, []term.Term{term.Int(2)}, got)
}

func TestPlusoTwoUnboundArgumentsIsInstantiationError(t *testing.T) {
	a, b := term.NewVar("a"), term.NewVar("b")
	s, err := kanren.Run(-1, relation.Pluso(a, b, term.Int(3)))
	require.NoError(t, err)
	_, err = stream.Collect(s, -1)
	assert.ErrorIs(t, err, stream.ErrInstantiation)
}

func TestSuccoBothUnboundIsInstantiationError(t *testing.T) {
	n, succ := term.NewVar("n"), term.NewVar("succ")
	s, err := kanren.Run(-1, relation.Succo(n, succ))
	require.NoError(t, err)
	_, err = stream.Collect(s, -1)
	assert.ErrorIs(t, err, stream.ErrInstantiation)
}

func TestBetweenGroundMembershipCheck(t *testing.T) {
	s, err := kanren.Run(-1, relation.Between(term.Int(1), term.Int(5), term.Int(3)))
	require.NoError(t, err)
	got, err := stream.Collect(s, -1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	s, err = kanren.Run(-1, relation.Between(term.Int(1), term.Int(5), term.Int(9)))
	require.NoError(t, err)
	got, err = stream.Collect(s, -1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBetweenUnboundEnumeratesRange(t *testing.T) {
	x := term.NewVar("x")
	got := collectReified(t, -1, x, relation.Between(term.Int(2), term.Int(4), x))
	assert.Equal(t, []term.Term{term.Int(2), term.Int(3), term.Int(4)}, got)
}

func TestBetweenNegativeBoundsEnumerate(t *testing.T) {
	x := term.NewVar("x")
	got := collectReified(t, -1, x, relation.Between(term.Int(-2), term.Int(2), x))
	assert.Equal(t, []term.Term{
		term.Int(-2), term.Int(-1), term.Int(0), term.Int(1), term.Int(2),
	}, got)
}

func TestBetweenUnboundedUpperLimitTakesN(t *testing.T) {
	x := term.NewVar("x")
	got := collectReified(t, 3, x, relation.Between(term.Int(10), term.Inf, x))
	assert.Equal(t, []term.Term{term.Int(10), term.Int(11), term.Int(12)}, got)
}
