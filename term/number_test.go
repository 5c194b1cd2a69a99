package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellartux/kanren/term"
)

func TestToBigIntWidensIntAndPassesBigIntThrough(t *testing.T) {
	b, ok := term.ToBigInt(term.Int(7))
	require.True(t, ok)
	assert.Equal(t, 0, term.CompareBigInt(b, term.BigIntFromInt64(7)))

	_, ok = term.ToBigInt(term.Str("x"))
	assert.False(t, ok)
}

func TestAddAndSubBigInt(t *testing.T) {
	a := term.BigIntFromInt64(5)
	b := term.BigIntFromInt64(3)
	assert.Equal(t, 0, term.CompareBigInt(term.AddBigInt(a, b), term.BigIntFromInt64(8)))
	assert.Equal(t, 0, term.CompareBigInt(term.SubBigInt(a, b), term.BigIntFromInt64(2)))
}

func TestNonNegInt64(t *testing.T) {
	n, ok := term.NonNegInt64(term.BigIntFromInt64(42))
	require.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = term.NonNegInt64(term.BigIntFromInt64(-1))
	assert.False(t, ok)

	_, ok = term.NonNegInt64(term.Str("nope"))
	assert.False(t, ok)
}

func TestNormalizeCollapsesSmallBigIntToInt(t *testing.T) {
	assert.Equal(t, term.Int(3), term.Normalize(term.BigIntFromInt64(3)))
	assert.Equal(t, term.Int(1), term.Normalize(term.Int(1)))
}

func TestIsInf(t *testing.T) {
	assert.True(t, term.IsInf(term.Inf))
	assert.False(t, term.IsInf(term.Int(1)))
}
