package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stellartux/kanren/term"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, term.KindVar, term.Classify(term.NewVar("x")))
	assert.Equal(t, term.KindAtom, term.Classify(term.Int(3)))
	assert.Equal(t, term.KindAtom, term.Classify(term.Str("s")))
	assert.Equal(t, term.KindSeq, term.Classify(term.Seq{term.Int(1)}))
}

func TestEqualIgnoresVarNameButNotID(t *testing.T) {
	x := term.NewVar("x")
	y := term.NewVar("y")
	assert.True(t, term.Equal(x, x))
	assert.False(t, term.Equal(x, y))
}

func TestEqualStructuralForAtomsAndSeqs(t *testing.T) {
	assert.True(t, term.Equal(term.Int(3), term.Int(3)))
	assert.False(t, term.Equal(term.Int(3), term.Int(4)))
	assert.True(t, term.Equal(term.Seq{term.Int(1), term.Str("a")}, term.Seq{term.Int(1), term.Str("a")}))
	assert.False(t, term.Equal(term.Seq{term.Int(1)}, term.Seq{term.Int(1), term.Int(2)}))
}

func TestEqualIsStructuralAcrossIntAndBigInt(t *testing.T) {
	assert.True(t, term.Equal(term.Int(3), term.BigIntFromInt64(3)))
	assert.True(t, term.Equal(term.BigIntFromInt64(3), term.Int(3)))
	assert.False(t, term.Equal(term.Int(3), term.BigIntFromInt64(4)))
}

func TestEqualRejectsMixedKinds(t *testing.T) {
	assert.False(t, term.Equal(term.Int(1), term.Str("1")))
	assert.False(t, term.Equal(term.Seq{term.Int(1)}, term.Int(1)))
}

func TestCompareOrdersByKindThenValue(t *testing.T) {
	assert.Equal(t, -1, term.Compare(term.NewVar(""), term.Int(0)))
	assert.Equal(t, -1, term.Compare(term.Int(1), term.Str("a")))
	assert.Equal(t, -1, term.Compare(term.Str("a"), term.Bool(true)))
	assert.Equal(t, 0, term.Compare(term.Int(5), term.Int(5)))
	assert.Equal(t, -1, term.Compare(term.Int(4), term.Int(5)))
	assert.Equal(t, 1, term.Compare(term.Int(5), term.Int(4)))
}

func TestCompareSequencesLexicographicThenByLength(t *testing.T) {
	assert.Equal(t, -1, term.Compare(term.Seq{term.Int(1)}, term.Seq{term.Int(1), term.Int(2)}))
	assert.Equal(t, -1, term.Compare(term.Seq{term.Int(1)}, term.Seq{term.Int(2)}))
	assert.Equal(t, 0, term.Compare(term.Seq{term.Int(1), term.Int(2)}, term.Seq{term.Int(1), term.Int(2)}))
}

func TestCompareBigIntAgreesWithInt(t *testing.T) {
	assert.Equal(t, 0, term.Compare(term.Int(9), term.BigIntFromInt64(9)))
	assert.Equal(t, -1, term.Compare(term.Int(9), term.BigIntFromInt64(10)))
}

func TestIsNumber(t *testing.T) {
	assert.True(t, term.IsNumber(term.Int(1)))
	assert.True(t, term.IsNumber(term.BigIntFromInt64(1)))
	assert.False(t, term.IsNumber(term.Str("1")))
}
