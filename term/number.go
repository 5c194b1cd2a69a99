package term

import "github.com/cockroachdb/apd"

var bigCtx = apd.BaseContext.WithPrecision(200)

// ToBigInt widens t to a BigInt. ok is false if t is not a number.
func ToBigInt(t Term) (BigInt, bool) {
	switch t := t.(type) {
	case BigInt:
		return t, true
	case Int:
		return BigIntFromInt64(int64(t)), true
	default:
		return BigInt{}, false
	}
}

// AddBigInt returns a + b, rounded to an exact integer under bigCtx's
// precision.
func AddBigInt(a, b BigInt) BigInt {
	var sum apd.Decimal
	_, _ = bigCtx.Add(&sum, a.Decimal, b.Decimal)
	return NewBigInt(&sum)
}

// SubBigInt returns a - b, rounded to an exact integer under bigCtx's
// precision.
func SubBigInt(a, b BigInt) BigInt {
	var diff apd.Decimal
	_, _ = bigCtx.Sub(&diff, a.Decimal, b.Decimal)
	return NewBigInt(&diff)
}

// CompareBigInt returns -1, 0 or 1 as a is less than, equal to, or
// greater than b.
func CompareBigInt(a, b BigInt) int {
	return a.Decimal.Cmp(b.Decimal)
}

// IsInf reports whether t is the Inf sentinel.
func IsInf(t Term) bool { return t == Inf }

// NonNegInt64 extracts a non-negative machine int from t if t is a
// number representing one exactly.
func NonNegInt64(t Term) (int, bool) {
	b, ok := ToBigInt(t)
	if !ok {
		return 0, false
	}
	i, err := b.Decimal.Int64()
	if err != nil || i < 0 {
		return 0, false
	}
	return int(i), true
}

// Normalize collapses a BigInt that fits in an int64 back down to Int.
// It exists purely so tests and callers can compare results against
// small literal Ints without caring which arithmetic path produced
// them; it is never required for correctness.
func Normalize(t Term) Term {
	b, ok := t.(BigInt)
	if !ok {
		return t
	}
	i, err := b.Decimal.Int64()
	if err != nil {
		return t
	}
	return Int(i)
}
