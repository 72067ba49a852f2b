package bigint

import "github.com/calebcase/oops"

// Div returns the quotient of x / y rounded toward negative infinity.
// Dividing by zero returns ErrDivisionByZero.
func (x BigInt) Div(y BigInt) (BigInt, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns x mod y with the sign of y (or zero), derived from the
// floor quotient as x - (x div y) * y. Dividing by zero returns
// ErrDivisionByZero.
func (x BigInt) Mod(y BigInt) (BigInt, error) {
	q, err := x.Div(y)
	if err != nil {
		return BigInt{}, err
	}
	return x.Sub(q.Mul(y)), nil
}

// DivMod returns both the floor quotient and the remainder of x / y from
// a single magnitude division. The results satisfy
//
//	x == q*y + m, 0 <= |m| < |y|, sign(m) == sign(y) or m == 0
//
// Dividing by zero returns ErrDivisionByZero.
func (x BigInt) DivMod(y BigInt) (q, m BigInt, err error) {
	if y.IsZero() {
		return BigInt{}, BigInt{}, oops.Trace(ErrDivisionByZero)
	}

	qmag, rmag := divmodMagnitude(x.digits, y.digits)
	qneg := x.negative != y.negative

	if qneg && len(rmag) != 0 {
		// The truncated quotient rounds toward zero; with mixed signs
		// and a remainder, floor is one further from zero and the
		// remainder flips to the divisor's side: m = y - r by
		// magnitude.
		q = BigInt{
			digits:   absAdd(qmag, []int32{1}),
			negative: true,
		}
		m = BigInt{
			digits:   absSub(y.digits, rmag),
			negative: y.negative,
		}
		return q, m, nil
	}

	q = BigInt{
		digits:   qmag,
		negative: qneg && len(qmag) != 0,
	}
	m = BigInt{
		digits:   rmag,
		negative: x.negative && len(rmag) != 0,
	}

	return q, m, nil
}

// divmodMagnitude performs long division on magnitudes, returning a
// normalized quotient and remainder with |r| < |v|.
//
// The divisor is aligned to the dividend's high end by a virtual shift of
// k = len(u)-len(v) blocks. Each round binary-searches the largest block
// digit d with shifted*d <= remainder, records it, subtracts, and drops
// the shifted divisor one block toward the low end.
//
// Callers must reject a zero divisor first.
func divmodMagnitude(u, v []int32) (q, r []int32) {
	if compareBlocks(u, v) < 0 {
		// Snapshot the dividend so the remainder never aliases an
		// operand.
		return nil, trim(append([]int32(nil), u...))
	}

	k := len(u) - len(v)

	shifted := make([]int32, k+len(v))
	copy(shifted[k:], v)

	rem := append([]int32(nil), u...)
	q = make([]int32, k+1)

	for pos := k; pos >= 0; pos-- {
		lo, hi := int32(0), int32(Radix-1)
		var best int32
		for lo <= hi {
			mid := (lo + hi) / 2
			if compareBlocks(mulScalar(shifted, mid), rem) <= 0 {
				best = mid
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}

		if best != 0 {
			rem = absSub(rem, mulScalar(shifted, best))
		}
		q[pos] = best

		if len(shifted) > 0 {
			shifted = trim(shifted[1:])
		}
	}

	return trim(q), trim(rem)
}
