package bigint

// Add returns x + y.
func (x BigInt) Add(y BigInt) BigInt {
	return addSigned(x.digits, x.negative, y.digits, y.negative)
}

// Sub returns x - y. It is Add with the effective sign of y flipped.
func (x BigInt) Sub(y BigInt) BigInt {
	return addSigned(x.digits, x.negative, y.digits, !y.negative)
}

// addSigned reduces a signed addition to magnitude operations. Same signs
// add magnitudes and keep the common sign; differing signs subtract the
// smaller magnitude from the larger, which donates its sign. A zero
// result is always non-negative.
func addSigned(x []int32, xneg bool, y []int32, yneg bool) BigInt {
	if xneg == yneg {
		r := BigInt{digits: absAdd(x, y)}
		r.negative = xneg && !r.IsZero()
		return r
	}

	switch compareBlocks(x, y) {
	case 0:
		return BigInt{}
	case 1:
		return BigInt{
			digits:   absSub(x, y),
			negative: xneg,
		}
	default:
		return BigInt{
			digits:   absSub(y, x),
			negative: yneg,
		}
	}
}

// absAdd returns |x| + |y| as a fresh normalized magnitude.
func absAdd(x, y []int32) []int32 {
	size := len(x)
	if len(y) > size {
		size = len(y)
	}

	r := make([]int32, size)

	var carry int64
	for i := 0; i < size; i++ {
		cur := carry
		if i < len(x) {
			cur += int64(x[i])
		}
		if i < len(y) {
			cur += int64(y[i])
		}
		r[i] = int32(cur % Radix)
		carry = cur / Radix
	}
	if carry != 0 {
		r = append(r, int32(carry))
	}

	return trim(r)
}

// absSub returns |x| - |y| as a fresh normalized magnitude.
//
// Callers must order the operands so that |x| >= |y|; addSigned and the
// division code do so via compareBlocks before calling.
func absSub(x, y []int32) []int32 {
	r := make([]int32, len(x))

	var borrow int32
	for i := 0; i < len(x); i++ {
		cur := x[i] - borrow
		if i < len(y) {
			cur -= y[i]
		}
		if cur < 0 {
			cur += Radix
			borrow = 1
		} else {
			borrow = 0
		}
		r[i] = cur
	}

	return trim(r)
}
