package bigint

// Mul returns x * y using schoolbook multiplication. The result sign is
// the XOR of the operand signs; a zero product is non-negative.
func (x BigInt) Mul(y BigInt) BigInt {
	if x.IsZero() || y.IsZero() {
		return BigInt{}
	}

	r := make([]int32, len(x.digits)+len(y.digits))

	for i := 0; i < len(x.digits); i++ {
		var carry int64
		for j := 0; j < len(y.digits) || carry != 0; j++ {
			cur := int64(r[i+j]) + carry
			if j < len(y.digits) {
				cur += int64(x.digits[i]) * int64(y.digits[j])
			}
			r[i+j] = int32(cur % Radix)
			carry = cur / Radix
		}
	}

	return BigInt{
		digits:   trim(r),
		negative: x.negative != y.negative,
	}
}

// mulScalar returns |x| * m for a single block scalar 0 <= m < Radix.
// Division uses it to price a candidate quotient block.
func mulScalar(x []int32, m int32) []int32 {
	if len(x) == 0 || m == 0 {
		return nil
	}

	r := make([]int32, len(x))

	var carry int64
	for i := 0; i < len(x); i++ {
		cur := int64(x[i])*int64(m) + carry
		r[i] = int32(cur % Radix)
		carry = cur / Radix
	}
	if carry != 0 {
		r = append(r, int32(carry))
	}

	return r
}
