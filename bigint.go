package bigint

const (
	// Radix is the base of a single digit block.
	Radix = 10000

	// RadixDigits is the number of decimal digits per block.
	RadixDigits = 4
)

// BigInt is an arbitrary-precision signed integer.
//
// The zero value is the number zero and is ready to use.
type BigInt struct {
	digits   []int32
	negative bool
}

// FromInt64 returns the BigInt with value v.
func FromInt64(v int64) BigInt {
	neg := v < 0

	// Two's complement negation of the unsigned image is total, so
	// math.MinInt64 needs no special case.
	u := uint64(v)
	if neg {
		u = -u
	}

	var digits []int32
	for u != 0 {
		digits = append(digits, int32(u%Radix))
		u /= Radix
	}

	return BigInt{
		digits:   digits,
		negative: neg && len(digits) != 0,
	}
}

// IsZero returns true if x is zero.
func (x BigInt) IsZero() bool {
	return len(x.digits) == 0
}

// Sign returns -1, 0, or +1 depending on whether x is negative, zero, or
// positive.
func (x BigInt) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.negative:
		return -1
	default:
		return 1
	}
}

// Neg returns -x. The negation of zero is zero.
func (x BigInt) Neg() BigInt {
	return BigInt{
		digits:   x.digits,
		negative: !x.negative && !x.IsZero(),
	}
}

// normalize restores the representation invariants: no high zero blocks
// and a non-negative zero.
func (x *BigInt) normalize() {
	x.digits = trim(x.digits)
	if len(x.digits) == 0 {
		x.negative = false
	}
}

// trim strips high zero blocks.
func trim(digits []int32) []int32 {
	for len(digits) > 0 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	if len(digits) == 0 {
		return nil
	}
	return digits
}
