package bigint

// Cmp compares x and y and returns -1 if x < y, 0 if x == y, and +1 if
// x > y.
func (x BigInt) Cmp(y BigInt) int {
	if x.negative != y.negative {
		if x.negative {
			return -1
		}
		return 1
	}

	c := compareBlocks(x.digits, y.digits)
	if x.negative {
		return -c
	}
	return c
}

// Equal returns true if x == y.
func (x BigInt) Equal(y BigInt) bool {
	return x.Cmp(y) == 0
}

// NotEqual returns true if x != y.
func (x BigInt) NotEqual(y BigInt) bool {
	return x.Cmp(y) != 0
}

// Less returns true if x < y.
func (x BigInt) Less(y BigInt) bool {
	return x.Cmp(y) < 0
}

// Greater returns true if x > y.
func (x BigInt) Greater(y BigInt) bool {
	return x.Cmp(y) > 0
}

// LessOrEqual returns true if x <= y.
func (x BigInt) LessOrEqual(y BigInt) bool {
	return x.Cmp(y) <= 0
}

// GreaterOrEqual returns true if x >= y.
func (x BigInt) GreaterOrEqual(y BigInt) bool {
	return x.Cmp(y) >= 0
}

// compareBlocks compares two normalized magnitudes. A longer sequence is
// the larger magnitude; on equal length the highest differing block
// decides.
func compareBlocks(x, y []int32) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}

	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}

	return 0
}
