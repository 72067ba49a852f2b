package bigint

import "strconv"

// Parse returns the BigInt denoted by s.
//
// Parsing is lenient: leading whitespace is skipped, an optional + or -
// sign is honored, and the value is read from the trailing run of decimal
// digits with any other characters ignored. Input containing no digits
// parses as zero. Parse never fails; use UnmarshalText for strict input.
func Parse(s string) BigInt {
	i, n := 0, len(s)

	for i < n && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < n && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	end := n - 1
	for end >= i && !isDigit(s[end]) {
		end--
	}
	if end < i {
		return BigInt{}
	}

	digits := make([]int32, 0, (end-i)/RadixDigits+1)
	for p := end; p >= i; p -= RadixDigits {
		l := p - (RadixDigits - 1)
		if l < i {
			l = i
		}

		var block int32
		for t := l; t <= p; t++ {
			if isDigit(s[t]) {
				block = block*10 + int32(s[t]-'0')
			}
		}
		digits = append(digits, block)
	}

	r := BigInt{digits: digits, negative: neg}
	r.normalize()
	return r
}

// String returns the decimal form of x: a minus sign if negative, the
// most significant block unpadded, then every remaining block zero-padded
// to RadixDigits digits. Zero prints as "0".
func (x BigInt) String() string {
	return string(x.Append(nil))
}

// Append appends the decimal form of x to dst and returns the extended
// buffer.
func (x BigInt) Append(dst []byte) []byte {
	if x.IsZero() {
		return append(dst, '0')
	}

	if x.negative {
		dst = append(dst, '-')
	}

	i := len(x.digits) - 1
	dst = strconv.AppendInt(dst, int64(x.digits[i]), 10)
	for i--; i >= 0; i-- {
		v := x.digits[i]
		dst = append(dst,
			byte('0'+v/1000),
			byte('0'+v/100%10),
			byte('0'+v/10%10),
			byte('0'+v%10),
		)
	}

	return dst
}

// MarshalText implements encoding.TextMarshaler.
func (x BigInt) MarshalText() (text []byte, err error) {
	return x.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Unlike Parse it is strict: the input must be an optional + or - sign
// followed by one or more decimal digits, with nothing else.
func (z *BigInt) UnmarshalText(text []byte) error {
	s := string(text)

	t := s
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		t = t[1:]
	}
	if len(t) == 0 {
		return Error.New("cannot unmarshal %q: no digits", s)
	}
	for i := 0; i < len(t); i++ {
		if !isDigit(t[i]) {
			return Error.New("cannot unmarshal %q: invalid character %q", s, t[i])
		}
	}

	*z = Parse(s)
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
