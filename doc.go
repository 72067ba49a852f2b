// Package bigint provides an arbitrary-precision signed decimal integer.
//
// Representation
//
// A value is a little-endian sequence of base-10000 blocks plus a sign
// flag. Each block carries four decimal digits, so the printed form of a
// value is the most significant block followed by every remaining block
// zero-padded to four digits:
//
//  123456789  =>  blocks [6789, 2345, 1], negative=false
//
// Three invariants hold after every exported operation:
//
//  1. The most significant block is non-zero (zero is the empty sequence).
//  2. Zero is never negative.
//  3. Every block lies in [0, 10000).
//
// Values are immutable: every operation builds a fresh block sequence, so
// an operand may alias the result target (x = x.Mul(x) is safe) and values
// may be copied freely.
//
// Arithmetic
//
// Add, Sub and Mul are total. Div and Mod implement floor division: the
// quotient rounds toward negative infinity and the remainder takes the
// divisor's sign, so for every non-zero y
//
//  x == x.Div(y)*y + x.Mod(y)  and  0 <= |x.Mod(y)| < |y|
//
// Dividing by zero returns ErrDivisionByZero.
//
// Parsing
//
// Parse is deliberately lenient: it skips leading whitespace, honors an
// optional leading sign, and reads the trailing run of decimal digits,
// ignoring any other characters. Input with no digits parses as zero.
// UnmarshalText is the strict counterpart and rejects anything that is not
// an optional sign followed by decimal digits.
package bigint
