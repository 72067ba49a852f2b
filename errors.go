package bigint

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("bigint")

// ErrDivisionByZero is returned by Div, Mod, and DivMod when the divisor
// is zero.
var ErrDivisionByZero = Error.New("division by zero")
