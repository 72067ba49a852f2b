package main

import "github.com/zeebo/errs"

// Error is the class of errors returned by this command.
var Error = errs.Class("bigcalc")
