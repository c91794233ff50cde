package expr

import "errors"

var (
	// ErrSyntax indicates the formula could not be compiled.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownVariable indicates a variable other than x.
	ErrUnknownVariable = errors.New("expr: unknown variable")

	// ErrNotNumeric indicates the formula evaluated to a non-number.
	ErrNotNumeric = errors.New("expr: result is not numeric")

	// ErrArity indicates a builtin function got the wrong number of arguments.
	ErrArity = errors.New("expr: wrong number of arguments")
)
