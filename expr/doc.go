// Package expr turns a textual formula in x into a function the brent
// solver can consume.
//
// Expressions are compiled once with govaluate and evaluated per call with
// a fresh parameter map, so a compiled Function is safe for concurrent use.
//
// Syntax highlights:
//   - arithmetic: + - * / and ** for powers (^ is bitwise xor in govaluate)
//   - functions:  sin cos tan exp log sqrt abs pow(x, y)
//   - the only variable is x; anything else is rejected at Parse time
//
// Usage:
//
//	fn, err := expr.Parse("x ** 3 - 2 * x ** 2 - x - 2")
//	if err != nil { ... }
//	root, err := brent.Solve(fn.Func(), -5, 5, 1e-7, 1e-10, 50)
package expr
