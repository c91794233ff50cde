// Package rootfind is a small toolkit for solving f(x) = 0 in one variable
// without derivatives.
//
// 🚀 What is in rootfind?
//
//	brent/    - Brent's method: bisection + secant + inverse quadratic
//	            interpolation on a sign-changing bracket, typed errors,
//	            per-step hooks
//	expr/     - compile a textual formula in x into a brent.Func
//	problems/ - named problem sets in YAML or TOML, solved in one call
//	cmd/rootfind - CLI: `solve` one formula, `batch` a problem file
//
// ✨ Why Brent?
//
//   - Guaranteed termination: bounded by the iteration cap
//   - Never leaves the bracket: every step keeps a sign change
//   - Superlinear on smooth functions, bisection speed on nasty ones
//   - Pure Go library core: no I/O, no logging, no global state
//
// Quick example:
//
//	f := func(x float64) float64 { return x*x*x - 2*x*x - x - 2 }
//	root, err := brent.Solve(f, -5, 5, 1e-7, 1e-10, 50) // ≈ 2.658967
//
// See examples/ for ready-to-run problem files.
//
//	go get github.com/katalvlaran/rootfind
package rootfind
