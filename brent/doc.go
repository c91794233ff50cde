// Package brent finds a root of a scalar function inside a bracket using
// Brent's method.
//
// 🚀 What is Brent's method?
//
//	A hybrid of bisection, the secant method and inverse quadratic
//	interpolation. Given [a, b] with f(a) and f(b) of opposite sign, it
//	keeps three abscissas a, b, c:
//	  • b - the best estimate so far (smallest |f|)
//	  • a - the previous estimate
//	  • c - a point such that f(b) and f(c) still bracket the root
//	Every step tries interpolation and falls back to bisection when the
//	interpolated point would not shrink the bracket fast enough, so the
//	method never does worse than bisection and usually converges
//	superlinearly. No derivatives are needed and f may be non-smooth.
//
// ✨ Key features:
//   - guaranteed termination: bounded by the iteration cap
//   - bracket containment at every step
//   - endpoint shortcut when f(a) or f(b) is already within tolerance
//   - typed errors: *BracketError, *ValueError, *IterationError
//   - optional per-step Hook for tracing or external cancellation
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind/brent"
//
//	f := func(x float64) float64 { return x*x*x - 2*x*x - x - 2 }
//
//	// classic six-argument form
//	root, err := brent.Solve(f, -5, 5, 1e-7, 1e-10, 50)
//
//	// options form with statistics
//	res, err := brent.SolveWith(f, -5, 5, brent.WithMaxIter(100))
//	fmt.Println(res.Root, res.Iterations, res.Reason)
//
// Errors:
//
//	All failures are fatal and returned verbatim; nothing is retried.
//	Branch on them with errors.Is(err, ErrNotBracketed | ErrInvalidValue |
//	ErrMaxIter), or errors.As into the typed error for the offending values.
//
// Concurrency:
//
//	Solve keeps all state on the stack. Concurrent calls are safe as long
//	as the supplied function is.
//
// Complexity:
//
//	Time:   O(maxIter) evaluations of f, plus two for the endpoints.
//	Memory: O(1).
package brent
