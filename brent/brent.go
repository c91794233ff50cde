package brent

import "math"

// Solve finds a root of f inside the bracket [a, b] by Brent's method.
//
// Inputs:
//   - f:       function to solve; must be non-nil.
//   - a, b:    bracket endpoints, in any order.
//   - macheps: floor below which |f(x)| counts as zero; also scales the
//     working tolerance with |b|.
//   - t:       absolute tolerance on the root.
//   - maxIter: cap on refinement steps.
//
// Returns the root estimate, or NaN and one of *BracketError, *ValueError,
// *IterationError. The tolerances are used as given; SolveWith validates
// them through its option constructors.
//
// Example:
//
//	root, err := Solve(func(x float64) float64 { return x * math.Cos(x) }, -1, 1, 1e-7, 1e-10, 50)
func Solve(f Func, a, b, macheps, t float64, maxIter int) (float64, error) {
	res, err := solve(f, a, b, Options{machEps: macheps, tolerance: t, maxIter: maxIter})
	if err != nil {
		return math.NaN(), err
	}

	return res.Root, nil
}

// SolveWith is Solve configured by options, returning the root together
// with step statistics and the stopping rule that fired.
//
// On failure the Result still carries Iterations and Evaluations spent so
// far, while Root and FRoot are NaN.
func SolveWith(f Func, a, b float64, opts ...Option) (Result, error) {
	return solve(f, a, b, gatherOptions(opts...))
}

// bracket holds the three abscissas and their function values.
//
//	b - best estimate, |fb| <= |fc|
//	a - previous estimate
//	c - hold point; fb and fc have opposite signs
type bracket struct {
	a, b, c    float64
	fa, fb, fc float64
}

// promote rotates the triple so that b is the point with the smaller |f|.
// The previous b becomes both a and c.
func (br *bracket) promote() {
	if math.Abs(br.fc) < math.Abs(br.fb) {
		br.a, br.b, br.c = br.b, br.c, br.b
		br.fa, br.fb, br.fc = br.fb, br.fc, br.fb
	}
}

// check returns a *ValueError for the first non-finite abscissa.
func (br *bracket) check() error {
	switch {
	case !isFinite(br.a):
		return &ValueError{Point: PointA, X: br.a, FX: br.fa}
	case !isFinite(br.b):
		return &ValueError{Point: PointB, X: br.b, FX: br.fb}
	case !isFinite(br.c):
		return &ValueError{Point: PointHold, X: br.c, FX: br.fc}
	}

	return nil
}

// solve is the single implementation behind Solve and SolveWith.
//
// Algorithm outline:
//  1. Evaluate f(a), f(b); return an endpoint already within t, reject
//     non-finite values and same-sign endpoints.
//  2. c = a; promote the best point into b.
//  3. While |m| > tol and f(b) != 0, with m = (c-b)/2 and tol = 2·macheps·|b| + t:
//     a. pick bisection, secant (a == c) or inverse quadratic interpolation;
//     interpolation is kept only if it lands well inside the bracket and
//     shrinks faster than half the step before last;
//     b. step b by d, or by ±tol when |d| <= tol;
//     c. evaluate f(b); stop at |f(b)| < macheps;
//     d. if f(b) and f(c) share a sign, c = a;
//     e. promote, recompute m and tol, enforce the cap, stop at
//     |f(b)| < 2·macheps·|b|.
func solve(f Func, a, b float64, o Options) (Result, error) {
	res := Result{Root: math.NaN(), FRoot: math.NaN()}

	fa, fb := f(a), f(b)
	res.Evaluations = 2

	// Stage 1: endpoints.
	if math.Abs(fb) < o.tolerance {
		return res.found(b, fb, EndpointB), nil
	}
	if !isFinite(fb) {
		return res, &ValueError{Point: PointB, X: b, FX: fb}
	}
	if math.Abs(fa) < o.tolerance {
		return res.found(a, fa, EndpointA), nil
	}
	if !isFinite(fa) {
		return res, &ValueError{Point: PointA, X: a, FX: fa}
	}
	if sameSign(fa, fb) {
		return res, &BracketError{A: a, B: b, FA: fa, FB: fb}
	}

	// Stage 2: initial triple.
	br := bracket{a: a, b: b, c: a, fa: fa, fb: fb, fc: fa}
	br.promote()

	var (
		d, e = br.b - br.a, br.b - br.a
		m    = 0.5 * (br.c - br.b)
		tol  = workingTol(o.machEps, o.tolerance, br.b)
		iter = 1
	)

	// Stage 3: refinement.
	for math.Abs(m) > tol && br.fb != 0 {
		kind := Bisection
		if math.Abs(e) < tol || math.Abs(br.fa) <= math.Abs(br.fb) {
			d, e = m, m
		} else {
			var p, q float64
			s := br.fb / br.fa
			if br.a == br.c {
				kind = Secant
				p = 2 * m * s
				q = 1 - s
			} else {
				kind = InverseQuadratic
				q = br.fa / br.fc
				r := br.fb / br.fc
				p = s * (2*m*q*(q-r) - (br.b-br.a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}

			prev := e
			e = d
			if 2*p < 3*m*q-math.Abs(tol*q) && p < math.Abs(0.5*prev*q) {
				d = p / q
			} else {
				kind = Bisection
				d, e = m, m
			}
		}

		br.a, br.fa = br.b, br.fb
		switch {
		case math.Abs(d) > tol:
			br.b += d
		case m > 0:
			br.b += tol
		default:
			br.b -= tol
		}

		br.fb = f(br.b)
		res.Evaluations++
		res.Iterations++
		if !isFinite(br.fb) {
			return res, &ValueError{Point: PointIterate, X: br.b, FX: br.fb}
		}
		if o.hook != nil {
			if err := o.hook(Step{Iteration: res.Iterations, Kind: kind, X: br.b, FX: br.fb, Tol: tol}); err != nil {
				return res, err
			}
		}
		if math.Abs(br.fb) < o.machEps {
			return res.found(br.b, br.fb, MachinePrecision), nil
		}

		if sameSign(br.fb, br.fc) {
			br.c, br.fc = br.a, br.fa
			d = br.b - br.a
			e = d
		}
		br.promote()

		m = 0.5 * (br.c - br.b)
		tol = workingTol(o.machEps, o.tolerance, br.b)
		iter++
		if err := br.check(); err != nil {
			return res, err
		}
		if iter > o.maxIter {
			return res, &IterationError{MaxIter: o.maxIter, Last: br.b}
		}
		if math.Abs(br.fb) < 2*o.machEps*math.Abs(br.b) {
			return res.found(br.b, br.fb, RelativeResidual), nil
		}
	}

	if br.fb == 0 {
		return res.found(br.b, br.fb, ExactZero), nil
	}

	return res.found(br.b, br.fb, BracketWidth), nil
}

// found fills in the root fields of a successful result.
func (r Result) found(x, fx float64, why Reason) Result {
	r.Root, r.FRoot, r.Reason = x, fx, why

	return r
}

// sameSign reports whether u and v are both strictly positive or both
// strictly negative. Unlike u*v > 0 it cannot underflow to zero.
func sameSign(u, v float64) bool {
	return (u > 0 && v > 0) || (u < 0 && v < 0)
}
