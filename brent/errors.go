package brent

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors. Every error returned by Solve wraps exactly one of them;
// use errors.Is to branch and errors.As to reach the typed error carrying
// the offending values.
var (
	// ErrNotBracketed indicates f(a) and f(b) have the same sign.
	ErrNotBracketed = errors.New("brent: inputs do not bracket a root")

	// ErrInvalidValue indicates a NaN or ±Inf function value or abscissa.
	ErrInvalidValue = errors.New("brent: non-finite value")

	// ErrMaxIter indicates the iteration cap was reached without convergence.
	ErrMaxIter = errors.New("brent: iteration limit exceeded")
)

// Labels used in ValueError.Point.
const (
	PointA       = "a" // initial endpoint a
	PointB       = "b" // initial endpoint b
	PointIterate = "x" // point evaluated during refinement
	PointHold    = "c" // bracket hold point
)

// BracketError reports endpoints whose function values share a sign.
type BracketError struct {
	A, B   float64
	FA, FB float64
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("brent: inputs [%g, %g] do not bracket the root: function values are [%g, %g]",
		e.A, e.B, e.FA, e.FB)
}

// Unwrap returns ErrNotBracketed.
func (e *BracketError) Unwrap() error { return ErrNotBracketed }

// ValueError reports a non-finite value at a named point.
//
// For function values X is the abscissa and FX the offending value. When the
// abscissa itself went non-finite (bracket corruption), X holds it and FX is
// the last value known for that point.
type ValueError struct {
	Point string
	X     float64
	FX    float64
}

func (e *ValueError) Error() string {
	if !isFinite(e.X) {
		return fmt.Sprintf("brent: abscissa %s = %g is not finite", e.Point, e.X)
	}

	return fmt.Sprintf("brent: f(%s) = %g is not finite at %s = %g", e.Point, e.FX, e.Point, e.X)
}

// Unwrap returns ErrInvalidValue.
func (e *ValueError) Unwrap() error { return ErrInvalidValue }

// IterationError reports that MaxIter was exceeded. Last is the best
// estimate at the moment the solver gave up.
type IterationError struct {
	MaxIter int
	Last    float64
}

func (e *IterationError) Error() string {
	return fmt.Sprintf("brent: reached maximum number of steps of %d (last estimate %g)", e.MaxIter, e.Last)
}

// Unwrap returns ErrMaxIter.
func (e *IterationError) Unwrap() error { return ErrMaxIter }

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
