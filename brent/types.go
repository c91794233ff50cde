package brent

import "fmt"

// Func is a real-valued function of one real variable.
type Func func(x float64) float64

// Reason tells which stopping rule produced a root.
type Reason uint8

const (
	// EndpointA means |f(a)| was already below the tolerance.
	EndpointA Reason = iota + 1

	// EndpointB means |f(b)| was already below the tolerance.
	EndpointB

	// BracketWidth means the half-width |c-b|/2 dropped to the working tolerance.
	BracketWidth

	// ExactZero means f(b) evaluated to exactly zero.
	ExactZero

	// MachinePrecision means |f(b)| dropped below macheps right after a step.
	MachinePrecision

	// RelativeResidual means |f(b)| < 2·macheps·|b|.
	RelativeResidual
)

// String returns a short name of the stopping rule.
func (r Reason) String() string {
	switch r {
	case EndpointA:
		return "endpoint-a"
	case EndpointB:
		return "endpoint-b"
	case BracketWidth:
		return "bracket-width"
	case ExactZero:
		return "exact-zero"
	case MachinePrecision:
		return "machine-precision"
	case RelativeResidual:
		return "relative-residual"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// StepKind is the way a refinement step picked the next point.
type StepKind uint8

const (
	// Bisection moves b halfway towards c.
	Bisection StepKind = iota

	// Secant interpolates linearly through (a, fa) and (b, fb).
	Secant

	// InverseQuadratic fits x as a quadratic in f through a, b and c.
	InverseQuadratic
)

// String returns a short name of the step kind.
func (k StepKind) String() string {
	switch k {
	case Bisection:
		return "bisection"
	case Secant:
		return "secant"
	case InverseQuadratic:
		return "inverse-quadratic"
	default:
		return fmt.Sprintf("step(%d)", uint8(k))
	}
}

// Step describes one refinement step, as seen by a Hook.
//
// Fields:
//   - Iteration - 1-based index of the step.
//   - Kind      - how the new point was chosen.
//   - X, FX     - the newly evaluated point and its value.
//   - Tol       - working tolerance 2·macheps·|b| + t used for the step.
type Step struct {
	Iteration int
	Kind      StepKind
	X         float64
	FX        float64
	Tol       float64
}

// Hook observes every refinement step. A non-nil return aborts the solve
// and is handed back to the caller unchanged.
type Hook func(Step) error

// Result is the outcome of SolveWith.
//
// Iterations counts refinement steps; Evaluations counts calls of f,
// including the two endpoint evaluations.
type Result struct {
	Root        float64
	FRoot       float64
	Iterations  int
	Evaluations int
	Reason      Reason
}
