// Package brent: functional configuration for SolveWith.
//
// Defaults are the values the reference test-suite of the method uses:
// macheps 1e-7, absolute tolerance 1e-10 and a cap of 50 steps.
// WithX constructors panic on nonsensical values; that is a programmer
// error, not one of the solver failure kinds.
package brent

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMachEps is the convergence floor on |f| and the relative part
	// of the working tolerance.
	DefaultMachEps = 1e-7

	// DefaultTolerance is the absolute tolerance t.
	DefaultTolerance = 1e-10

	// DefaultMaxIter caps the number of refinement steps.
	DefaultMaxIter = 50
)

const (
	panicMachEpsInvalid   = "brent: WithMachEps: macheps must be finite, non-negative"
	panicToleranceInvalid = "brent: WithTolerance: tolerance must be finite, non-negative"
	panicMaxIterInvalid   = "brent: WithMaxIter: maxIter must be non-negative"
	panicHookNil          = "brent: WithHook: hook must be non-nil"
)

// Option mutates solver options.
type Option func(*Options)

// Options is the resolved configuration of one solve. Fields are unexported;
// build it with DefaultOptions and Option setters.
type Options struct {
	machEps   float64
	tolerance float64
	maxIter   int
	hook      Hook
}

// DefaultOptions returns Options populated with the package defaults.
func DefaultOptions() Options {
	return Options{
		machEps:   DefaultMachEps,
		tolerance: DefaultTolerance,
		maxIter:   DefaultMaxIter,
	}
}

// MachEps returns the configured macheps.
func (o Options) MachEps() float64 { return o.machEps }

// Tolerance returns the configured absolute tolerance.
func (o Options) Tolerance() float64 { return o.tolerance }

// MaxIter returns the configured iteration cap.
func (o Options) MaxIter() int { return o.maxIter }

// WithMachEps sets macheps.
//
// Panics when eps is negative, NaN or ±Inf.
func WithMachEps(eps float64) Option {
	if !isFinite(eps) || eps < 0 {
		panic(panicMachEpsInvalid)
	}

	return func(o *Options) { o.machEps = eps }
}

// WithTolerance sets the absolute tolerance t.
//
// Panics when t is negative, NaN or ±Inf.
func WithTolerance(t float64) Option {
	if !isFinite(t) || t < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = t }
}

// WithMaxIter sets the iteration cap. Zero is legal: any bracket that needs
// a refinement step then fails with ErrMaxIter unless that step lands on
// the root within macheps.
func WithMaxIter(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithHook installs a per-step observer.
func WithHook(h Hook) Option {
	if h == nil {
		panic(panicHookNil)
	}

	return func(o *Options) { o.hook = h }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// workingTol is 2·macheps·|b| + t.
func workingTol(machEps, t, b float64) float64 {
	return 2*machEps*math.Abs(b) + t
}
