// Package brent_test holds helpers shared across the *_test.go files.
package brent_test

import "math"

// Test knobs matching the reference scenarios of the method.
const (
	closeTol   = 1e-4
	machEps    = 1e-7
	absTol     = 1e-10
	maxIter    = 50
	stepJump   = 7.87236423
	waterBoil  = 373.1255
	atmosphere = 101325.0
)

// counted wraps f and counts its calls.
func counted(f func(float64) float64) (func(float64) float64, *int) {
	n := 0

	return func(x float64) float64 {
		n++

		return f(x)
	}, &n
}

// step jumps from -5 to 1 at stepJump and is exactly zero there.
func step(x float64) float64 {
	switch {
	case x > stepJump:
		return 1
	case x < stepJump:
		return -5
	default:
		return 0
	}
}

// waterVapourPressure is the saturated vapour pressure of water in Pa at
// temperature tk in K (ancillary Wagner-type correlation).
func waterVapourPressure(tk float64) float64 {
	const (
		tCrit = 647.096
		pCrit = 22064000.0
	)
	n := [...]float64{-9.756396, 3.335760, -1.100292, 0.020376, -2.666858, 6.676721}
	t := [...]float64{1.018, 1.206, 2.327, 5.753, 4.215, 14.951}

	theta := 1 - tk/tCrit
	sum := 0.0
	for i := range n {
		sum += n[i] * math.Pow(theta, t[i])
	}

	return pCrit * math.Exp(tCrit/tk*sum)
}
