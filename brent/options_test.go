package brent_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rootfind/brent"
	"github.com/stretchr/testify/assert"
)

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	o := brent.DefaultOptions()
	assert.Equal(t, brent.DefaultMachEps, o.MachEps())
	assert.Equal(t, brent.DefaultTolerance, o.Tolerance())
	assert.Equal(t, brent.DefaultMaxIter, o.MaxIter())
}

// TestOptions_PanicOnNonsense verifies constructors reject programmer errors.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { brent.WithMachEps(-1) })
	assert.Panics(t, func() { brent.WithMachEps(math.NaN()) })
	assert.Panics(t, func() { brent.WithTolerance(math.Inf(1)) })
	assert.Panics(t, func() { brent.WithTolerance(-1e-12) })
	assert.Panics(t, func() { brent.WithMaxIter(-1) })
	assert.Panics(t, func() { brent.WithHook(nil) })

	assert.NotPanics(t, func() { brent.WithMachEps(0) })
	assert.NotPanics(t, func() { brent.WithTolerance(0) })
	assert.NotPanics(t, func() { brent.WithMaxIter(0) })
}

// TestSolveWith_ToleranceOption verifies a looser t stops the step function earlier.
func TestSolveWith_ToleranceOption(t *testing.T) {
	tight, err := brent.SolveWith(step, -1, 10)
	assert.NoError(t, err)

	loose, err := brent.SolveWith(step, -1, 10, brent.WithTolerance(1e-2), nil)
	assert.NoError(t, err)
	assert.Less(t, loose.Iterations, tight.Iterations)
	assert.InDelta(t, stepJump, loose.Root, 3e-2)
}
