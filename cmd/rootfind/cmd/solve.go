package cmd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/brent"
	"github.com/katalvlaran/rootfind/expr"
	"github.com/spf13/cobra"
)

type solveFlags struct {
	expr      string
	a, b      float64
	machEps   float64
	tolerance float64
	maxIter   int
}

func newSolveCommand(g *globals) *cobra.Command {
	f := &solveFlags{}

	c := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single expression on [a, b]",
		Example: `  rootfind solve --expr "x * cos(x)" --a -1 --b 1
  rootfind solve --expr "exp(x) - 2" --a 0 --b 1 --tol 1e-14 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, f)
		},
	}
	c.Flags().StringVarP(&f.expr, "expr", "e", "", "expression in x (required)")
	c.Flags().Float64Var(&f.a, "a", 0, "first bracket endpoint")
	c.Flags().Float64Var(&f.b, "b", 0, "second bracket endpoint")
	c.Flags().Float64Var(&f.machEps, "macheps", brent.DefaultMachEps, "machine-epsilon floor")
	c.Flags().Float64Var(&f.tolerance, "tol", brent.DefaultTolerance, "absolute tolerance")
	c.Flags().IntVar(&f.maxIter, "maxiter", brent.DefaultMaxIter, "iteration cap")
	_ = c.MarkFlagRequired("expr")

	return c
}

// options validates the numeric flags before they reach the option
// constructors, which panic on nonsense.
func (f *solveFlags) options() ([]brent.Option, error) {
	if math.IsNaN(f.machEps) || math.IsInf(f.machEps, 0) || f.machEps < 0 {
		return nil, fmt.Errorf("--macheps must be finite and non-negative, got %g", f.machEps)
	}
	if math.IsNaN(f.tolerance) || math.IsInf(f.tolerance, 0) || f.tolerance < 0 {
		return nil, fmt.Errorf("--tol must be finite and non-negative, got %g", f.tolerance)
	}
	if f.maxIter < 0 {
		return nil, fmt.Errorf("--maxiter must be non-negative, got %d", f.maxIter)
	}

	return []brent.Option{
		brent.WithMachEps(f.machEps),
		brent.WithTolerance(f.tolerance),
		brent.WithMaxIter(f.maxIter),
	}, nil
}

func runSolve(cmd *cobra.Command, g *globals, f *solveFlags) error {
	opts, err := f.options()
	if err != nil {
		return err
	}
	fn, err := expr.Parse(f.expr)
	if err != nil {
		return err
	}

	log := g.logger(cmd.ErrOrStderr())
	log.Debug("solving", "expr", fn.String(), "a", f.a, "b", f.b)
	opts = append(opts, brent.WithHook(stepLogger(log, "")))

	res, err := brent.SolveWith(fn.Func(), f.a, f.b, opts...)
	if err != nil {
		return err
	}

	o := newOutcome("", res, nil)
	if g.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), o)
	}

	return o.writeText(cmd.OutOrStdout())
}
