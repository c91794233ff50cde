package problems

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/rootfind/brent"
	"github.com/katalvlaran/rootfind/expr"
)

// Format is the encoding of a problem file.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Problem is one root-finding task.
type Problem struct {
	Name      string  `yaml:"name" toml:"name" json:"name"`
	Expr      string  `yaml:"expr" toml:"expr" json:"expr"`
	A         float64 `yaml:"a" toml:"a" json:"a"`
	B         float64 `yaml:"b" toml:"b" json:"b"`
	MachEps   float64 `yaml:"macheps,omitempty" toml:"macheps,omitempty" json:"macheps,omitempty"`
	Tolerance float64 `yaml:"tolerance,omitempty" toml:"tolerance,omitempty" json:"tolerance,omitempty"`
	MaxIter   int     `yaml:"max_iter,omitempty" toml:"max_iter,omitempty" json:"max_iter,omitempty"`
}

// Set is an ordered collection of problems.
type Set struct {
	Problems []Problem `yaml:"problems" toml:"problems" json:"problems"`
}

// Validate checks a single problem. Errors wrap ErrInvalidProblem.
func (p Problem) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("empty name: %w", ErrInvalidProblem)
	case strings.TrimSpace(p.Expr) == "":
		return fmt.Errorf("%s: empty expression: %w", p.Name, ErrInvalidProblem)
	case !finite(p.A) || !finite(p.B):
		return fmt.Errorf("%s: endpoints must be finite: %w", p.Name, ErrInvalidProblem)
	case !finite(p.MachEps) || p.MachEps < 0:
		return fmt.Errorf("%s: macheps must be finite, non-negative: %w", p.Name, ErrInvalidProblem)
	case !finite(p.Tolerance) || p.Tolerance < 0:
		return fmt.Errorf("%s: tolerance must be finite, non-negative: %w", p.Name, ErrInvalidProblem)
	case p.MaxIter < 0:
		return fmt.Errorf("%s: max_iter must be non-negative: %w", p.Name, ErrInvalidProblem)
	}

	return nil
}

// Validate checks every problem and name uniqueness.
func (s Set) Validate() error {
	if len(s.Problems) == 0 {
		return ErrEmptySet
	}

	seen := make(map[string]struct{}, len(s.Problems))
	for _, p := range s.Problems {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%s: duplicate name: %w", p.Name, ErrInvalidProblem)
		}
		seen[p.Name] = struct{}{}
	}

	return nil
}

// Options converts the per-problem overrides to solver options.
// Zero fields keep the brent defaults.
func (p Problem) Options() []brent.Option {
	var opts []brent.Option
	if p.MachEps > 0 {
		opts = append(opts, brent.WithMachEps(p.MachEps))
	}
	if p.Tolerance > 0 {
		opts = append(opts, brent.WithTolerance(p.Tolerance))
	}
	if p.MaxIter > 0 {
		opts = append(opts, brent.WithMaxIter(p.MaxIter))
	}

	return opts
}

// Solve validates p, compiles its expression and runs the solver.
// Extra options are applied after the problem's own.
func (p Problem) Solve(extra ...brent.Option) (brent.Result, error) {
	if err := p.Validate(); err != nil {
		return brent.Result{}, err
	}
	fn, err := expr.Parse(p.Expr)
	if err != nil {
		return brent.Result{}, fmt.Errorf("%s: %w", p.Name, err)
	}

	res, err := brent.SolveWith(fn.Func(), p.A, p.B, append(p.Options(), extra...)...)
	if err != nil {
		return res, fmt.Errorf("%s: %w", p.Name, err)
	}

	return res, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
