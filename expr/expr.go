package expr

import (
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"
	"github.com/katalvlaran/rootfind/brent"
)

// Variable is the name of the free variable in every expression.
const Variable = "x"

// Function is a compiled single-variable expression.
type Function struct {
	src  string
	expr *govaluate.EvaluableExpression
}

// Parse compiles src. It fails with ErrSyntax for malformed input and with
// ErrUnknownVariable when src mentions any variable other than x.
func Parse(src string) (*Function, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("empty expression: %w", ErrSyntax)
	}

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(src, builtins())
	if err != nil {
		return nil, fmt.Errorf("%q: %v: %w", src, err, ErrSyntax)
	}
	for _, v := range parsed.Vars() {
		if v != Variable {
			return nil, fmt.Errorf("%q: %q: %w", src, v, ErrUnknownVariable)
		}
	}

	return &Function{src: src, expr: parsed}, nil
}

// MustParse is Parse that panics on error. Intended for tests and fixed
// formulas known at compile time.
func MustParse(src string) *Function {
	fn, err := Parse(src)
	if err != nil {
		panic(err)
	}

	return fn
}

// String returns the source text.
func (f *Function) String() string { return f.src }

// Eval evaluates the expression at x.
func (f *Function) Eval(x float64) (float64, error) {
	v, err := f.expr.Evaluate(map[string]interface{}{Variable: x})
	if err != nil {
		return math.NaN(), fmt.Errorf("%q at x=%g: %w", f.src, x, err)
	}

	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	default:
		return math.NaN(), fmt.Errorf("%q at x=%g returned %T: %w", f.src, x, v, ErrNotNumeric)
	}
}

// Func adapts f to brent.Func. Evaluation errors become NaN, which the
// solver reports as a *brent.ValueError naming the point.
func (f *Function) Func() brent.Func {
	return func(x float64) float64 {
		v, err := f.Eval(x)
		if err != nil {
			return math.NaN()
		}

		return v
	}
}
