package expr

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// unary adapts a float64 → float64 function to govaluate.
func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: got %d, want 1: %w", name, len(args), ErrArity)
		}

		return fn(toFloat(args[0])), nil
	}
}

// builtins is the function table every expression is compiled against.
func builtins() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		"sin":  unary("sin", math.Sin),
		"cos":  unary("cos", math.Cos),
		"tan":  unary("tan", math.Tan),
		"exp":  unary("exp", math.Exp),
		"log":  unary("log", math.Log),
		"sqrt": unary("sqrt", math.Sqrt),
		"abs":  unary("abs", math.Abs),
		"pow": func(args ...interface{}) (interface{}, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("pow: got %d, want 2: %w", len(args), ErrArity)
			}

			return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
		},
	}
}

// toFloat converts a govaluate operand to float64; non-numbers become NaN.
func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return math.NaN()
	}
}
