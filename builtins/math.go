package builtins

import (
	"math"

	"patlang/types"
)

// ============================================================================
// std.math NAMESPACE
// ============================================================================
//
// Thin wrappers: coerce the argument(s) to floating point and
// delegate to the math package.

func registerMathBuiltins(r *Registry) {
	r.Register("std.math", "floor", Exactly(1), floatFunc(math.Floor))
	r.Register("std.math", "ceil", Exactly(1), floatFunc(math.Ceil))
	r.Register("std.math", "round", Exactly(1), floatFunc(math.Round))
	r.Register("std.math", "trunc", Exactly(1), floatFunc(math.Trunc))

	r.Register("std.math", "log10", Exactly(1), floatFunc(math.Log10))
	r.Register("std.math", "log2", Exactly(1), floatFunc(math.Log2))
	r.Register("std.math", "ln", Exactly(1), floatFunc(math.Log))

	r.Register("std.math", "fmod", Exactly(2), floatFunc2(math.Mod))
	r.Register("std.math", "pow", Exactly(2), floatFunc2(math.Pow))
	r.Register("std.math", "sqrt", Exactly(1), floatFunc(math.Sqrt))
	r.Register("std.math", "cbrt", Exactly(1), floatFunc(math.Cbrt))

	r.Register("std.math", "sin", Exactly(1), floatFunc(math.Sin))
	r.Register("std.math", "cos", Exactly(1), floatFunc(math.Cos))
	r.Register("std.math", "tan", Exactly(1), floatFunc(math.Tan))
	r.Register("std.math", "asin", Exactly(1), floatFunc(math.Asin))
	r.Register("std.math", "acos", Exactly(1), floatFunc(math.Acos))
	r.Register("std.math", "atan", Exactly(1), floatFunc(math.Atan))
	r.Register("std.math", "atan2", Exactly(2), floatFunc2(math.Atan2))

	r.Register("std.math", "sinh", Exactly(1), floatFunc(math.Sinh))
	r.Register("std.math", "cosh", Exactly(1), floatFunc(math.Cosh))
	r.Register("std.math", "tanh", Exactly(1), floatFunc(math.Tanh))
	r.Register("std.math", "asinh", Exactly(1), floatFunc(math.Asinh))
	r.Register("std.math", "acosh", Exactly(1), floatFunc(math.Acosh))
	r.Register("std.math", "atanh", Exactly(1), floatFunc(math.Atanh))
}

// floatFunc adapts a one-argument math function into a builtin
func floatFunc(fn func(float64) float64) BuiltinFunc {
	return func(ctx *types.EvalContext, args []types.Value) types.Result {
		x, err := types.ToFloat(args[0])
		if err != nil {
			return types.Abort(err.Error())
		}
		return types.Ok(types.NewFloat(fn(x)))
	}
}

// floatFunc2 adapts a two-argument math function into a builtin
func floatFunc2(fn func(float64, float64) float64) BuiltinFunc {
	return func(ctx *types.EvalContext, args []types.Value) types.Result {
		x, err := types.ToFloat(args[0])
		if err != nil {
			return types.Abort(err.Error())
		}
		y, err := types.ToFloat(args[1])
		if err != nil {
			return types.Abort(err.Error())
		}
		return types.Ok(types.NewFloat(fn(x, y)))
	}
}
