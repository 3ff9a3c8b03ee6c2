package builtins

import (
	"patlang/types"
)

// ============================================================================
// std NAMESPACE
// ============================================================================

func registerStdBuiltins(r *Registry) {
	r.Register("std", "print", MoreThan(0), builtinPrint)
	r.Register("std", "format", MoreThan(0), builtinFormat)
	r.Register("std", "env", Exactly(1), builtinEnv)
	r.Register("std", "sizeof_pack", AtLeast(0), builtinSizeofPack)
	r.Register("std", "assert", Exactly(2), builtinAssert)
	r.Register("std", "error", Exactly(1), builtinError)
	r.Register("std", "warning", Exactly(1), builtinWarning)
}

// builtinFormat implements format(format, args...)
// Substitutes the arguments into the format string and returns it
func builtinFormat(ctx *types.EvalContext, args []types.Value) types.Result {
	message, err := formatArgs(args)
	if err != nil {
		return types.Abortf("format error: %s", err)
	}
	return types.Ok(types.NewStr(message))
}

// builtinPrint implements print(format, args...)
// Same engine as format, but the result goes to the Info log
func builtinPrint(ctx *types.EvalContext, args []types.Value) types.Result {
	message, err := formatArgs(args)
	if err != nil {
		return types.Abortf("format error: %s", err)
	}
	ctx.Console.Log(types.LevelInfo, message)
	return types.None()
}

// builtinEnv implements env(name)
// Missing variables log a warning and yield an empty string rather
// than aborting; the sole soft-fail primitive in the bridge
func builtinEnv(ctx *types.EvalContext, args []types.Value) types.Result {
	name, err := types.ToString(args[0], false)
	if err != nil {
		return types.Abort(err.Error())
	}

	value, ok := ctx.EnvVariable(name)
	if !ok {
		ctx.Console.Log(types.LevelWarning, "environment variable '"+name+"' does not exist")
		return types.Ok(types.NewStr(""))
	}
	return types.Ok(types.NewStr(value))
}

// builtinSizeofPack implements sizeof_pack(...)
// Returns the number of arguments received
func builtinSizeofPack(ctx *types.EvalContext, args []types.Value) types.Result {
	return types.Ok(types.NewUnsigned64(uint64(len(args))))
}

// builtinAssert implements assert(condition, message)
func builtinAssert(ctx *types.EvalContext, args []types.Value) types.Result {
	condition, err := types.ToUnsigned(args[0])
	if err != nil {
		return types.Abort(err.Error())
	}
	message, err := types.ToString(args[1], true)
	if err != nil {
		return types.Abort(err.Error())
	}
	if condition.IsZero() {
		return types.Abortf("assertion failed: %s", message)
	}
	return types.None()
}

// builtinError implements error(message)
// Unconditionally aborts the evaluation; never returns a value
func builtinError(ctx *types.EvalContext, args []types.Value) types.Result {
	message, err := types.ToString(args[0], true)
	if err != nil {
		return types.Abort(err.Error())
	}
	return types.Abort(message)
}

// builtinWarning implements warning(message)
func builtinWarning(ctx *types.EvalContext, args []types.Value) types.Result {
	message, err := types.ToString(args[0], true)
	if err != nil {
		return types.Abort(err.Error())
	}
	ctx.Console.Log(types.LevelWarning, message)
	return types.None()
}
