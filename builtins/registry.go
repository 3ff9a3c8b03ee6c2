package builtins

import (
	"fmt"

	"patlang/types"
)

// BuiltinFunc is a function type for builtin functions.
// Takes an evaluation context and a list of arguments, returns a Result.
type BuiltinFunc func(ctx *types.EvalContext, args []types.Value) types.Result

// countKind selects how a parameter count contract is checked
type countKind int

const (
	countExactly countKind = iota
	countAtLeast
	countMoreThan
	countNone
)

// ParamCount is the parameter count contract of a builtin,
// enforced before the builtin body runs
type ParamCount struct {
	kind countKind
	n    int
}

// Exactly requires exactly n parameters
func Exactly(n int) ParamCount {
	return ParamCount{kind: countExactly, n: n}
}

// AtLeast requires n or more parameters
func AtLeast(n int) ParamCount {
	return ParamCount{kind: countAtLeast, n: n}
}

// MoreThan requires strictly more than n parameters
func MoreThan(n int) ParamCount {
	return ParamCount{kind: countMoreThan, n: n}
}

// NoParams requires an empty parameter list
func NoParams() ParamCount {
	return ParamCount{kind: countNone}
}

// Allows checks a parameter count against the contract
func (p ParamCount) Allows(n int) bool {
	switch p.kind {
	case countExactly:
		return n == p.n
	case countAtLeast:
		return n >= p.n
	case countMoreThan:
		return n > p.n
	case countNone:
		return n == 0
	default:
		return false
	}
}

// String describes the contract for diagnostics
func (p ParamCount) String() string {
	switch p.kind {
	case countExactly:
		return fmt.Sprintf("exactly %d", p.n)
	case countAtLeast:
		return fmt.Sprintf("at least %d", p.n)
	case countMoreThan:
		return fmt.Sprintf("more than %d", p.n)
	case countNone:
		return "no"
	default:
		return "unknown"
	}
}

// Function is one registered builtin
type Function struct {
	Namespace string // dot-separated, e.g. "std.mem"
	Name      string
	Params    ParamCount
	Dangerous bool // touches the filesystem or network
	Fn        BuiltinFunc
}

// QualifiedName returns the full dotted name of the function
func (f *Function) QualifiedName() string {
	return f.Namespace + "." + f.Name
}

// Registry holds all registered builtin functions
type Registry struct {
	funcs map[string]*Function
	names []string // registration order
}

// NewRegistry creates a registry with every safe namespace registered.
// std.file is registered separately via RegisterFileBuiltins because it
// needs a handle table; std.http is registered by RegisterHTTPBuiltins.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]*Function)}

	registerStdBuiltins(r)
	registerMemBuiltins(r)
	registerStringBuiltins(r)
	registerMathBuiltins(r)
	registerHashBuiltins(r)

	return r
}

// Register adds a builtin function to the registry
func (r *Registry) Register(namespace, name string, params ParamCount, fn BuiltinFunc) {
	r.add(&Function{Namespace: namespace, Name: name, Params: params, Fn: fn})
}

// RegisterDangerous adds a builtin that touches the filesystem or
// network; calls to it are gated on the context's trust bit
func (r *Registry) RegisterDangerous(namespace, name string, params ParamCount, fn BuiltinFunc) {
	r.add(&Function{Namespace: namespace, Name: name, Params: params, Dangerous: true, Fn: fn})
}

func (r *Registry) add(f *Function) {
	qualified := f.QualifiedName()
	if _, exists := r.funcs[qualified]; !exists {
		r.names = append(r.names, qualified)
	}
	r.funcs[qualified] = f
}

// Get retrieves a builtin function by its qualified name
func (r *Registry) Get(name string) (*Function, bool) {
	f, ok := r.funcs[name]
	return f, ok
}

// Has checks if a builtin function is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns all qualified names in registration order
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Call invokes a builtin by qualified name. The parameter count
// contract and the dangerous-function gate are enforced before the
// body runs; a violation aborts the evaluation.
func (r *Registry) Call(ctx *types.EvalContext, name string, args []types.Value) types.Result {
	f, ok := r.funcs[name]
	if !ok {
		return types.Abortf("call to unknown function '%s'", name)
	}
	if !f.Params.Allows(len(args)) {
		return types.Abortf("invalid number of parameters for '%s': got %d, expected %s", name, len(args), f.Params)
	}
	if f.Dangerous && !ctx.AllowDangerous {
		return types.Abortf("dangerous function '%s' is not allowed in this evaluation", name)
	}
	return f.Fn(ctx, args)
}
