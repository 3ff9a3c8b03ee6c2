package types

import "fmt"

// ControlFlow represents the control flow state of a primitive call
type ControlFlow int

const (
	FlowNormal ControlFlow = iota // Normal execution
	FlowAbort                     // Evaluation-terminating failure
)

// Result represents the outcome of one primitive call.
// A primitive either produces an optional value or aborts the
// enclosing script evaluation with a diagnostic message; the
// evaluator checks the result and halts on abort.
type Result struct {
	Val     Value       // The produced value, nil if the primitive has none
	Flow    ControlFlow // Control flow state
	Message string      // Diagnostic message, only set when Flow == FlowAbort
}

// Ok creates a Result carrying a value
func Ok(v Value) Result {
	return Result{Val: v, Flow: FlowNormal}
}

// None creates a Result for a primitive that produces no value
func None() Result {
	return Result{Flow: FlowNormal}
}

// Abort creates a Result that terminates the current evaluation
func Abort(message string) Result {
	return Result{Flow: FlowAbort, Message: message}
}

// Abortf creates an abort Result with a formatted message
func Abortf(format string, args ...any) Result {
	return Result{Flow: FlowAbort, Message: fmt.Sprintf(format, args...)}
}

// IsAbort returns true if this result terminates evaluation
func (r Result) IsAbort() bool {
	return r.Flow == FlowAbort
}

// HasValue returns true if this result carries a value
func (r Result) HasValue() bool {
	return r.Flow == FlowNormal && r.Val != nil
}
