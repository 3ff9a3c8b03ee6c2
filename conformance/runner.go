package conformance

import (
	"encoding/hex"
	"fmt"
	"strings"

	"patlang/builtins"
	"patlang/types"
)

// Outcome is the observed result of running one test case
type Outcome struct {
	Result      types.Result
	Diagnostics []types.LogEntry
}

// RunCase executes a single test case against a fresh registry and
// evaluation context
func RunCase(tc TestCase) (Outcome, error) {
	var out Outcome

	data, err := hex.DecodeString(tc.Data)
	if err != nil {
		return out, fmt.Errorf("bad data hex: %w", err)
	}

	capture := &types.Capture{}
	ctx := types.NewEvalContext(types.NewMemSource(data))
	ctx.Console = capture.Console()
	ctx.AllowDangerous = tc.Dangerous
	ctx.Env = func(name string) (string, bool) {
		v, ok := tc.Env[name]
		return v, ok
	}

	registry := builtins.NewRegistry()
	table := builtins.NewFileTable()
	defer table.CloseAll()
	registry.RegisterFileBuiltins(table)
	registry.RegisterHTTPBuiltins()

	args := make([]types.Value, 0, len(tc.Call.Args))
	for i, a := range tc.Call.Args {
		v, err := a.Value()
		if err != nil {
			return out, fmt.Errorf("argument #%d: %w", i, err)
		}
		args = append(args, v)
	}

	out.Result = registry.Call(ctx, tc.Call.Function, args)
	out.Diagnostics = capture.Entries
	return out, nil
}

// Check compares an outcome against the case's expectation,
// returning a description of the first mismatch
func Check(tc TestCase, out Outcome) error {
	res := out.Result

	if tc.Expect.Abort != "" {
		if !res.IsAbort() {
			return fmt.Errorf("expected abort containing %q, got %v", tc.Expect.Abort, res.Val)
		}
		if !strings.Contains(res.Message, tc.Expect.Abort) {
			return fmt.Errorf("abort message %q does not contain %q", res.Message, tc.Expect.Abort)
		}
		return nil
	}

	if res.IsAbort() {
		return fmt.Errorf("unexpected abort: %s", res.Message)
	}

	if tc.Expect.None {
		if res.HasValue() {
			return fmt.Errorf("expected no value, got %s", res.Val)
		}
	} else if tc.Expect.Value != nil {
		if !res.HasValue() {
			return fmt.Errorf("expected value %q, got none", *tc.Expect.Value)
		}
		text, err := types.ToString(res.Val, true)
		if err != nil {
			return fmt.Errorf("result not convertible to text: %w", err)
		}
		if text != *tc.Expect.Value {
			return fmt.Errorf("value = %q, want %q", text, *tc.Expect.Value)
		}
	}

	if tc.Expect.Type != "" && res.HasValue() {
		if got := res.Val.Type().String(); got != tc.Expect.Type {
			return fmt.Errorf("value type = %s, want %s", got, tc.Expect.Type)
		}
	}

	warnings := 0
	for _, d := range out.Diagnostics {
		if d.Level == types.LevelWarning {
			warnings++
		}
	}
	if warnings != tc.Expect.Warnings {
		return fmt.Errorf("saw %d warnings, want %d", warnings, tc.Expect.Warnings)
	}

	return nil
}
