package builtins

import (
	"testing"

	"patlang/types"
)

// testContext builds a context over the given bytes with a capturing
// console, the shape every builtin test wants
func testContext(data []byte) (*types.EvalContext, *types.Capture) {
	capture := &types.Capture{}
	ctx := types.NewEvalContext(types.NewMemSource(data))
	ctx.Console = capture.Console()
	return ctx, capture
}

// wantValue fails the test unless the result carries exactly want
func wantValue(t *testing.T, res types.Result, want types.Value) {
	t.Helper()
	if res.IsAbort() {
		t.Fatalf("unexpected abort: %s", res.Message)
	}
	if res.Val == nil {
		t.Fatal("expected a value, got none")
	}
	if !res.Val.Equal(want) {
		t.Fatalf("got %s, want %s", res.Val, want)
	}
}

// wantAbort fails the test unless the result aborts with message
func wantAbort(t *testing.T, res types.Result, message string) {
	t.Helper()
	if !res.IsAbort() {
		t.Fatalf("expected abort %q, got result %v", message, res.Val)
	}
	if res.Message != message {
		t.Fatalf("abort message = %q, want %q", res.Message, message)
	}
}
