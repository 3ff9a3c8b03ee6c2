package builtins

import (
	"strings"
	"testing"

	"patlang/types"
)

func TestPrintLogsAtInfo(t *testing.T) {
	ctx, capture := testContext(nil)

	res := builtinPrint(ctx, []types.Value{types.NewStr("value = {}"), types.NewUnsigned64(42)})
	if res.IsAbort() {
		t.Fatalf("unexpected abort: %s", res.Message)
	}
	if res.HasValue() {
		t.Error("print should not return a value")
	}
	if len(capture.Entries) != 1 {
		t.Fatalf("captured %d entries, want 1", len(capture.Entries))
	}
	entry := capture.Entries[0]
	if entry.Level != types.LevelInfo || entry.Message != "value = 42" {
		t.Errorf("unexpected log entry: %+v", entry)
	}
}

func TestEnvSoftFail(t *testing.T) {
	ctx, capture := testContext(nil)
	ctx.Env = func(name string) (string, bool) {
		if name == "PRESENT" {
			return "yes", true
		}
		return "", false
	}

	res := builtinEnv(ctx, []types.Value{types.NewStr("PRESENT")})
	wantValue(t, res, types.NewStr("yes"))

	// missing variables warn and yield "", they never abort
	res = builtinEnv(ctx, []types.Value{types.NewStr("MISSING")})
	wantValue(t, res, types.NewStr(""))
	if len(capture.Entries) != 1 || capture.Entries[0].Level != types.LevelWarning {
		t.Fatalf("expected one warning, got %+v", capture.Entries)
	}
	if !strings.Contains(capture.Entries[0].Message, "MISSING") {
		t.Errorf("warning should name the variable, got %q", capture.Entries[0].Message)
	}
}

func TestSizeofPack(t *testing.T) {
	ctx, _ := testContext(nil)

	res := builtinSizeofPack(ctx, nil)
	wantValue(t, res, types.NewUnsigned64(0))

	res = builtinSizeofPack(ctx, []types.Value{types.NewStr("a"), types.NewFloat(1), types.NewChar('c')})
	wantValue(t, res, types.NewUnsigned64(3))
}

func TestErrorAlwaysAborts(t *testing.T) {
	ctx, _ := testContext(nil)
	res := builtinError(ctx, []types.Value{types.NewStr("boom")})
	wantAbort(t, res, "boom")

	// non-string messages coerce textually
	res = builtinError(ctx, []types.Value{types.NewUnsigned64(17)})
	wantAbort(t, res, "17")
}

func TestWarningLogsAndContinues(t *testing.T) {
	ctx, capture := testContext(nil)
	res := builtinWarning(ctx, []types.Value{types.NewStr("heads up")})
	if res.IsAbort() {
		t.Fatalf("warning should not abort: %s", res.Message)
	}
	if len(capture.Entries) != 1 || capture.Entries[0].Level != types.LevelWarning {
		t.Fatalf("expected one warning entry, got %+v", capture.Entries)
	}
}

func TestAssert(t *testing.T) {
	ctx, _ := testContext(nil)

	res := builtinAssert(ctx, []types.Value{types.NewUnsigned64(1), types.NewStr("fine")})
	if res.IsAbort() {
		t.Fatalf("passing assertion should not abort: %s", res.Message)
	}

	res = builtinAssert(ctx, []types.Value{types.NewUnsigned64(0), types.NewStr("broken invariant")})
	wantAbort(t, res, "assertion failed: broken invariant")
}
