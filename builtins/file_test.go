package builtins

import (
	"os"
	"path/filepath"
	"testing"

	"patlang/types"
)

// openTestFile opens path through the builtin and returns the handle
func openTestFile(t *testing.T, ctx *types.EvalContext, table *FileTable, path string, mode uint64) uint64 {
	t.Helper()
	res := builtinFileOpen(ctx, []types.Value{types.NewStr(path), types.NewUnsigned64(mode)}, table)
	if res.IsAbort() {
		t.Fatalf("open(%s, %d) aborted: %s", path, mode, res.Message)
	}
	handle, err := types.ToUint64(res.Val)
	if err != nil {
		t.Fatalf("open returned a non-handle value: %v", res.Val)
	}
	return handle
}

func TestFileOpenModes(t *testing.T) {
	dir := t.TempDir()
	table := NewFileTable()
	defer table.CloseAll()
	ctx, _ := testContext(nil)

	path := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(path, []byte("existing"), 0o666); err != nil {
		t.Fatal(err)
	}

	// read and write modes require an existing file
	h1 := openTestFile(t, ctx, table, path, fileModeRead)
	h2 := openTestFile(t, ctx, table, path, fileModeWrite)
	if h2 <= h1 {
		t.Errorf("handles must increase monotonically: got %d then %d", h1, h2)
	}

	// create mode truncates
	h3 := openTestFile(t, ctx, table, path, fileModeCreate)
	sizeRes := builtinFileSize(ctx, []types.Value{types.NewUnsigned64(h3)}, table)
	wantValue(t, sizeRes, types.NewUnsigned64(0))

	// invalid mode enum
	res := builtinFileOpen(ctx, []types.Value{types.NewStr(path), types.NewUnsigned64(4)}, table)
	wantAbort(t, res, "invalid file open mode")

	// open failure names the path
	missing := filepath.Join(dir, "missing.bin")
	res = builtinFileOpen(ctx, []types.Value{types.NewStr(missing), types.NewUnsigned64(fileModeRead)}, table)
	wantAbort(t, res, "failed to open file "+missing)
}

func TestFileReadWriteSeek(t *testing.T) {
	dir := t.TempDir()
	table := NewFileTable()
	defer table.CloseAll()
	ctx, _ := testContext(nil)

	path := filepath.Join(dir, "rw.bin")
	h := openTestFile(t, ctx, table, path, fileModeCreate)
	hv := types.NewUnsigned64(h)

	res := builtinFileWrite(ctx, []types.Value{hv, types.NewStr("hello world")}, table)
	if res.IsAbort() {
		t.Fatalf("write aborted: %s", res.Message)
	}

	res = builtinFileSeek(ctx, []types.Value{hv, types.NewUnsigned64(6)}, table)
	if res.IsAbort() {
		t.Fatalf("seek aborted: %s", res.Message)
	}
	res = builtinFileRead(ctx, []types.Value{hv, types.NewUnsigned64(5)}, table)
	wantValue(t, res, types.NewStr("world"))

	// reading past the end returns what remains
	res = builtinFileSeek(ctx, []types.Value{hv, types.NewUnsigned64(6)}, table)
	if res.IsAbort() {
		t.Fatal(res.Message)
	}
	res = builtinFileRead(ctx, []types.Value{hv, types.NewUnsigned64(100)}, table)
	wantValue(t, res, types.NewStr("world"))

	// a size far beyond the file clamps instead of allocating
	res = builtinFileSeek(ctx, []types.Value{hv, types.NewUnsigned64(6)}, table)
	if res.IsAbort() {
		t.Fatal(res.Message)
	}
	res = builtinFileRead(ctx, []types.Value{hv, types.NewUnsigned64(1 << 60)}, table)
	wantValue(t, res, types.NewStr("world"))

	res = builtinFileSize(ctx, []types.Value{hv}, table)
	wantValue(t, res, types.NewUnsigned64(11))

	res = builtinFileResize(ctx, []types.Value{hv, types.NewUnsigned64(5)}, table)
	if res.IsAbort() {
		t.Fatalf("resize aborted: %s", res.Message)
	}
	res = builtinFileSize(ctx, []types.Value{hv}, table)
	wantValue(t, res, types.NewUnsigned64(5))

	res = builtinFileFlush(ctx, []types.Value{hv}, table)
	if res.IsAbort() {
		t.Fatalf("flush aborted: %s", res.Message)
	}
}

func TestFileInvalidHandles(t *testing.T) {
	table := NewFileTable()
	ctx, _ := testContext(nil)
	bogus := types.NewUnsigned64(99)

	ops := []struct {
		name string
		op   func() types.Result
	}{
		{"close", func() types.Result { return builtinFileClose(ctx, []types.Value{bogus}, table) }},
		{"read", func() types.Result { return builtinFileRead(ctx, []types.Value{bogus, types.NewUnsigned64(1)}, table) }},
		{"write", func() types.Result { return builtinFileWrite(ctx, []types.Value{bogus, types.NewStr("x")}, table) }},
		{"seek", func() types.Result { return builtinFileSeek(ctx, []types.Value{bogus, types.NewUnsigned64(0)}, table) }},
		{"size", func() types.Result { return builtinFileSize(ctx, []types.Value{bogus}, table) }},
		{"resize", func() types.Result { return builtinFileResize(ctx, []types.Value{bogus, types.NewUnsigned64(0)}, table) }},
		{"flush", func() types.Result { return builtinFileFlush(ctx, []types.Value{bogus}, table) }},
		{"remove", func() types.Result { return builtinFileRemove(ctx, []types.Value{bogus}, table) }},
	}

	for _, tt := range ops {
		t.Run(tt.name, func(t *testing.T) {
			wantAbort(t, tt.op(), errInvalidFile)
		})
	}
}

func TestFileCloseInvalidatesHandle(t *testing.T) {
	dir := t.TempDir()
	table := NewFileTable()
	defer table.CloseAll()
	ctx, _ := testContext(nil)

	h := openTestFile(t, ctx, table, filepath.Join(dir, "f.bin"), fileModeCreate)
	hv := types.NewUnsigned64(h)

	res := builtinFileClose(ctx, []types.Value{hv}, table)
	if res.IsAbort() {
		t.Fatalf("close aborted: %s", res.Message)
	}

	// the handle is gone for every subsequent operation
	wantAbort(t, builtinFileRead(ctx, []types.Value{hv, types.NewUnsigned64(1)}, table), errInvalidFile)
	wantAbort(t, builtinFileClose(ctx, []types.Value{hv}, table), errInvalidFile)

	// and is never reissued
	h2 := openTestFile(t, ctx, table, filepath.Join(dir, "g.bin"), fileModeCreate)
	if h2 <= h {
		t.Errorf("handle %d reissued after close (next was %d)", h, h2)
	}
}

func TestFileRemoveDeletesAndInvalidates(t *testing.T) {
	dir := t.TempDir()
	table := NewFileTable()
	ctx, _ := testContext(nil)

	path := filepath.Join(dir, "doomed.bin")
	h := openTestFile(t, ctx, table, path, fileModeCreate)
	hv := types.NewUnsigned64(h)

	res := builtinFileRemove(ctx, []types.Value{hv}, table)
	if res.IsAbort() {
		t.Fatalf("remove aborted: %s", res.Message)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("remove should delete the backing file")
	}

	// removing the storage invalidates the handle
	wantAbort(t, builtinFileRead(ctx, []types.Value{hv, types.NewUnsigned64(1)}, table), errInvalidFile)
}

func TestFileTableMonotonicHandles(t *testing.T) {
	table := NewFileTable()
	var last uint64
	for i := 0; i < 5; i++ {
		h := table.Insert(nil, "x")
		if h <= last {
			t.Fatalf("handle %d not strictly greater than %d", h, last)
		}
		last = h
	}
	if got := table.Handles(); len(got) != 5 {
		t.Errorf("Handles() returned %d entries, want 5", len(got))
	}
}
