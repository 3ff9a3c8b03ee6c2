package builtins

import (
	"io"
	"os"

	"patlang/types"
)

// ============================================================================
// std.file NAMESPACE
// ============================================================================
//
// Every function here is dangerous: it touches the filesystem. The
// registration marks them as such; whether a given evaluation may
// call them is the host's sandboxing decision.

// File open modes accepted by open(path, mode)
const (
	fileModeRead   = 1 // existing file, read only
	fileModeWrite  = 2 // existing file, read and write
	fileModeCreate = 3 // create or truncate, read and write
)

const errInvalidFile = "failed to access invalid file"

// RegisterFileBuiltins registers the std.file namespace against the
// given handle table
func (r *Registry) RegisterFileBuiltins(table *FileTable) {
	r.RegisterDangerous("std.file", "open", Exactly(2), func(ctx *types.EvalContext, args []types.Value) types.Result {
		return builtinFileOpen(ctx, args, table)
	})
	r.RegisterDangerous("std.file", "close", Exactly(1), func(ctx *types.EvalContext, args []types.Value) types.Result {
		return builtinFileClose(ctx, args, table)
	})
	r.RegisterDangerous("std.file", "read", Exactly(2), func(ctx *types.EvalContext, args []types.Value) types.Result {
		return builtinFileRead(ctx, args, table)
	})
	r.RegisterDangerous("std.file", "write", Exactly(2), func(ctx *types.EvalContext, args []types.Value) types.Result {
		return builtinFileWrite(ctx, args, table)
	})
	r.RegisterDangerous("std.file", "seek", Exactly(2), func(ctx *types.EvalContext, args []types.Value) types.Result {
		return builtinFileSeek(ctx, args, table)
	})
	r.RegisterDangerous("std.file", "size", Exactly(1), func(ctx *types.EvalContext, args []types.Value) types.Result {
		return builtinFileSize(ctx, args, table)
	})
	r.RegisterDangerous("std.file", "resize", Exactly(2), func(ctx *types.EvalContext, args []types.Value) types.Result {
		return builtinFileResize(ctx, args, table)
	})
	r.RegisterDangerous("std.file", "flush", Exactly(1), func(ctx *types.EvalContext, args []types.Value) types.Result {
		return builtinFileFlush(ctx, args, table)
	})
	r.RegisterDangerous("std.file", "remove", Exactly(1), func(ctx *types.EvalContext, args []types.Value) types.Result {
		return builtinFileRemove(ctx, args, table)
	})
}

// getHandle resolves a handle argument against the table
func getHandle(v types.Value, table *FileTable) (*openFile, types.Result) {
	handle, err := types.ToUint64(v)
	if err != nil {
		return nil, types.Abort(err.Error())
	}
	f, ok := table.Get(handle)
	if !ok {
		return nil, types.Abort(errInvalidFile)
	}
	return f, types.Result{}
}

// builtinFileOpen implements open(path, mode)
// Mode 1 opens read-only, 2 read-write, 3 creates or truncates
func builtinFileOpen(ctx *types.EvalContext, args []types.Value, table *FileTable) types.Result {
	path, err := types.ToString(args[0], false)
	if err != nil {
		return types.Abort(err.Error())
	}
	mode, err := types.ToUint64(args[1])
	if err != nil {
		return types.Abort(err.Error())
	}

	var flags int
	switch mode {
	case fileModeRead:
		flags = os.O_RDONLY
	case fileModeWrite:
		flags = os.O_RDWR
	case fileModeCreate:
		flags = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	default:
		return types.Abort("invalid file open mode")
	}

	file, err := os.OpenFile(path, flags, 0o666)
	if err != nil {
		return types.Abortf("failed to open file %s", path)
	}

	return types.Ok(types.NewUnsigned64(table.Insert(file, path)))
}

// builtinFileClose implements close(file)
func builtinFileClose(ctx *types.EvalContext, args []types.Value, table *FileTable) types.Result {
	handle, err := types.ToUint64(args[0])
	if err != nil {
		return types.Abort(err.Error())
	}
	if !table.Drop(handle) {
		return types.Abort(errInvalidFile)
	}
	return types.None()
}

// builtinFileRead implements read(file, size)
// Returns up to size bytes from the current position
func builtinFileRead(ctx *types.EvalContext, args []types.Value, table *FileTable) types.Result {
	f, abort := getHandle(args[0], table)
	if abort.IsAbort() {
		return abort
	}
	size, err := types.ToUint64(args[1])
	if err != nil {
		return types.Abort(err.Error())
	}

	// a read never yields more than the file holds; clamping here also
	// bounds the allocation against script-supplied sizes
	st, err := f.file.Stat()
	if err != nil {
		return types.Abortf("failed to stat file %s", f.path)
	}
	if size > uint64(st.Size()) {
		size = uint64(st.Size())
	}

	buf := make([]byte, size)
	n, err := io.ReadFull(f.file, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return types.Abortf("failed to read from file %s", f.path)
	}
	return types.Ok(types.NewStr(string(buf[:n])))
}

// builtinFileWrite implements write(file, data)
func builtinFileWrite(ctx *types.EvalContext, args []types.Value, table *FileTable) types.Result {
	f, abort := getHandle(args[0], table)
	if abort.IsAbort() {
		return abort
	}
	data, err := types.ToString(args[1], true)
	if err != nil {
		return types.Abort(err.Error())
	}
	if _, err := f.file.WriteString(data); err != nil {
		return types.Abortf("failed to write to file %s", f.path)
	}
	return types.None()
}

// builtinFileSeek implements seek(file, offset)
// The offset is absolute, from the start of the file
func builtinFileSeek(ctx *types.EvalContext, args []types.Value, table *FileTable) types.Result {
	f, abort := getHandle(args[0], table)
	if abort.IsAbort() {
		return abort
	}
	offset, err := types.ToUint64(args[1])
	if err != nil {
		return types.Abort(err.Error())
	}
	if _, err := f.file.Seek(int64(offset), io.SeekStart); err != nil {
		return types.Abortf("failed to seek in file %s", f.path)
	}
	return types.None()
}

// builtinFileSize implements size(file)
func builtinFileSize(ctx *types.EvalContext, args []types.Value, table *FileTable) types.Result {
	f, abort := getHandle(args[0], table)
	if abort.IsAbort() {
		return abort
	}
	st, err := f.file.Stat()
	if err != nil {
		return types.Abortf("failed to stat file %s", f.path)
	}
	return types.Ok(types.NewUnsigned64(uint64(st.Size())))
}

// builtinFileResize implements resize(file, size)
func builtinFileResize(ctx *types.EvalContext, args []types.Value, table *FileTable) types.Result {
	f, abort := getHandle(args[0], table)
	if abort.IsAbort() {
		return abort
	}
	size, err := types.ToUint64(args[1])
	if err != nil {
		return types.Abort(err.Error())
	}
	if err := f.file.Truncate(int64(size)); err != nil {
		return types.Abortf("failed to resize file %s", f.path)
	}
	return types.None()
}

// builtinFileFlush implements flush(file)
func builtinFileFlush(ctx *types.EvalContext, args []types.Value, table *FileTable) types.Result {
	f, abort := getHandle(args[0], table)
	if abort.IsAbort() {
		return abort
	}
	if err := f.file.Sync(); err != nil {
		return types.Abortf("failed to flush file %s", f.path)
	}
	return types.None()
}

// builtinFileRemove implements remove(file)
// Deletes the backing file and invalidates the handle: once the
// storage is gone the handle has nothing left to refer to, so later
// operations on it abort like any other closed handle
func builtinFileRemove(ctx *types.EvalContext, args []types.Value, table *FileTable) types.Result {
	f, abort := getHandle(args[0], table)
	if abort.IsAbort() {
		return abort
	}
	if err := os.Remove(f.path); err != nil {
		return types.Abortf("failed to remove file %s", f.path)
	}
	table.Drop(f.handle)
	return types.None()
}
