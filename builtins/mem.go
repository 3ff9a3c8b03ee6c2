package builtins

import (
	"bytes"

	"patlang/types"

	"lukechampine.com/uint128"
)

// ============================================================================
// std.mem NAMESPACE: DATA SOURCE INSPECTION
// ============================================================================

// maxReadSize is the widest raw integer read, in bytes
const maxReadSize = 16

func registerMemBuiltins(r *Registry) {
	r.Register("std.mem", "base_address", NoParams(), builtinBaseAddress)
	r.Register("std.mem", "size", NoParams(), builtinDataSize)
	r.Register("std.mem", "find_sequence_in_range", MoreThan(3), builtinFindSequenceInRange)
	r.Register("std.mem", "read_unsigned", Exactly(2), builtinReadUnsigned)
	r.Register("std.mem", "read_signed", Exactly(2), builtinReadSigned)
	r.Register("std.mem", "read_string", Exactly(2), builtinReadString)
}

// builtinBaseAddress implements base_address()
func builtinBaseAddress(ctx *types.EvalContext, args []types.Value) types.Result {
	return types.Ok(types.NewUnsigned64(ctx.BaseAddress()))
}

// builtinDataSize implements size()
func builtinDataSize(ctx *types.EvalContext, args []types.Value) types.Result {
	return types.Ok(types.NewUnsigned64(ctx.DataSize()))
}

// builtinFindSequenceInRange implements
// find_sequence_in_range(occurrence_index, start_offset, end_offset, bytes...)
//
// Scans [start, effective end) for the byte sequence given by the
// trailing arguments and returns the absolute offset of the match
// whose zero-based occurrence count equals occurrence_index, or -1.
// An end offset at or below the start offset means "to the end of the
// data"; otherwise the end is clamped to the data size.
func builtinFindSequenceInRange(ctx *types.EvalContext, args []types.Value) types.Result {
	occurrenceIndex, err := types.ToUint64(args[0])
	if err != nil {
		return types.Abort(err.Error())
	}
	offsetFrom, err := types.ToUint64(args[1])
	if err != nil {
		return types.Abort(err.Error())
	}
	offsetTo, err := types.ToUint64(args[2])
	if err != nil {
		return types.Abort(err.Error())
	}

	sequence := make([]byte, 0, len(args)-3)
	for i, v := range args[3:] {
		b, err := types.ToUnsigned(v)
		if err != nil {
			return types.Abort(err.Error())
		}
		if b.Cmp64(0xFF) > 0 {
			return types.Abortf("byte #%d value out of range: %s > 0xFF", i+3, b)
		}
		sequence = append(sequence, byte(b.Lo))
	}

	bufferSize := ctx.DataSize()
	endOffset := bufferSize
	if offsetTo > offsetFrom && offsetTo < bufferSize {
		endOffset = offsetTo
	}
	if uint64(len(sequence)) > endOffset {
		return types.Ok(types.NewSigned64(-1))
	}

	window := make([]byte, len(sequence))
	occurrences := uint64(0)
	for offset := offsetFrom; offset < endOffset-uint64(len(sequence)); offset++ {
		if err := ctx.ReadData(offset, window); err != nil {
			return types.Abort(err.Error())
		}
		if bytes.Equal(window, sequence) {
			if occurrences < occurrenceIndex {
				occurrences++
				continue
			}
			return types.Ok(types.NewUnsigned64(offset))
		}
	}

	return types.Ok(types.NewSigned64(-1))
}

// readRaw reads a builtin's (address, size) parameter pair and the
// raw bytes they denote; read failures from the data source propagate
func readRaw(ctx *types.EvalContext, args []types.Value, limit uint64) ([]byte, types.Result) {
	address, err := types.ToUint64(args[0])
	if err != nil {
		return nil, types.Abort(err.Error())
	}
	size, err := types.ToUint64(args[1])
	if err != nil {
		return nil, types.Abort(err.Error())
	}
	if limit > 0 && size > limit {
		return nil, types.Abort("read size out of range")
	}
	// bound the allocation before make; a script-supplied size must
	// surface as an abort, not a runtime panic
	if size > ctx.DataSize() {
		return nil, types.Abortf("read out of range: address 0x%X, size %d, data size %d", address, size, ctx.DataSize())
	}

	buf := make([]byte, size)
	if err := ctx.ReadData(address, buf); err != nil {
		return nil, types.Abort(err.Error())
	}
	return buf, types.Result{}
}

// assemble builds a 128-bit value from up to 16 little-endian bytes,
// zero-initializing the unread high-order bits
func assemble(raw []byte) uint128.Uint128 {
	var full [16]byte
	copy(full[:], raw)
	return uint128.FromBytes(full[:])
}

// signExtend replicates the bit at position bits-1 into every higher
// bit, reproducing two's-complement semantics for narrow reads
func signExtend(v uint128.Uint128, bits uint) uint128.Uint128 {
	if bits == 0 || bits >= 128 {
		return v
	}
	signBit := v.Rsh(bits - 1).And64(1)
	if signBit.IsZero() {
		return v
	}
	return v.Or(uint128.Max.Lsh(bits))
}

// builtinReadUnsigned implements read_unsigned(address, size)
// Reads size raw bytes (0 to 16) as a little-endian unsigned integer
func builtinReadUnsigned(ctx *types.EvalContext, args []types.Value) types.Result {
	raw, abort := readRaw(ctx, args, maxReadSize)
	if abort.IsAbort() {
		return abort
	}
	return types.Ok(types.NewUnsigned(assemble(raw)))
}

// builtinReadSigned implements read_signed(address, size)
// As read_unsigned, then sign-extends from bit size*8-1. Reading one
// byte of 0xFF yields -1, not 255.
func builtinReadSigned(ctx *types.EvalContext, args []types.Value) types.Result {
	raw, abort := readRaw(ctx, args, maxReadSize)
	if abort.IsAbort() {
		return abort
	}
	value := signExtend(assemble(raw), uint(len(raw))*8)
	return types.Ok(types.NewSigned(value))
}

// builtinReadString implements read_string(address, size)
// Bytes are moved verbatim; no encoding validation
func builtinReadString(ctx *types.EvalContext, args []types.Value) types.Result {
	raw, abort := readRaw(ctx, args, 0)
	if abort.IsAbort() {
		return abort
	}
	return types.Ok(types.NewStr(string(raw)))
}
