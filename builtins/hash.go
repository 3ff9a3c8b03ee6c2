package builtins

import (
	"crypto/sha256"
	"encoding/hex"
	"hash/crc32"

	"patlang/types"

	"golang.org/x/crypto/ripemd160"
)

// ============================================================================
// std.hash NAMESPACE
// ============================================================================
//
// Digests over a byte range of the data source.

func registerHashBuiltins(r *Registry) {
	r.Register("std.hash", "crc32", Exactly(2), builtinCRC32)
	r.Register("std.hash", "sha256", Exactly(2), builtinSHA256)
	r.Register("std.hash", "ripemd160", Exactly(2), builtinRIPEMD160)
}

// builtinCRC32 implements crc32(address, size)
// Returns the IEEE CRC-32 of the range as an unsigned value
func builtinCRC32(ctx *types.EvalContext, args []types.Value) types.Result {
	raw, abort := readRaw(ctx, args, 0)
	if abort.IsAbort() {
		return abort
	}
	return types.Ok(types.NewUnsigned64(uint64(crc32.ChecksumIEEE(raw))))
}

// builtinSHA256 implements sha256(address, size)
// Returns the digest as a lowercase hex string
func builtinSHA256(ctx *types.EvalContext, args []types.Value) types.Result {
	raw, abort := readRaw(ctx, args, 0)
	if abort.IsAbort() {
		return abort
	}
	sum := sha256.Sum256(raw)
	return types.Ok(types.NewStr(hex.EncodeToString(sum[:])))
}

// builtinRIPEMD160 implements ripemd160(address, size)
// Returns the digest as a lowercase hex string
func builtinRIPEMD160(ctx *types.EvalContext, args []types.Value) types.Result {
	raw, abort := readRaw(ctx, args, 0)
	if abort.IsAbort() {
		return abort
	}
	h := ripemd160.New()
	h.Write(raw)
	return types.Ok(types.NewStr(hex.EncodeToString(h.Sum(nil))))
}
