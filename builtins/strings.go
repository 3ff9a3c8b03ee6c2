package builtins

import (
	"math"
	"strconv"
	"strings"

	"patlang/types"
)

// ============================================================================
// std.string NAMESPACE
// ============================================================================

func registerStringBuiltins(r *Registry) {
	r.Register("std.string", "length", Exactly(1), builtinStrLength)
	r.Register("std.string", "at", Exactly(2), builtinStrAt)
	r.Register("std.string", "substr", Exactly(3), builtinSubstr)
	r.Register("std.string", "parse_int", Exactly(2), builtinParseInt)
	r.Register("std.string", "parse_float", Exactly(1), builtinParseFloat)
}

// builtinStrLength implements length(string)
// Returns the byte length
func builtinStrLength(ctx *types.EvalContext, args []types.Value) types.Result {
	s, err := types.ToString(args[0], false)
	if err != nil {
		return types.Abort(err.Error())
	}
	return types.Ok(types.NewUnsigned64(uint64(len(s))))
}

// builtinStrAt implements at(string, index)
// Negative indices count from the end; -1 is the last character.
// Indexing one past either end aborts.
func builtinStrAt(ctx *types.EvalContext, args []types.Value) types.Result {
	s, err := types.ToString(args[0], false)
	if err != nil {
		return types.Abort(err.Error())
	}
	index, err := types.ToInt64(args[1])
	if err != nil {
		return types.Abort(err.Error())
	}

	length := int64(len(s))
	if index >= 0 {
		if index >= length {
			return types.Abort("character index out of range")
		}
		return types.Ok(types.NewChar(s[index]))
	}
	if -index > length {
		return types.Abort("character index out of range")
	}
	return types.Ok(types.NewChar(s[length+index]))
}

// builtinSubstr implements substr(string, pos, count)
// pos beyond the string aborts; count clamps to the remainder
func builtinSubstr(ctx *types.EvalContext, args []types.Value) types.Result {
	s, err := types.ToString(args[0], false)
	if err != nil {
		return types.Abort(err.Error())
	}
	pos, err := types.ToUint64(args[1])
	if err != nil {
		return types.Abort(err.Error())
	}
	count, err := types.ToUint64(args[2])
	if err != nil {
		return types.Abort(err.Error())
	}

	length := uint64(len(s))
	if pos > length {
		return types.Abort("character index out of range")
	}
	end := length
	if count < length-pos {
		end = pos + count
	}
	return types.Ok(types.NewStr(s[pos:end]))
}

// builtinParseInt implements parse_int(string, base)
// Parses the longest valid prefix in the given base; total parse
// failure yields 0, never an abort
func builtinParseInt(ctx *types.EvalContext, args []types.Value) types.Result {
	s, err := types.ToString(args[0], false)
	if err != nil {
		return types.Abort(err.Error())
	}
	base, err := types.ToUint64(args[1])
	if err != nil {
		return types.Abort(err.Error())
	}
	return types.Ok(types.NewSigned64(parseIntPrefix(s, int(base))))
}

// builtinParseFloat implements parse_float(string)
// Same permissive prefix contract as parse_int
func builtinParseFloat(ctx *types.EvalContext, args []types.Value) types.Result {
	s, err := types.ToString(args[0], false)
	if err != nil {
		return types.Abort(err.Error())
	}
	return types.Ok(types.NewFloat(parseFloatPrefix(s)))
}

// parseIntPrefix mirrors strtoll: skip leading whitespace, accept an
// optional sign and base prefix, consume digits while they remain
// valid, and return 0 when no digit was consumed. Out-of-range values
// clamp to the 64-bit limits.
func parseIntPrefix(s string, base int) int64 {
	if base != 0 && (base < 2 || base > 36) {
		return 0
	}

	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}

	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	if base == 0 {
		base = 10
		if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
			base = 16
			i += 2
		} else if i < len(s) && s[i] == '0' {
			base = 8
		}
	} else if base == 16 && i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		i += 2
	}

	var value uint64
	digits := 0
	overflow := false
	for ; i < len(s); i++ {
		d := digitValue(s[i])
		if d < 0 || d >= base {
			break
		}
		digits++
		if value > (math.MaxUint64-uint64(d))/uint64(base) {
			overflow = true
			continue
		}
		value = value*uint64(base) + uint64(d)
	}
	if digits == 0 {
		return 0
	}

	if negative {
		if overflow || value > 1<<63 {
			return math.MinInt64
		}
		return -int64(value)
	}
	if overflow || value > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(value)
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// parseFloatPrefix mirrors strtod's prefix semantics for decimal
// floats: the longest leading substring that parses is the value,
// anything else is 0
func parseFloatPrefix(s string) float64 {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	start := i

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissa := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	if i == mantissa || !strings.ContainsAny(s[mantissa:i], "0123456789") {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := j
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > exp {
			i = j
		}
	}

	value, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0
	}
	return value
}
