package types

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"lukechampine.com/uint128"
)

// Marshaling between literal values and native primitives.
//
// Every function switches exhaustively over the concrete variants so
// that adding a variant to the literal type forces an update here.

// ToString converts a value to its natural string form.
// With coerce false only strings and characters are accepted;
// with coerce true every variant converts via its textual representation.
func ToString(v Value, coerce bool) (string, error) {
	switch x := v.(type) {
	case StrValue:
		return x.Value(), nil
	case CharValue:
		// one byte, verbatim; string(byte) would UTF-8 encode it
		return string([]byte{x.Val}), nil
	case UnsignedValue:
		if !coerce {
			return "", fmt.Errorf("cannot convert %s value to string", x.Type())
		}
		return x.Val.String(), nil
	case SignedValue:
		if !coerce {
			return "", fmt.Errorf("cannot convert %s value to string", x.Type())
		}
		return x.Big().String(), nil
	case FloatValue:
		if !coerce {
			return "", fmt.Errorf("cannot convert %s value to string", x.Type())
		}
		return strconv.FormatFloat(x.Val, 'g', -1, 64), nil
	case PatternValue:
		if !coerce {
			return "", fmt.Errorf("cannot convert %s value to string", x.Type())
		}
		return x.String(), nil
	default:
		return "", fmt.Errorf("cannot convert %T value to string", v)
	}
}

// ToUnsigned converts a value to a 128-bit unsigned integer.
// Signed values reinterpret their raw bits; floats truncate.
func ToUnsigned(v Value) (uint128.Uint128, error) {
	switch x := v.(type) {
	case UnsignedValue:
		return x.Val, nil
	case SignedValue:
		return x.Val, nil
	case CharValue:
		return uint128.From64(uint64(x.Val)), nil
	case FloatValue:
		if x.Val < 0 || math.IsNaN(x.Val) {
			return uint128.Zero, fmt.Errorf("cannot convert %s to an unsigned value", x)
		}
		return uint128.From64(uint64(x.Val)), nil
	case StrValue, PatternValue:
		return uint128.Zero, fmt.Errorf("cannot convert %s value to an unsigned value", v.Type())
	default:
		return uint128.Zero, fmt.Errorf("cannot convert %T value to an unsigned value", v)
	}
}

// ToSigned converts a value to the raw bits of a 128-bit signed integer
func ToSigned(v Value) (uint128.Uint128, error) {
	switch x := v.(type) {
	case SignedValue:
		return x.Val, nil
	case UnsignedValue:
		return x.Val, nil
	case CharValue:
		return uint128.From64(uint64(x.Val)), nil
	case FloatValue:
		if math.IsNaN(x.Val) {
			return uint128.Zero, fmt.Errorf("cannot convert %s to a signed value", x)
		}
		return NewSigned64(int64(x.Val)).Val, nil
	case StrValue, PatternValue:
		return uint128.Zero, fmt.Errorf("cannot convert %s value to a signed value", v.Type())
	default:
		return uint128.Zero, fmt.Errorf("cannot convert %T value to a signed value", v)
	}
}

// ToFloat converts a value to a floating point number
func ToFloat(v Value) (float64, error) {
	switch x := v.(type) {
	case FloatValue:
		return x.Val, nil
	case UnsignedValue:
		f, _ := new(big.Float).SetInt(x.Val.Big()).Float64()
		return f, nil
	case SignedValue:
		f, _ := new(big.Float).SetInt(x.Big()).Float64()
		return f, nil
	case CharValue:
		return float64(x.Val), nil
	case StrValue, PatternValue:
		return 0, fmt.Errorf("cannot convert %s value to a floating point value", v.Type())
	default:
		return 0, fmt.Errorf("cannot convert %T value to a floating point value", v)
	}
}

// ToUint64 converts a value to a 64-bit unsigned integer,
// failing when the value does not fit
func ToUint64(v Value) (uint64, error) {
	u, err := ToUnsigned(v)
	if err != nil {
		return 0, err
	}
	if u.Hi != 0 {
		return 0, fmt.Errorf("value %s out of range for a 64-bit quantity", u)
	}
	return u.Lo, nil
}

// ToInt64 converts a value to a 64-bit signed integer,
// failing when the value does not fit
func ToInt64(v Value) (int64, error) {
	s, err := ToSigned(v)
	if err != nil {
		return 0, err
	}
	if s.Hi == 0 && s.Lo <= math.MaxInt64 {
		return int64(s.Lo), nil
	}
	if s.Hi == ^uint64(0) && s.Lo >= 1<<63 {
		return int64(s.Lo), nil
	}
	return 0, fmt.Errorf("value out of range for a 64-bit quantity")
}
