package types

import "lukechampine.com/uint128"

// UnsignedValue represents a 128-bit unsigned integer
type UnsignedValue struct {
	Val uint128.Uint128
}

// NewUnsigned creates a new unsigned value from raw 128-bit bits
func NewUnsigned(v uint128.Uint128) UnsignedValue {
	return UnsignedValue{Val: v}
}

// NewUnsigned64 creates a new unsigned value from a 64-bit integer
func NewUnsigned64(v uint64) UnsignedValue {
	return UnsignedValue{Val: uint128.From64(v)}
}

// Type returns the type code for unsigned integers
func (u UnsignedValue) Type() TypeCode {
	return TYPE_UNSIGNED
}

// String returns the decimal literal representation
func (u UnsignedValue) String() string {
	return u.Val.String()
}

// Equal checks deep equality
func (u UnsignedValue) Equal(other Value) bool {
	o, ok := other.(UnsignedValue)
	return ok && u.Val.Equals(o.Val)
}
