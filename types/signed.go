package types

import (
	"math/big"

	"lukechampine.com/uint128"
)

// SignedValue represents a 128-bit signed integer.
// Val holds the raw two's-complement bit pattern.
type SignedValue struct {
	Val uint128.Uint128
}

// NewSigned creates a new signed value from raw two's-complement bits
func NewSigned(v uint128.Uint128) SignedValue {
	return SignedValue{Val: v}
}

// NewSigned64 creates a new signed value from a 64-bit integer,
// sign-extending it to the full width
func NewSigned64(v int64) SignedValue {
	hi := uint64(0)
	if v < 0 {
		hi = ^uint64(0)
	}
	return SignedValue{Val: uint128.New(uint64(v), hi)}
}

// Type returns the type code for signed integers
func (s SignedValue) Type() TypeCode {
	return TYPE_SIGNED
}

// IsNegative reports whether the sign bit is set
func (s SignedValue) IsNegative() bool {
	return s.Val.Hi>>63 == 1
}

// Big returns the signed value as a big.Int
func (s SignedValue) Big() *big.Int {
	b := s.Val.Big()
	if s.IsNegative() {
		b.Sub(b, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return b
}

// String returns the decimal literal representation
func (s SignedValue) String() string {
	return s.Big().String()
}

// Equal checks deep equality
func (s SignedValue) Equal(other Value) bool {
	o, ok := other.(SignedValue)
	return ok && s.Val.Equals(o.Val)
}
