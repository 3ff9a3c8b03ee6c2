package types

import (
	"testing"

	"lukechampine.com/uint128"
)

func TestValueStrings(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		want string
	}{
		{"str", NewStr("hello"), `"hello"`},
		{"unsigned", NewUnsigned64(42), "42"},
		{"unsigned_wide", NewUnsigned(uint128.New(0, 1)), "18446744073709551616"},
		{"signed_positive", NewSigned64(42), "42"},
		{"signed_negative", NewSigned64(-1), "-1"},
		{"float", NewFloat(3.5), "3.5"},
		{"float_whole", NewFloat(3), "3.0"},
		{"char", NewChar('a'), "'a'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSignedBits(t *testing.T) {
	// -1 must be all ones across the full width
	v := NewSigned64(-1)
	if v.Val.Lo != ^uint64(0) || v.Val.Hi != ^uint64(0) {
		t.Errorf("NewSigned64(-1) bits = %x/%x, want all ones", v.Val.Hi, v.Val.Lo)
	}
	if !v.IsNegative() {
		t.Error("NewSigned64(-1) should be negative")
	}
	if NewSigned64(1).IsNegative() {
		t.Error("NewSigned64(1) should not be negative")
	}
}

func TestValueEqual(t *testing.T) {
	if !NewStr("a").Equal(NewStr("a")) {
		t.Error("identical strings should be equal")
	}
	if NewStr("a").Equal(NewStr("A")) {
		t.Error("string equality is case-sensitive")
	}
	if NewUnsigned64(1).Equal(NewSigned64(1)) {
		t.Error("values of different variants should not be equal")
	}
	if !NewSigned64(-5).Equal(NewSigned64(-5)) {
		t.Error("identical signed values should be equal")
	}
	if NewFloat(1.5).Equal(NewFloat(2.5)) {
		t.Error("different floats should not be equal")
	}
}

type stubPattern struct{ repr string }

func (p stubPattern) ToString() string { return p.repr }

func TestPatternValue(t *testing.T) {
	p := NewPattern(stubPattern{repr: "Header { magic = 0x464C457F }"})
	if p.String() != "Header { magic = 0x464C457F }" {
		t.Errorf("pattern String() = %q", p.String())
	}
	if !p.Equal(NewPattern(stubPattern{repr: "Header { magic = 0x464C457F }"})) {
		t.Error("patterns with the same representation should be equal")
	}
}
