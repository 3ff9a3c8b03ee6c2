package types

import (
	"testing"

	"lukechampine.com/uint128"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name    string
		val     Value
		coerce  bool
		want    string
		wantErr bool
	}{
		{"str", NewStr("abc"), false, "abc", false},
		{"char", NewChar('x'), false, "x", false},
		// high bytes marshal verbatim, never as a UTF-8 code point
		{"char_high_byte", NewChar(0xFF), false, "\xFF", false},
		{"unsigned_no_coerce", NewUnsigned64(7), false, "", true},
		{"unsigned_coerce", NewUnsigned64(7), true, "7", false},
		{"signed_coerce", NewSigned64(-12), true, "-12", false},
		{"float_coerce", NewFloat(1.25), true, "1.25", false},
		{"pattern_coerce", NewPattern(stubPattern{repr: "u32 magic"}), true, "u32 magic", false},
		{"pattern_no_coerce", NewPattern(stubPattern{repr: "u32 magic"}), false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToString(tt.val, tt.coerce)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ToString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToUnsigned(t *testing.T) {
	u, err := ToUnsigned(NewChar(0xFF))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !u.Equals64(0xFF) {
		t.Errorf("ToUnsigned(char 0xFF) = %s, want 255", u)
	}

	// signed values reinterpret their raw bits
	u, err = ToUnsigned(NewSigned64(-1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !u.Equals(uint128.Max) {
		t.Errorf("ToUnsigned(-1) = %s, want 2^128-1", u)
	}

	if _, err := ToUnsigned(NewStr("12")); err == nil {
		t.Error("strings should not convert to unsigned values")
	}
}

func TestToInt64(t *testing.T) {
	n, err := ToInt64(NewSigned64(-42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != -42 {
		t.Errorf("ToInt64(-42) = %d", n)
	}

	n, err = ToInt64(NewFloat(-2.7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != -2 {
		t.Errorf("ToInt64(-2.7) = %d, want -2", n)
	}

	if _, err := ToInt64(NewUnsigned(uint128.New(0, 1))); err == nil {
		t.Error("values beyond 64 bits should not convert")
	}
}

func TestToUint64(t *testing.T) {
	n, err := ToUint64(NewUnsigned64(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 99 {
		t.Errorf("ToUint64(99) = %d", n)
	}

	if _, err := ToUint64(NewSigned64(-1)); err == nil {
		t.Error("negative values should not convert to uint64")
	}
}

func TestToFloat(t *testing.T) {
	f, err := ToFloat(NewUnsigned64(8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 8.0 {
		t.Errorf("ToFloat(8) = %v", f)
	}

	f, err = ToFloat(NewSigned64(-3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != -3.0 {
		t.Errorf("ToFloat(-3) = %v", f)
	}

	if _, err := ToFloat(NewStr("3.14")); err == nil {
		t.Error("strings should not convert to floats")
	}
}
