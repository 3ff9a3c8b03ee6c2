package types

import "strconv"

// StrValue represents a pattern language string
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// String returns the quoted literal representation
func (s StrValue) String() string {
	return strconv.Quote(s.val)
}

// Type returns the type code for strings
func (s StrValue) Type() TypeCode {
	return TYPE_STR
}

// Equal compares two values for equality
func (s StrValue) Equal(other Value) bool {
	o, ok := other.(StrValue)
	return ok && s.val == o.val
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}
