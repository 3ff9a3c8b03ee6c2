package types

import "strconv"

// CharValue represents a single byte character
type CharValue struct {
	Val byte
}

// NewChar creates a new CharValue
func NewChar(val byte) CharValue {
	return CharValue{Val: val}
}

// Type returns the type code for characters
func (c CharValue) Type() TypeCode {
	return TYPE_CHAR
}

// String returns the quoted literal representation
func (c CharValue) String() string {
	return strconv.QuoteRune(rune(c.Val))
}

// Equal checks deep equality
func (c CharValue) Equal(other Value) bool {
	o, ok := other.(CharValue)
	return ok && c.Val == o.Val
}
