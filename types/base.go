package types

// Value is the interface all pattern language literal values implement
type Value interface {
	Type() TypeCode
	String() string   // source-level literal representation
	Equal(Value) bool // deep equality
}
