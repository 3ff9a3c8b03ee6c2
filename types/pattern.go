package types

// Pattern is the capability a placed pattern exposes to the bridge.
// The layout evaluator owns the concrete implementation; the bridge
// only ever asks for the textual representation.
type Pattern interface {
	ToString() string
}

// PatternValue wraps a reference to a placed pattern
type PatternValue struct {
	Pat Pattern
}

// NewPattern creates a new PatternValue
func NewPattern(p Pattern) PatternValue {
	return PatternValue{Pat: p}
}

// Type returns the type code for pattern references
func (p PatternValue) Type() TypeCode {
	return TYPE_PATTERN
}

// String returns the pattern's own textual representation
func (p PatternValue) String() string {
	if p.Pat == nil {
		return ""
	}
	return p.Pat.ToString()
}

// Equal compares pattern references by their textual representation
func (p PatternValue) Equal(other Value) bool {
	o, ok := other.(PatternValue)
	return ok && p.String() == o.String()
}
