package conformance

import (
	"fmt"

	"patlang/types"
)

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Data        string            `yaml:"data,omitempty"`      // hex-encoded data source
	Env         map[string]string `yaml:"env,omitempty"`       // environment seen by std.env
	Dangerous   bool              `yaml:"dangerous,omitempty"` // trust the evaluation
	Call        Invocation        `yaml:"call"`
	Expect      Expectation       `yaml:"expect"`
}

// Invocation names the builtin and its typed arguments
type Invocation struct {
	Function string     `yaml:"function"`
	Args     []Argument `yaml:"args,omitempty"`
}

// Argument is one typed literal; exactly one field must be set
type Argument struct {
	Str      *string  `yaml:"str,omitempty"`
	Unsigned *uint64  `yaml:"unsigned,omitempty"`
	Signed   *int64   `yaml:"signed,omitempty"`
	Float    *float64 `yaml:"float,omitempty"`
	Char     *string  `yaml:"char,omitempty"`
}

// Value converts the YAML argument into a literal value
func (a Argument) Value() (types.Value, error) {
	switch {
	case a.Str != nil:
		return types.NewStr(*a.Str), nil
	case a.Unsigned != nil:
		return types.NewUnsigned64(*a.Unsigned), nil
	case a.Signed != nil:
		return types.NewSigned64(*a.Signed), nil
	case a.Float != nil:
		return types.NewFloat(*a.Float), nil
	case a.Char != nil:
		if len(*a.Char) != 1 {
			return nil, fmt.Errorf("char argument must be exactly one byte, got %q", *a.Char)
		}
		return types.NewChar((*a.Char)[0]), nil
	default:
		return nil, fmt.Errorf("argument specifies no value")
	}
}

// Expectation defines what result is expected from a test
type Expectation struct {
	Value    *string `yaml:"value,omitempty"`    // natural text of the result value
	Type     string  `yaml:"type,omitempty"`     // STR, UNSIGNED, SIGNED, FLOAT, CHAR
	None     bool    `yaml:"none,omitempty"`     // the primitive returns no value
	Abort    string  `yaml:"abort,omitempty"`    // substring of the abort message
	Warnings int     `yaml:"warnings,omitempty"` // number of warning diagnostics
}
