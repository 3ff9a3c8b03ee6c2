package builtins

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"patlang/types"
)

// Brace-placeholder formatter for std.print / std.format.
//
// Placeholders are "{}" (next argument), "{n}" (explicit index) or
// "{[n]:spec}" where spec is [0][width][.precision][verb] with verbs
// d, x, X, o, b, c, f, F, e, E, g, G and s. "{{" and "}}" emit
// literal braces. Argument order in the output matches parameter
// order; the format string itself is not a substitutable argument.

// formatArgs renders a format call's parameter pack: the first
// parameter is the format string, the rest are positional arguments
func formatArgs(params []types.Value) (string, error) {
	format, err := types.ToString(params[0], true)
	if err != nil {
		return "", err
	}
	return vformat(format, params[1:])
}

// vformat substitutes args into format
func vformat(format string, args []types.Value) (string, error) {
	var out strings.Builder
	auto := 0
	usedAuto, usedManual := false, false

	for i := 0; i < len(format); {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				out.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(format[i:], '}')
			if end < 0 {
				return "", fmt.Errorf("unmatched '{' in format string")
			}
			field := format[i+1 : i+end]
			i += end + 1

			indexPart, spec := field, ""
			if colon := strings.IndexByte(field, ':'); colon >= 0 {
				indexPart, spec = field[:colon], field[colon+1:]
			}

			var idx int
			if indexPart == "" {
				if usedManual {
					return "", fmt.Errorf("cannot switch between automatic and manual argument indexing")
				}
				usedAuto = true
				idx = auto
				auto++
			} else {
				n, err := strconv.Atoi(indexPart)
				if err != nil || n < 0 {
					return "", fmt.Errorf("invalid argument index '%s'", indexPart)
				}
				if usedAuto {
					return "", fmt.Errorf("cannot switch between automatic and manual argument indexing")
				}
				usedManual = true
				idx = n
			}
			if idx >= len(args) {
				return "", fmt.Errorf("argument index %d out of range", idx)
			}

			rendered, err := renderField(args[idx], spec)
			if err != nil {
				return "", err
			}
			out.WriteString(rendered)
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				out.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("single '}' in format string")
		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String(), nil
}

// renderField formats one argument according to its format spec
func renderField(v types.Value, spec string) (string, error) {
	if spec == "" {
		return types.ToString(v, true)
	}

	rest := spec
	zero := false
	if strings.HasPrefix(rest, "0") {
		zero = true
		rest = rest[1:]
	}
	width := ""
	for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
		width += rest[:1]
		rest = rest[1:]
	}
	prec := ""
	if strings.HasPrefix(rest, ".") {
		rest = rest[1:]
		for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
			prec += rest[:1]
			rest = rest[1:]
		}
		if prec == "" {
			return "", fmt.Errorf("invalid format spec '%s'", spec)
		}
	}
	verb := byte(0)
	if len(rest) == 1 {
		verb = rest[0]
	} else if len(rest) > 1 {
		return "", fmt.Errorf("invalid format spec '%s'", spec)
	}

	if verb == 0 {
		switch v.Type() {
		case types.TYPE_FLOAT:
			verb = 'g'
		case types.TYPE_UNSIGNED, types.TYPE_SIGNED, types.TYPE_CHAR:
			verb = 'd'
		default:
			verb = 's'
		}
	}

	goFormat := "%"
	if zero {
		goFormat += "0"
	}
	goFormat += width
	if prec != "" {
		goFormat += "." + prec
	}
	goFormat += string(verb)

	switch verb {
	case 'd', 'x', 'X', 'o', 'b':
		n, err := fieldInt(v)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(goFormat, n), nil
	case 'c':
		n, err := fieldInt(v)
		if err != nil {
			return "", err
		}
		if !n.IsInt64() || n.Int64() < 0 || n.Int64() > 0xFF {
			return "", fmt.Errorf("value out of range for format verb 'c'")
		}
		goFormat = goFormat[:len(goFormat)-1] + "s"
		return fmt.Sprintf(goFormat, string([]byte{byte(n.Int64())})), nil
	case 'f', 'F', 'e', 'E', 'g', 'G':
		f, err := types.ToFloat(v)
		if err != nil {
			return "", err
		}
		if verb == 'F' {
			goFormat = goFormat[:len(goFormat)-1] + "f"
		}
		return fmt.Sprintf(goFormat, f), nil
	case 's':
		s, err := types.ToString(v, true)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(goFormat, s), nil
	default:
		return "", fmt.Errorf("unknown format verb '%c'", verb)
	}
}

// fieldInt extracts an arbitrary-width integer for the integral verbs
func fieldInt(v types.Value) (*big.Int, error) {
	switch x := v.(type) {
	case types.UnsignedValue:
		return x.Val.Big(), nil
	case types.SignedValue:
		return x.Big(), nil
	case types.CharValue:
		return big.NewInt(int64(x.Val)), nil
	case types.FloatValue:
		return big.NewInt(int64(x.Val)), nil
	default:
		return nil, fmt.Errorf("format verb requires a numeric argument, got %s", v.Type())
	}
}
