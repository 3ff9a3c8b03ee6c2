package types

// TypeCode identifies the variant of a literal value
type TypeCode int

const (
	TYPE_STR      TypeCode = 0
	TYPE_UNSIGNED TypeCode = 1
	TYPE_SIGNED   TypeCode = 2
	TYPE_FLOAT    TypeCode = 3
	TYPE_CHAR     TypeCode = 4
	TYPE_PATTERN  TypeCode = 5
)

// String returns the string representation of the type code
func (t TypeCode) String() string {
	switch t {
	case TYPE_STR:
		return "STR"
	case TYPE_UNSIGNED:
		return "UNSIGNED"
	case TYPE_SIGNED:
		return "SIGNED"
	case TYPE_FLOAT:
		return "FLOAT"
	case TYPE_CHAR:
		return "CHAR"
	case TYPE_PATTERN:
		return "PATTERN"
	default:
		return "UNKNOWN"
	}
}
