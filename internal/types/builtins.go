package types

// TYPE_NAME is the tag of a primitive type. The language has no composite
// types, so a tag is the whole type.
type TYPE_NAME string

const (
	TYPE_INT    TYPE_NAME = "int"
	TYPE_LONG   TYPE_NAME = "long"
	TYPE_DOUBLE TYPE_NAME = "double"
	TYPE_BOOL   TYPE_NAME = "boolean"
	TYPE_STRING TYPE_NAME = "string"

	TYPE_UNKNOWN TYPE_NAME = "unknown"
)

var builtinTypes = map[string]TYPE_NAME{
	string(TYPE_INT):    TYPE_INT,
	string(TYPE_LONG):   TYPE_LONG,
	string(TYPE_DOUBLE): TYPE_DOUBLE,
	string(TYPE_BOOL):   TYPE_BOOL,
	string(TYPE_STRING): TYPE_STRING,
}

func (t TYPE_NAME) String() string { return string(t) }

// FromTypeName maps a type keyword to its tag.
func FromTypeName(name string) (TYPE_NAME, bool) {
	t, ok := builtinTypes[name]
	return t, ok
}

// IsBuiltinType reports whether name spells one of the primitive types.
func IsBuiltinType(name string) bool {
	_, ok := builtinTypes[name]
	return ok
}

// IsNumericTypeName checks if a type name is numeric
func IsNumericTypeName(t TYPE_NAME) bool {
	switch t {
	case TYPE_INT, TYPE_LONG, TYPE_DOUBLE:
		return true
	default:
		return false
	}
}
