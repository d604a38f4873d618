package types

// TypeCode is the primary tag of a Value
type TypeCode uint8

const (
	TYPE_NONE   TypeCode = iota // the "nothing" state
	TYPE_BOOL                   // bool
	TYPE_INT                    // int32
	TYPE_FLOAT                  // float32
	TYPE_DOUBLE                 // float64
	TYPE_STR                    // string, possibly tagged with a parsed TypeCode
	TYPE_OBJ                    // opaque reference
)

// String returns the name of the type code
func (t TypeCode) String() string {
	switch t {
	case TYPE_NONE:
		return "None"
	case TYPE_BOOL:
		return "Boolean"
	case TYPE_INT:
		return "Int32"
	case TYPE_FLOAT:
		return "Single"
	case TYPE_DOUBLE:
		return "Double"
	case TYPE_STR:
		return "String"
	case TYPE_OBJ:
		return "Object"
	default:
		return "Unknown"
	}
}

// IsNumeric reports whether t is one of the numeric type codes
func (t TypeCode) IsNumeric() bool {
	return t == TYPE_INT || t == TYPE_FLOAT || t == TYPE_DOUBLE
}

// class groups values for cross-type rules. A string tagged with a parsed
// type belongs to the class of that type.
type class uint8

const (
	classNone class = iota
	classBool
	classNumber
	classString
	classObject
)

// class returns the comparison class of v
func (v Value) class() class {
	switch v.effective() {
	case TYPE_BOOL:
		return classBool
	case TYPE_INT, TYPE_FLOAT, TYPE_DOUBLE:
		return classNumber
	case TYPE_STR:
		return classString
	case TYPE_OBJ:
		return classObject
	default:
		return classNone
	}
}
