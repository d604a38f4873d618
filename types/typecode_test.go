package types

import "testing"

func TestTypeCodes(t *testing.T) {
	tests := []struct {
		code    TypeCode
		val     int
		name    string
		numeric bool
	}{
		{TYPE_NONE, 0, "None", false},
		{TYPE_BOOL, 1, "Boolean", false},
		{TYPE_INT, 2, "Int32", true},
		{TYPE_FLOAT, 3, "Single", true},
		{TYPE_DOUBLE, 4, "Double", true},
		{TYPE_STR, 5, "String", false},
		{TYPE_OBJ, 6, "Object", false},
	}

	for _, tt := range tests {
		if int(tt.code) != tt.val {
			t.Errorf("Type code %s should be %d, got %d", tt.name, tt.val, int(tt.code))
		}
		if tt.code.String() != tt.name {
			t.Errorf("Type code %d should stringify to %s, got %s", tt.val, tt.name, tt.code.String())
		}
		if tt.code.IsNumeric() != tt.numeric {
			t.Errorf("Type code %s IsNumeric = %v", tt.name, tt.code.IsNumeric())
		}
	}
}

func TestClassOfTaggedStrings(t *testing.T) {
	tests := []struct {
		v    Value
		want class
	}{
		{Nothing, classNone},
		{FromBool(true), classBool},
		{FromString("TRUE"), classBool},
		{FromInt32(3), classNumber},
		{FromString("3"), classNumber},
		{FromString("3.5"), classNumber},
		{FromFloat32(1), classNumber},
		{FromString("abc"), classString},
		{NullString(), classString},
		{FromObject(nil), classObject},
	}

	for _, tt := range tests {
		if got := tt.v.class(); got != tt.want {
			t.Errorf("%#v: class %d, expected %d", tt.v, got, tt.want)
		}
	}
}
