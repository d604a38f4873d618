package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStringTagging(t *testing.T) {
	tests := []struct {
		in       string
		parsed   TypeCode
		typeName string
	}{
		{"True", TYPE_BOOL, "[Boolean from String]"},
		{"tRuE", TYPE_BOOL, "[Boolean from String]"},
		{"FALSE", TYPE_BOOL, "[Boolean from String]"},
		{" true", TYPE_NONE, "[String]"},
		{"0", TYPE_INT, "[Int32 from String]"},
		{"-15", TYPE_INT, "[Int32 from String]"},
		{"+7", TYPE_INT, "[Int32 from String]"},
		{" 42 ", TYPE_INT, "[Int32 from String]"},
		{"2147483647", TYPE_INT, "[Int32 from String]"},
		{"2147483648", TYPE_DOUBLE, "[Double from String]"},
		{"5.45", TYPE_DOUBLE, "[Double from String]"},
		{"-1.0", TYPE_DOUBLE, "[Double from String]"},
		{"1e3", TYPE_DOUBLE, "[Double from String]"},
		{"NaN", TYPE_DOUBLE, "[Double from String]"},
		{"Infinity", TYPE_DOUBLE, "[Double from String]"},
		{"1_000", TYPE_NONE, "[String]"},
		{"0x1F", TYPE_NONE, "[String]"},
		{"1,5", TYPE_NONE, "[String]"},
		{"abc", TYPE_NONE, "[String]"},
		{"6asfasdf", TYPE_NONE, "[String]"},
		{"", TYPE_NONE, "[String]"},
		{" ", TYPE_NONE, "[String]"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v := FromString(tt.in)
			assert.Equal(t, TYPE_STR, v.Type())
			assert.Equal(t, tt.parsed, v.ParsedType())
			assert.Equal(t, tt.typeName, v.TypeName())
			assert.True(t, v.IsString())
			assert.Equal(t, tt.in, v.Boxed())
		})
	}
}

func TestConstructors(t *testing.T) {
	assert.True(t, Empty().IsNothing())
	assert.True(t, Value{}.IsNothing())
	assert.Equal(t, "None", Nothing.TypeName())
	assert.Equal(t, "[Int32]", Zero.TypeName())

	assert.Equal(t, TYPE_OBJ, FromObject(nil).Type())
	assert.Equal(t, TYPE_NONE, FromAny(nil).Type())

	s := "16"
	assert.Equal(t, "[Int32 from String]", FromStringPtr(&s).TypeName())
	assert.Equal(t, "[String]", FromStringPtr(nil).TypeName())
	assert.Equal(t, "null", FromStringPtr(nil).String())

	type point struct{ X, Y int }
	p := &point{1, 2}
	assert.Equal(t, TYPE_OBJ, FromObject(p).Type())
	assert.Same(t, p, FromObject(p).Boxed())
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		typeName string
	}{
		{"bool", true, "[Boolean]"},
		{"int", 12, "[Int32]"},
		{"int64 wide", int64(math.MaxInt32) + 1, "[Double]"},
		{"uint8", uint8(7), "[Int32]"},
		{"uint64 huge", uint64(1) << 60, "[Double]"},
		{"float32", float32(1.5), "[Single]"},
		{"float64", 1.5, "[Double]"},
		{"string", "abc", "[String]"},
		{"numeric string", "12", "[Int32 from String]"},
		{"value", FromInt32(3), "[Int32]"},
		{"value pointer", func() *Value { v := FromBool(false); return &v }(), "[Boolean]"},
		{"slice", []int{1}, "[Object]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.typeName, FromAny(tt.in).TypeName())
		})
	}
}

func TestFromAnyNilPointers(t *testing.T) {
	var s *string
	v := FromAny(s)
	assert.Equal(t, "[String]", v.TypeName())
	assert.False(t, v.HasValue())
	assert.Equal(t, "null", v.String())
	assert.True(t, Equal(v, NullString()))

	v = FromObject(s)
	assert.Equal(t, TYPE_STR, v.Type())
	assert.False(t, v.HasValue())

	var p *Value
	assert.True(t, FromAny(p).IsNothing())
	assert.True(t, FromObject(p).IsNothing())
}

func TestRendering(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Nothing, "Unknown"},
		{FromBool(true), "True"},
		{FromBool(false), "False"},
		{FromInt32(-42), "-42"},
		{FromFloat32(5.45), "5.45"},
		{FromFloat32(0.1), "0.1"},
		{FromFloat64(16.4), "16.4"},
		{FromFloat64(10), "10"},
		{FromFloat64(2147483648), "2147483648"},
		{FromFloat64(1e6), "1000000"},
		{FromFloat64(-0.00001), "-0.00001"},
		{FromFloat64(1e15), "1E+15"},
		{FromFloat64(1e-7), "1E-07"},
		{FromFloat32(16777216), "16777216"},
		{FromFloat64(math.NaN()), "NaN"},
		{FromFloat64(math.Inf(1)), "+Inf"},
		{FromFloat32(float32(math.Inf(-1))), "-Inf"},
		{FromString("abc"), "abc"},
		{FromString(""), "Empty"},
		{NullString(), "null"},
		{FromString("tRuE"), "tRuE"},
		{FromString(" 42 "), " 42 "},
		{FromObject(nil), "null"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String(), "%#v", tt.v)
	}
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "None", Nothing.GoString())
	assert.Equal(t, `[Int32 from String] "5"`, FromString("5").GoString())
	assert.Equal(t, "[String] null", NullString().GoString())
	assert.Equal(t, "[Single] 5.45", FromFloat32(5.45).GoString())
}

func TestHasValue(t *testing.T) {
	assert.False(t, Nothing.HasValue())
	assert.False(t, NullString().HasValue())
	assert.False(t, FromObject(nil).HasValue())

	assert.True(t, FromString("").HasValue())
	assert.True(t, FromBool(false).HasValue())
	assert.True(t, Zero.HasValue())
	assert.True(t, FromObject(&struct{}{}).HasValue())
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, FromInt32(1).IsNumeric())
	assert.True(t, FromFloat32(1).IsNumeric())
	assert.True(t, FromFloat64(1).IsNumeric())
	assert.True(t, FromString("1").IsNumeric())
	assert.True(t, FromString("1.5").IsNumeric())

	assert.False(t, FromString("true").IsNumeric())
	assert.False(t, FromString("abc").IsNumeric())
	assert.False(t, FromBool(true).IsNumeric())
	assert.False(t, Nothing.IsNumeric())
	assert.False(t, FromObject(nil).IsNumeric())
}

func TestStringRoundTrip(t *testing.T) {
	for _, i := range []int32{0, 1, -1, 5, 255, -4096, math.MaxInt32, math.MinInt32} {
		v := FromInt32(i)

		back, err := v.AsInt32()
		assert.NoError(t, err)
		assert.Equal(t, i, back)

		reparsed := FromString(v.String())
		assert.Equal(t, TYPE_INT, reparsed.ParsedType())
		assert.True(t, Equal(reparsed, v), "%d", i)
		assert.Equal(t, v.Hash(), reparsed.Hash())
	}

	for _, f := range []float32{0.5, 5.45, -3.25, 1e-3} {
		v := FromFloat32(f)
		reparsed := FromString(v.String())
		assert.True(t, Equal(reparsed, v), "%v", f)
	}
}
