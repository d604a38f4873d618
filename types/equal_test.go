package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type handle struct{ id int }

type key struct {
	Name string
	N    int
}

type wrapper struct {
	X any
}

var (
	h1 = &handle{1}
	h2 = &handle{2}
)

// samples covers every type code, every string tag and the boundary values
// the cross-type rules care about
func samples() []Value {
	return []Value{
		Nothing,
		FromBool(true), FromBool(false),
		FromInt32(0), FromInt32(1), FromInt32(-1), FromInt32(3), FromInt32(5),
		FromInt32(math.MaxInt32), FromInt32(math.MinInt32),
		FromFloat32(0), FromFloat32(1), FromFloat32(0.1), FromFloat32(5.45), FromFloat32(-3),
		FromFloat32(float32(math.Copysign(0, -1))),
		FromFloat64(0), FromFloat64(1), FromFloat64(5), FromFloat64(5.45), FromFloat64(0.5),
		FromFloat64(3), FromFloat64(math.NaN()), FromFloat64(math.Inf(1)), FromFloat64(1e10),
		FromString(""), NullString(), FromString(" "), FromString("abc"), FromString("ABC"),
		FromString("abcde"),
		FromString("True"), FromString("false"), FromString("0"), FromString("1"), FromString("5"),
		FromString("-15"), FromString("5.45"), FromString("0.0"), FromString("3.0"),
		FromObject(nil), FromObject(h1), FromObject(h2), FromObject(key{"a", 1}),
		FromObject(wrapper{[]int{1}}), FromObject(wrapper{[]int{2}}), FromObject(wrapper{"a"}),
	}
}

func TestEqualPairs(t *testing.T) {
	tests := []struct {
		a, b     Value
		equal    bool
		skipHash bool
	}{
		{Nothing, Nothing, true, false},
		{Nothing, Empty(), true, false},
		{Nothing, Zero, false, false},
		{Nothing, NullString(), false, false},
		{Nothing, FromObject(nil), false, false},

		{FromBool(false), Zero, true, false},
		{FromInt32(0), Zero, true, false},
		{FromFloat32(0), Zero, true, false},
		{FromString("0"), Zero, true, false},
		{FromString("0.0"), Zero, true, false},

		{FromBool(true), FromBool(true), true, false},
		{FromBool(true), FromBool(false), false, false},
		{FromInt32(5), FromInt32(5), true, false},
		{FromFloat32(5.45), FromFloat32(5.45), true, false},
		{FromFloat32(5.45), FromFloat32(5.4), false, false},

		{FromString(""), FromString(""), true, false},
		{FromString("abc"), FromString("ABC"), false, false},
		{FromString("abc"), FromString("abc"), true, false},
		{NullString(), NullString(), true, false},
		{NullString(), FromString(""), false, false},
		{FromString("True"), FromString("abc"), true, true},
		{FromString("False"), FromString(""), true, false},
		{FromString("False"), NullString(), true, false},

		{FromBool(true), FromString("True"), true, false},
		{FromBool(true), FromString("TRUE"), true, false},
		{FromBool(true), FromString("tRuE"), true, false},
		{FromBool(true), FromString("1"), true, false},
		{FromBool(true), FromString("1.0"), true, false},
		{FromBool(true), FromString("5"), true, true},
		{FromBool(true), FromString("abc"), true, true},
		{FromBool(false), FromString("0.2"), true, true},
		{FromBool(false), NullString(), true, false},
		{FromBool(false), FromString(""), true, false},
		{FromBool(false), FromString("fAlSe"), true, false},
		{FromBool(false), FromString("0"), true, false},
		{FromBool(false), FromString("-1.0"), true, true},
		{FromBool(true), FromString(""), false, false},

		{FromInt32(1), FromBool(true), true, false},
		{FromInt32(5), FromBool(true), true, true},
		{FromInt32(3), FromBool(false), false, false},
		{FromFloat32(0), FromBool(false), true, false},
		{FromFloat32(1), FromBool(true), true, false},
		{FromFloat32(5), FromBool(true), true, true},
		{FromFloat32(0.1), FromBool(true), false, false},

		{Zero, FromFloat32(0), true, false},
		{FromInt32(5), FromFloat32(5), true, false},
		{FromInt32(-5), FromFloat32(-5), true, false},
		{FromInt32(5), FromFloat32(5.001), false, false},
		{FromInt32(5), FromFloat64(5), true, false},
		{FromFloat32(5.45), FromFloat64(5.45), true, false},
		{FromFloat64(math.NaN()), FromFloat64(math.NaN()), true, false},
		{FromFloat64(math.Copysign(0, -1)), Zero, true, false},

		{Zero, FromString("0"), true, false},
		{FromInt32(5), FromString("5"), true, false},
		{Zero, NullString(), true, false},
		{Zero, FromString(""), true, false},
		{FromInt32(6), FromString("5"), false, false},
		{FromInt32(6), FromString("6asfasdf"), false, false},
		{FromInt32(3), FromString("abc"), true, true},

		{FromFloat32(0), NullString(), true, false},
		{FromFloat32(0), FromString(""), true, false},
		{FromFloat32(0), FromString("0.0"), true, false},
		{FromFloat32(4), FromString("4"), true, false},
		{FromFloat32(4), FromString("4.0"), true, false},
		{FromFloat32(5.45), FromString("5.45"), true, false},
		{FromFloat32(5.46), FromString("5.45"), false, false},
		{FromFloat32(5.46), FromString("5"), false, false},
		{FromFloat32(5.46), FromString("abcde"), false, false},
		{FromFloat32(5.88), FromString("abcdef"), false, false},
		{FromFloat32(5), FromString("abcde"), true, true},
		{FromInt32(16777217), FromFloat32(16777216), true, false},
		{FromString("16777217"), FromFloat32(16777216), true, false},
		{FromInt32(16777217), FromFloat64(16777216), false, false},

		{Zero, FromObject(nil), true, false},
		{FromFloat64(1), FromObject(nil), false, false},
		{FromInt32(0), FromObject(h1), false, false},
		{FromBool(false), FromObject(nil), true, false},
		{FromBool(true), FromObject(h1), true, true},
		{NullString(), FromObject(nil), true, false},
		{FromString(""), FromObject(nil), false, false},
		{FromString("abc"), FromObject(h1), false, false},

		{FromObject(nil), FromObject(nil), true, false},
		{FromObject(h1), FromObject(h1), true, false},
		{FromObject(h1), FromObject(h2), false, false},
		{FromObject(h1), FromObject(&handle{1}), false, false},
		{FromObject(key{"a", 1}), FromObject(key{"a", 1}), true, false},
		{FromObject(key{"a", 1}), FromObject(key{"a", 2}), false, false},
		{FromObject(h1), FromObject(nil), false, false},
		{FromObject(wrapper{[]int{1}}), FromObject(wrapper{[]int{1}}), true, false},
		{FromObject(wrapper{[]int{1}}), FromObject(wrapper{[]int{2}}), false, false},
		{FromObject(wrapper{[]int{1}}), FromObject(wrapper{"a"}), false, false},
		{FromObject(wrapper{"a"}), FromObject(wrapper{"a"}), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.a.GoString()+" vs "+tt.b.GoString(), func(t *testing.T) {
			assert.Equal(t, tt.equal, Equal(tt.a, tt.b), "forward")
			assert.Equal(t, tt.equal, Equal(tt.b, tt.a), "backward")
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b), "method")

			if tt.equal {
				assert.Equal(t, tt.skipHash, HashExempt(tt.a, tt.b), "hash exemption")
				if !tt.skipHash {
					assert.Equal(t, tt.a.Hash(), tt.b.Hash(), "hash")
				}
			}
		})
	}
}

func TestEqualReflexiveAndSymmetric(t *testing.T) {
	values := samples()

	for _, a := range values {
		assert.True(t, Equal(a, a), "%#v is not equal to itself", a)
		for _, b := range values {
			assert.Equal(t, Equal(a, b), Equal(b, a), "%#v vs %#v", a, b)
		}
	}
}

func TestEqualStrict(t *testing.T) {
	ok, err := EqualStrict(FromInt32(5), FromInt32(5))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = EqualStrict(FromString("5"), FromString(" 5"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = EqualStrict(FromString("abc"), FromString("abd"))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = EqualStrict(Nothing, FromInt32(0))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = EqualStrict(Nothing, Nothing)
	require.NoError(t, err)
	assert.True(t, ok)

	mismatches := [][2]Value{
		{FromInt32(5), FromFloat32(5)},
		{FromInt32(5), FromString("5")},
		{FromString("5"), FromString("5.0")},
		{FromString("abc"), FromString("True")},
		{FromBool(true), FromString("True")},
		{FromObject(nil), NullString()},
	}
	for _, pair := range mismatches {
		_, err := EqualStrict(pair[0], pair[1])
		require.Error(t, err, "%#v vs %#v", pair[0], pair[1])
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.Equal(t, E_TYPE, CodeOf(err))
	}
}
