package types

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

const (
	nothingHash uint64 = 0x9e3779b97f4a7c15
	nanHash     uint64 = 0x7fc00000
)

// Hash returns a hash consistent with Equal within each comparison class.
// Numbers are narrowed to float32 first so that an Int32, a Float32 and a
// Float64 that compare equal also hash equal. Some cross-class pairs are
// equal without sharing a hash; see HashExempt.
func (v Value) Hash() uint64 {
	switch v.effective() {
	case TYPE_NONE:
		return nothingHash
	case TYPE_BOOL:
		return hashInt(int64(boolInt(v.b)))
	case TYPE_INT, TYPE_FLOAT, TYPE_DOUBLE:
		return hashNumber(narrowFloat(v))
	case TYPE_STR:
		if v.s == "" {
			return 0
		}
		return xxhash.Sum64String(v.s)
	default:
		return refHash(v.ref)
	}
}

func hashNumber(x float32) uint64 {
	if math.IsNaN(float64(x)) {
		return nanHash
	}
	if t := float32(math.Trunc(float64(x))); t == x && x >= math.MinInt32 && x <= math.MaxInt32 {
		return hashInt(int64(x))
	}
	return hashInt(int64(math.Float32bits(x)) | 1<<40)
}

// hashInt maps 0 to 0 so that false, zero, the empty string and the nil
// object share a hash
func hashInt(n int64) uint64 {
	if n == 0 {
		return 0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	return xxhash.Sum64(buf[:])
}

// HashExempt reports whether Equal(a, b) may hold while the hashes differ.
// This happens only across comparison classes: true against a number other
// than 1, a non-empty string or a non-nil object, and a number against a
// non-empty string. Mixing such values in one hash keyed collection can
// lose lookups.
func HashExempt(a, b Value) bool {
	if a.class() > b.class() {
		a, b = b, a
	}

	switch a.class() {
	case classBool:
		switch b.class() {
		case classNumber:
			return compareNumberIndex(b, 0) != 0 && compareNumberIndex(b, 1) != 0
		case classString:
			return b.s != ""
		case classObject:
			return b.ref != nil
		}
	case classNumber:
		return b.class() == classString && b.s != ""
	}
	return false
}
