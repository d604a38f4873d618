package types

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// sameRef reports reference identity of two object payloads. Pointer-shaped
// payloads compare by address, comparable payloads by == and payloads whose
// contents are not comparable by reflect.DeepEqual.
func sameRef(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	}

	// a comparable static type may still hold a slice in an interface field
	if !ra.Comparable() || !rb.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

// refHash hashes an object payload consistently with sameRef
func refHash(ref any) uint64 {
	if ref == nil {
		return 0
	}

	rv := reflect.ValueOf(ref)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Slice:
		return xxhash.Sum64String(fmt.Sprintf("%s@%x", rv.Type(), rv.Pointer()))
	}

	// DeepEqual payloads only share their type
	if !rv.Comparable() {
		return xxhash.Sum64String(rv.Type().String())
	}
	return xxhash.Sum64String(fmt.Sprintf("%s:%#v", rv.Type(), ref))
}
