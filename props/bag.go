// Package props stores named dynamic values.
package props

import (
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"

	"dataobject/types"
)

// Bag maps property names to values. Reading a missing property yields
// types.Nothing. The empty name is not a valid key.
//
// A Bag is not safe for concurrent use; the values it holds are.
type Bag struct {
	props map[string]types.Value
}

// New creates an empty bag
func New() *Bag {
	return &Bag{props: make(map[string]types.Value)}
}

// FromMap creates a bag holding a copy of m
func FromMap(m map[string]types.Value) (*Bag, error) {
	b := &Bag{props: make(map[string]types.Value, len(m))}
	for k, v := range m {
		if err := b.Set(k, v); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func checkKey(op, key string) error {
	if key == "" {
		return &types.Error{Code: types.E_INVARG, Op: op}
	}
	return nil
}

// Get returns the value stored under key, or types.Nothing when absent
func (b *Bag) Get(key string) (types.Value, error) {
	if err := checkKey("get", key); err != nil {
		return types.Nothing, err
	}
	return b.props[key], nil
}

// Lookup is Get without key validation; ok reports presence
func (b *Bag) Lookup(key string) (types.Value, bool) {
	v, ok := b.props[key]
	return v, ok
}

// Set stores v under key
func (b *Bag) Set(key string, v types.Value) error {
	if err := checkKey("set", key); err != nil {
		return err
	}
	b.props[key] = v
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (b *Bag) Delete(key string) error {
	if err := checkKey("delete", key); err != nil {
		return err
	}
	delete(b.props, key)
	return nil
}

// Len returns the number of stored properties
func (b *Bag) Len() int {
	return len(b.props)
}

// Keys returns the property names in sorted order
func (b *Bag) Keys() []string {
	keys := make([]string, 0, len(b.props))
	for k := range b.props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Range calls fn for each property in key order until fn returns false
func (b *Bag) Range(fn func(key string, v types.Value) bool) {
	for _, k := range b.Keys() {
		if !fn(k, b.props[k]) {
			return
		}
	}
}

// Clone returns a copy of the bag
func (b *Bag) Clone() *Bag {
	c := &Bag{props: make(map[string]types.Value, len(b.props))}
	for k, v := range b.props {
		c.props[k] = v
	}
	return c
}

// String renders the bag as {Key: value, ...} in key order
func (b *Bag) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, k := range b.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(b.props[k].String())
	}
	sb.WriteString("}")
	return sb.String()
}

// Fingerprint digests the keys, type tags and renderings of every property.
// Two bags with the same fingerprint hold the same properties with the same
// text and tags.
func (b *Bag) Fingerprint() [32]byte {
	var buf []byte
	for _, k := range b.Keys() {
		v := b.props[k]
		buf = append(buf, k...)
		buf = append(buf, 0)
		buf = append(buf, v.TypeName()...)
		buf = append(buf, 0)
		buf = append(buf, v.GoString()...)
		buf = append(buf, 0)
	}
	return blake2b.Sum256(buf)
}
