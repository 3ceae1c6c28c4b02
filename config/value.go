// FILE: lixenwraith/sitecore/config/value.go
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// Kind identifies the shape of a configuration Value.
type Kind uint8

const (
	// KindNull is an explicit null or an unset Value
	KindNull Kind = iota
	// KindScalar holds a string, number, bool or any other opaque leaf
	KindScalar
	// KindSequence holds an ordered list of Values
	KindSequence
	// KindMapping holds an ordered set of named Values
	KindMapping
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a single node of the configuration tree.
// The zero Value is null.
type Value struct {
	kind   Kind
	scalar any
	items  []Value
	table  *Mapping
}

// Null returns the null Value.
func Null() Value {
	return Value{}
}

// Scalar wraps a leaf value. A nil argument yields Null.
func Scalar(v any) Value {
	if v == nil {
		return Null()
	}
	return Value{kind: KindScalar, scalar: v}
}

// Sequence builds a sequence Value from the given items.
func Sequence(items ...Value) Value {
	seq := make([]Value, len(items))
	copy(seq, items)
	return Value{kind: KindSequence, items: seq}
}

// Table wraps a Mapping as a Value. A nil Mapping becomes an empty one.
func Table(m *Mapping) Value {
	if m == nil {
		m = NewMapping()
	}
	return Value{kind: KindMapping, table: m}
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Scalar returns the wrapped leaf, or nil for non-scalar values.
func (v Value) Scalar() any {
	if v.kind != KindScalar {
		return nil
	}
	return v.scalar
}

// Items returns a copy of the sequence elements, or nil for non-sequences.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	out := make([]Value, len(v.items))
	copy(out, v.items)
	return out
}

// Mapping returns the wrapped mapping, or nil for non-mappings.
// The returned Mapping is shared with the Value.
func (v Value) Mapping() *Mapping {
	if v.kind != KindMapping {
		return nil
	}
	return v.table
}

// Interface converts the value to plain Go data: map[string]any, []any or the scalar itself.
func (v Value) Interface() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindSequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		return v.table.Interface()
	default:
		return nil
	}
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	switch v.kind {
	case KindSequence:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = item.Clone()
		}
		return Value{kind: KindSequence, items: items}
	case KindMapping:
		return Value{kind: KindMapping, table: v.table.Clone()}
	case KindScalar:
		if b, ok := v.scalar.([]byte); ok && b != nil {
			return Scalar(bytes.Clone(b))
		}
		return v
	default:
		return v
	}
}

// FromAny converts decoded Go data into a Value.
// Maps with string-like keys become mappings (keys inserted in sorted order),
// slices and arrays become sequences, everything else is a scalar.
func FromAny(data any) Value {
	switch t := data.(type) {
	case nil:
		return Null()
	case Value:
		return t.Clone()
	case *Mapping:
		if t == nil {
			return Null()
		}
		return Table(t.Clone())
	case map[string]any:
		m := NewMapping()
		for _, k := range sortedKeys(t) {
			m.Set(k, FromAny(t[k]))
		}
		return Table(m)
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromAny(item)
		}
		return Value{kind: KindSequence, items: items}
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Scalar(i)
		}
		if f, err := t.Float64(); err == nil {
			return Scalar(f)
		}
		return Scalar(t.String())
	case []byte:
		if t == nil {
			return Null()
		}
		return Scalar(bytes.Clone(t))
	case string, bool:
		return Scalar(t)
	}

	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Map:
		m := NewMapping()
		keys := rv.MapKeys()
		names := make([]string, len(keys))
		byName := make(map[string]reflect.Value, len(keys))
		for i, k := range keys {
			names[i] = fmt.Sprint(k.Interface())
			byName[names[i]] = k
		}
		sort.Strings(names)
		for _, name := range names {
			m.Set(name, FromAny(rv.MapIndex(byName[name]).Interface()))
		}
		return Table(m)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null()
		}
		items := make([]Value, rv.Len())
		for i := range items {
			items[i] = FromAny(rv.Index(i).Interface())
		}
		return Value{kind: KindSequence, items: items}
	default:
		return Scalar(data)
	}
}

// Mapping is an ordered map of configuration keys to Values.
// Read methods are safe on a nil *Mapping.
type Mapping struct {
	keys   []string
	values map[string]Value
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]Value)}
}

// Len returns the number of direct keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the direct keys in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the direct child under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return Null(), false
	}
	v, ok := m.values[key]
	return v, ok
}

// Set stores v under key. An existing key keeps its position.
func (m *Mapping) Set(key string, v Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Delete removes key if present.
func (m *Mapping) Delete(key string) {
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Lookup resolves a dot-delimited path. The empty path resolves to the mapping itself.
func (m *Mapping) Lookup(path string) (Value, bool) {
	if m == nil {
		return Null(), false
	}
	if path == "" {
		return Table(m), true
	}
	return m.lookupSegments(splitPath(path))
}

func (m *Mapping) lookupSegments(segments []string) (Value, bool) {
	current := m
	for i, segment := range segments {
		v, ok := current.Get(segment)
		if !ok {
			return Null(), false
		}
		if i == len(segments)-1 {
			return v, true
		}
		if v.kind != KindMapping {
			return Null(), false
		}
		current = v.table
	}
	return Null(), false
}

// SetPath stores v at a dot-delimited path, creating intermediate mappings.
// A non-mapping value in the way is replaced by a new mapping.
func (m *Mapping) SetPath(path string, v Value) {
	m.setSegments(splitPath(path), v)
}

func (m *Mapping) setSegments(segments []string, v Value) {
	parent := m.ensureSegments(segments[:len(segments)-1])
	parent.Set(segments[len(segments)-1], v)
}

// ensureSegments returns the mapping at segments, creating or replacing
// nodes along the way so that every step is a mapping.
func (m *Mapping) ensureSegments(segments []string) *Mapping {
	current := m
	for _, segment := range segments {
		next, ok := current.Get(segment)
		if !ok || next.kind != KindMapping {
			next = Table(NewMapping())
			current.Set(segment, next)
		}
		current = next.table
	}
	return current
}

// Clone returns a deep copy of the mapping.
func (m *Mapping) Clone() *Mapping {
	out := NewMapping()
	if m == nil {
		return out
	}
	for _, k := range m.keys {
		out.Set(k, m.values[k].Clone())
	}
	return out
}

// Interface converts the mapping to a plain nested map.
func (m *Mapping) Interface() map[string]any {
	out := make(map[string]any, m.Len())
	if m == nil {
		return out
	}
	for _, k := range m.keys {
		out[k] = m.values[k].Interface()
	}
	return out
}

// Walk visits every non-mapping node depth-first in key order.
// The segments slice is reused between calls; copy it to retain it.
func (m *Mapping) Walk(fn func(segments []string, v Value)) {
	m.walk(nil, fn)
}

func (m *Mapping) walk(prefix []string, fn func(segments []string, v Value)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		v := m.values[k]
		segments := append(prefix, k)
		if v.kind == KindMapping {
			v.table.walk(segments, fn)
			continue
		}
		fn(segments, v)
	}
}

// MergeOver deep-merges src into m; values from src win.
// Nested mappings merge key by key, everything else is replaced.
func (m *Mapping) MergeOver(src *Mapping) {
	if src == nil {
		return
	}
	for _, k := range src.keys {
		sv := src.values[k]
		if dv, ok := m.values[k]; ok && dv.kind == KindMapping && sv.kind == KindMapping {
			dv.table.MergeOver(sv.table)
			continue
		}
		m.Set(k, sv.Clone())
	}
}

// MergeUnder deep-merges src into m; existing values in m win and only
// keys absent from m are taken from src.
func (m *Mapping) MergeUnder(src *Mapping) {
	if src == nil {
		return
	}
	for _, k := range src.keys {
		sv := src.values[k]
		dv, ok := m.values[k]
		if !ok {
			m.Set(k, sv.Clone())
			continue
		}
		if dv.kind == KindMapping && sv.kind == KindMapping {
			dv.table.MergeUnder(sv.table)
		}
	}
}
