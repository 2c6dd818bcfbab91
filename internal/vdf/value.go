/*
 * stl-next: steam launch tinkering, the next one
 * Copyright © 2026 stl-next contributors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program. If not, see <https://www.gnu.org/licenses/>.
 */

// Package vdf implements the Valve Data Format in both its text and
// binary variants, sharing a single tagged-union value type and a
// dotted-path lookup.
//
// Text parsing is grounded on the shape of github.com/andygrunwald/vdf
// (not imported by this module; appmanifest/libraryfolders parsing
// uses this package), but is hand-rolled here because the format requires an
// order-preserving map and a distinct encoding-error case that a
// map[string]any return type can't carry.
package vdf

import "fmt"

// Kind tags the sum type a Value holds.
type Kind int

const (
	KindString Kind = iota
	KindInt32
	KindInt64
	KindUint64
	KindFloat32
	KindMap
)

// Value is a tagged union: utf-8 string, int32, int64, uint64, float32,
// or a nested ordered Map. Values produced by the text decoder are only
// ever KindString or KindMap.
type Value struct {
	kind Kind
	str  string
	i32  int32
	i64  int64
	u64  uint64
	f32  float32
	m    *Map
}

func NewString(s string) Value  { return Value{kind: KindString, str: s} }
func NewInt32(v int32) Value    { return Value{kind: KindInt32, i32: v} }
func NewInt64(v int64) Value    { return Value{kind: KindInt64, i64: v} }
func NewUint64(v uint64) Value  { return Value{kind: KindUint64, u64: v} }
func NewFloat32(v float32) Value { return Value{kind: KindFloat32, f32: v} }
func NewMap(m *Map) Value       { return Value{kind: KindMap, m: m} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) String() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

func (v Value) Int32() (int32, bool) {
	if v.kind != KindInt32 {
		return 0, false
	}
	return v.i32, true
}

func (v Value) Int64() (int64, bool) {
	if v.kind != KindInt64 {
		return 0, false
	}
	return v.i64, true
}

func (v Value) Uint64() (uint64, bool) {
	if v.kind != KindUint64 {
		return 0, false
	}
	return v.u64, true
}

func (v Value) Float32() (float32, bool) {
	if v.kind != KindFloat32 {
		return 0, false
	}
	return v.f32, true
}

func (v Value) Map() (*Map, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

// AsString coerces any scalar kind to its string representation,
// returning "" for a map value. Callers that know they want a string
// out of a VDF tree they don't fully control (mixed text/binary
// provenance) use this instead of chaining Kind()/String().
func (v Value) AsString() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt32:
		return fmt.Sprintf("%d", v.i32)
	case KindInt64:
		return fmt.Sprintf("%d", v.i64)
	case KindUint64:
		return fmt.Sprintf("%d", v.u64)
	case KindFloat32:
		return fmt.Sprintf("%g", v.f32)
	default:
		return ""
	}
}

// Map is an insertion-ordered string-keyed map. Duplicate Set calls
// overwrite the value but keep the original position, matching spec
// §4.1 ("duplicate keys overwrite").
type Map struct {
	keys   []string
	values map[string]Value
}

func NewEmptyMap() *Map {
	return &Map{values: make(map[string]Value)}
}

func (m *Map) Set(key string, v Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return m.keys
}

func (m *Map) Len() int {
	return len(m.keys)
}

// Lookup resolves a dotted path ("root.sub.field") against the tree
// rooted at m, returning the terminal Value or false if any segment is
// absent or not a map.
func (m *Map) Lookup(path string) (Value, bool) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return Value{}, false
	}

	cur := m
	for i, seg := range segs {
		v, ok := cur.Get(seg)
		if !ok {
			return Value{}, false
		}
		if i == len(segs)-1 {
			return v, true
		}
		sub, ok := v.Map()
		if !ok {
			return Value{}, false
		}
		cur = sub
	}
	return Value{}, false
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	var segs []string
	start := 0
	for i := 0; i < len(path); i++ {
		if path[i] == '.' {
			segs = append(segs, path[start:i])
			start = i + 1
		}
	}
	segs = append(segs, path[start:])
	return segs
}
